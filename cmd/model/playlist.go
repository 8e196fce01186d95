package model

import "time"

type Playlist struct {
	PlaylistID  string    `gorm:"column:playlist_id;primaryKey;size:24" json:"playlist_id"`
	Name        string    `gorm:"size:128" json:"name"`
	Description string    `gorm:"size:2048" json:"description"`
	OwnerID     string    `gorm:"column:owner_id;size:24;index" json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PlaylistVideo is one entry of a playlist's ordered video sequence.
// The unique pair disallows duplicates; Position preserves insertion order.
type PlaylistVideo struct {
	EntryID    string    `gorm:"column:entry_id;primaryKey;size:24" json:"entry_id"`
	PlaylistID string    `gorm:"column:playlist_id;size:24;uniqueIndex:uq_playlist_video" json:"playlist_id"`
	VideoID    string    `gorm:"column:video_id;size:24;uniqueIndex:uq_playlist_video" json:"video_id"`
	Position   int       `json:"position"`
	CreatedAt  time.Time `json:"created_at"`
}

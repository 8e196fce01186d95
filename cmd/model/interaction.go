package model

import "time"

type Comment struct {
	CommentID string    `gorm:"column:comment_id;primaryKey;size:24" json:"comment_id"`
	VideoID   string    `gorm:"column:video_id;size:24;index" json:"video_id"`
	OwnerID   string    `gorm:"column:owner_id;size:24;index" json:"owner_id"`
	Content   string    `gorm:"size:2048" json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Like targets exactly one of video, comment or tweet. The composite unique
// indexes are what keeps concurrent toggles from the same actor on the same
// target down to a single row.
type Like struct {
	LikeID    string    `gorm:"column:like_id;primaryKey;size:24" json:"like_id"`
	VideoID   *string   `gorm:"column:video_id;size:24;uniqueIndex:uq_like_video" json:"video_id,omitempty"`
	CommentID *string   `gorm:"column:comment_id;size:24;uniqueIndex:uq_like_comment" json:"comment_id,omitempty"`
	TweetID   *string   `gorm:"column:tweet_id;size:24;uniqueIndex:uq_like_tweet" json:"tweet_id,omitempty"`
	LikedBy   string    `gorm:"column:liked_by;size:24;index;uniqueIndex:uq_like_video;uniqueIndex:uq_like_comment;uniqueIndex:uq_like_tweet" json:"liked_by"`
	CreatedAt time.Time `json:"created_at"`
}

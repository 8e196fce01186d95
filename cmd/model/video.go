package model

import "time"

type Video struct {
	VideoID      string    `gorm:"column:video_id;primaryKey;size:24" json:"video_id"`
	OwnerID      string    `gorm:"column:owner_id;size:24;index" json:"owner_id"`
	Title        string    `gorm:"size:128" json:"title"`
	Description  string    `gorm:"size:2048" json:"description"`
	VideoURL     string    `gorm:"size:512" json:"video_url"`
	ThumbnailURL string    `gorm:"size:512" json:"thumbnail_url"`
	Duration     float64   `json:"duration"`
	Views        int64     `json:"views"`
	IsPublished  bool      `json:"is_published"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

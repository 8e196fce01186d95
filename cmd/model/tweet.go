package model

import "time"

type Tweet struct {
	TweetID   string    `gorm:"column:tweet_id;primaryKey;size:24" json:"tweet_id"`
	OwnerID   string    `gorm:"column:owner_id;size:24;index" json:"owner_id"`
	Content   string    `gorm:"size:1024" json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

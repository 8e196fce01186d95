package model

import "time"

// Subscription links a subscriber to a channel, both users.
// The unique pair backs the toggle contract.
type Subscription struct {
	SubscriptionID string    `gorm:"column:subscription_id;primaryKey;size:24" json:"subscription_id"`
	SubscriberID   string    `gorm:"column:subscriber_id;size:24;uniqueIndex:uq_sub_channel" json:"subscriber_id"`
	ChannelID      string    `gorm:"column:channel_id;size:24;index;uniqueIndex:uq_sub_channel" json:"channel_id"`
	CreatedAt      time.Time `json:"created_at"`
}

package db

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/utils"
)

// ToggleSubscription flips the (subscriber, channel) row and reports the
// resulting state. Same delete-first discipline as the like toggle; the
// unique pair index resolves concurrent inserts.
func ToggleSubscription(ctx context.Context, subscriberID, channelID string) (bool, *model.Subscription, error) {
	result := DB.WithContext(ctx).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Delete(&model.Subscription{})
	if result.Error != nil {
		return false, nil, errors.WithMessage(result.Error, "ToggleSubscription delete failed")
	}
	if result.RowsAffected > 0 {
		return false, nil, nil
	}

	sub := &model.Subscription{
		SubscriptionID: utils.NewObjectID(),
		SubscriberID:   subscriberID,
		ChannelID:      channelID,
		CreatedAt:      time.Now(),
	}
	if err := DB.WithContext(ctx).Create(sub).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return true, nil, nil
		}
		return false, nil, errors.WithMessage(err, "ToggleSubscription insert failed")
	}
	return true, sub, nil
}

func CountSubscribers(ctx context.Context, channelID string) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).Where("channel_id = ?", channelID).Count(&count).Error; err != nil {
		return 0, errors.WithMessage(err, "CountSubscribers failed")
	}
	return count, nil
}

// ListSubscribers returns the public profiles of everyone subscribed to a
// channel, one join, no per-row lookups.
func ListSubscribers(ctx context.Context, channelID string) ([]*model.Profile, error) {
	profiles := make([]*model.Profile, 0)
	err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Select("users.user_id, users.username, users.full_name, users.avatar_url").
		Joins("JOIN users ON users.user_id = subscriptions.subscriber_id").
		Where("subscriptions.channel_id = ?", channelID).
		Order("subscriptions.created_at DESC").
		Scan(&profiles).Error
	if err != nil {
		return nil, errors.WithMessage(err, "ListSubscribers failed")
	}
	return profiles, nil
}

// ListSubscribedChannels returns the public profiles of every channel the
// subscriber follows.
func ListSubscribedChannels(ctx context.Context, subscriberID string) ([]*model.Profile, error) {
	profiles := make([]*model.Profile, 0)
	err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Select("users.user_id, users.username, users.full_name, users.avatar_url").
		Joins("JOIN users ON users.user_id = subscriptions.channel_id").
		Where("subscriptions.subscriber_id = ?", subscriberID).
		Order("subscriptions.created_at DESC").
		Scan(&profiles).Error
	if err != nil {
		return nil, errors.WithMessage(err, "ListSubscribedChannels failed")
	}
	return profiles, nil
}

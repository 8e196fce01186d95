package db

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vidtube.com/cmd/model"
)

func CreateTweet(ctx context.Context, tweet *model.Tweet) error {
	if err := DB.WithContext(ctx).Create(tweet).Error; err != nil {
		return errors.WithMessage(err, "CreateTweet failed")
	}
	return nil
}

func GetTweet(ctx context.Context, tweetID string) (*model.Tweet, error) {
	var tweet model.Tweet
	if err := DB.WithContext(ctx).Where("tweet_id = ?", tweetID).First(&tweet).Error; err != nil {
		return nil, err
	}
	return &tweet, nil
}

func TweetExists(ctx context.Context, tweetID string) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Tweet{}).Where("tweet_id = ?", tweetID).Count(&count).Error; err != nil {
		return false, errors.WithMessage(err, "TweetExists failed")
	}
	return count > 0, nil
}

func ListTweetsByOwner(ctx context.Context, ownerID string, page, pageSize int64) ([]*model.Tweet, int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Tweet{}).Where("owner_id = ?", ownerID).Count(&count).Error; err != nil {
		return nil, 0, errors.WithMessage(err, "ListTweetsByOwner count failed")
	}
	tweets := make([]*model.Tweet, 0, pageSize)
	err := DB.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Limit(int(pageSize)).
		Offset(int((page - 1) * pageSize)).
		Find(&tweets).Error
	if err != nil {
		return nil, 0, errors.WithMessage(err, "ListTweetsByOwner failed")
	}
	return tweets, count, nil
}

func UpdateTweet(ctx context.Context, tweetID, ownerID, content string) (*model.Tweet, error) {
	result := DB.WithContext(ctx).Model(&model.Tweet{}).
		Where("tweet_id = ? AND owner_id = ?", tweetID, ownerID).
		Update("content", content)
	if result.Error != nil {
		return nil, errors.WithMessage(result.Error, "UpdateTweet failed")
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return GetTweet(ctx, tweetID)
}

func DeleteTweet(ctx context.Context, tweetID, ownerID string) error {
	result := DB.WithContext(ctx).
		Where("tweet_id = ? AND owner_id = ?", tweetID, ownerID).
		Delete(&model.Tweet{})
	if result.Error != nil {
		return errors.WithMessage(result.Error, "DeleteTweet failed")
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

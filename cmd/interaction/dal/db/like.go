package db

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/utils"
)

func targetFilter(tx *gorm.DB, like *model.Like) (*gorm.DB, error) {
	switch {
	case like.VideoID != nil:
		return tx.Where("video_id = ?", *like.VideoID), nil
	case like.CommentID != nil:
		return tx.Where("comment_id = ?", *like.CommentID), nil
	case like.TweetID != nil:
		return tx.Where("tweet_id = ?", *like.TweetID), nil
	default:
		return nil, errors.New("like has no target")
	}
}

func likeTarget(ctx context.Context, like *model.Like) (*gorm.DB, error) {
	return targetFilter(DB.WithContext(ctx).Where("liked_by = ?", like.LikedBy), like)
}

// ToggleLike flips the (actor, target) like row and reports the resulting
// state. Delete-first keeps the pair atomic: if nothing was deleted the row
// is inserted, and a duplicate-key race on that insert means another toggle
// by the same actor already switched it on, so the state resolves to "on"
// without error.
func ToggleLike(ctx context.Context, like *model.Like) (bool, error) {
	target, err := likeTarget(ctx, like)
	if err != nil {
		return false, err
	}
	result := target.Delete(&model.Like{})
	if result.Error != nil {
		return false, errors.WithMessage(result.Error, "ToggleLike delete failed")
	}
	if result.RowsAffected > 0 {
		return false, nil
	}

	like.LikeID = utils.NewObjectID()
	like.CreatedAt = time.Now()
	if err := DB.WithContext(ctx).Create(like).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return true, nil
		}
		return false, errors.WithMessage(err, "ToggleLike insert failed")
	}
	return true, nil
}

// CountLikes counts every like on the target, whoever placed it.
func CountLikes(ctx context.Context, target *model.Like) (int64, error) {
	tx, err := targetFilter(DB.WithContext(ctx).Model(&model.Like{}), target)
	if err != nil {
		return 0, err
	}
	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return 0, errors.WithMessage(err, "CountLikes failed")
	}
	return count, nil
}

func CountLikesByActor(ctx context.Context, actorID string) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Like{}).Where("liked_by = ?", actorID).Count(&count).Error; err != nil {
		return 0, errors.WithMessage(err, "CountLikesByActor failed")
	}
	return count, nil
}

// LikedVideoItem is a liked video joined with its owner's public profile.
type LikedVideoItem struct {
	model.Video
	OwnerUsername string    `json:"owner_username"`
	OwnerFullName string    `json:"owner_full_name"`
	OwnerAvatar   string    `json:"owner_avatar"`
	LikedAt       time.Time `json:"liked_at"`
}

// ListLikedVideos returns the actor's liked videos, most recently liked
// first, owners denormalized in the same join. The count query carries the
// same videos join as the page query, so likes whose video is gone never
// skew the envelope.
func ListLikedVideos(ctx context.Context, actorID string, page, pageSize int64) ([]*LikedVideoItem, int64, error) {
	var count int64
	err := DB.WithContext(ctx).Model(&model.Like{}).
		Joins("JOIN videos ON videos.video_id = likes.video_id").
		Where("likes.liked_by = ?", actorID).
		Count(&count).Error
	if err != nil {
		return nil, 0, errors.WithMessage(err, "ListLikedVideos count failed")
	}

	items := make([]*LikedVideoItem, 0, pageSize)
	err = DB.WithContext(ctx).Model(&model.Like{}).
		Select("videos.*, users.username AS owner_username, users.full_name AS owner_full_name, users.avatar_url AS owner_avatar, likes.created_at AS liked_at").
		Joins("JOIN videos ON videos.video_id = likes.video_id").
		Joins("LEFT JOIN users ON users.user_id = videos.owner_id").
		Where("likes.liked_by = ?", actorID).
		Order("likes.created_at DESC").
		Limit(int(pageSize)).
		Offset(int((page - 1) * pageSize)).
		Scan(&items).Error
	if err != nil {
		return nil, 0, errors.WithMessage(err, "ListLikedVideos failed")
	}
	return items, count, nil
}

package db

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vidtube.com/cmd/model"
)

func CreateComment(ctx context.Context, comment *model.Comment) error {
	if err := DB.WithContext(ctx).Create(comment).Error; err != nil {
		return errors.WithMessage(err, "CreateComment failed")
	}
	return nil
}

func GetComment(ctx context.Context, commentID string) (*model.Comment, error) {
	var comment model.Comment
	if err := DB.WithContext(ctx).Where("comment_id = ?", commentID).First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func CommentExists(ctx context.Context, commentID string) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("comment_id = ?", commentID).Count(&count).Error; err != nil {
		return false, errors.WithMessage(err, "CommentExists failed")
	}
	return count > 0, nil
}

// ListVideoComments returns one page of a video's comments, newest first,
// plus the total count.
func ListVideoComments(ctx context.Context, videoID string, page, pageSize int64) ([]*model.Comment, int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("video_id = ?", videoID).Count(&count).Error; err != nil {
		return nil, 0, errors.WithMessage(err, "ListVideoComments count failed")
	}
	comments := make([]*model.Comment, 0, pageSize)
	err := DB.WithContext(ctx).
		Where("video_id = ?", videoID).
		Order("created_at DESC").
		Limit(int(pageSize)).
		Offset(int((page - 1) * pageSize)).
		Find(&comments).Error
	if err != nil {
		return nil, 0, errors.WithMessage(err, "ListVideoComments failed")
	}
	return comments, count, nil
}

// UpdateComment rewrites the content of a comment the actor owns; the
// ownership filter is part of the single conditional update.
func UpdateComment(ctx context.Context, commentID, ownerID, content string) (*model.Comment, error) {
	result := DB.WithContext(ctx).Model(&model.Comment{}).
		Where("comment_id = ? AND owner_id = ?", commentID, ownerID).
		Update("content", content)
	if result.Error != nil {
		return nil, errors.WithMessage(result.Error, "UpdateComment failed")
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return GetComment(ctx, commentID)
}

func DeleteComment(ctx context.Context, commentID, ownerID string) error {
	result := DB.WithContext(ctx).
		Where("comment_id = ? AND owner_id = ?", commentID, ownerID).
		Delete(&model.Comment{})
	if result.Error != nil {
		return errors.WithMessage(result.Error, "DeleteComment failed")
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

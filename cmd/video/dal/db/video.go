package db

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vidtube.com/cmd/model"
)

// ListFilter narrows and orders a video listing.
type ListFilter struct {
	Query         string
	OwnerID       string
	SortBy        string
	SortAsc       bool
	Page          int64
	PageSize      int64
	PublishedOnly bool
}

// ListItem is a video row joined with the owner's public profile subset.
type ListItem struct {
	model.Video
	OwnerUsername string `json:"owner_username"`
	OwnerFullName string `json:"owner_full_name"`
	OwnerAvatar   string `json:"owner_avatar"`
}

var sortColumns = map[string]string{
	"created_at": "videos.created_at",
	"views":      "videos.views",
	"duration":   "videos.duration",
	"title":      "videos.title",
}

func applyFilter(ctx context.Context, f *ListFilter) *gorm.DB {
	tx := DB.WithContext(ctx).Model(&model.Video{})
	if f.PublishedOnly {
		tx = tx.Where("videos.is_published = ?", true)
	}
	if f.Query != "" {
		pattern := "%" + strings.ToLower(f.Query) + "%"
		tx = tx.Where("LOWER(videos.title) LIKE ? OR LOWER(videos.description) LIKE ?", pattern, pattern)
	}
	if f.OwnerID != "" {
		tx = tx.Where("videos.owner_id = ?", f.OwnerID)
	}
	return tx
}

// ListVideos returns one page of videos with their owners denormalized in a
// single left join, plus the total match count.
func ListVideos(ctx context.Context, f *ListFilter) ([]*ListItem, int64, error) {
	var count int64
	if err := applyFilter(ctx, f).Count(&count).Error; err != nil {
		return nil, 0, errors.WithMessage(err, "ListVideos count failed")
	}

	column, ok := sortColumns[f.SortBy]
	if !ok {
		column = sortColumns["created_at"]
	}
	direction := "DESC"
	if f.SortAsc {
		direction = "ASC"
	}

	items := make([]*ListItem, 0, f.PageSize)
	err := applyFilter(ctx, f).
		Select("videos.*, users.username AS owner_username, users.full_name AS owner_full_name, users.avatar_url AS owner_avatar").
		Joins("LEFT JOIN users ON users.user_id = videos.owner_id").
		Order(column + " " + direction).
		Limit(int(f.PageSize)).
		Offset(int((f.Page - 1) * f.PageSize)).
		Scan(&items).Error
	if err != nil {
		return nil, 0, errors.WithMessage(err, "ListVideos failed")
	}
	return items, count, nil
}

func InsertVideo(ctx context.Context, video *model.Video) error {
	if err := DB.WithContext(ctx).Create(video).Error; err != nil {
		return errors.WithMessage(err, "InsertVideo failed")
	}
	return nil
}

func GetVideo(ctx context.Context, videoID string) (*model.Video, error) {
	var video model.Video
	if err := DB.WithContext(ctx).Where("video_id = ?", videoID).First(&video).Error; err != nil {
		return nil, err
	}
	return &video, nil
}

func GetVideosByIDs(ctx context.Context, videoIDs []string) ([]*model.Video, error) {
	videos := make([]*model.Video, 0, len(videoIDs))
	if err := DB.WithContext(ctx).Where("video_id IN ?", videoIDs).Find(&videos).Error; err != nil {
		return nil, errors.WithMessage(err, "GetVideosByIDs failed")
	}
	return videos, nil
}

func VideoExists(ctx context.Context, videoID string) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoID).Count(&count).Error; err != nil {
		return false, errors.WithMessage(err, "VideoExists failed")
	}
	return count > 0, nil
}

// IncrementViews bumps the view counter atomically in the store.
func IncrementViews(ctx context.Context, videoID string) error {
	return DB.WithContext(ctx).Model(&model.Video{}).
		Where("video_id = ?", videoID).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}

// UpdateVideoMeta patches fields of a video the actor owns. The ownership
// check rides inside the same conditional update; zero affected rows means
// absent or not owned, reported as gorm.ErrRecordNotFound either way.
func UpdateVideoMeta(ctx context.Context, videoID, ownerID string, updates map[string]interface{}) error {
	result := DB.WithContext(ctx).Model(&model.Video{}).
		Where("video_id = ? AND owner_id = ?", videoID, ownerID).
		Updates(updates)
	if result.Error != nil {
		return errors.WithMessage(result.Error, "UpdateVideoMeta failed")
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// TogglePublish flips is_published for a video the actor owns and returns the
// fresh row.
func TogglePublish(ctx context.Context, videoID, ownerID string) (*model.Video, error) {
	result := DB.WithContext(ctx).Model(&model.Video{}).
		Where("video_id = ? AND owner_id = ?", videoID, ownerID).
		UpdateColumn("is_published", gorm.Expr("NOT is_published"))
	if result.Error != nil {
		return nil, errors.WithMessage(result.Error, "TogglePublish failed")
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return GetVideo(ctx, videoID)
}

func DeleteVideo(ctx context.Context, videoID, ownerID string) error {
	result := DB.WithContext(ctx).
		Where("video_id = ? AND owner_id = ?", videoID, ownerID).
		Delete(&model.Video{})
	if result.Error != nil {
		return errors.WithMessage(result.Error, "DeleteVideo failed")
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func CountVideosByOwner(ctx context.Context, ownerID string) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("owner_id = ?", ownerID).Count(&count).Error; err != nil {
		return 0, errors.WithMessage(err, "CountVideosByOwner failed")
	}
	return count, nil
}

func SumViewsByOwner(ctx context.Context, ownerID string) (int64, error) {
	var total int64
	err := DB.WithContext(ctx).Model(&model.Video{}).
		Where("owner_id = ?", ownerID).
		Select("COALESCE(SUM(views), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, errors.WithMessage(err, "SumViewsByOwner failed")
	}
	return total, nil
}

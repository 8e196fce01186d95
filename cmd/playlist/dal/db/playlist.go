package db

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/utils"
)

func CreatePlaylist(ctx context.Context, playlist *model.Playlist) error {
	if err := DB.WithContext(ctx).Create(playlist).Error; err != nil {
		return errors.WithMessage(err, "CreatePlaylist failed")
	}
	return nil
}

func GetPlaylist(ctx context.Context, playlistID string) (*model.Playlist, error) {
	var playlist model.Playlist
	if err := DB.WithContext(ctx).Where("playlist_id = ?", playlistID).First(&playlist).Error; err != nil {
		return nil, err
	}
	return &playlist, nil
}

func ListPlaylistsByOwner(ctx context.Context, ownerID string) ([]*model.Playlist, error) {
	playlists := make([]*model.Playlist, 0)
	err := DB.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&playlists).Error
	if err != nil {
		return nil, errors.WithMessage(err, "ListPlaylistsByOwner failed")
	}
	return playlists, nil
}

// ListPlaylistVideos returns the playlist's videos in insertion order.
func ListPlaylistVideos(ctx context.Context, playlistID string) ([]*model.Video, error) {
	videos := make([]*model.Video, 0)
	err := DB.WithContext(ctx).Model(&model.PlaylistVideo{}).
		Select("videos.*").
		Joins("JOIN videos ON videos.video_id = playlist_videos.video_id").
		Where("playlist_videos.playlist_id = ?", playlistID).
		Order("playlist_videos.position ASC").
		Scan(&videos).Error
	if err != nil {
		return nil, errors.WithMessage(err, "ListPlaylistVideos failed")
	}
	return videos, nil
}

func UpdatePlaylist(ctx context.Context, playlistID, ownerID, name, description string) (*model.Playlist, error) {
	result := DB.WithContext(ctx).Model(&model.Playlist{}).
		Where("playlist_id = ? AND owner_id = ?", playlistID, ownerID).
		Updates(map[string]interface{}{"name": name, "description": description})
	if result.Error != nil {
		return nil, errors.WithMessage(result.Error, "UpdatePlaylist failed")
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return GetPlaylist(ctx, playlistID)
}

// DeletePlaylist removes an owned playlist and its entries.
func DeletePlaylist(ctx context.Context, playlistID, ownerID string) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("playlist_id = ? AND owner_id = ?", playlistID, ownerID).Delete(&model.Playlist{})
		if result.Error != nil {
			return errors.WithMessage(result.Error, "DeletePlaylist failed")
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Where("playlist_id = ?", playlistID).Delete(&model.PlaylistVideo{}).Error; err != nil {
			return errors.WithMessage(err, "DeletePlaylist entries failed")
		}
		return nil
	})
}

// AddPlaylistVideo appends a video to an owned playlist. The unique
// (playlist, video) index turns a duplicate append into gorm.ErrDuplicatedKey
// rather than a second entry.
func AddPlaylistVideo(ctx context.Context, playlistID, ownerID, videoID string) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owned int64
		if err := tx.Model(&model.Playlist{}).
			Where("playlist_id = ? AND owner_id = ?", playlistID, ownerID).
			Count(&owned).Error; err != nil {
			return errors.WithMessage(err, "AddPlaylistVideo ownership check failed")
		}
		if owned == 0 {
			return gorm.ErrRecordNotFound
		}

		var next int
		if err := tx.Model(&model.PlaylistVideo{}).
			Where("playlist_id = ?", playlistID).
			Select("COALESCE(MAX(position), 0) + 1").
			Scan(&next).Error; err != nil {
			return errors.WithMessage(err, "AddPlaylistVideo position failed")
		}

		entry := &model.PlaylistVideo{
			EntryID:    utils.NewObjectID(),
			PlaylistID: playlistID,
			VideoID:    videoID,
			Position:   next,
			CreatedAt:  time.Now(),
		}
		return tx.Create(entry).Error
	})
}

// RemovePlaylistVideo drops a video from an owned playlist. Zero affected
// rows means the video was not in the playlist.
func RemovePlaylistVideo(ctx context.Context, playlistID, ownerID, videoID string) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owned int64
		if err := tx.Model(&model.Playlist{}).
			Where("playlist_id = ? AND owner_id = ?", playlistID, ownerID).
			Count(&owned).Error; err != nil {
			return errors.WithMessage(err, "RemovePlaylistVideo ownership check failed")
		}
		if owned == 0 {
			return gorm.ErrRecordNotFound
		}

		result := tx.Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
			Delete(&model.PlaylistVideo{})
		if result.Error != nil {
			return errors.WithMessage(result.Error, "RemovePlaylistVideo failed")
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func CountPlaylistVideos(ctx context.Context, playlistID string) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.PlaylistVideo{}).Where("playlist_id = ?", playlistID).Count(&count).Error; err != nil {
		return 0, errors.WithMessage(err, "CountPlaylistVideos failed")
	}
	return count, nil
}

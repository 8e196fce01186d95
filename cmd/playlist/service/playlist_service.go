package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vidtube.com/cmd/model"
	"vidtube.com/cmd/playlist/dal/db"
	videodb "vidtube.com/cmd/video/dal/db"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
	"vidtube.com/pkg/validate"
)

type PlaylistService struct {
	ctx context.Context
}

func NewPlaylistService(ctx context.Context) *PlaylistService {
	return &PlaylistService{ctx: ctx}
}

type PlaylistRequest struct {
	Name        string `json:"name" validate:"required,alpha,min=5,max=50"`
	Description string `json:"description" validate:"required,max=2000"`
}

func (s *PlaylistService) CreatePlaylist(actorID string, req *PlaylistRequest) (*model.Playlist, error) {
	if errs := validate.Payload(req); errs != nil {
		return nil, errno.ParamErr.WithMessage("validation failed").WithErrors(errs)
	}
	playlist := &model.Playlist{
		PlaylistID:  utils.NewObjectID(),
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     actorID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := db.CreatePlaylist(s.ctx, playlist); err != nil {
		return nil, errno.MysqlErr
	}
	return playlist, nil
}

func (s *PlaylistService) GetUserPlaylists(userID string) ([]*model.Playlist, error) {
	if !utils.IsValidID(userID) {
		return nil, errno.ParamErr.WithMessage("user id is not valid")
	}
	playlists, err := db.ListPlaylistsByOwner(s.ctx, userID)
	if err != nil {
		return nil, errno.MysqlErr
	}
	return playlists, nil
}

// PlaylistDetail is a playlist with its ordered video sequence resolved.
type PlaylistDetail struct {
	*model.Playlist
	Videos []*model.Video `json:"videos"`
}

func (s *PlaylistService) GetPlaylistByID(playlistID string) (*PlaylistDetail, error) {
	if !utils.IsValidID(playlistID) {
		return nil, errno.ParamErr.WithMessage("playlist id is not valid")
	}
	playlist, err := db.GetPlaylist(s.ctx, playlistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessage("playlist not found")
		}
		return nil, errno.MysqlErr
	}
	videos, err := db.ListPlaylistVideos(s.ctx, playlistID)
	if err != nil {
		return nil, errno.MysqlErr
	}
	return &PlaylistDetail{Playlist: playlist, Videos: videos}, nil
}

func (s *PlaylistService) UpdatePlaylist(actorID, playlistID string, req *PlaylistRequest) (*model.Playlist, error) {
	if !utils.IsValidID(playlistID) {
		return nil, errno.ParamErr.WithMessage("playlist id is not valid")
	}
	if actorID == "" {
		return nil, errno.AuthorizationFailedErr
	}
	if errs := validate.Payload(req); errs != nil {
		return nil, errno.ParamErr.WithMessage("validation failed").WithErrors(errs)
	}
	playlist, err := db.UpdatePlaylist(s.ctx, playlistID, actorID, req.Name, req.Description)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessage("playlist not found")
		}
		return nil, errno.MysqlErr
	}
	return playlist, nil
}

func (s *PlaylistService) DeletePlaylist(actorID, playlistID string) error {
	if !utils.IsValidID(playlistID) {
		return errno.ParamErr.WithMessage("playlist id is not valid")
	}
	if actorID == "" {
		return errno.AuthorizationFailedErr
	}
	if err := db.DeletePlaylist(s.ctx, playlistID, actorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errno.NotFoundErr.WithMessage("playlist not found")
		}
		return errno.MysqlErr
	}
	return nil
}

// AddVideo appends a video to an owned playlist. A video already present
// comes back as Conflict, and the playlist keeps a single entry for it.
func (s *PlaylistService) AddVideo(actorID, playlistID, videoID string) error {
	if !utils.IsValidID(playlistID) {
		return errno.ParamErr.WithMessage("playlist id is not valid")
	}
	if !utils.IsValidID(videoID) {
		return errno.ParamErr.WithMessage("video id is not valid")
	}
	exists, err := videodb.VideoExists(s.ctx, videoID)
	if err != nil {
		return errno.MysqlErr
	}
	if !exists {
		return errno.NotFoundErr.WithMessage("video not found")
	}
	if err := db.AddPlaylistVideo(s.ctx, playlistID, actorID, videoID); err != nil {
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return errno.ConflictErr.WithMessage("video already in playlist")
		case errors.Is(err, gorm.ErrRecordNotFound):
			return errno.NotFoundErr.WithMessage("playlist not found")
		default:
			return errno.MysqlErr
		}
	}
	return nil
}

// RemoveVideo drops a video from an owned playlist; absent entries are
// NotFound.
func (s *PlaylistService) RemoveVideo(actorID, playlistID, videoID string) error {
	if !utils.IsValidID(playlistID) {
		return errno.ParamErr.WithMessage("playlist id is not valid")
	}
	if !utils.IsValidID(videoID) {
		return errno.ParamErr.WithMessage("video id is not valid")
	}
	if err := db.RemovePlaylistVideo(s.ctx, playlistID, actorID, videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errno.NotFoundErr.WithMessage("video not found in playlist")
		}
		return errno.MysqlErr
	}
	return nil
}

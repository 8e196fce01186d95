package service

import (
	"context"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vidtube.com/cmd/model"
	"vidtube.com/cmd/video/dal/db"
	"vidtube.com/pkg/cache"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/oss"
	"vidtube.com/pkg/utils"
	"vidtube.com/pkg/validate"
)

// MediaHost is the upload collaborator behind publish and the compensating
// deletes. oss.Client is the production implementation.
type MediaHost interface {
	UploadVideo(ctx context.Context, localPath, name string) (url string, duration float64, err error)
	UploadImage(ctx context.Context, localPath, name, contentType string) (url string, err error)
	Delete(ctx context.Context, rawURL string, kind oss.Kind) error
}

type VideoPublishService struct {
	ctx  context.Context
	host MediaHost
}

func NewVideoPublishService(ctx context.Context) *VideoPublishService {
	return &VideoPublishService{ctx: ctx, host: oss.Default()}
}

// NewVideoPublishServiceWithHost wires an explicit media host.
func NewVideoPublishServiceWithHost(ctx context.Context, host MediaHost) *VideoPublishService {
	return &VideoPublishService{ctx: ctx, host: host}
}

// PublishRequest carries the metadata and the staged upload files. The MIME
// types come from the multipart part headers and are checked before any byte
// reaches the media host.
type PublishRequest struct {
	Title         string `validate:"required,max=100"`
	Description   string `validate:"required,max=5000"`
	VideoPath     string
	VideoMIME     string
	ThumbnailPath string
	ThumbnailMIME string
}

// Publish uploads the video then the thumbnail, and records the row. Each
// later failure compensates the uploads that already succeeded, so a failed
// publish leaves nothing behind on the media host.
func (s *VideoPublishService) Publish(actorID string, req *PublishRequest) (*model.Video, error) {
	if errs := validate.Payload(req); errs != nil {
		return nil, errno.ParamErr.WithMessage("validation failed").WithErrors(errs)
	}
	if req.VideoPath == "" {
		return nil, errno.ParamErr.WithMessage("video file is required")
	}
	if req.ThumbnailPath == "" {
		return nil, errno.ParamErr.WithMessage("thumbnail file is required")
	}
	if !strings.HasPrefix(req.VideoMIME, "video/") {
		return nil, errno.ParamErr.WithMessage("video file must have a video mime type")
	}
	if !strings.HasPrefix(req.ThumbnailMIME, "image/") {
		return nil, errno.ParamErr.WithMessage("thumbnail file must have an image mime type")
	}

	videoID := utils.NewObjectID()
	videoURL, duration, err := s.host.UploadVideo(s.ctx, req.VideoPath, videoID)
	if err != nil {
		return nil, errno.OssErr.WithMessage("video upload failed")
	}
	thumbURL, err := s.host.UploadImage(s.ctx, req.ThumbnailPath, videoID, req.ThumbnailMIME)
	if err != nil {
		s.discard(videoURL, oss.KindVideo)
		return nil, errno.OssErr.WithMessage("thumbnail upload failed")
	}

	video := &model.Video{
		VideoID:      videoID,
		OwnerID:      actorID,
		Title:        req.Title,
		Description:  req.Description,
		VideoURL:     videoURL,
		ThumbnailURL: thumbURL,
		Duration:     duration,
		IsPublished:  true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := db.InsertVideo(s.ctx, video); err != nil {
		s.discard(videoURL, oss.KindVideo)
		s.discard(thumbURL, oss.KindImage)
		return nil, errno.MysqlErr
	}
	return video, nil
}

// UpdateRequest patches video metadata; the thumbnail swap is optional.
type UpdateRequest struct {
	Title         string `validate:"required,max=100"`
	Description   string `validate:"required,max=5000"`
	ThumbnailPath string
	ThumbnailMIME string
}

// UpdateVideo rewrites title and description, replacing the thumbnail when a
// new one is staged. The old thumbnail is deleted best-effort after the row
// is updated.
func (s *VideoPublishService) UpdateVideo(actorID, videoID string, req *UpdateRequest) (*model.Video, error) {
	if !utils.IsValidID(videoID) {
		return nil, errno.ParamErr.WithMessage("video id is not valid")
	}
	if errs := validate.Payload(req); errs != nil {
		return nil, errno.ParamErr.WithMessage("validation failed").WithErrors(errs)
	}

	updates := map[string]interface{}{
		"title":       req.Title,
		"description": req.Description,
		"updated_at":  time.Now(),
	}
	var oldThumbURL string
	if req.ThumbnailPath != "" {
		if !strings.HasPrefix(req.ThumbnailMIME, "image/") {
			return nil, errno.ParamErr.WithMessage("thumbnail file must have an image mime type")
		}
		current, err := db.GetVideo(s.ctx, videoID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errno.NotFoundErr.WithMessage("video not found")
			}
			return nil, errno.MysqlErr
		}
		oldThumbURL = current.ThumbnailURL
		thumbURL, err := s.host.UploadImage(s.ctx, req.ThumbnailPath, videoID, req.ThumbnailMIME)
		if err != nil {
			return nil, errno.OssErr.WithMessage("thumbnail upload failed")
		}
		updates["thumbnail_url"] = thumbURL
	}

	if err := db.UpdateVideoMeta(s.ctx, videoID, actorID, updates); err != nil {
		if newThumb, ok := updates["thumbnail_url"].(string); ok {
			s.discard(newThumb, oss.KindImage)
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessage("video not found")
		}
		return nil, errno.MysqlErr
	}
	if oldThumbURL != "" {
		if _, ok := updates["thumbnail_url"]; ok {
			s.discard(oldThumbURL, oss.KindImage)
		}
	}
	cache.DelVideo(s.ctx, videoID)
	updated, err := db.GetVideo(s.ctx, videoID)
	if err != nil {
		return nil, errno.MysqlErr
	}
	return updated, nil
}

// DeleteVideo removes the owned row first, then sheds the remote objects
// best-effort. A failed object delete is logged, never surfaced.
func (s *VideoPublishService) DeleteVideo(actorID, videoID string) error {
	if !utils.IsValidID(videoID) {
		return errno.ParamErr.WithMessage("video id is not valid")
	}
	video, err := db.GetVideo(s.ctx, videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errno.NotFoundErr.WithMessage("video not found")
		}
		return errno.MysqlErr
	}
	if err := db.DeleteVideo(s.ctx, videoID, actorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errno.NotFoundErr.WithMessage("video not found")
		}
		return errno.MysqlErr
	}
	cache.DelVideo(s.ctx, videoID)
	s.discard(video.VideoURL, oss.KindVideo)
	s.discard(video.ThumbnailURL, oss.KindImage)
	return nil
}

// TogglePublish flips the publish flag on an owned video.
func (s *VideoPublishService) TogglePublish(actorID, videoID string) (*model.Video, error) {
	if !utils.IsValidID(videoID) {
		return nil, errno.ParamErr.WithMessage("video id is not valid")
	}
	video, err := db.TogglePublish(s.ctx, videoID, actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessage("video not found")
		}
		return nil, errno.MysqlErr
	}
	cache.DelVideo(s.ctx, videoID)
	return video, nil
}

func (s *VideoPublishService) discard(rawURL string, kind oss.Kind) {
	if rawURL == "" {
		return
	}
	if err := s.host.Delete(s.ctx, rawURL, kind); err != nil {
		hlog.CtxWarnf(s.ctx, "failed to delete %s object %s: %v", kind, rawURL, err)
	}
}

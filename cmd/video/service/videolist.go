package service

import (
	"context"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vidtube.com/cmd/model"
	userdb "vidtube.com/cmd/user/dal/db"
	"vidtube.com/cmd/video/dal/db"
	"vidtube.com/pkg/cache"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
)

type VideoListService struct {
	ctx context.Context
}

func NewVideoListService(ctx context.Context) *VideoListService {
	return &VideoListService{ctx: ctx}
}

// ListRequest carries the query knobs of the public feed.
type ListRequest struct {
	Query    string `query:"query"`
	OwnerID  string `query:"user_id"`
	SortBy   string `query:"sort_by"`
	SortType string `query:"sort_type"`
	Page     int64  `query:"page"`
	PageSize int64  `query:"limit"`
}

// VideoPage is one page of the feed.
type VideoPage struct {
	Videos      []*db.ListItem `json:"videos"`
	TotalCount  int64          `json:"total_count"`
	TotalPages  int64          `json:"total_pages"`
	CurrentPage int64          `json:"current_page"`
}

// ListVideos serves the public feed: published videos only, filtered, sorted
// and paginated. An out-of-range page comes back as an empty page, not an
// error.
func (s *VideoListService) ListVideos(req *ListRequest) (*VideoPage, error) {
	if req.OwnerID != "" && !utils.IsValidID(req.OwnerID) {
		return nil, errno.ParamErr.WithMessage("user id is not valid")
	}
	page, pageSize := utils.NormalizePage(req.Page, req.PageSize)
	items, count, err := db.ListVideos(s.ctx, &db.ListFilter{
		Query:         req.Query,
		OwnerID:       req.OwnerID,
		SortBy:        req.SortBy,
		SortAsc:       req.SortType == "asc",
		Page:          page,
		PageSize:      pageSize,
		PublishedOnly: true,
	})
	if err != nil {
		return nil, errno.MysqlErr
	}
	return &VideoPage{
		Videos:      items,
		TotalCount:  count,
		TotalPages:  utils.TotalPages(count, pageSize),
		CurrentPage: page,
	}, nil
}

// ListOwnVideos serves the owner's dashboard listing, unpublished rows
// included.
func (s *VideoListService) ListOwnVideos(ownerID string, page, pageSize int64) (*VideoPage, error) {
	page, pageSize = utils.NormalizePage(page, pageSize)
	items, count, err := db.ListVideos(s.ctx, &db.ListFilter{
		OwnerID:  ownerID,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, errno.MysqlErr
	}
	return &VideoPage{
		Videos:      items,
		TotalCount:  count,
		TotalPages:  utils.TotalPages(count, pageSize),
		CurrentPage: page,
	}, nil
}

// VideoDetail is a single video with its owner's public profile.
type VideoDetail struct {
	*model.Video
	Owner *model.Profile `json:"owner,omitempty"`
}

// VideoVisit fetches one video and records the visit. The response carries
// the pre-visit view count; the bump lands in the store before the call
// returns, and a failed bump never fails the visit.
func (s *VideoListService) VideoVisit(videoID string) (*VideoDetail, error) {
	if !utils.IsValidID(videoID) {
		return nil, errno.ParamErr.WithMessage("video id is not valid")
	}
	video, err := s.getVideo(videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessage("video not found")
		}
		return nil, errno.MysqlErr
	}
	if err := db.IncrementViews(s.ctx, videoID); err != nil {
		hlog.CtxWarnf(s.ctx, "failed to count visit for video %s: %v", videoID, err)
	} else {
		// Keep the cached copy in step with the store so the next visit
		// sees this one counted.
		bumped := *video
		bumped.Views++
		cache.SetVideo(s.ctx, &bumped)
	}

	detail := &VideoDetail{Video: video}
	if owner, err := userdb.GetUserByID(s.ctx, video.OwnerID); err == nil {
		detail.Owner = owner.Profile()
	}
	return detail, nil
}

func (s *VideoListService) getVideo(videoID string) (*model.Video, error) {
	if cached, ok := cache.GetVideo(s.ctx, videoID); ok {
		return cached, nil
	}
	return db.GetVideo(s.ctx, videoID)
}

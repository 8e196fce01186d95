package service

import (
	"context"

	"vidtube.com/cmd/interaction/dal/db"
	"vidtube.com/cmd/model"
	tweetdb "vidtube.com/cmd/tweet/dal/db"
	videodb "vidtube.com/cmd/video/dal/db"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
)

// LikeActionService implements the idempotent like toggle over the three
// target kinds. Target existence is checked, and waited for, before any
// mutation.
type LikeActionService struct {
	ctx context.Context
}

func NewLikeActionService(ctx context.Context) *LikeActionService {
	return &LikeActionService{ctx: ctx}
}

// ToggleResult reports the post-toggle state of one (actor, target) pair.
type ToggleResult struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"like_count"`
}

func (s *LikeActionService) ToggleVideoLike(actorID, videoID string) (*ToggleResult, error) {
	if !utils.IsValidID(videoID) {
		return nil, errno.ParamErr.WithMessage("video id is not valid")
	}
	exists, err := videodb.VideoExists(s.ctx, videoID)
	if err != nil {
		return nil, errno.MysqlErr
	}
	if !exists {
		return nil, errno.NotFoundErr.WithMessage("video not found")
	}
	return s.toggle(&model.Like{VideoID: &videoID, LikedBy: actorID})
}

func (s *LikeActionService) ToggleCommentLike(actorID, commentID string) (*ToggleResult, error) {
	if !utils.IsValidID(commentID) {
		return nil, errno.ParamErr.WithMessage("comment id is not valid")
	}
	exists, err := db.CommentExists(s.ctx, commentID)
	if err != nil {
		return nil, errno.MysqlErr
	}
	if !exists {
		return nil, errno.NotFoundErr.WithMessage("comment not found")
	}
	return s.toggle(&model.Like{CommentID: &commentID, LikedBy: actorID})
}

func (s *LikeActionService) ToggleTweetLike(actorID, tweetID string) (*ToggleResult, error) {
	if !utils.IsValidID(tweetID) {
		return nil, errno.ParamErr.WithMessage("tweet id is not valid")
	}
	exists, err := tweetdb.TweetExists(s.ctx, tweetID)
	if err != nil {
		return nil, errno.MysqlErr
	}
	if !exists {
		return nil, errno.NotFoundErr.WithMessage("tweet not found")
	}
	return s.toggle(&model.Like{TweetID: &tweetID, LikedBy: actorID})
}

func (s *LikeActionService) toggle(like *model.Like) (*ToggleResult, error) {
	target := *like
	liked, err := db.ToggleLike(s.ctx, like)
	if err != nil {
		return nil, errno.MysqlErr
	}
	count, err := db.CountLikes(s.ctx, &target)
	if err != nil {
		return nil, errno.MysqlErr
	}
	return &ToggleResult{Liked: liked, LikeCount: count}, nil
}

// LikedVideoPage is one page of the actor's liked videos.
type LikedVideoPage struct {
	Videos      []*db.LikedVideoItem `json:"videos"`
	TotalCount  int64                `json:"total_count"`
	TotalPages  int64                `json:"total_pages"`
	CurrentPage int64                `json:"current_page"`
}

func (s *LikeActionService) GetLikedVideos(actorID string, page, pageSize int64) (*LikedVideoPage, error) {
	page, pageSize = utils.NormalizePage(page, pageSize)
	items, count, err := db.ListLikedVideos(s.ctx, actorID, page, pageSize)
	if err != nil {
		return nil, errno.MysqlErr
	}
	return &LikedVideoPage{
		Videos:      items,
		TotalCount:  count,
		TotalPages:  utils.TotalPages(count, pageSize),
		CurrentPage: page,
	}, nil
}

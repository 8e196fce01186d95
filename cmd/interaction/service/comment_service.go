package service

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vidtube.com/cmd/interaction/dal/db"
	"vidtube.com/cmd/model"
	videodb "vidtube.com/cmd/video/dal/db"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
)

type CommentService struct {
	ctx context.Context
}

func NewCommentService(ctx context.Context) *CommentService {
	return &CommentService{ctx: ctx}
}

// CommentPage is one page of a video's comments.
type CommentPage struct {
	Comments    []*model.Comment `json:"comments"`
	TotalCount  int64            `json:"total_count"`
	TotalPages  int64            `json:"total_pages"`
	CurrentPage int64            `json:"current_page"`
}

func (s *CommentService) ListVideoComments(videoID string, page, pageSize int64) (*CommentPage, error) {
	if !utils.IsValidID(videoID) {
		return nil, errno.ParamErr.WithMessage("video id is not valid")
	}
	page, pageSize = utils.NormalizePage(page, pageSize)
	comments, count, err := db.ListVideoComments(s.ctx, videoID, page, pageSize)
	if err != nil {
		return nil, errno.MysqlErr
	}
	return &CommentPage{
		Comments:    comments,
		TotalCount:  count,
		TotalPages:  utils.TotalPages(count, pageSize),
		CurrentPage: page,
	}, nil
}

func (s *CommentService) AddComment(actorID, videoID, content string) (*model.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errno.ParamErr.WithMessage("content must not be empty")
	}
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
	comment := &model.Comment{
		CommentID: utils.NewObjectID(),
		VideoID:   videoID,
		OwnerID:   actorID,
		Content:   content,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := db.CreateComment(s.ctx, comment); err != nil {
		return nil, errno.MysqlErr
	}
	return comment, nil
}

// UpdateComment rewrites an owned comment. Absent and not-owned both come
// back as NotFound so the response leaks nothing about other users' rows.
func (s *CommentService) UpdateComment(actorID, commentID, content string) (*model.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errno.ParamErr.WithMessage("content must not be empty")
	}
	if !utils.IsValidID(commentID) {
		return nil, errno.ParamErr.WithMessage("comment id is not valid")
	}
	if actorID == "" {
		return nil, errno.AuthorizationFailedErr
	}
	comment, err := db.UpdateComment(s.ctx, commentID, actorID, content)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessage("comment not found")
		}
		return nil, errno.MysqlErr
	}
	return comment, nil
}

func (s *CommentService) DeleteComment(actorID, commentID string) error {
	if !utils.IsValidID(commentID) {
		return errno.ParamErr.WithMessage("comment id is not valid")
	}
	if actorID == "" {
		return errno.AuthorizationFailedErr
	}
	if err := db.DeleteComment(s.ctx, commentID, actorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errno.NotFoundErr.WithMessage("comment not found")
		}
		return errno.MysqlErr
	}
	return nil
}

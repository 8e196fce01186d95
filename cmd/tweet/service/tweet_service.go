package service

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vidtube.com/cmd/model"
	"vidtube.com/cmd/tweet/dal/db"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
)

type TweetService struct {
	ctx context.Context
}

func NewTweetService(ctx context.Context) *TweetService {
	return &TweetService{ctx: ctx}
}

func (s *TweetService) CreateTweet(actorID, content string) (*model.Tweet, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errno.ParamErr.WithMessage("content must not be empty")
	}
	tweet := &model.Tweet{
		TweetID:   utils.NewObjectID(),
		OwnerID:   actorID,
		Content:   content,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := db.CreateTweet(s.ctx, tweet); err != nil {
		return nil, errno.MysqlErr
	}
	return tweet, nil
}

// TweetPage is one page of a user's tweets.
type TweetPage struct {
	Tweets      []*model.Tweet `json:"tweets"`
	TotalCount  int64          `json:"total_count"`
	TotalPages  int64          `json:"total_pages"`
	CurrentPage int64          `json:"current_page"`
}

func (s *TweetService) GetUserTweets(userID string, page, pageSize int64) (*TweetPage, error) {
	if !utils.IsValidID(userID) {
		return nil, errno.ParamErr.WithMessage("user id is not valid")
	}
	page, pageSize = utils.NormalizePage(page, pageSize)
	tweets, count, err := db.ListTweetsByOwner(s.ctx, userID, page, pageSize)
	if err != nil {
		return nil, errno.MysqlErr
	}
	return &TweetPage{
		Tweets:      tweets,
		TotalCount:  count,
		TotalPages:  utils.TotalPages(count, pageSize),
		CurrentPage: page,
	}, nil
}

func (s *TweetService) UpdateTweet(actorID, tweetID, content string) (*model.Tweet, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errno.ParamErr.WithMessage("content must not be empty")
	}
	if !utils.IsValidID(tweetID) {
		return nil, errno.ParamErr.WithMessage("tweet id is not valid")
	}
	if actorID == "" {
		return nil, errno.AuthorizationFailedErr
	}
	tweet, err := db.UpdateTweet(s.ctx, tweetID, actorID, content)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessage("tweet not found")
		}
		return nil, errno.MysqlErr
	}
	return tweet, nil
}

func (s *TweetService) DeleteTweet(actorID, tweetID string) error {
	if !utils.IsValidID(tweetID) {
		return errno.ParamErr.WithMessage("tweet id is not valid")
	}
	if actorID == "" {
		return errno.AuthorizationFailedErr
	}
	if err := db.DeleteTweet(s.ctx, tweetID, actorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errno.NotFoundErr.WithMessage("tweet not found")
		}
		return errno.MysqlErr
	}
	return nil
}

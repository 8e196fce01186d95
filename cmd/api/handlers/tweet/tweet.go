package tweet

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"vidtube.com/cmd/api/handlers"
	"vidtube.com/cmd/tweet/service"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/jwt"
)

type tweetBody struct {
	Content string `json:"content"`
}

// Create posts a tweet for the actor.
func Create(ctx context.Context, c *app.RequestContext) {
	actorID, err := jwt.ActorID(ctx, c)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	var body tweetBody
	if err := c.BindJSON(&body); err != nil {
		handlers.SendResponse(c, errno.ParamErr.WithMessage("invalid request body"), nil)
		return
	}
	tweet, err := service.NewTweetService(ctx).CreateTweet(actorID, body.Content)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, nil, tweet)
}

// ListByUser returns one page of a user's tweets.
func ListByUser(ctx context.Context, c *app.RequestContext) {
	pageNum, pageSize := handlers.PageArgs(c)
	page, err := service.NewTweetService(ctx).GetUserTweets(c.Param("user_id"), pageNum, pageSize)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, nil, page)
}

// Update rewrites an owned tweet.
func Update(ctx context.Context, c *app.RequestContext) {
	actorID, err := jwt.ActorID(ctx, c)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	var body tweetBody
	if err := c.BindJSON(&body); err != nil {
		handlers.SendResponse(c, errno.ParamErr.WithMessage("invalid request body"), nil)
		return
	}
	tweet, err := service.NewTweetService(ctx).UpdateTweet(actorID, c.Param("tweet_id"), body.Content)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, nil, tweet)
}

// Delete removes an owned tweet.
func Delete(ctx context.Context, c *app.RequestContext) {
	actorID, err := jwt.ActorID(ctx, c)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	if err := service.NewTweetService(ctx).DeleteTweet(actorID, c.Param("tweet_id")); err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, nil, nil)
}

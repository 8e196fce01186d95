package interaction

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"vidtube.com/cmd/api/handlers"
	"vidtube.com/cmd/interaction/service"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/jwt"
)

type commentBody struct {
	Content string `json:"content"`
}

// ListComments returns one page of a video's comments, newest first.
func ListComments(ctx context.Context, c *app.RequestContext) {
	pageNum, pageSize := handlers.PageArgs(c)
	page, err := service.NewCommentService(ctx).ListVideoComments(c.Param("video_id"), pageNum, pageSize)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, nil, page)
}

// AddComment posts a comment on a video.
func AddComment(ctx context.Context, c *app.RequestContext) {
	actorID, err := jwt.ActorID(ctx, c)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	var body commentBody
	if err := c.BindJSON(&body); err != nil {
		handlers.SendResponse(c, errno.ParamErr.WithMessage("invalid request body"), nil)
		return
	}
	comment, err := service.NewCommentService(ctx).AddComment(actorID, c.Param("video_id"), body.Content)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, nil, comment)
}

// UpdateComment rewrites an owned comment.
func UpdateComment(ctx context.Context, c *app.RequestContext) {
	actorID, err := jwt.ActorID(ctx, c)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	var body commentBody
	if err := c.BindJSON(&body); err != nil {
		handlers.SendResponse(c, errno.ParamErr.WithMessage("invalid request body"), nil)
		return
	}
	comment, err := service.NewCommentService(ctx).UpdateComment(actorID, c.Param("comment_id"), body.Content)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, nil, comment)
}

// DeleteComment removes an owned comment.
func DeleteComment(ctx context.Context, c *app.RequestContext) {
	actorID, err := jwt.ActorID(ctx, c)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	if err := service.NewCommentService(ctx).DeleteComment(actorID, c.Param("comment_id")); err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, nil, nil)
}

// ToggleVideoLike flips the actor's like on a video.
func ToggleVideoLike(ctx context.Context, c *app.RequestContext) {
	actorID, err := jwt.ActorID(ctx, c)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	result, err := service.NewLikeActionService(ctx).ToggleVideoLike(actorID, c.Param("video_id"))
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, nil, result)
}

// ToggleCommentLike flips the actor's like on a comment.
func ToggleCommentLike(ctx context.Context, c *app.RequestContext) {
	actorID, err := jwt.ActorID(ctx, c)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	result, err := service.NewLikeActionService(ctx).ToggleCommentLike(actorID, c.Param("comment_id"))
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, nil, result)
}

// ToggleTweetLike flips the actor's like on a tweet.
func ToggleTweetLike(ctx context.Context, c *app.RequestContext) {
	actorID, err := jwt.ActorID(ctx, c)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	result, err := service.NewLikeActionService(ctx).ToggleTweetLike(actorID, c.Param("tweet_id"))
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, nil, result)
}

// LikedVideos returns one page of the actor's liked videos.
func LikedVideos(ctx context.Context, c *app.RequestContext) {
	actorID, err := jwt.ActorID(ctx, c)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	pageNum, pageSize := handlers.PageArgs(c)
	page, err := service.NewLikeActionService(ctx).GetLikedVideos(actorID, pageNum, pageSize)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, nil, page)
}

package playlist

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"vidtube.com/cmd/api/handlers"
	"vidtube.com/cmd/playlist/service"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/jwt"
)

// Create makes a playlist owned by the actor.
func Create(ctx context.Context, c *app.RequestContext) {
	actorID, err := jwt.ActorID(ctx, c)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	var req service.PlaylistRequest
	if err := c.BindJSON(&req); err != nil {
		handlers.SendResponse(c, errno.ParamErr.WithMessage("invalid request body"), nil)
		return
	}
	playlist, err := service.NewPlaylistService(ctx).CreatePlaylist(actorID, &req)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, nil, playlist)
}

// ListByUser returns a user's playlists.
func ListByUser(ctx context.Context, c *app.RequestContext) {
	playlists, err := service.NewPlaylistService(ctx).GetUserPlaylists(c.Param("user_id"))
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, nil, playlists)
}

// Get returns one playlist with its ordered videos.
func Get(ctx context.Context, c *app.RequestContext) {
	detail, err := service.NewPlaylistService(ctx).GetPlaylistByID(c.Param("playlist_id"))
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, nil, detail)
}

// Update renames an owned playlist.
func Update(ctx context.Context, c *app.RequestContext) {
	actorID, err := jwt.ActorID(ctx, c)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	var req service.PlaylistRequest
	if err := c.BindJSON(&req); err != nil {
		handlers.SendResponse(c, errno.ParamErr.WithMessage("invalid request body"), nil)
		return
	}
	playlist, err := service.NewPlaylistService(ctx).UpdatePlaylist(actorID, c.Param("playlist_id"), &req)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, nil, playlist)
}

// Delete removes an owned playlist and its entries.
func Delete(ctx context.Context, c *app.RequestContext) {
	actorID, err := jwt.ActorID(ctx, c)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	if err := service.NewPlaylistService(ctx).DeletePlaylist(actorID, c.Param("playlist_id")); err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, nil, nil)
}

// AddVideo appends a video to an owned playlist.
func AddVideo(ctx context.Context, c *app.RequestContext) {
	actorID, err := jwt.ActorID(ctx, c)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	svc := service.NewPlaylistService(ctx)
	if err := svc.AddVideo(actorID, c.Param("playlist_id"), c.Param("video_id")); err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, nil, nil)
}

// RemoveVideo drops a video from an owned playlist.
func RemoveVideo(ctx context.Context, c *app.RequestContext) {
	actorID, err := jwt.ActorID(ctx, c)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	svc := service.NewPlaylistService(ctx)
	if err := svc.RemoveVideo(actorID, c.Param("playlist_id"), c.Param("video_id")); err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, nil, nil)
}

package dashboard

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"vidtube.com/cmd/api/handlers"
	dashboardservice "vidtube.com/cmd/dashboard/service"
	videoservice "vidtube.com/cmd/video/service"
	"vidtube.com/pkg/jwt"
)

// Stats returns the actor's channel aggregates.
func Stats(ctx context.Context, c *app.RequestContext) {
	actorID, err := jwt.ActorID(ctx, c)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, nil, dashboardservice.NewStatsService(ctx).GetChannelStats(actorID))
}

// Videos lists the actor's own videos, unpublished included.
func Videos(ctx context.Context, c *app.RequestContext) {
	actorID, err := jwt.ActorID(ctx, c)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	pageNum, pageSize := handlers.PageArgs(c)
	page, err := videoservice.NewVideoListService(ctx).ListOwnVideos(actorID, pageNum, pageSize)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, nil, page)
}

package relation

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"vidtube.com/cmd/api/handlers"
	"vidtube.com/cmd/relation/service"
	"vidtube.com/pkg/jwt"
)

// ToggleSubscription subscribes or unsubscribes the actor to a channel.
func ToggleSubscription(ctx context.Context, c *app.RequestContext) {
	actorID, err := jwt.ActorID(ctx, c)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	result, err := service.NewRelationService(ctx).ToggleSubscription(actorID, c.Param("channel_id"))
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, nil, result)
}

// ChannelSubscribers lists who subscribes to a channel.
func ChannelSubscribers(ctx context.Context, c *app.RequestContext) {
	list, err := service.NewRelationService(ctx).GetChannelSubscribers(c.Param("channel_id"))
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, nil, list)
}

// SubscribedChannels lists the channels a user follows.
func SubscribedChannels(ctx context.Context, c *app.RequestContext) {
	list, err := service.NewRelationService(ctx).GetSubscribedChannels(c.Param("subscriber_id"))
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, nil, list)
}

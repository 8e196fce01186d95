package service

import (
	"context"

	"vidtube.com/cmd/model"
	"vidtube.com/cmd/relation/dal/db"
	userdb "vidtube.com/cmd/user/dal/db"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
)

type RelationService struct {
	ctx context.Context
}

func NewRelationService(ctx context.Context) *RelationService {
	return &RelationService{ctx: ctx}
}

// SubscriptionResult reports the post-toggle state for one
// (subscriber, channel) pair.
type SubscriptionResult struct {
	Subscribed   bool                `json:"subscribed"`
	Subscription *model.Subscription `json:"subscription,omitempty"`
}

// ToggleSubscription subscribes or unsubscribes the actor to a channel.
// Subscribing to oneself is rejected before touching the store.
func (s *RelationService) ToggleSubscription(actorID, channelID string) (*SubscriptionResult, error) {
	if !utils.IsValidID(channelID) {
		return nil, errno.ParamErr.WithMessage("channel id is not valid")
	}
	if channelID == actorID {
		return nil, errno.SelfSubscribeErr
	}
	exists, err := userdb.UserExists(s.ctx, channelID)
	if err != nil {
		return nil, errno.MysqlErr
	}
	if !exists {
		return nil, errno.NotFoundErr.WithMessage("channel not found")
	}
	subscribed, sub, err := db.ToggleSubscription(s.ctx, actorID, channelID)
	if err != nil {
		return nil, errno.MysqlErr
	}
	return &SubscriptionResult{Subscribed: subscribed, Subscription: sub}, nil
}

// SubscriberList carries a channel's subscribers with their public profiles.
type SubscriberList struct {
	ChannelID   string           `json:"channel_id"`
	TotalSubs   int64            `json:"total_subs"`
	Subscribers []*model.Profile `json:"subscribers"`
}

func (s *RelationService) GetChannelSubscribers(channelID string) (*SubscriberList, error) {
	if !utils.IsValidID(channelID) {
		return nil, errno.ParamErr.WithMessage("channel id is not valid")
	}
	subscribers, err := db.ListSubscribers(s.ctx, channelID)
	if err != nil {
		return nil, errno.MysqlErr
	}
	return &SubscriberList{
		ChannelID:   channelID,
		TotalSubs:   int64(len(subscribers)),
		Subscribers: subscribers,
	}, nil
}

// ChannelList carries the channels a subscriber follows.
type ChannelList struct {
	SubscriberID string           `json:"subscriber_id"`
	TotalSubs    int64            `json:"total_subs"`
	Channels     []*model.Profile `json:"channels"`
}

func (s *RelationService) GetSubscribedChannels(subscriberID string) (*ChannelList, error) {
	if !utils.IsValidID(subscriberID) {
		return nil, errno.ParamErr.WithMessage("subscriber id is not valid")
	}
	channels, err := db.ListSubscribedChannels(s.ctx, subscriberID)
	if err != nil {
		return nil, errno.MysqlErr
	}
	return &ChannelList{
		SubscriberID: subscriberID,
		TotalSubs:    int64(len(channels)),
		Channels:     channels,
	}, nil
}

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/testutil"
	"vidtube.com/pkg/utils"
)

func TestToggleSubscription(t *testing.T) {
	conn := testutil.SetupDB(t)
	channel := testutil.SeedUser(t, conn, "channel")
	fan := testutil.SeedUser(t, conn, "fan")

	svc := NewRelationService(context.Background())

	result, err := svc.ToggleSubscription(fan, channel)
	require.NoError(t, err)
	assert.True(t, result.Subscribed)
	require.NotNil(t, result.Subscription)
	assert.Equal(t, channel, result.Subscription.ChannelID)

	result, err = svc.ToggleSubscription(fan, channel)
	require.NoError(t, err)
	assert.False(t, result.Subscribed)
	assert.Nil(t, result.Subscription)
}

func TestToggleSubscriptionRejectsSelf(t *testing.T) {
	conn := testutil.SetupDB(t)
	channel := testutil.SeedUser(t, conn, "channel")

	svc := NewRelationService(context.Background())
	_, err := svc.ToggleSubscription(channel, channel)
	require.Error(t, err)
	e := errno.ConvertErr(err)
	assert.Equal(t, errno.SelfSubscribeCode, e.ErrCode)
}

func TestToggleSubscriptionMissingChannel(t *testing.T) {
	conn := testutil.SetupDB(t)
	fan := testutil.SeedUser(t, conn, "fan")

	svc := NewRelationService(context.Background())
	_, err := svc.ToggleSubscription(fan, utils.NewObjectID())
	assert.Equal(t, errno.NotFoundErrCode, errno.ConvertErr(err).ErrCode)

	_, err = svc.ToggleSubscription(fan, "bogus")
	assert.Equal(t, errno.ParamErrCode, errno.ConvertErr(err).ErrCode)
}

func TestSubscriberAndChannelLists(t *testing.T) {
	conn := testutil.SetupDB(t)
	channel := testutil.SeedUser(t, conn, "channel")
	fanA := testutil.SeedUser(t, conn, "fana")
	fanB := testutil.SeedUser(t, conn, "fanb")

	svc := NewRelationService(context.Background())
	_, err := svc.ToggleSubscription(fanA, channel)
	require.NoError(t, err)
	_, err = svc.ToggleSubscription(fanB, channel)
	require.NoError(t, err)

	subs, err := svc.GetChannelSubscribers(channel)
	require.NoError(t, err)
	assert.Equal(t, int64(2), subs.TotalSubs)
	assert.Len(t, subs.Subscribers, 2)

	channels, err := svc.GetSubscribedChannels(fanA)
	require.NoError(t, err)
	assert.Equal(t, int64(1), channels.TotalSubs)
	require.Len(t, channels.Channels, 1)
	assert.Equal(t, "channel", channels.Channels[0].Username)
}

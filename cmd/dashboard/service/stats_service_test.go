package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	interactionservice "vidtube.com/cmd/interaction/service"
	"vidtube.com/cmd/model"
	relationservice "vidtube.com/cmd/relation/service"
	"vidtube.com/pkg/testutil"
)

func TestGetChannelStats(t *testing.T) {
	conn := testutil.SetupDB(t)
	channel := testutil.SeedUser(t, conn, "channel")
	fan := testutil.SeedUser(t, conn, "fan")
	other := testutil.SeedUser(t, conn, "other")

	first := testutil.SeedVideo(t, conn, channel, "first")
	second := testutil.SeedVideo(t, conn, channel, "second")
	testutil.SeedVideo(t, conn, other, "unrelated")

	require.NoError(t, conn.Model(&model.Video{}).
		Where("video_id = ?", first).
		Update("views", 30).Error)
	require.NoError(t, conn.Model(&model.Video{}).
		Where("video_id = ?", second).
		Update("views", 12).Error)

	ctx := context.Background()
	likes := interactionservice.NewLikeActionService(ctx)
	unrelated := testutil.SeedVideo(t, conn, other, "second unrelated")
	_, err := likes.ToggleVideoLike(channel, first)
	require.NoError(t, err)
	_, err = likes.ToggleVideoLike(channel, unrelated)
	require.NoError(t, err)
	_, err = likes.ToggleVideoLike(fan, second)
	require.NoError(t, err)

	relations := relationservice.NewRelationService(ctx)
	_, err = relations.ToggleSubscription(fan, channel)
	require.NoError(t, err)
	_, err = relations.ToggleSubscription(other, channel)
	require.NoError(t, err)

	// Likes count what the channel liked, not likes received.
	stats := NewStatsService(ctx).GetChannelStats(channel)
	assert.Equal(t, int64(42), stats.TotalViews)
	assert.Equal(t, int64(2), stats.TotalVideos)
	assert.Equal(t, int64(2), stats.TotalSubscribers)
	assert.Equal(t, int64(2), stats.TotalLikes)
}

func TestGetChannelStatsEmptyChannel(t *testing.T) {
	conn := testutil.SetupDB(t)
	channel := testutil.SeedUser(t, conn, "channel")

	stats := NewStatsService(context.Background()).GetChannelStats(channel)
	assert.Zero(t, stats.TotalViews)
	assert.Zero(t, stats.TotalVideos)
	assert.Zero(t, stats.TotalSubscribers)
	assert.Zero(t, stats.TotalLikes)
}

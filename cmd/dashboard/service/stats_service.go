package service

import (
	"context"
	"sync"

	"github.com/cloudwego/hertz/pkg/common/hlog"

	interactiondb "vidtube.com/cmd/interaction/dal/db"
	relationdb "vidtube.com/cmd/relation/dal/db"
	videodb "vidtube.com/cmd/video/dal/db"
)

type StatsService struct {
	ctx context.Context
}

func NewStatsService(ctx context.Context) *StatsService {
	return &StatsService{ctx: ctx}
}

// ChannelStats is the dashboard aggregate for one channel.
type ChannelStats struct {
	TotalViews       int64 `json:"total_views"`
	TotalVideos      int64 `json:"total_videos"`
	TotalSubscribers int64 `json:"total_subscribers"`
	TotalLikes       int64 `json:"total_likes"`
}

// GetChannelStats gathers the four aggregates in parallel. A failed aggregate
// is logged and reported as zero, the rest of the dashboard still renders.
func (s *StatsService) GetChannelStats(channelID string) *ChannelStats {
	stats := &ChannelStats{}
	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		views, err := videodb.SumViewsByOwner(s.ctx, channelID)
		if err != nil {
			hlog.CtxErrorf(s.ctx, "dashboard views aggregate failed for %s: %v", channelID, err)
			return
		}
		stats.TotalViews = views
	}()
	go func() {
		defer wg.Done()
		videos, err := videodb.CountVideosByOwner(s.ctx, channelID)
		if err != nil {
			hlog.CtxErrorf(s.ctx, "dashboard video count failed for %s: %v", channelID, err)
			return
		}
		stats.TotalVideos = videos
	}()
	go func() {
		defer wg.Done()
		subs, err := relationdb.CountSubscribers(s.ctx, channelID)
		if err != nil {
			hlog.CtxErrorf(s.ctx, "dashboard subscriber count failed for %s: %v", channelID, err)
			return
		}
		stats.TotalSubscribers = subs
	}()
	go func() {
		defer wg.Done()
		likes, err := interactiondb.CountLikesByActor(s.ctx, channelID)
		if err != nil {
			hlog.CtxErrorf(s.ctx, "dashboard like count failed for %s: %v", channelID, err)
			return
		}
		stats.TotalLikes = likes
	}()
	wg.Wait()
	return stats
}

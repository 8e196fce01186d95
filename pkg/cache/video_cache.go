package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/redis/go-redis/v9"

	"vidtube.com/cmd/model"
	"vidtube.com/config"
	"vidtube.com/pkg/constants"
)

var rdb *redis.Client

// Init connects the cache. Every accessor below is nil-safe so the service
// layer degrades to store reads when the cache is absent.
func Init() {
	cfg := config.ConfigInfo.Redis
	rdb = redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func Ping(ctx context.Context) error {
	if rdb == nil {
		return redis.ErrClosed
	}
	return rdb.Ping(ctx).Err()
}

func videoKey(videoID string) string {
	return fmt.Sprintf("video:info:%s", videoID)
}

// GetVideo returns the cached video document, if any.
func GetVideo(ctx context.Context, videoID string) (*model.Video, bool) {
	if rdb == nil {
		return nil, false
	}
	raw, err := rdb.Get(ctx, videoKey(videoID)).Bytes()
	if err != nil {
		return nil, false
	}
	var video model.Video
	if err := json.Unmarshal(raw, &video); err != nil {
		hlog.Warnf("drop corrupt video cache entry %s: %v", videoID, err)
		rdb.Del(ctx, videoKey(videoID))
		return nil, false
	}
	return &video, true
}

func SetVideo(ctx context.Context, video *model.Video) {
	if rdb == nil || video == nil {
		return
	}
	raw, err := json.Marshal(video)
	if err != nil {
		return
	}
	if err := rdb.Set(ctx, videoKey(video.VideoID), raw, constants.VideoCacheTTL).Err(); err != nil {
		hlog.Warnf("failed to cache video %s: %v", video.VideoID, err)
	}
}

func DelVideo(ctx context.Context, videoID string) {
	if rdb == nil {
		return
	}
	if err := rdb.Del(ctx, videoKey(videoID)).Err(); err != nil {
		hlog.Warnf("failed to invalidate video cache %s: %v", videoID, err)
	}
}

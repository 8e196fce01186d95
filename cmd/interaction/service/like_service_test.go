package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/testutil"
	"vidtube.com/pkg/utils"
)

func TestToggleVideoLike(t *testing.T) {
	conn := testutil.SetupDB(t)
	owner := testutil.SeedUser(t, conn, "creator")
	viewer := testutil.SeedUser(t, conn, "viewer")
	videoID := testutil.SeedVideo(t, conn, owner, "first")

	svc := NewLikeActionService(context.Background())

	result, err := svc.ToggleVideoLike(viewer, videoID)
	require.NoError(t, err)
	assert.True(t, result.Liked)
	assert.Equal(t, int64(1), result.LikeCount)

	result, err = svc.ToggleVideoLike(viewer, videoID)
	require.NoError(t, err)
	assert.False(t, result.Liked)
	assert.Equal(t, int64(0), result.LikeCount)

	result, err = svc.ToggleVideoLike(viewer, videoID)
	require.NoError(t, err)
	assert.True(t, result.Liked)
	assert.Equal(t, int64(1), result.LikeCount)
}

func TestLikeCountAggregatesAcrossActors(t *testing.T) {
	conn := testutil.SetupDB(t)
	owner := testutil.SeedUser(t, conn, "creator")
	alice := testutil.SeedUser(t, conn, "alice")
	bob := testutil.SeedUser(t, conn, "bob")
	videoID := testutil.SeedVideo(t, conn, owner, "first")

	svc := NewLikeActionService(context.Background())

	result, err := svc.ToggleVideoLike(alice, videoID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.LikeCount)

	// The reported count is the target's total, not the actor's own rows.
	result, err = svc.ToggleVideoLike(bob, videoID)
	require.NoError(t, err)
	assert.True(t, result.Liked)
	assert.Equal(t, int64(2), result.LikeCount)

	result, err = svc.ToggleVideoLike(alice, videoID)
	require.NoError(t, err)
	assert.False(t, result.Liked)
	assert.Equal(t, int64(1), result.LikeCount)
}

func TestToggleLikeNeverDuplicates(t *testing.T) {
	conn := testutil.SetupDB(t)
	owner := testutil.SeedUser(t, conn, "creator")
	viewer := testutil.SeedUser(t, conn, "viewer")
	videoID := testutil.SeedVideo(t, conn, owner, "first")

	svc := NewLikeActionService(context.Background())
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.ToggleVideoLike(viewer, videoID)
		}()
	}
	wg.Wait()

	var count int64
	require.NoError(t, conn.Model(&model.Like{}).
		Where("video_id = ? AND liked_by = ?", videoID, viewer).
		Count(&count).Error)
	assert.LessOrEqual(t, count, int64(1))
}

func TestToggleLikeMissingTarget(t *testing.T) {
	conn := testutil.SetupDB(t)
	viewer := testutil.SeedUser(t, conn, "viewer")

	svc := NewLikeActionService(context.Background())

	_, err := svc.ToggleVideoLike(viewer, utils.NewObjectID())
	require.Error(t, err)
	assert.Equal(t, errno.NotFoundErrCode, errno.ConvertErr(err).ErrCode)

	_, err = svc.ToggleCommentLike(viewer, utils.NewObjectID())
	require.Error(t, err)
	assert.Equal(t, errno.NotFoundErrCode, errno.ConvertErr(err).ErrCode)

	_, err = svc.ToggleTweetLike(viewer, "not-an-id")
	require.Error(t, err)
	assert.Equal(t, errno.ParamErrCode, errno.ConvertErr(err).ErrCode)
}

func TestLikeTargetsAreIndependent(t *testing.T) {
	conn := testutil.SetupDB(t)
	owner := testutil.SeedUser(t, conn, "creator")
	viewer := testutil.SeedUser(t, conn, "viewer")
	videoID := testutil.SeedVideo(t, conn, owner, "first")

	commentSvc := NewCommentService(context.Background())
	comment, err := commentSvc.AddComment(viewer, videoID, "nice one")
	require.NoError(t, err)

	svc := NewLikeActionService(context.Background())
	_, err = svc.ToggleVideoLike(viewer, videoID)
	require.NoError(t, err)
	_, err = svc.ToggleCommentLike(viewer, comment.CommentID)
	require.NoError(t, err)

	var count int64
	require.NoError(t, conn.Model(&model.Like{}).Where("liked_by = ?", viewer).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestGetLikedVideos(t *testing.T) {
	conn := testutil.SetupDB(t)
	owner := testutil.SeedUser(t, conn, "creator")
	viewer := testutil.SeedUser(t, conn, "viewer")

	svc := NewLikeActionService(context.Background())
	for _, title := range []string{"one", "two", "three"} {
		videoID := testutil.SeedVideo(t, conn, owner, title)
		_, err := svc.ToggleVideoLike(viewer, videoID)
		require.NoError(t, err)
	}

	page, err := svc.GetLikedVideos(viewer, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.TotalCount)
	assert.Equal(t, int64(2), page.TotalPages)
	assert.Len(t, page.Videos, 2)
	assert.Equal(t, "creator", page.Videos[0].OwnerUsername)
}

func TestGetLikedVideosSkipsDeletedVideos(t *testing.T) {
	conn := testutil.SetupDB(t)
	owner := testutil.SeedUser(t, conn, "creator")
	viewer := testutil.SeedUser(t, conn, "viewer")
	kept := testutil.SeedVideo(t, conn, owner, "kept")
	gone := testutil.SeedVideo(t, conn, owner, "gone")

	svc := NewLikeActionService(context.Background())
	_, err := svc.ToggleVideoLike(viewer, kept)
	require.NoError(t, err)
	_, err = svc.ToggleVideoLike(viewer, gone)
	require.NoError(t, err)

	require.NoError(t, conn.Where("video_id = ?", gone).Delete(&model.Video{}).Error)

	// The orphaned like row must not inflate the count past the items.
	page, err := svc.GetLikedVideos(viewer, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.TotalCount)
	assert.Equal(t, int64(1), page.TotalPages)
	require.Len(t, page.Videos, 1)
	assert.Equal(t, kept, page.Videos[0].VideoID)
}

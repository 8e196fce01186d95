package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/testutil"
	"vidtube.com/pkg/utils"
)

func TestListVideosPagination(t *testing.T) {
	conn := testutil.SetupDB(t)
	owner := testutil.SeedUser(t, conn, "creator")
	for i := 0; i < 25; i++ {
		testutil.SeedVideo(t, conn, owner, fmt.Sprintf("video%02d", i))
	}

	svc := NewVideoListService(context.Background())

	page, err := svc.ListVideos(&ListRequest{Page: 2, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(25), page.TotalCount)
	assert.Equal(t, int64(3), page.TotalPages)
	assert.Equal(t, int64(2), page.CurrentPage)
	assert.Len(t, page.Videos, 10)
	assert.Equal(t, "creator", page.Videos[0].OwnerUsername)

	// Out of range: empty page, not an error.
	page, err = svc.ListVideos(&ListRequest{Page: 9, PageSize: 10})
	require.NoError(t, err)
	assert.Empty(t, page.Videos)
	assert.Equal(t, int64(25), page.TotalCount)
}

func TestListVideosPublishedOnly(t *testing.T) {
	conn := testutil.SetupDB(t)
	owner := testutil.SeedUser(t, conn, "creator")
	testutil.SeedVideo(t, conn, owner, "public")
	require.NoError(t, conn.Create(&model.Video{
		VideoID: utils.NewObjectID(),
		OwnerID: owner,
		Title:   "draft",
	}).Error)

	svc := NewVideoListService(context.Background())

	page, err := svc.ListVideos(&ListRequest{})
	require.NoError(t, err)
	require.Len(t, page.Videos, 1)
	assert.Equal(t, "public", page.Videos[0].Title)

	// The owner's dashboard listing includes drafts.
	own, err := svc.ListOwnVideos(owner, 1, 10)
	require.NoError(t, err)
	assert.Len(t, own.Videos, 2)
}

func TestListVideosQueryAndSort(t *testing.T) {
	conn := testutil.SetupDB(t)
	owner := testutil.SeedUser(t, conn, "creator")
	testutil.SeedVideo(t, conn, owner, "gopher tutorial")
	testutil.SeedVideo(t, conn, owner, "cooking show")
	testutil.SeedVideo(t, conn, owner, "GOPHER conference talk")

	svc := NewVideoListService(context.Background())

	page, err := svc.ListVideos(&ListRequest{Query: "gopher", SortBy: "title", SortType: "asc"})
	require.NoError(t, err)
	require.Len(t, page.Videos, 2)
	assert.Equal(t, "GOPHER conference talk", page.Videos[0].Title)
}

func TestVideoVisitCountsView(t *testing.T) {
	conn := testutil.SetupDB(t)
	owner := testutil.SeedUser(t, conn, "creator")
	videoID := testutil.SeedVideo(t, conn, owner, "first")

	svc := NewVideoListService(context.Background())

	detail, err := svc.VideoVisit(videoID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), detail.Views)
	require.NotNil(t, detail.Owner)
	assert.Equal(t, "creator", detail.Owner.Username)

	var stored model.Video
	require.NoError(t, conn.Where("video_id = ?", videoID).First(&stored).Error)
	assert.Equal(t, int64(1), stored.Views)

	// The second visit sees the first one counted.
	detail, err = svc.VideoVisit(videoID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), detail.Views)
}

func TestVideoVisitMissing(t *testing.T) {
	testutil.SetupDB(t)
	svc := NewVideoListService(context.Background())

	_, err := svc.VideoVisit(utils.NewObjectID())
	assert.Equal(t, errno.NotFoundErrCode, errno.ConvertErr(err).ErrCode)

	_, err = svc.VideoVisit("nope")
	assert.Equal(t, errno.ParamErrCode, errno.ConvertErr(err).ErrCode)
}

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

func validRequest() *PlaylistRequest {
	return &PlaylistRequest{Name: "favourites", Description: "videos worth rewatching"}
}

func TestCreatePlaylistValidation(t *testing.T) {
	conn := testutil.SetupDB(t)
	owner := testutil.SeedUser(t, conn, "owner")

	svc := NewPlaylistService(context.Background())

	playlist, err := svc.CreatePlaylist(owner, validRequest())
	require.NoError(t, err)
	assert.Equal(t, owner, playlist.OwnerID)
	assert.True(t, utils.IsValidID(playlist.PlaylistID))

	_, err = svc.CreatePlaylist(owner, &PlaylistRequest{Name: "abc", Description: "too short a name"})
	e := errno.ConvertErr(err)
	assert.Equal(t, errno.ParamErrCode, e.ErrCode)
	assert.NotEmpty(t, e.Errors)
}

func TestPlaylistOwnershipGuards(t *testing.T) {
	conn := testutil.SetupDB(t)
	owner := testutil.SeedUser(t, conn, "owner")
	stranger := testutil.SeedUser(t, conn, "stranger")

	svc := NewPlaylistService(context.Background())
	playlist, err := svc.CreatePlaylist(owner, validRequest())
	require.NoError(t, err)

	_, err = svc.UpdatePlaylist(stranger, playlist.PlaylistID, &PlaylistRequest{Name: "renamed", Description: "taken over"})
	assert.Equal(t, errno.NotFoundErrCode, errno.ConvertErr(err).ErrCode)

	err = svc.DeletePlaylist(stranger, playlist.PlaylistID)
	assert.Equal(t, errno.NotFoundErrCode, errno.ConvertErr(err).ErrCode)

	updated, err := svc.UpdatePlaylist(owner, playlist.PlaylistID, &PlaylistRequest{Name: "renamed", Description: "still mine"})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Name)
}

func TestPlaylistVideoLifecycle(t *testing.T) {
	conn := testutil.SetupDB(t)
	owner := testutil.SeedUser(t, conn, "owner")
	first := testutil.SeedVideo(t, conn, owner, "first")
	second := testutil.SeedVideo(t, conn, owner, "second")

	svc := NewPlaylistService(context.Background())
	playlist, err := svc.CreatePlaylist(owner, validRequest())
	require.NoError(t, err)

	require.NoError(t, svc.AddVideo(owner, playlist.PlaylistID, first))
	require.NoError(t, svc.AddVideo(owner, playlist.PlaylistID, second))

	// Duplicate append: conflict, playlist unchanged.
	err = svc.AddVideo(owner, playlist.PlaylistID, first)
	assert.Equal(t, errno.ConflictErrCode, errno.ConvertErr(err).ErrCode)

	detail, err := svc.GetPlaylistByID(playlist.PlaylistID)
	require.NoError(t, err)
	require.Len(t, detail.Videos, 2)
	assert.Equal(t, first, detail.Videos[0].VideoID)
	assert.Equal(t, second, detail.Videos[1].VideoID)

	require.NoError(t, svc.RemoveVideo(owner, playlist.PlaylistID, first))
	err = svc.RemoveVideo(owner, playlist.PlaylistID, first)
	assert.Equal(t, errno.NotFoundErrCode, errno.ConvertErr(err).ErrCode)

	detail, err = svc.GetPlaylistByID(playlist.PlaylistID)
	require.NoError(t, err)
	require.Len(t, detail.Videos, 1)
	assert.Equal(t, second, detail.Videos[0].VideoID)
}

func TestAddVideoChecksTargets(t *testing.T) {
	conn := testutil.SetupDB(t)
	owner := testutil.SeedUser(t, conn, "owner")
	videoID := testutil.SeedVideo(t, conn, owner, "first")

	svc := NewPlaylistService(context.Background())
	playlist, err := svc.CreatePlaylist(owner, validRequest())
	require.NoError(t, err)

	err = svc.AddVideo(owner, playlist.PlaylistID, utils.NewObjectID())
	assert.Equal(t, errno.NotFoundErrCode, errno.ConvertErr(err).ErrCode)

	err = svc.AddVideo(owner, utils.NewObjectID(), videoID)
	assert.Equal(t, errno.NotFoundErrCode, errno.ConvertErr(err).ErrCode)
}

func TestDeletePlaylistRemovesEntries(t *testing.T) {
	conn := testutil.SetupDB(t)
	owner := testutil.SeedUser(t, conn, "owner")
	videoID := testutil.SeedVideo(t, conn, owner, "first")

	svc := NewPlaylistService(context.Background())
	playlist, err := svc.CreatePlaylist(owner, validRequest())
	require.NoError(t, err)
	require.NoError(t, svc.AddVideo(owner, playlist.PlaylistID, videoID))

	require.NoError(t, svc.DeletePlaylist(owner, playlist.PlaylistID))

	_, err = svc.GetPlaylistByID(playlist.PlaylistID)
	assert.Equal(t, errno.NotFoundErrCode, errno.ConvertErr(err).ErrCode)
}

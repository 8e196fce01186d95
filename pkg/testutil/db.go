package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	interactiondb "vidtube.com/cmd/interaction/dal/db"
	"vidtube.com/cmd/model"
	playlistdb "vidtube.com/cmd/playlist/dal/db"
	relationdb "vidtube.com/cmd/relation/dal/db"
	tweetdb "vidtube.com/cmd/tweet/dal/db"
	userdb "vidtube.com/cmd/user/dal/db"
	videodb "vidtube.com/cmd/video/dal/db"
	"vidtube.com/pkg/utils"
)

// SetupDB opens an in-memory store, migrates the schema and points every dal
// package at it. Each test gets its own database, torn down with the test.
func SetupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", utils.NewObjectID())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, conn.AutoMigrate(
		&model.User{},
		&model.Video{},
		&model.Comment{},
		&model.Like{},
		&model.Subscription{},
		&model.Tweet{},
		&model.Playlist{},
		&model.PlaylistVideo{},
	))

	userdb.Init(conn)
	videodb.Init(conn)
	interactiondb.Init(conn)
	relationdb.Init(conn)
	tweetdb.Init(conn)
	playlistdb.Init(conn)
	return conn
}

// SeedUser inserts a user and returns its id.
func SeedUser(t *testing.T, conn *gorm.DB, username string) string {
	t.Helper()
	user := &model.User{
		UserID:   utils.NewObjectID(),
		Username: username,
		Email:    username + "@example.com",
		FullName: "Test " + username,
	}
	require.NoError(t, conn.WithContext(context.Background()).Create(user).Error)
	return user.UserID
}

// SeedVideo inserts a published video owned by ownerID and returns its id.
func SeedVideo(t *testing.T, conn *gorm.DB, ownerID, title string) string {
	t.Helper()
	video := &model.Video{
		VideoID:     utils.NewObjectID(),
		OwnerID:     ownerID,
		Title:       title,
		Description: "about " + title,
		VideoURL:    "http://media.local/videos/" + title,
		IsPublished: true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	require.NoError(t, conn.WithContext(context.Background()).Create(video).Error)
	return video.VideoID
}

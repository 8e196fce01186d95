package main

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/sirupsen/logrus"

	"vidtube.com/cmd/api/handlers"
	"vidtube.com/cmd/api/router"
	interactiondb "vidtube.com/cmd/interaction/dal/db"
	playlistdb "vidtube.com/cmd/playlist/dal/db"
	relationdb "vidtube.com/cmd/relation/dal/db"
	tweetdb "vidtube.com/cmd/tweet/dal/db"
	userdb "vidtube.com/cmd/user/dal/db"
	videodb "vidtube.com/cmd/video/dal/db"
	"vidtube.com/config"
	"vidtube.com/pkg/cache"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/database"
	"vidtube.com/pkg/jwt"
	"vidtube.com/pkg/oss"
)

func initStores() {
	database.Init()
	userdb.Init(database.DB)
	videodb.Init(database.DB)
	interactiondb.Init(database.DB)
	relationdb.Init(database.DB)
	tweetdb.Init(database.DB)
	playlistdb.Init(database.DB)
}

func main() {
	config.Init()
	initStores()
	cache.Init()
	if err := oss.Init(); err != nil {
		logrus.Fatalf("media host init failed: %v", err)
	}

	unauthorized := func(ctx context.Context, c *app.RequestContext, code int, message string) {
		handlers.SendUnauthorized(c, code, message)
	}
	if err := jwt.Init(config.ConfigInfo.Jwt.Secret, config.ConfigInfo.Jwt.Realm, unauthorized); err != nil {
		logrus.Fatalf("jwt init failed: %v", err)
	}

	h := server.Default(
		server.WithHostPorts(config.ConfigInfo.Server.Addr),
		server.WithMaxRequestBodySize(constants.MaxUploadSize),
	)
	router.UseMiddlewares(h)
	router.Register(h)

	logrus.Infof("api listening on %s", config.ConfigInfo.Server.Addr)
	h.Spin()
}

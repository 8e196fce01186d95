package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"vidtube.com/cmd/api/handlers/dashboard"
	"vidtube.com/cmd/api/handlers/health"
	"vidtube.com/cmd/api/handlers/interaction"
	"vidtube.com/cmd/api/handlers/playlist"
	"vidtube.com/cmd/api/handlers/relation"
	"vidtube.com/cmd/api/handlers/tweet"
	"vidtube.com/cmd/api/handlers/user"
	"vidtube.com/cmd/api/handlers/video"
	"vidtube.com/pkg/jwt"
)

// Register wires the route table under /api/v1. Everything except the
// healthcheck and registration sits behind the bearer credential check.
func Register(h *server.Hertz) {
	v1 := h.Group("/api/v1")
	v1.GET("/healthcheck", health.Check)
	v1.POST("/users/register", user.Register)

	auth := v1.Group("/", jwt.AuthMiddleware.MiddlewareFunc())

	auth.GET("/users/:user_id", user.GetProfile)

	videos := auth.Group("/videos")
	videos.GET("/", video.List)
	videos.POST("/", video.Publish)
	videos.GET("/:video_id", video.Visit)
	videos.PATCH("/:video_id", video.Update)
	videos.DELETE("/:video_id", video.Delete)
	videos.PATCH("/:video_id/toggle-publish", video.TogglePublish)

	comments := auth.Group("/comments")
	comments.GET("/:video_id", interaction.ListComments)
	comments.POST("/:video_id", interaction.AddComment)
	comments.PATCH("/c/:comment_id", interaction.UpdateComment)
	comments.DELETE("/c/:comment_id", interaction.DeleteComment)

	likes := auth.Group("/likes")
	likes.POST("/toggle/v/:video_id", interaction.ToggleVideoLike)
	likes.POST("/toggle/c/:comment_id", interaction.ToggleCommentLike)
	likes.POST("/toggle/t/:tweet_id", interaction.ToggleTweetLike)
	likes.GET("/videos", interaction.LikedVideos)

	subs := auth.Group("/subscriptions")
	subs.POST("/c/:channel_id", relation.ToggleSubscription)
	subs.GET("/c/:channel_id", relation.ChannelSubscribers)
	subs.GET("/u/:subscriber_id", relation.SubscribedChannels)

	tweets := auth.Group("/tweets")
	tweets.POST("/", tweet.Create)
	tweets.GET("/user/:user_id", tweet.ListByUser)
	tweets.PATCH("/:tweet_id", tweet.Update)
	tweets.DELETE("/:tweet_id", tweet.Delete)

	playlists := auth.Group("/playlists")
	playlists.POST("/", playlist.Create)
	playlists.GET("/user/:user_id", playlist.ListByUser)
	playlists.GET("/:playlist_id", playlist.Get)
	playlists.PATCH("/:playlist_id", playlist.Update)
	playlists.DELETE("/:playlist_id", playlist.Delete)
	playlists.PATCH("/:playlist_id/videos/:video_id", playlist.AddVideo)
	playlists.DELETE("/:playlist_id/videos/:video_id", playlist.RemoveVideo)

	board := auth.Group("/dashboard")
	board.GET("/stats", dashboard.Stats)
	board.GET("/videos", dashboard.Videos)
}

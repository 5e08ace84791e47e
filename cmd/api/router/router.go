package router

import (
	handler_interaction "VideoTube.com/cmd/api/handlers/interaction"
	handler_playlist "VideoTube.com/cmd/api/handlers/playlist"
	handler_relation "VideoTube.com/cmd/api/handlers/relation"
	handler_tweet "VideoTube.com/cmd/api/handlers/tweet"
	handler_video "VideoTube.com/cmd/api/handlers/video"
	"VideoTube.com/cmd/api/router/authfunc"
	"github.com/cloudwego/hertz/pkg/app/server"
)

func Register(h *server.Hertz) {
	v1 := h.Group("/api/v1")

	like := v1.Group("/like")
	like.POST("/video/:video_id", append(authfunc.Auth(), handler_interaction.LikeVideoAction)...)
	like.POST("/comment/:comment_id", append(authfunc.Auth(), handler_interaction.LikeCommentAction)...)
	like.POST("/tweet/:tweet_id", append(authfunc.Auth(), handler_interaction.LikeTweetAction)...)
	like.GET("/videos", append(authfunc.Auth(), handler_interaction.LikedVideoList)...)

	subscription := v1.Group("/subscription")
	subscription.POST("/:channel_id", append(authfunc.Auth(), handler_relation.SubscriptionAction)...)
	subscription.GET("/subscribers/:channel_id", handler_relation.SubscriberList)
	subscription.GET("/channels/:subscriber_id", handler_relation.SubscribedChannelList)

	video := v1.Group("/video")
	video.POST("/publish", append(authfunc.Auth(), handler_video.PublishVideo)...)
	video.GET("/:video_id", handler_video.GetVideo)
	video.PUT("/:video_id", append(authfunc.Auth(), handler_video.UpdateVideo)...)
	video.DELETE("/:video_id", append(authfunc.Auth(), handler_video.DeleteVideo)...)
	video.POST("/:video_id/toggle-publish", append(authfunc.Auth(), handler_video.TogglePublish)...)
	video.POST("/:video_id/watch", append(authfunc.Auth(), handler_video.RecordWatch)...)

	v1.GET("/feed", handler_video.FeedList)
	v1.GET("/stats/:user_id", handler_video.ChannelStats)

	comment := v1.Group("/comment")
	comment.POST("/video/:video_id", append(authfunc.Auth(), handler_interaction.CreateComment)...)
	comment.GET("/video/:video_id", handler_interaction.ListComment)
	comment.PUT("/:comment_id", append(authfunc.Auth(), handler_interaction.UpdateComment)...)
	comment.DELETE("/:comment_id", append(authfunc.Auth(), handler_interaction.DeleteComment)...)

	tweet := v1.Group("/tweet")
	tweet.POST("", append(authfunc.Auth(), handler_tweet.CreateTweet)...)
	tweet.PUT("/:tweet_id", append(authfunc.Auth(), handler_tweet.UpdateTweet)...)
	tweet.DELETE("/:tweet_id", append(authfunc.Auth(), handler_tweet.DeleteTweet)...)
	tweet.GET("/user/:user_id", handler_tweet.UserTweetList)

	playlist := v1.Group("/playlist")
	playlist.POST("", append(authfunc.Auth(), handler_playlist.CreatePlaylist)...)
	playlist.GET("/:playlist_id", handler_playlist.PlaylistDetail)
	playlist.PUT("/:playlist_id", append(authfunc.Auth(), handler_playlist.UpdatePlaylist)...)
	playlist.DELETE("/:playlist_id", append(authfunc.Auth(), handler_playlist.DeletePlaylist)...)
	playlist.POST("/:playlist_id/video/:video_id", append(authfunc.Auth(), handler_playlist.AddPlaylistVideo)...)
	playlist.DELETE("/:playlist_id/video/:video_id", append(authfunc.Auth(), handler_playlist.RemovePlaylistVideo)...)
	playlist.GET("/user/:user_id", handler_playlist.UserPlaylistList)
}

package handlers

import (
	"context"

	"VideoTube.com/cmd/playlist/service"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/jwt"
	"VideoTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
)

func playlistVideoIds(c *app.RequestContext) (playlistId, videoId int64, ok bool) {
	playlistId, ok = utils.ParseID(c.Param("playlist_id"))
	if !ok {
		return 0, 0, false
	}
	videoId, ok = utils.ParseID(c.Param("video_id"))
	if !ok {
		return 0, 0, false
	}
	return playlistId, videoId, true
}

func AddPlaylistVideo(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.CurrentUserID(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	playlistId, videoId, ok := playlistVideoIds(c)
	if !ok {
		SendResponse(c, errno.InvalidIdentifierErr, nil)
		return
	}
	if err := service.NewPlaylistService(ctx).AddVideo(userId, playlistId, videoId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func RemovePlaylistVideo(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.CurrentUserID(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	playlistId, videoId, ok := playlistVideoIds(c)
	if !ok {
		SendResponse(c, errno.InvalidIdentifierErr, nil)
		return
	}
	if err := service.NewPlaylistService(ctx).RemoveVideo(userId, playlistId, videoId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

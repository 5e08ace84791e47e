package handlers

import (
	"context"

	"VideoTube.com/cmd/playlist/service"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
)

func PlaylistDetail(ctx context.Context, c *app.RequestContext) {
	playlistId, ok := utils.ParseID(c.Param("playlist_id"))
	if !ok {
		SendResponse(c, errno.InvalidIdentifierErr, nil)
		return
	}
	detail, err := service.NewPlaylistDetailService(ctx).PlaylistDetail(playlistId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, detail)
}

func UserPlaylistList(ctx context.Context, c *app.RequestContext) {
	userId, ok := utils.ParseID(c.Param("user_id"))
	if !ok {
		SendResponse(c, errno.InvalidIdentifierErr, nil)
		return
	}
	playlists, err := service.NewPlaylistDetailService(ctx).UserPlaylists(userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, playlists)
}

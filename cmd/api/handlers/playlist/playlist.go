package handlers

import (
	"context"

	"VideoTube.com/cmd/playlist/service"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/jwt"
	"VideoTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func CreatePlaylist(ctx context.Context, c *app.RequestContext) {
	var param CreatePlaylistParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	userId, err := jwt.CurrentUserID(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	playlist, err := service.NewPlaylistService(ctx).CreatePlaylist(userId, param.Name, param.Description)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, playlist)
}

func UpdatePlaylist(ctx context.Context, c *app.RequestContext) {
	var param UpdatePlaylistParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	userId, err := jwt.CurrentUserID(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	playlistId, ok := utils.ParseID(c.Param("playlist_id"))
	if !ok {
		SendResponse(c, errno.InvalidIdentifierErr, nil)
		return
	}
	playlist, err := service.NewPlaylistService(ctx).UpdatePlaylist(userId, playlistId, param.Name, param.Description)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, playlist)
}

func DeletePlaylist(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.CurrentUserID(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	playlistId, ok := utils.ParseID(c.Param("playlist_id"))
	if !ok {
		SendResponse(c, errno.InvalidIdentifierErr, nil)
		return
	}
	if err := service.NewPlaylistService(ctx).DeletePlaylist(userId, playlistId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

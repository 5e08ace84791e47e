package handlers

import (
	"context"

	"VideoTube.com/cmd/interaction/service"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

func LikedVideoList(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.CurrentUserID(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	videos, err := service.NewLikedVideosService(ctx).LikedVideos(userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, videos)
}

package handlers

import (
	"context"

	"VideoTube.com/cmd/video/service"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
)

func ChannelStats(ctx context.Context, c *app.RequestContext) {
	userId, ok := utils.ParseID(c.Param("user_id"))
	if !ok {
		SendResponse(c, errno.InvalidIdentifierErr, nil)
		return
	}
	stats, err := service.NewStatsService(ctx).ChannelStats(userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, stats)
}

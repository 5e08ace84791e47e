package handlers

import (
	"context"

	"VideoTube.com/cmd/relation/service"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
)

func SubscriberList(ctx context.Context, c *app.RequestContext) {
	channelId, ok := utils.ParseID(c.Param("channel_id"))
	if !ok {
		SendResponse(c, errno.InvalidIdentifierErr, nil)
		return
	}
	subscribers, err := service.NewSubscriberListService(ctx).SubscriberList(channelId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, subscribers)
}

func SubscribedChannelList(ctx context.Context, c *app.RequestContext) {
	subscriberId, ok := utils.ParseID(c.Param("subscriber_id"))
	if !ok {
		SendResponse(c, errno.InvalidIdentifierErr, nil)
		return
	}
	channels, err := service.NewSubscriberListService(ctx).SubscribedChannels(subscriberId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, channels)
}

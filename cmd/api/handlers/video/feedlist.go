package handlers

import (
	"context"

	"VideoTube.com/cmd/video/service"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func FeedList(ctx context.Context, c *app.RequestContext) {
	var param FeedListParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	videos, total, err := service.NewFeedListService(ctx).FeedList(&service.FeedListRequest{
		Query:    param.Query,
		UserId:   param.UserId,
		SortBy:   param.SortBy,
		SortType: param.SortType,
		PageNum:  param.PageNum,
		PageSize: param.PageSize,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	page := utils.NormalizePagination(param.PageNum, param.PageSize)
	SendResponse(c, errno.Success, PagedData{
		Items: videos,
		Total: total,
		Page:  page.PageNum,
		Limit: page.PageSize,
	})
}

func GetVideo(ctx context.Context, c *app.RequestContext) {
	videoId, ok := utils.ParseID(c.Param("video_id"))
	if !ok {
		SendResponse(c, errno.InvalidIdentifierErr, nil)
		return
	}
	video, err := service.NewVideoInfoService(ctx).GetVideo(videoId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, video)
}

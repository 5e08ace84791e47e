package handlers

import (
	"context"

	"VideoTube.com/cmd/interaction/service"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func ListComment(ctx context.Context, c *app.RequestContext) {
	var param ListCommentParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	videoId, ok := utils.ParseID(c.Param("video_id"))
	if !ok {
		SendResponse(c, errno.InvalidIdentifierErr, nil)
		return
	}
	comments, total, err := service.NewCommentListService(ctx).ListComments(videoId, param.PageNum, param.PageSize)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	page := utils.NormalizePagination(param.PageNum, param.PageSize)
	SendResponse(c, errno.Success, PagedData{
		Items: comments,
		Total: total,
		Page:  page.PageNum,
		Limit: page.PageSize,
	})
}

package handlers

import (
	"context"

	"VideoTube.com/cmd/interaction/service"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/jwt"
	"VideoTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func UpdateComment(ctx context.Context, c *app.RequestContext) {
	var param UpdateCommentParam
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
	commentId, ok := utils.ParseID(c.Param("comment_id"))
	if !ok {
		SendResponse(c, errno.InvalidIdentifierErr, nil)
		return
	}
	comment, err := service.NewCommentService(ctx).UpdateComment(userId, commentId, param.Content)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, comment)
}

package handlers

import (
	"context"

	"VideoTube.com/cmd/interaction/service"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/jwt"
	"VideoTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
)

func DeleteComment(ctx context.Context, c *app.RequestContext) {
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
	if err := service.NewCommentService(ctx).DeleteComment(userId, commentId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

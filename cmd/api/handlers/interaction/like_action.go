package handlers

import (
	"context"

	"VideoTube.com/cmd/interaction/service"
	"VideoTube.com/cmd/model"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/jwt"
	"VideoTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
)

func toggleLike(ctx context.Context, c *app.RequestContext, targetKind, paramName string) {
	userId, err := jwt.CurrentUserID(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	targetId, ok := utils.ParseID(c.Param(paramName))
	if !ok {
		SendResponse(c, errno.InvalidIdentifierErr, nil)
		return
	}
	resp, err := service.NewLikeActionService(ctx).ToggleLike(userId, targetKind, targetId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}

func LikeVideoAction(ctx context.Context, c *app.RequestContext) {
	toggleLike(ctx, c, model.LikeTargetVideo, "video_id")
}

func LikeCommentAction(ctx context.Context, c *app.RequestContext) {
	toggleLike(ctx, c, model.LikeTargetComment, "comment_id")
}

func LikeTweetAction(ctx context.Context, c *app.RequestContext) {
	toggleLike(ctx, c, model.LikeTargetTweet, "tweet_id")
}

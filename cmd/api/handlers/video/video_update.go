package handlers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"VideoTube.com/cmd/video/service"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/jwt"
	"VideoTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func UpdateVideo(ctx context.Context, c *app.RequestContext) {
	var param UpdateVideoParam
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
	videoId, ok := utils.ParseID(c.Param("video_id"))
	if !ok {
		SendResponse(c, errno.InvalidIdentifierErr, nil)
		return
	}

	// Thumbnail is optional on update; absence means keep the current cover.
	thumbPath := ""
	if thumbFile, err := c.FormFile("thumbnail"); err == nil {
		thumbPath = filepath.Join(os.TempDir(), fmt.Sprintf("%d_%s", userId, filepath.Base(thumbFile.Filename)))
		if err := c.SaveUploadedFile(thumbFile, thumbPath); err != nil {
			hlog.CtxErrorf(ctx, "save uploaded thumbnail failed: %v", err)
			SendResponse(c, errno.ServiceErr, nil)
			return
		}
		defer os.Remove(thumbPath)
	}

	video, err := service.NewVideoUpdateService(ctx).UpdateVideo(&service.UpdateVideoRequest{
		UserId:        userId,
		VideoId:       videoId,
		Title:         param.Title,
		Description:   param.Description,
		ThumbnailPath: thumbPath,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, video)
}

func DeleteVideo(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.CurrentUserID(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	videoId, ok := utils.ParseID(c.Param("video_id"))
	if !ok {
		SendResponse(c, errno.InvalidIdentifierErr, nil)
		return
	}
	if err := service.NewVideoDeleteService(ctx).DeleteVideo(userId, videoId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func TogglePublish(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.CurrentUserID(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	videoId, ok := utils.ParseID(c.Param("video_id"))
	if !ok {
		SendResponse(c, errno.InvalidIdentifierErr, nil)
		return
	}
	published, err := service.NewTogglePublishService(ctx).TogglePublish(userId, videoId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"is_published": published})
}

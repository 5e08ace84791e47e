package handlers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"VideoTube.com/cmd/video/service"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func PublishVideo(ctx context.Context, c *app.RequestContext) {
	var param PublishVideoParam
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
	videoFile, err := c.FormFile("video")
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	thumbFile, err := c.FormFile("thumbnail")
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}

	tmpDir := os.TempDir()
	videoPath := filepath.Join(tmpDir, fmt.Sprintf("%d_%s", userId, filepath.Base(videoFile.Filename)))
	thumbPath := filepath.Join(tmpDir, fmt.Sprintf("%d_%s", userId, filepath.Base(thumbFile.Filename)))
	if err := c.SaveUploadedFile(videoFile, videoPath); err != nil {
		hlog.CtxErrorf(ctx, "save uploaded video failed: %v", err)
		SendResponse(c, errno.ServiceErr, nil)
		return
	}
	defer os.Remove(videoPath)
	if err := c.SaveUploadedFile(thumbFile, thumbPath); err != nil {
		hlog.CtxErrorf(ctx, "save uploaded thumbnail failed: %v", err)
		SendResponse(c, errno.ServiceErr, nil)
		return
	}
	defer os.Remove(thumbPath)

	video, err := service.NewPublishService(ctx).PublishVideo(&service.PublishRequest{
		UserId:        userId,
		Title:         param.Title,
		Description:   param.Description,
		VideoPath:     videoPath,
		ThumbnailPath: thumbPath,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, video)
}

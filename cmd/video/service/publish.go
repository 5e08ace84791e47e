package service

import (
	"context"
	"strings"
	"time"

	"VideoTube.com/cmd/model"
	"VideoTube.com/cmd/video/dal/db"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/oss"
	"VideoTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// AssetStore is the external object-storage collaborator. A failed upload
// aborts the enclosing publish before any row is written.
type AssetStore interface {
	UploadVideo(ctx context.Context, localPath string, videoId int64) (url string, duration float64, err error)
	UploadImage(ctx context.Context, localPath string, videoId int64) (url string, err error)
}

type PublishRequest struct {
	UserId        int64
	Title         string
	Description   string
	VideoPath     string
	ThumbnailPath string
}

type PublishService struct {
	ctx   context.Context
	store AssetStore
}

func NewPublishService(ctx context.Context) *PublishService {
	return &PublishService{ctx: ctx, store: oss.NewStore()}
}

// NewPublishServiceWithStore lets callers swap the asset store collaborator.
func NewPublishServiceWithStore(ctx context.Context, store AssetStore) *PublishService {
	return &PublishService{ctx: ctx, store: store}
}

// PublishVideo uploads the media, then creates the row. Validation runs first
// so nothing partial ever lands when a field or an upload is bad.
func (s *PublishService) PublishVideo(req *PublishRequest) (*model.Video, error) {
	if !utils.ValidID(req.UserId) {
		return nil, errno.InvalidIdentifierErr
	}
	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	if title == "" || description == "" {
		return nil, errno.ValidationFailedErr
	}
	if req.VideoPath == "" || req.ThumbnailPath == "" {
		return nil, errno.ValidationFailedErr
	}

	videoId := utils.GenerateEntityID()
	videoUrl, duration, err := s.store.UploadVideo(s.ctx, req.VideoPath, videoId)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "Failed to upload video asset: %v", err)
		return nil, errno.UpstreamErr
	}
	coverUrl, err := s.store.UploadImage(s.ctx, req.ThumbnailPath, videoId)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "Failed to upload thumbnail asset: %v", err)
		return nil, errno.UpstreamErr
	}

	now := time.Now()
	video := &model.Video{
		VideoId:     videoId,
		UserId:      req.UserId,
		VideoUrl:    videoUrl,
		CoverUrl:    coverUrl,
		Title:       title,
		Description: description,
		Duration:    duration,
		IsPublished: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := db.InsertVideo(s.ctx, video); err != nil {
		hlog.CtxErrorf(s.ctx, "Failed to insert video: %v", err)
		return nil, errno.UpstreamErr
	}
	return video, nil
}

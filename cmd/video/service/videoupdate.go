package service

import (
	"context"
	"strings"

	"VideoTube.com/cmd/model"
	"VideoTube.com/cmd/video/dal/db"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/guard"
	"VideoTube.com/pkg/oss"
	"VideoTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type UpdateVideoRequest struct {
	UserId        int64
	VideoId       int64
	Title         *string
	Description   *string
	ThumbnailPath string
}

type VideoUpdateService struct {
	ctx   context.Context
	store AssetStore
}

func NewVideoUpdateService(ctx context.Context) *VideoUpdateService {
	return &VideoUpdateService{ctx: ctx, store: oss.NewStore()}
}

func NewVideoUpdateServiceWithStore(ctx context.Context, store AssetStore) *VideoUpdateService {
	return &VideoUpdateService{ctx: ctx, store: store}
}

// UpdateVideo merges the provided fields into the row. Only the owner may
// update, and a provided field may not end up empty after trimming.
func (s *VideoUpdateService) UpdateVideo(req *UpdateVideoRequest) (*model.Video, error) {
	if !utils.ValidID(req.UserId) || !utils.ValidID(req.VideoId) {
		return nil, errno.InvalidIdentifierErr
	}

	video, err := db.GetVideo(s.ctx, req.VideoId)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "Failed to load video: %v", err)
		return nil, errno.UpstreamErr
	}
	if err := guard.AssertOwner(video, req.UserId); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, errno.ValidationFailedErr
		}
		updates["title"] = title
		video.Title = title
	}
	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		if description == "" {
			return nil, errno.ValidationFailedErr
		}
		updates["description"] = description
		video.Description = description
	}
	if req.ThumbnailPath != "" {
		coverUrl, err := s.store.UploadImage(s.ctx, req.ThumbnailPath, req.VideoId)
		if err != nil {
			hlog.CtxErrorf(s.ctx, "Failed to upload thumbnail asset: %v", err)
			return nil, errno.UpstreamErr
		}
		updates["cover_url"] = coverUrl
		video.CoverUrl = coverUrl
	}

	if err := db.UpdateVideo(s.ctx, req.VideoId, updates); err != nil {
		hlog.CtxErrorf(s.ctx, "Failed to update video: %v", err)
		return nil, errno.UpstreamErr
	}
	return video, nil
}

type VideoDeleteService struct {
	ctx context.Context
}

func NewVideoDeleteService(ctx context.Context) *VideoDeleteService {
	return &VideoDeleteService{ctx: ctx}
}

// DeleteVideo is owner-only and cascades to the video's comments, likes and
// playlist memberships.
func (s *VideoDeleteService) DeleteVideo(userId, videoId int64) error {
	if !utils.ValidID(userId) || !utils.ValidID(videoId) {
		return errno.InvalidIdentifierErr
	}

	video, err := db.GetVideo(s.ctx, videoId)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "Failed to load video: %v", err)
		return errno.UpstreamErr
	}
	if err := guard.AssertOwner(video, userId); err != nil {
		return err
	}

	if err := db.DeleteVideo(s.ctx, videoId); err != nil {
		hlog.CtxErrorf(s.ctx, "Failed to delete video: %v", err)
		return errno.UpstreamErr
	}
	return nil
}

type TogglePublishService struct {
	ctx context.Context
}

func NewTogglePublishService(ctx context.Context) *TogglePublishService {
	return &TogglePublishService{ctx: ctx}
}

// TogglePublish flips the publish flag and returns the new state.
func (s *TogglePublishService) TogglePublish(userId, videoId int64) (bool, error) {
	if !utils.ValidID(userId) || !utils.ValidID(videoId) {
		return false, errno.InvalidIdentifierErr
	}

	video, err := db.GetVideo(s.ctx, videoId)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "Failed to load video: %v", err)
		return false, errno.UpstreamErr
	}
	if err := guard.AssertOwner(video, userId); err != nil {
		return false, err
	}

	published := !video.IsPublished
	if err := db.SetVideoPublished(s.ctx, videoId, published); err != nil {
		hlog.CtxErrorf(s.ctx, "Failed to toggle publish flag: %v", err)
		return false, errno.UpstreamErr
	}
	return published, nil
}

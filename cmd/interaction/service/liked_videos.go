package service

import (
	"context"

	"VideoTube.com/cmd/interaction/dal/db"
	"VideoTube.com/cmd/model"
	userdb "VideoTube.com/cmd/user/dal/db"
	videodb "VideoTube.com/cmd/video/dal/db"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type LikedVideosService struct {
	ctx context.Context
}

func NewLikedVideosService(ctx context.Context) *LikedVideosService {
	return &LikedVideosService{ctx: ctx}
}

// LikedVideos returns every video the user has liked, joined to its owner's
// profile projection.
func (s *LikedVideosService) LikedVideos(userId int64) ([]*model.VideoWithAuthor, error) {
	if !utils.ValidID(userId) {
		return nil, errno.InvalidIdentifierErr
	}

	videoIds, err := db.GetLikedVideoIds(s.ctx, userId)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "Failed to list liked video ids: %v", err)
		return nil, errno.UpstreamErr
	}
	result := make([]*model.VideoWithAuthor, 0, len(videoIds))
	if len(videoIds) == 0 {
		return result, nil
	}

	videos, err := videodb.GetVideosByIds(s.ctx, videoIds)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "Failed to load liked videos: %v", err)
		return nil, errno.UpstreamErr
	}

	ownerIds := make([]int64, 0, len(videos))
	for _, v := range videos {
		ownerIds = append(ownerIds, v.UserId)
	}
	owners, err := userdb.GetUserLites(s.ctx, ownerIds)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "Failed to load video owners: %v", err)
		return nil, errno.UpstreamErr
	}

	// preserve the like order from the fact store
	byId := make(map[int64]*model.Video, len(videos))
	for _, v := range videos {
		byId[v.VideoId] = v
	}
	for _, id := range videoIds {
		v, ok := byId[id]
		if !ok {
			continue // liked video has since been deleted
		}
		result = append(result, &model.VideoWithAuthor{Video: v, Author: owners[v.UserId]})
	}
	return result, nil
}

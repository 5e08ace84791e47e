package service

import (
	"context"

	interactiondb "VideoTube.com/cmd/interaction/dal/db"
	relationdb "VideoTube.com/cmd/relation/dal/db"
	"VideoTube.com/cmd/video/dal/db"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// ChannelStats is the aggregate dashboard of one channel. Every field falls
// back to zero on an empty base, never to an error.
type ChannelStats struct {
	TotalVideos      int64 `json:"total_videos"`
	TotalViews       int64 `json:"total_views"`
	TotalLikes       int64 `json:"total_likes"`
	TotalSubscribers int64 `json:"total_subscribers"`
}

type StatsService struct {
	ctx context.Context
}

func NewStatsService(ctx context.Context) *StatsService {
	return &StatsService{ctx: ctx}
}

// ChannelStats runs four independent aggregations; the result is a snapshot,
// not isolated from concurrent writes.
func (s *StatsService) ChannelStats(userId int64) (*ChannelStats, error) {
	if !utils.ValidID(userId) {
		return nil, errno.InvalidIdentifierErr
	}

	totalVideos, totalViews, err := db.GetUserVideoStats(s.ctx, userId)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "Failed to aggregate video stats: %v", err)
		return nil, errno.UpstreamErr
	}

	videoIds, err := db.GetUserVideoIds(s.ctx, userId)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "Failed to list channel videos: %v", err)
		return nil, errno.UpstreamErr
	}
	totalLikes, err := interactiondb.CountLikesForVideos(s.ctx, videoIds)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "Failed to count channel likes: %v", err)
		return nil, errno.UpstreamErr
	}

	totalSubscribers, err := relationdb.GetSubscriberCount(s.ctx, userId)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "Failed to count subscribers: %v", err)
		return nil, errno.UpstreamErr
	}

	return &ChannelStats{
		TotalVideos:      totalVideos,
		TotalViews:       totalViews,
		TotalLikes:       totalLikes,
		TotalSubscribers: totalSubscribers,
	}, nil
}

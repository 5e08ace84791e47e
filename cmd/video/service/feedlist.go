package service

import (
	"context"

	"VideoTube.com/cmd/model"
	userdb "VideoTube.com/cmd/user/dal/db"
	"VideoTube.com/cmd/video/dal/db"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// feedSortFields is the whitelist of caller-choosable sort columns.
var feedSortFields = map[string]bool{
	"created_at":  true,
	"visit_count": true,
	"duration":    true,
	"title":       true,
}

type FeedListRequest struct {
	Query    string
	UserId   int64 // optional owner filter; 0 means all owners
	SortBy   string
	SortType string
	PageNum  int64
	PageSize int64
}

type FeedListService struct {
	ctx context.Context
}

func NewFeedListService(ctx context.Context) *FeedListService {
	return &FeedListService{ctx: ctx}
}

// FeedList runs the feed pipeline and joins each row to its owner's profile.
func (s *FeedListService) FeedList(req *FeedListRequest) ([]*model.VideoWithAuthor, int64, error) {
	params := &db.FeedParams{
		Query:         req.Query,
		UserId:        req.UserId,
		OnlyPublished: true,
		Page:          utils.NormalizePagination(req.PageNum, req.PageSize),
		Sort:          utils.NormalizeSort(req.SortBy, req.SortType, feedSortFields),
	}

	videos, total, err := db.QueryVideos(s.ctx, params)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "Failed to query feed: %v", err)
		return nil, 0, errno.UpstreamErr
	}

	ownerIds := make([]int64, 0, len(videos))
	for _, v := range videos {
		ownerIds = append(ownerIds, v.UserId)
	}
	owners, err := userdb.GetUserLites(s.ctx, ownerIds)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "Failed to load feed owners: %v", err)
		return nil, 0, errno.UpstreamErr
	}

	rows := make([]*model.VideoWithAuthor, 0, len(videos))
	for _, v := range videos {
		rows = append(rows, &model.VideoWithAuthor{Video: v, Author: owners[v.UserId]})
	}
	return rows, total, nil
}

type VideoInfoService struct {
	ctx context.Context
}

func NewVideoInfoService(ctx context.Context) *VideoInfoService {
	return &VideoInfoService{ctx: ctx}
}

func (s *VideoInfoService) GetVideo(videoId int64) (*model.Video, error) {
	if !utils.ValidID(videoId) {
		return nil, errno.InvalidIdentifierErr
	}
	video, err := db.GetVideo(s.ctx, videoId)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "Failed to load video: %v", err)
		return nil, errno.UpstreamErr
	}
	if video == nil {
		return nil, errno.RecordNotFoundErr
	}
	return video, nil
}

package service

import (
	"context"
	"time"

	"VideoTube.com/cmd/model"
	"VideoTube.com/cmd/relation/dal/db"
	userdb "VideoTube.com/cmd/user/dal/db"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// SubscriberInfo is a subscriber-list row: the counterpart profile plus when
// the subscription was made.
type SubscriberInfo struct {
	*model.UserLite
	FollowedAt time.Time `json:"followed_at"`
}

type SubscriberListService struct {
	ctx context.Context
}

func NewSubscriberListService(ctx context.Context) *SubscriberListService {
	return &SubscriberListService{ctx: ctx}
}

// SubscriberList returns the profiles of everyone subscribed to the channel,
// newest subscription first.
func (s *SubscriberListService) SubscriberList(channelId int64) ([]*SubscriberInfo, error) {
	if !utils.ValidID(channelId) {
		return nil, errno.InvalidIdentifierErr
	}

	subs, err := db.GetSubscribers(s.ctx, channelId)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "Failed to list subscribers: %v", err)
		return nil, errno.UpstreamErr
	}
	rows := make([]*SubscriberInfo, 0, len(subs))
	if len(subs) == 0 {
		return rows, nil
	}

	userIds := make([]int64, 0, len(subs))
	for _, sub := range subs {
		userIds = append(userIds, sub.SubscriberId)
	}
	lites, err := userdb.GetUserLites(s.ctx, userIds)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "Failed to load subscriber profiles: %v", err)
		return nil, errno.UpstreamErr
	}

	for _, sub := range subs {
		lite, ok := lites[sub.SubscriberId]
		if !ok {
			continue
		}
		rows = append(rows, &SubscriberInfo{UserLite: lite, FollowedAt: sub.CreatedAt})
	}
	return rows, nil
}

// SubscribedChannels returns the profiles of every channel the user follows.
func (s *SubscriberListService) SubscribedChannels(subscriberId int64) ([]*model.UserLite, error) {
	if !utils.ValidID(subscriberId) {
		return nil, errno.InvalidIdentifierErr
	}

	subs, err := db.GetSubscribedChannels(s.ctx, subscriberId)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "Failed to list subscribed channels: %v", err)
		return nil, errno.UpstreamErr
	}
	rows := make([]*model.UserLite, 0, len(subs))
	if len(subs) == 0 {
		return rows, nil
	}

	channelIds := make([]int64, 0, len(subs))
	for _, sub := range subs {
		channelIds = append(channelIds, sub.ChannelId)
	}
	lites, err := userdb.GetUserLites(s.ctx, channelIds)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "Failed to load channel profiles: %v", err)
		return nil, errno.UpstreamErr
	}

	for _, sub := range subs {
		if lite, ok := lites[sub.ChannelId]; ok {
			rows = append(rows, lite)
		}
	}
	return rows, nil
}

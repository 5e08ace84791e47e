package service

import (
	"context"
	"time"

	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/mq"
	"VideoTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
)

type WatchService struct {
	ctx context.Context
}

func NewWatchService(ctx context.Context) *WatchService {
	return &WatchService{ctx: ctx}
}

// RecordWatch publishes a watch event; the visit counter is incremented
// asynchronously by the consumer so this path never writes to the store.
func (s *WatchService) RecordWatch(userId, videoId int64) error {
	if !utils.ValidID(videoId) {
		return errno.InvalidIdentifierErr
	}
	if mq.DefaultProducer == nil {
		hlog.CtxWarnf(s.ctx, "Watch event dropped, producer not configured")
		return nil
	}
	event := &mq.WatchEvent{
		EventID:   uuid.New().String(),
		UserID:    userId,
		VideoID:   videoId,
		Timestamp: time.Now().Unix(),
	}
	if err := mq.DefaultProducer.PublishWatchEvent(s.ctx, event); err != nil {
		return errno.UpstreamErr
	}
	return nil
}

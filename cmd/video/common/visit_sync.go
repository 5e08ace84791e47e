package common

import (
	"context"
	"time"

	"VideoTube.com/cmd/video/dal/db"
	"VideoTube.com/cmd/video/infras/redis"
	"VideoTube.com/pkg/mq"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// VisitCounter moves watch events into the redis hot counter.
type VisitCounter struct{}

func (VisitCounter) HandleWatchEvent(ctx context.Context, event *mq.WatchEvent) error {
	return redis.IncrVideoVisit(ctx, event.VideoID)
}

// StartWatchConsumer drains the watch queue into the redis counter until the
// context is cancelled.
func StartWatchConsumer(ctx context.Context, rabbitmqURL string) {
	go func() {
		consumer, err := mq.NewConsumer(rabbitmqURL)
		if err != nil {
			hlog.Errorf("Failed to start watch consumer: %v", err)
			return
		}
		defer consumer.Close()
		if err := consumer.ConsumeWatchEvents(ctx, VisitCounter{}); err != nil && ctx.Err() == nil {
			hlog.Errorf("Watch consumer stopped: %v", err)
		}
	}()
}

// StartVisitSyncWorker periodically folds the buffered counters into MySQL.
// The database stays the source of truth for every aggregation read.
func StartVisitSyncWorker(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				counts, err := redis.DrainVisitCounts(ctx)
				if err != nil {
					hlog.Errorf("Failed to drain visit counters: %v", err)
					continue
				}
				for videoId, delta := range counts {
					if err := db.IncrVisitCount(ctx, videoId, delta); err != nil {
						hlog.Errorf("Failed to sync visit count for video %d: %v", videoId, err)
					}
				}
			}
		}
	}()
}

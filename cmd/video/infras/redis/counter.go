package redis

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"VideoTube.com/config"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var rdb *redis.Client

const visitKeyPrefix = "video:visit:"

func Load() {
	c := config.ConfigInfo.Redis
	rdb = redis.NewClient(&redis.Options{
		Addr:     c.Addr,
		Password: c.Password,
		DB:       c.DB,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		logrus.Errorf("redis ping failed: %v", err)
		return
	}
	logrus.Info("redis ready")
}

// IncrVideoVisit buffers one watch in the hot counter.
func IncrVideoVisit(ctx context.Context, videoId int64) error {
	return rdb.Incr(ctx, fmt.Sprintf("%s%d", visitKeyPrefix, videoId)).Err()
}

// DrainVisitCounts atomically collects and resets the buffered counters so the
// sync worker can fold them into the primary store.
func DrainVisitCounts(ctx context.Context) (map[int64]int64, error) {
	counts := make(map[int64]int64)
	var cursor uint64
	for {
		keys, next, err := rdb.Scan(ctx, cursor, visitKeyPrefix+"*", 100).Result()
		if err != nil {
			return nil, err
		}
		for _, key := range keys {
			raw, err := rdb.GetDel(ctx, key).Result()
			if err == redis.Nil {
				continue
			}
			if err != nil {
				return nil, err
			}
			videoId, err := strconv.ParseInt(strings.TrimPrefix(key, visitKeyPrefix), 10, 64)
			if err != nil {
				continue
			}
			delta, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || delta == 0 {
				continue
			}
			counts[videoId] += delta
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	return counts, nil
}

package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"VideoTube.com/cmd/model"
	"VideoTube.com/cmd/tweet/dal/db"
	"VideoTube.com/pkg/errno"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&model.Tweet{}, &model.Like{}))
	db.DB = conn
	return conn
}

func TestTweetLifecycle(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	svc := NewTweetService(ctx)

	tweet, err := svc.CreateTweet(10, "  hello world  ")
	require.NoError(t, err)
	require.Equal(t, "hello world", tweet.Content)
	require.NotZero(t, tweet.TweetId)

	updated, err := svc.UpdateTweet(10, tweet.TweetId, "edited")
	require.NoError(t, err)
	require.Equal(t, "edited", updated.Content)

	require.NoError(t, svc.DeleteTweet(10, tweet.TweetId))

	_, err = svc.UpdateTweet(10, tweet.TweetId, "gone")
	require.ErrorIs(t, err, errno.RecordNotFoundErr)
}

func TestTweetValidation(t *testing.T) {
	setupTestDB(t)
	svc := NewTweetService(context.Background())

	_, err := svc.CreateTweet(10, "   ")
	require.ErrorIs(t, err, errno.ValidationFailedErr)
	_, err = svc.CreateTweet(0, "hello")
	require.ErrorIs(t, err, errno.InvalidIdentifierErr)
}

func TestTweetOwnershipEnforced(t *testing.T) {
	conn := setupTestDB(t)
	ctx := context.Background()
	svc := NewTweetService(ctx)

	tweet, err := svc.CreateTweet(10, "mine")
	require.NoError(t, err)

	_, err = svc.UpdateTweet(11, tweet.TweetId, "hijacked")
	require.ErrorIs(t, err, errno.ForbiddenErr)
	require.ErrorIs(t, svc.DeleteTweet(11, tweet.TweetId), errno.ForbiddenErr)

	var stored model.Tweet
	require.NoError(t, conn.First(&stored, "tweet_id = ?", tweet.TweetId).Error)
	require.Equal(t, "mine", stored.Content)
}

func TestDeleteTweetRemovesItsLikes(t *testing.T) {
	conn := setupTestDB(t)
	ctx := context.Background()
	svc := NewTweetService(ctx)

	tweet, err := svc.CreateTweet(10, "liked")
	require.NoError(t, err)
	require.NoError(t, conn.Create(&model.Like{
		LikeId: 1, UserId: 20, TargetKind: model.LikeTargetTweet, TargetId: tweet.TweetId,
	}).Error)

	require.NoError(t, svc.DeleteTweet(10, tweet.TweetId))

	var count int64
	require.NoError(t, conn.Model(&model.Like{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestUserTweetsNewestFirst(t *testing.T) {
	conn := setupTestDB(t)
	ctx := context.Background()

	base := time.Now()
	for i := 1; i <= 3; i++ {
		require.NoError(t, conn.Create(&model.Tweet{
			TweetId: int64(i), UserId: 10, Content: fmt.Sprintf("tweet %d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}).Error)
	}
	require.NoError(t, conn.Create(&model.Tweet{
		TweetId: 4, UserId: 11, Content: "someone else", CreatedAt: base,
	}).Error)

	tweets, err := NewTweetService(ctx).UserTweets(10)
	require.NoError(t, err)
	require.Len(t, tweets, 3)
	require.Equal(t, int64(3), tweets[0].TweetId)
	require.Equal(t, int64(1), tweets[2].TweetId)
}

package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"VideoTube.com/cmd/model"
	relationdb "VideoTube.com/cmd/relation/dal/db"
	userdb "VideoTube.com/cmd/user/dal/db"
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
	require.NoError(t, conn.AutoMigrate(&model.User{}, &model.Subscription{}))
	relationdb.DB = conn
	userdb.DB = conn
	return conn
}

func seedUser(t *testing.T, conn *gorm.DB, userId int64) {
	t.Helper()
	require.NoError(t, conn.Create(&model.User{
		UserId:   userId,
		Username: fmt.Sprintf("user%d", userId),
		Nickname: fmt.Sprintf("User %d", userId),
	}).Error)
}

func TestToggleSubscriptionAlternates(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	svc := NewRelationService(ctx)

	res, err := svc.ToggleSubscription(10, 20)
	require.NoError(t, err)
	require.Equal(t, ToggleAdded, res.Action)
	require.NotNil(t, res.Fact)

	res, err = svc.ToggleSubscription(10, 20)
	require.NoError(t, err)
	require.Equal(t, ToggleRemoved, res.Action)

	count, err := relationdb.GetSubscriberCount(ctx, 20)
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestToggleSubscriptionRejectsSelf(t *testing.T) {
	setupTestDB(t)
	svc := NewRelationService(context.Background())

	_, err := svc.ToggleSubscription(10, 10)
	require.ErrorIs(t, err, errno.SelfReferenceErr)
}

func TestToggleSubscriptionRejectsBadIds(t *testing.T) {
	setupTestDB(t)
	svc := NewRelationService(context.Background())

	_, err := svc.ToggleSubscription(0, 20)
	require.ErrorIs(t, err, errno.InvalidIdentifierErr)
	_, err = svc.ToggleSubscription(10, -2)
	require.ErrorIs(t, err, errno.InvalidIdentifierErr)
}

func TestSubscriptionsAreDirectional(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	svc := NewRelationService(ctx)

	_, err := svc.ToggleSubscription(10, 20)
	require.NoError(t, err)

	// the reverse direction is an independent fact
	res, err := svc.ToggleSubscription(20, 10)
	require.NoError(t, err)
	require.Equal(t, ToggleAdded, res.Action)
}

func TestSubscriberListNewestFirst(t *testing.T) {
	conn := setupTestDB(t)
	ctx := context.Background()
	for _, id := range []int64{10, 11, 12} {
		seedUser(t, conn, id)
	}

	base := time.Now()
	for i, subscriberId := range []int64{10, 11, 12} {
		require.NoError(t, conn.Create(&model.Subscription{
			SubscriptionId: int64(i + 1),
			SubscriberId:   subscriberId,
			ChannelId:      20,
			CreatedAt:      base.Add(time.Duration(i) * time.Second),
		}).Error)
	}

	rows, err := NewSubscriberListService(ctx).SubscriberList(20)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, "user12", rows[0].Username)
	require.Equal(t, "user10", rows[2].Username)
}

func TestSubscriberListEmptyChannel(t *testing.T) {
	setupTestDB(t)

	rows, err := NewSubscriberListService(context.Background()).SubscriberList(20)
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestSubscribedChannels(t *testing.T) {
	conn := setupTestDB(t)
	ctx := context.Background()
	seedUser(t, conn, 20)
	seedUser(t, conn, 21)

	svc := NewRelationService(ctx)
	_, err := svc.ToggleSubscription(10, 20)
	require.NoError(t, err)
	_, err = svc.ToggleSubscription(10, 21)
	require.NoError(t, err)

	channels, err := NewSubscriberListService(ctx).SubscribedChannels(10)
	require.NoError(t, err)
	require.Len(t, channels, 2)
}

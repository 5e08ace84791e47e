package db

import (
	"context"
	"testing"
	"time"

	"VideoTube.com/cmd/model"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&model.Like{}, &model.Comment{}))
	DB = conn
}

func TestCreateLikeDuplicateSuppressed(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	first := &model.Like{LikeId: 1, UserId: 10, TargetKind: model.LikeTargetVideo, TargetId: 100, CreatedAt: time.Now()}
	inserted, err := CreateLike(ctx, first)
	require.NoError(t, err)
	require.True(t, inserted)

	// same tuple, different surrogate id: the unique index swallows it
	dup := &model.Like{LikeId: 2, UserId: 10, TargetKind: model.LikeTargetVideo, TargetId: 100, CreatedAt: time.Now()}
	inserted, err = CreateLike(ctx, dup)
	require.NoError(t, err)
	require.False(t, inserted)

	count, err := GetLikeCount(ctx, model.LikeTargetVideo, 100)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}

func TestLikeTargetKindsDoNotCollide(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	for i, kind := range []string{model.LikeTargetVideo, model.LikeTargetComment, model.LikeTargetTweet} {
		inserted, err := CreateLike(ctx, &model.Like{
			LikeId: int64(i + 1), UserId: 10, TargetKind: kind, TargetId: 100, CreatedAt: time.Now(),
		})
		require.NoError(t, err)
		require.True(t, inserted, "kind %s", kind)
	}
}

func TestDeleteLikeAbsent(t *testing.T) {
	setupTestDB(t)

	removed, err := DeleteLike(context.Background(), 10, model.LikeTargetVideo, 100)
	require.NoError(t, err)
	require.False(t, removed)
}

func TestGetLikeAbsentReturnsNil(t *testing.T) {
	setupTestDB(t)

	like, err := GetLike(context.Background(), 10, model.LikeTargetVideo, 100)
	require.NoError(t, err)
	require.Nil(t, like)
}

func TestGetLikedVideoIdsOrder(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	base := time.Now()
	for i, videoId := range []int64{100, 200, 300} {
		_, err := CreateLike(ctx, &model.Like{
			LikeId:     int64(i + 1),
			UserId:     10,
			TargetKind: model.LikeTargetVideo,
			TargetId:   videoId,
			CreatedAt:  base.Add(time.Duration(i) * time.Second),
		})
		require.NoError(t, err)
	}
	// a comment like by the same user must not leak into the video feed
	_, err := CreateLike(ctx, &model.Like{
		LikeId: 4, UserId: 10, TargetKind: model.LikeTargetComment, TargetId: 400, CreatedAt: base,
	})
	require.NoError(t, err)

	ids, err := GetLikedVideoIds(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, []int64{300, 200, 100}, ids)
}

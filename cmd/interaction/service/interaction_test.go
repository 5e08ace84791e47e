package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	interactiondb "VideoTube.com/cmd/interaction/dal/db"
	"VideoTube.com/cmd/model"
	userdb "VideoTube.com/cmd/user/dal/db"
	videodb "VideoTube.com/cmd/video/dal/db"
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
	require.NoError(t, conn.AutoMigrate(
		&model.User{}, &model.Video{}, &model.Like{}, &model.Comment{},
	))
	interactiondb.DB = conn
	videodb.DB = conn
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

func seedVideo(t *testing.T, conn *gorm.DB, videoId, userId int64, title string, createdAt time.Time) {
	t.Helper()
	require.NoError(t, conn.Create(&model.Video{
		VideoId:     videoId,
		UserId:      userId,
		Title:       title,
		IsPublished: true,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}).Error)
}

func TestToggleLikeAlternates(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	svc := NewLikeActionService(ctx)

	for i := 1; i <= 5; i++ {
		res, err := svc.ToggleLike(10, model.LikeTargetVideo, 100)
		require.NoError(t, err)
		if i%2 == 1 {
			require.Equal(t, ToggleAdded, res.Action, "toggle %d", i)
		} else {
			require.Equal(t, ToggleRemoved, res.Action, "toggle %d", i)
		}
	}

	// odd number of toggles leaves exactly one fact
	count, err := interactiondb.GetLikeCount(ctx, model.LikeTargetVideo, 100)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}

func TestToggleLikeRejectsBadInput(t *testing.T) {
	setupTestDB(t)
	svc := NewLikeActionService(context.Background())

	_, err := svc.ToggleLike(0, model.LikeTargetVideo, 100)
	require.ErrorIs(t, err, errno.InvalidIdentifierErr)

	_, err = svc.ToggleLike(10, model.LikeTargetVideo, -1)
	require.ErrorIs(t, err, errno.InvalidIdentifierErr)

	_, err = svc.ToggleLike(10, "playlist", 100)
	require.ErrorIs(t, err, errno.ParamErr)
}

func TestCommentLifecycle(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	svc := NewCommentService(ctx)

	comment, err := svc.CreateComment(10, 100, "  first!  ")
	require.NoError(t, err)
	require.Equal(t, "first!", comment.Content)
	require.NotZero(t, comment.CommentId)

	updated, err := svc.UpdateComment(10, comment.CommentId, "edited")
	require.NoError(t, err)
	require.Equal(t, "edited", updated.Content)

	require.NoError(t, svc.DeleteComment(10, comment.CommentId))

	_, err = svc.UpdateComment(10, comment.CommentId, "gone")
	require.ErrorIs(t, err, errno.RecordNotFoundErr)
}

func TestCommentValidation(t *testing.T) {
	setupTestDB(t)
	svc := NewCommentService(context.Background())

	_, err := svc.CreateComment(10, 100, "   ")
	require.ErrorIs(t, err, errno.ValidationFailedErr)

	_, err = svc.CreateComment(10, 100, "")
	require.ErrorIs(t, err, errno.ValidationFailedErr)
}

func TestCommentOwnershipEnforced(t *testing.T) {
	conn := setupTestDB(t)
	ctx := context.Background()
	svc := NewCommentService(ctx)

	comment, err := svc.CreateComment(10, 100, "mine")
	require.NoError(t, err)

	_, err = svc.UpdateComment(11, comment.CommentId, "hijacked")
	require.ErrorIs(t, err, errno.ForbiddenErr)
	require.ErrorIs(t, svc.DeleteComment(11, comment.CommentId), errno.ForbiddenErr)

	// the failed mutations left the row untouched
	var stored model.Comment
	require.NoError(t, conn.First(&stored, "comment_id = ?", comment.CommentId).Error)
	require.Equal(t, "mine", stored.Content)
}

func TestListCommentsPagedNewestFirst(t *testing.T) {
	conn := setupTestDB(t)
	ctx := context.Background()
	seedUser(t, conn, 10)

	base := time.Now()
	for i := 0; i < 25; i++ {
		require.NoError(t, conn.Create(&model.Comment{
			CommentId: int64(i + 1),
			UserId:    10,
			VideoId:   100,
			Content:   fmt.Sprintf("comment %d", i+1),
			CreatedAt: base.Add(time.Duration(i) * time.Second),
			UpdatedAt: base.Add(time.Duration(i) * time.Second),
		}).Error)
	}

	svc := NewCommentListService(ctx)

	rows, total, err := svc.ListComments(100, 1, 10)
	require.NoError(t, err)
	require.Equal(t, int64(25), total)
	require.Len(t, rows, 10)
	require.Equal(t, int64(25), rows[0].CommentId)
	require.Equal(t, "user10", rows[0].Author.Username)

	rows, total, err = svc.ListComments(100, 3, 10)
	require.NoError(t, err)
	require.Equal(t, int64(25), total)
	require.Len(t, rows, 5)

	// past-the-end page is empty, not an error
	rows, total, err = svc.ListComments(100, 9, 10)
	require.NoError(t, err)
	require.Equal(t, int64(25), total)
	require.Empty(t, rows)

	// out-of-range paging values fall back to the defaults
	rows, _, err = svc.ListComments(100, 0, 500)
	require.NoError(t, err)
	require.Len(t, rows, 25)
}

func TestLikedVideosFeed(t *testing.T) {
	conn := setupTestDB(t)
	ctx := context.Background()
	seedUser(t, conn, 20)

	base := time.Now()
	seedVideo(t, conn, 100, 20, "first", base)
	seedVideo(t, conn, 200, 20, "second", base)

	likeSvc := NewLikeActionService(ctx)
	_, err := likeSvc.ToggleLike(10, model.LikeTargetVideo, 100)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	_, err = likeSvc.ToggleLike(10, model.LikeTargetVideo, 200)
	require.NoError(t, err)

	videos, err := NewLikedVideosService(ctx).LikedVideos(10)
	require.NoError(t, err)
	require.Len(t, videos, 2)
	require.Equal(t, int64(200), videos[0].VideoId)
	require.Equal(t, int64(100), videos[1].VideoId)
	require.Equal(t, "user20", videos[0].Author.Username)
}

func TestLikedVideosSkipsDeleted(t *testing.T) {
	conn := setupTestDB(t)
	ctx := context.Background()
	seedUser(t, conn, 20)
	seedVideo(t, conn, 100, 20, "kept", time.Now())

	likeSvc := NewLikeActionService(ctx)
	_, err := likeSvc.ToggleLike(10, model.LikeTargetVideo, 100)
	require.NoError(t, err)
	_, err = likeSvc.ToggleLike(10, model.LikeTargetVideo, 999)
	require.NoError(t, err)

	videos, err := NewLikedVideosService(ctx).LikedVideos(10)
	require.NoError(t, err)
	require.Len(t, videos, 1)
	require.Equal(t, int64(100), videos[0].VideoId)
}

package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"VideoTube.com/cmd/model"
	"VideoTube.com/cmd/playlist/dal/db"
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
		&model.User{}, &model.Video{}, &model.Playlist{}, &model.PlaylistVideo{},
	))
	db.DB = conn
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

func seedVideo(t *testing.T, conn *gorm.DB, videoId, userId int64, title string) {
	t.Helper()
	require.NoError(t, conn.Create(&model.Video{
		VideoId: videoId, UserId: userId, Title: title,
		IsPublished: true, CreatedAt: time.Now(),
	}).Error)
}

func TestPlaylistLifecycle(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	svc := NewPlaylistService(ctx)

	playlist, err := svc.CreatePlaylist(10, "  Favorites  ", " best of ")
	require.NoError(t, err)
	require.Equal(t, "Favorites", playlist.Name)
	require.Equal(t, "best of", playlist.Description)

	name := "Renamed"
	updated, err := svc.UpdatePlaylist(10, playlist.PlaylistId, &name, nil)
	require.NoError(t, err)
	require.Equal(t, "Renamed", updated.Name)
	require.Equal(t, "best of", updated.Description)

	// description may be cleared, name may not
	empty := ""
	updated, err = svc.UpdatePlaylist(10, playlist.PlaylistId, nil, &empty)
	require.NoError(t, err)
	require.Equal(t, "", updated.Description)
	_, err = svc.UpdatePlaylist(10, playlist.PlaylistId, &empty, nil)
	require.ErrorIs(t, err, errno.ValidationFailedErr)

	require.NoError(t, svc.DeletePlaylist(10, playlist.PlaylistId))
	require.ErrorIs(t, svc.DeletePlaylist(10, playlist.PlaylistId), errno.RecordNotFoundErr)
}

func TestPlaylistValidation(t *testing.T) {
	setupTestDB(t)
	svc := NewPlaylistService(context.Background())

	_, err := svc.CreatePlaylist(10, "   ", "desc")
	require.ErrorIs(t, err, errno.ValidationFailedErr)
	_, err = svc.CreatePlaylist(0, "name", "desc")
	require.ErrorIs(t, err, errno.InvalidIdentifierErr)
}

func TestPlaylistOwnership(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	svc := NewPlaylistService(ctx)

	playlist, err := svc.CreatePlaylist(10, "Mine", "")
	require.NoError(t, err)

	name := "Hijacked"
	_, err = svc.UpdatePlaylist(11, playlist.PlaylistId, &name, nil)
	require.ErrorIs(t, err, errno.ForbiddenErr)
	require.ErrorIs(t, svc.DeletePlaylist(11, playlist.PlaylistId), errno.ForbiddenErr)
	require.ErrorIs(t, svc.AddVideo(11, playlist.PlaylistId, 100), errno.ForbiddenErr)
	require.ErrorIs(t, svc.RemoveVideo(11, playlist.PlaylistId, 100), errno.ForbiddenErr)
}

func TestPlaylistMembershipIsASet(t *testing.T) {
	conn := setupTestDB(t)
	ctx := context.Background()
	svc := NewPlaylistService(ctx)

	playlist, err := svc.CreatePlaylist(10, "Set", "")
	require.NoError(t, err)

	require.NoError(t, svc.AddVideo(10, playlist.PlaylistId, 100))
	require.NoError(t, svc.AddVideo(10, playlist.PlaylistId, 100))

	var count int64
	require.NoError(t, conn.Model(&model.PlaylistVideo{}).Count(&count).Error)
	require.Equal(t, int64(1), count)

	require.NoError(t, svc.RemoveVideo(10, playlist.PlaylistId, 100))
	// removing again is a no-op, not an error
	require.NoError(t, svc.RemoveVideo(10, playlist.PlaylistId, 100))

	require.NoError(t, conn.Model(&model.PlaylistVideo{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestPlaylistDetail(t *testing.T) {
	conn := setupTestDB(t)
	ctx := context.Background()
	seedUser(t, conn, 10)
	svc := NewPlaylistService(ctx)

	playlist, err := svc.CreatePlaylist(10, "Watch Later", "")
	require.NoError(t, err)

	detailSvc := NewPlaylistDetailService(ctx)

	// empty member set: bare playlist, no joins
	detail, err := detailSvc.PlaylistDetail(playlist.PlaylistId)
	require.NoError(t, err)
	require.Equal(t, "Watch Later", detail.Name)
	require.Empty(t, detail.Videos)

	seedVideo(t, conn, 100, 10, "first added")
	seedVideo(t, conn, 200, 10, "second added")
	require.NoError(t, svc.AddVideo(10, playlist.PlaylistId, 100))
	require.NoError(t, svc.AddVideo(10, playlist.PlaylistId, 200))

	detail, err = detailSvc.PlaylistDetail(playlist.PlaylistId)
	require.NoError(t, err)
	require.Len(t, detail.Videos, 2)
	// members come back in insertion order
	require.Equal(t, int64(100), detail.Videos[0].VideoId)
	require.Equal(t, int64(200), detail.Videos[1].VideoId)
	require.NotNil(t, detail.Owner)
	require.Equal(t, "user10", detail.Owner.Username)

	_, err = detailSvc.PlaylistDetail(999)
	require.ErrorIs(t, err, errno.RecordNotFoundErr)
}

func TestPlaylistDetailSkipsDeletedVideos(t *testing.T) {
	conn := setupTestDB(t)
	ctx := context.Background()
	seedUser(t, conn, 10)
	svc := NewPlaylistService(ctx)

	playlist, err := svc.CreatePlaylist(10, "Holey", "")
	require.NoError(t, err)
	seedVideo(t, conn, 100, 10, "kept")
	require.NoError(t, svc.AddVideo(10, playlist.PlaylistId, 100))
	require.NoError(t, svc.AddVideo(10, playlist.PlaylistId, 999))

	detail, err := NewPlaylistDetailService(ctx).PlaylistDetail(playlist.PlaylistId)
	require.NoError(t, err)
	require.Len(t, detail.Videos, 1)
	require.Equal(t, int64(100), detail.Videos[0].VideoId)
}

func TestUserPlaylists(t *testing.T) {
	conn := setupTestDB(t)
	ctx := context.Background()
	seedUser(t, conn, 10)
	svc := NewPlaylistService(ctx)

	_, err := svc.CreatePlaylist(10, "One", "")
	require.NoError(t, err)
	_, err = svc.CreatePlaylist(10, "Two", "")
	require.NoError(t, err)

	rows, err := NewPlaylistDetailService(ctx).UserPlaylists(10)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "user10", rows[0].Owner.Username)

	rows, err = NewPlaylistDetailService(ctx).UserPlaylists(11)
	require.NoError(t, err)
	require.Empty(t, rows)
}

package db

import (
	"context"

	"VideoTube.com/cmd/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func CreatePlaylist(ctx context.Context, playlist *model.Playlist) error {
	return DB.WithContext(ctx).Create(playlist).Error
}

// GetPlaylist returns nil when the playlist id resolves to nothing.
func GetPlaylist(ctx context.Context, playlistId int64) (*model.Playlist, error) {
	var playlists []*model.Playlist
	if err := DB.WithContext(ctx).Model(&model.Playlist{}).
		Where("playlist_id = ?", playlistId).Limit(1).Find(&playlists).Error; err != nil {
		return nil, err
	}
	if len(playlists) == 0 {
		return nil, nil
	}
	return playlists[0], nil
}

func UpdatePlaylist(ctx context.Context, playlistId int64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	return DB.WithContext(ctx).Model(&model.Playlist{}).
		Where("playlist_id = ?", playlistId).Updates(updates).Error
}

// DeletePlaylist drops the playlist and its membership rows together.
func DeletePlaylist(ctx context.Context, playlistId int64) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("playlist_id = ?", playlistId).Delete(&model.PlaylistVideo{}).Error; err != nil {
			return err
		}
		return tx.Where("playlist_id = ?", playlistId).Delete(&model.Playlist{}).Error
	})
}

func GetUserPlaylists(ctx context.Context, userId int64) ([]*model.Playlist, error) {
	var playlists []*model.Playlist
	if err := DB.WithContext(ctx).Model(&model.Playlist{}).
		Where("user_id = ?", userId).
		Order("created_at desc").Find(&playlists).Error; err != nil {
		return nil, err
	}
	return playlists, nil
}

// AddVideoToPlaylist is a set union: adding an already-present member is a
// no-op thanks to the unique index on (playlist_id, video_id).
func AddVideoToPlaylist(ctx context.Context, member *model.PlaylistVideo) error {
	return DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(member).Error
}

// RemoveVideoFromPlaylist is a set difference: removing an absent member is a
// no-op.
func RemoveVideoFromPlaylist(ctx context.Context, playlistId, videoId int64) error {
	return DB.WithContext(ctx).
		Where("playlist_id = ? AND video_id = ?", playlistId, videoId).
		Delete(&model.PlaylistVideo{}).Error
}

// GetPlaylistVideoIds lists member video ids in insertion order.
func GetPlaylistVideoIds(ctx context.Context, playlistId int64) ([]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.PlaylistVideo{}).
		Where("playlist_id = ?", playlistId).
		Order("playlist_video_id asc").
		Select("video_id").Scan(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

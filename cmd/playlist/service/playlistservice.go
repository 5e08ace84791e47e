package service

import (
	"context"
	"strings"
	"time"

	"VideoTube.com/cmd/model"
	"VideoTube.com/cmd/playlist/dal/db"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/guard"
	"VideoTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type PlaylistService struct {
	ctx context.Context
}

func NewPlaylistService(ctx context.Context) *PlaylistService {
	return &PlaylistService{ctx: ctx}
}

func (s *PlaylistService) CreatePlaylist(userId int64, name, description string) (*model.Playlist, error) {
	if !utils.ValidID(userId) {
		return nil, errno.InvalidIdentifierErr
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errno.ValidationFailedErr
	}

	now := time.Now()
	playlist := &model.Playlist{
		PlaylistId:  utils.GenerateEntityID(),
		UserId:      userId,
		Name:        name,
		Description: strings.TrimSpace(description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := db.CreatePlaylist(s.ctx, playlist); err != nil {
		hlog.CtxErrorf(s.ctx, "Failed to create playlist: %v", err)
		return nil, errno.UpstreamErr
	}
	return playlist, nil
}

// UpdatePlaylist merges the provided fields. A provided name may not trim to
// empty; the description may.
func (s *PlaylistService) UpdatePlaylist(userId, playlistId int64, name, description *string) (*model.Playlist, error) {
	if !utils.ValidID(userId) || !utils.ValidID(playlistId) {
		return nil, errno.InvalidIdentifierErr
	}

	playlist, err := db.GetPlaylist(s.ctx, playlistId)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "Failed to load playlist: %v", err)
		return nil, errno.UpstreamErr
	}
	if err := guard.AssertOwner(playlist, userId); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return nil, errno.ValidationFailedErr
		}
		updates["name"] = trimmed
		playlist.Name = trimmed
	}
	if description != nil {
		trimmed := strings.TrimSpace(*description)
		updates["description"] = trimmed
		playlist.Description = trimmed
	}

	if err := db.UpdatePlaylist(s.ctx, playlistId, updates); err != nil {
		hlog.CtxErrorf(s.ctx, "Failed to update playlist: %v", err)
		return nil, errno.UpstreamErr
	}
	return playlist, nil
}

func (s *PlaylistService) DeletePlaylist(userId, playlistId int64) error {
	if !utils.ValidID(userId) || !utils.ValidID(playlistId) {
		return errno.InvalidIdentifierErr
	}

	playlist, err := db.GetPlaylist(s.ctx, playlistId)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "Failed to load playlist: %v", err)
		return errno.UpstreamErr
	}
	if err := guard.AssertOwner(playlist, userId); err != nil {
		return err
	}

	if err := db.DeletePlaylist(s.ctx, playlistId); err != nil {
		hlog.CtxErrorf(s.ctx, "Failed to delete playlist: %v", err)
		return errno.UpstreamErr
	}
	return nil
}

// AddVideo is idempotent: adding a member twice leaves one membership row.
func (s *PlaylistService) AddVideo(userId, playlistId, videoId int64) error {
	if !utils.ValidID(userId) || !utils.ValidID(playlistId) || !utils.ValidID(videoId) {
		return errno.InvalidIdentifierErr
	}

	playlist, err := db.GetPlaylist(s.ctx, playlistId)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "Failed to load playlist: %v", err)
		return errno.UpstreamErr
	}
	if err := guard.AssertOwner(playlist, userId); err != nil {
		return err
	}

	member := &model.PlaylistVideo{
		PlaylistVideoId: utils.GenerateEntityID(),
		PlaylistId:      playlistId,
		VideoId:         videoId,
		CreatedAt:       time.Now(),
	}
	if err := db.AddVideoToPlaylist(s.ctx, member); err != nil {
		hlog.CtxErrorf(s.ctx, "Failed to add playlist member: %v", err)
		return errno.UpstreamErr
	}
	return nil
}

// RemoveVideo is idempotent: removing an absent member succeeds.
func (s *PlaylistService) RemoveVideo(userId, playlistId, videoId int64) error {
	if !utils.ValidID(userId) || !utils.ValidID(playlistId) || !utils.ValidID(videoId) {
		return errno.InvalidIdentifierErr
	}

	playlist, err := db.GetPlaylist(s.ctx, playlistId)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "Failed to load playlist: %v", err)
		return errno.UpstreamErr
	}
	if err := guard.AssertOwner(playlist, userId); err != nil {
		return err
	}

	if err := db.RemoveVideoFromPlaylist(s.ctx, playlistId, videoId); err != nil {
		hlog.CtxErrorf(s.ctx, "Failed to remove playlist member: %v", err)
		return errno.UpstreamErr
	}
	return nil
}

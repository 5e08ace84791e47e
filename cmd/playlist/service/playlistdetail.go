package service

import (
	"context"

	"VideoTube.com/cmd/model"
	"VideoTube.com/cmd/playlist/dal/db"
	userdb "VideoTube.com/cmd/user/dal/db"
	videodb "VideoTube.com/cmd/video/dal/db"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type PlaylistDetailService struct {
	ctx context.Context
}

func NewPlaylistDetailService(ctx context.Context) *PlaylistDetailService {
	return &PlaylistDetailService{ctx: ctx}
}

// PlaylistDetail returns the playlist with its member-video and owner
// projections. An empty member set returns the bare playlist and skips the
// joins entirely.
func (s *PlaylistDetailService) PlaylistDetail(playlistId int64) (*model.PlaylistDetail, error) {
	if !utils.ValidID(playlistId) {
		return nil, errno.InvalidIdentifierErr
	}

	playlist, err := db.GetPlaylist(s.ctx, playlistId)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "Failed to load playlist: %v", err)
		return nil, errno.UpstreamErr
	}
	if playlist == nil {
		return nil, errno.RecordNotFoundErr
	}

	videoIds, err := db.GetPlaylistVideoIds(s.ctx, playlistId)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "Failed to list playlist members: %v", err)
		return nil, errno.UpstreamErr
	}
	if len(videoIds) == 0 {
		return &model.PlaylistDetail{Playlist: playlist}, nil
	}

	videos, err := videodb.GetVideosByIds(s.ctx, videoIds)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "Failed to load playlist videos: %v", err)
		return nil, errno.UpstreamErr
	}
	byId := make(map[int64]*model.Video, len(videos))
	for _, v := range videos {
		byId[v.VideoId] = v
	}
	lites := make([]*model.VideoLite, 0, len(videoIds))
	for _, id := range videoIds {
		if v, ok := byId[id]; ok {
			lites = append(lites, v.Lite())
		}
	}

	owners, err := userdb.GetUserLites(s.ctx, []int64{playlist.UserId})
	if err != nil {
		hlog.CtxErrorf(s.ctx, "Failed to load playlist owner: %v", err)
		return nil, errno.UpstreamErr
	}

	return &model.PlaylistDetail{
		Playlist: playlist,
		Videos:   lites,
		Owner:    owners[playlist.UserId],
	}, nil
}

// UserPlaylists lists a user's playlists joined to the owner projection.
func (s *PlaylistDetailService) UserPlaylists(userId int64) ([]*model.PlaylistWithOwner, error) {
	if !utils.ValidID(userId) {
		return nil, errno.InvalidIdentifierErr
	}

	playlists, err := db.GetUserPlaylists(s.ctx, userId)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "Failed to list playlists: %v", err)
		return nil, errno.UpstreamErr
	}
	rows := make([]*model.PlaylistWithOwner, 0, len(playlists))
	if len(playlists) == 0 {
		return rows, nil
	}

	owners, err := userdb.GetUserLites(s.ctx, []int64{userId})
	if err != nil {
		hlog.CtxErrorf(s.ctx, "Failed to load playlist owner: %v", err)
		return nil, errno.UpstreamErr
	}
	for _, p := range playlists {
		rows = append(rows, &model.PlaylistWithOwner{Playlist: p, Owner: owners[p.UserId]})
	}
	return rows, nil
}

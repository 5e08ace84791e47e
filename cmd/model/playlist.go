package model

import "time"

type Playlist struct {
	PlaylistId  int64     `json:"playlist_id" gorm:"primaryKey"`
	UserId      int64     `json:"user_id" gorm:"index"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Playlist) TableName() string { return "playlists" }

func (p *Playlist) OwnerID() int64 { return p.UserId }

// PlaylistVideo is a membership row. The composite unique index makes the
// member set a real set: a duplicate add collapses into the existing row.
type PlaylistVideo struct {
	PlaylistVideoId int64     `json:"playlist_video_id" gorm:"primaryKey"`
	PlaylistId      int64     `json:"playlist_id" gorm:"uniqueIndex:uk_playlist_video"`
	VideoId         int64     `json:"video_id" gorm:"uniqueIndex:uk_playlist_video"`
	CreatedAt       time.Time `json:"created_at"`
}

func (PlaylistVideo) TableName() string { return "playlist_videos" }

// PlaylistDetail is the aggregate view of a playlist. Videos stays empty when
// the member set is empty; no join is attempted in that case.
type PlaylistDetail struct {
	*Playlist
	Videos []*VideoLite `json:"videos,omitempty"`
	Owner  *UserLite    `json:"owner,omitempty"`
}

// PlaylistWithOwner is a per-user playlist listing row.
type PlaylistWithOwner struct {
	*Playlist
	Owner *UserLite `json:"owner"`
}

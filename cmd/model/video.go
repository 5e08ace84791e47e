package model

import "time"

type Video struct {
	VideoId     int64     `json:"video_id" gorm:"primaryKey"`
	UserId      int64     `json:"user_id" gorm:"index"`
	VideoUrl    string    `json:"video_url"`
	CoverUrl    string    `json:"cover_url"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Duration    float64   `json:"duration"`
	VisitCount  int64     `json:"visit_count"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Video) TableName() string { return "videos" }

func (v *Video) OwnerID() int64 { return v.UserId }

// VideoLite is the projection of a playlist member video.
type VideoLite struct {
	VideoId     int64     `json:"video_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Duration    float64   `json:"duration"`
	CreatedAt   time.Time `json:"created_at"`
}

func (v *Video) Lite() *VideoLite {
	return &VideoLite{
		VideoId:     v.VideoId,
		Title:       v.Title,
		Description: v.Description,
		Duration:    v.Duration,
		CreatedAt:   v.CreatedAt,
	}
}

// VideoWithAuthor is a feed row: the video joined to its owner's profile.
type VideoWithAuthor struct {
	*Video
	Author *UserLite `json:"author"`
}

package model

import "time"

const (
	LikeTargetVideo   = "video"
	LikeTargetComment = "comment"
	LikeTargetTweet   = "tweet"
)

// Like is a relationship fact: at most one row may exist per
// (user, target kind, target id) tuple. The composite unique index closes the
// read-then-insert race window between concurrent toggles.
type Like struct {
	LikeId     int64     `json:"like_id" gorm:"primaryKey"`
	UserId     int64     `json:"user_id" gorm:"uniqueIndex:uk_like_target"`
	TargetKind string    `json:"target_kind" gorm:"size:16;uniqueIndex:uk_like_target"`
	TargetId   int64     `json:"target_id" gorm:"uniqueIndex:uk_like_target"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Like) TableName() string { return "likes" }

func ValidLikeTarget(kind string) bool {
	switch kind {
	case LikeTargetVideo, LikeTargetComment, LikeTargetTweet:
		return true
	}
	return false
}

type Comment struct {
	CommentId int64     `json:"comment_id" gorm:"primaryKey"`
	UserId    int64     `json:"user_id" gorm:"index"`
	VideoId   int64     `json:"video_id" gorm:"index"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Comment) TableName() string { return "comments" }

func (c *Comment) OwnerID() int64 { return c.UserId }

// CommentWithAuthor is a comment-feed row.
type CommentWithAuthor struct {
	*Comment
	Author *UserLite `json:"author"`
}

package model

import "time"

// User rows are owned by the identity subsystem; this service only reads them
// to project profiles into aggregate views.
type User struct {
	UserId    int64     `json:"user_id" gorm:"primaryKey"`
	Username  string    `json:"username"`
	Nickname  string    `json:"nickname"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
}

func (User) TableName() string { return "users" }

// UserLite is the public profile projection joined into aggregate views.
type UserLite struct {
	UserId   int64  `json:"user_id"`
	Username string `json:"username"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
}

func (u *User) Lite() *UserLite {
	return &UserLite{
		UserId:   u.UserId,
		Username: u.Username,
		Nickname: u.Nickname,
		Avatar:   u.Avatar,
	}
}

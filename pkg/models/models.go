package models

import (
	"time"
)

type User struct {
	ID                 uint      `gorm:"primary_key" json:"id"`
	ChannelName        string    `gorm:"unique_index;not null" json:"channel_name"`
	ChannelDescription string    `json:"channel_description"`
	Email              string    `gorm:"unique_index;not null" json:"email"`
	Password           string    `json:"-"`
	ProfilePicturePath string    `json:"-"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type Video struct {
	ID          uint      `gorm:"primary_key" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	VideoPath   string    `json:"-"`
	PosterPath  string    `json:"-"`
	Views       uint64    `gorm:"default:0" json:"views"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	User User `gorm:"foreignkey:UserID" json:"-"`
}

// Like records that a user liked a video. The composite unique index keeps a
// racing double-toggle from inserting two rows for the same pair.
type Like struct {
	ID        uint      `gorm:"primary_key" json:"id"`
	UserID    uint      `gorm:"unique_index:idx_likes_user_video;not null" json:"user_id"`
	VideoID   uint      `gorm:"unique_index:idx_likes_user_video;not null" json:"video_id"`
	CreatedAt time.Time `json:"created_at"`
}

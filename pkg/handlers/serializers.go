package handlers

import (
	"log"

	"videoshare/pkg/database"
	"videoshare/pkg/models"
)

const timeFormat = "2006-01-02 15:04:05"

// UserResource is the public shape of an account. The password hash never
// leaves the model.
type UserResource struct {
	ID                 uint    `json:"id"`
	ChannelName        string  `json:"channel_name"`
	Email              string  `json:"email"`
	ChannelDescription *string `json:"channel_description"`
	ProfilePictureURL  *string `json:"profile_picture_url"`
	CreatedAt          string  `json:"created_at"`
}

type VideoResource struct {
	ID          uint          `json:"id"`
	Title       string        `json:"title"`
	Description *string       `json:"description"`
	VideoURL    string        `json:"video_url"`
	PosterURL   string        `json:"poster_url"`
	Views       uint64        `json:"views"`
	Duration    *string       `json:"duration"`
	LikesCount  int           `json:"likes_count"`
	IsLiked     bool          `json:"is_liked"`
	User        *UserResource `json:"user,omitempty"`
	CreatedAt   string        `json:"created_at"`
}

func (a *API) userResource(u *models.User) UserResource {
	res := UserResource{
		ID:          u.ID,
		ChannelName: u.ChannelName,
		Email:       u.Email,
		CreatedAt:   u.CreatedAt.Format(timeFormat),
	}
	if u.ChannelDescription != "" {
		desc := u.ChannelDescription
		res.ChannelDescription = &desc
	}
	if u.ProfilePicturePath != "" {
		url := a.Store.URL(u.ProfilePicturePath)
		res.ProfilePictureURL = &url
	}
	return res
}

// videoResource shapes a video for a response. Duration is only derived for
// single-record responses; collections skip the probe entirely.
func (a *API) videoResource(v *models.Video, caller *models.User, withDuration bool) VideoResource {
	res := VideoResource{
		ID:         v.ID,
		Title:      v.Title,
		VideoURL:   a.Store.URL(v.VideoPath),
		PosterURL:  a.Store.URL(v.PosterPath),
		Views:      v.Views,
		LikesCount: likesCount(v.ID),
		CreatedAt:  v.CreatedAt.Format(timeFormat),
	}
	if v.Description != "" {
		desc := v.Description
		res.Description = &desc
	}
	if caller != nil {
		res.IsLiked = likedByUser(v.ID, caller.ID)
	}
	if v.User.ID != 0 {
		user := a.userResource(&v.User)
		res.User = &user
	}
	if withDuration {
		if d, err := a.Durations.Get(v.ID, a.Store.ProbePath(v.VideoPath)); err != nil {
			log.Printf("duration probe failed for video %d: %v", v.ID, err)
		} else {
			res.Duration = &d
		}
	}
	return res
}

func (a *API) videoCollection(videos []models.Video, caller *models.User) []VideoResource {
	out := make([]VideoResource, len(videos))
	for i := range videos {
		out[i] = a.videoResource(&videos[i], caller, false)
	}
	return out
}

func likesCount(videoID uint) int {
	var n int
	database.DB.Model(&models.Like{}).Where("video_id = ?", videoID).Count(&n)
	return n
}

func likedByUser(videoID, userID uint) bool {
	var n int
	database.DB.Model(&models.Like{}).
		Where("video_id = ? AND user_id = ?", videoID, userID).
		Count(&n)
	return n > 0
}

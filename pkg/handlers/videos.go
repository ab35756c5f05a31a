package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"

	"videoshare/pkg/auth"
	"videoshare/pkg/database"
	"videoshare/pkg/models"
)

const pageSize = 10

// ListVideos is the public feed: optional case-insensitive title search,
// optional owner filter, newest-first, fixed page size. The meta block echoes
// the active filters so page links keep the query.
func (a *API) ListVideos(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	search := c.Query("search")
	userID := c.Query("user_id")

	query := database.DB.Model(&models.Video{}).Preload("User")
	if search != "" {
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	var total int
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to list videos"})
		return
	}

	var videos []models.Video
	err = query.Order("created_at DESC, id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&videos).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to list videos"})
		return
	}

	lastPage := (total + pageSize - 1) / pageSize
	if lastPage < 1 {
		lastPage = 1
	}

	c.JSON(http.StatusOK, gin.H{
		"data": a.videoCollection(videos, auth.CurrentUser(c)),
		"meta": gin.H{
			"current_page": page,
			"last_page":    lastPage,
			"per_page":     pageSize,
			"total":        total,
			"search":       search,
			"user_id":      userID,
		},
	})
}

// ShowVideo returns one video with its owner. Every read counts as a view.
func (a *API) ShowVideo(c *gin.Context) {
	video, ok := findVideo(c)
	if !ok {
		return
	}

	if err := database.DB.Model(video).UpdateColumn("views", gorm.Expr("views + ?", 1)).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load video"})
		return
	}
	video.Views++

	if err := database.DB.Model(video).Related(&video.User).Error; err != nil && !gorm.IsRecordNotFoundError(err) {
		log.Printf("loading owner of video %d: %v", video.ID, err)
	}

	c.JSON(http.StatusOK, gin.H{"data": a.videoResource(video, auth.CurrentUser(c), true)})
}

// CreateVideo stores the uploaded video and poster, then records the video
// owned by the caller. Validation runs before any file is written.
func (a *API) CreateVideo(c *gin.Context) {
	user := auth.CurrentUser(c)

	title := c.PostForm("title")
	description := c.PostForm("description")

	errs := ValidationErrors{}
	requireText(errs, "title", title, 255)
	limitText(errs, "description", description, 2000)

	videoFile, err := c.FormFile("video")
	if err != nil {
		errs.Add("video", "The video field is required.")
	} else {
		validateFile(errs, "video", videoFile, videoExts, maxVideoBytes)
	}

	posterFile, err := c.FormFile("poster")
	if err != nil {
		errs.Add("poster", "The poster field is required.")
	} else {
		validateFile(errs, "poster", posterFile, posterExts, maxPosterBytes)
	}

	if !errs.Empty() {
		respondValidation(c, errs)
		return
	}

	videoPath, err := a.saveUpload(videoFile, "videos")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to store video file"})
		return
	}
	posterPath, err := a.saveUpload(posterFile, "posters")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to store poster"})
		return
	}

	video := models.Video{
		UserID:      user.ID,
		Title:       title,
		Description: description,
		VideoPath:   videoPath,
		PosterPath:  posterPath,
	}
	if err := database.DB.Create(&video).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save video"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": a.videoResource(&video, user, false)})
}

// UpdateVideo lets the owner change any subset of title, description and the
// two files. A replacement file displaces the old one in storage; omitted
// fields keep their values.
func (a *API) UpdateVideo(c *gin.Context) {
	video, ok := findVideo(c)
	if !ok {
		return
	}
	user := auth.CurrentUser(c)
	if video.UserID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"message": "You cannot edit someone else's video."})
		return
	}

	title, hasTitle := c.GetPostForm("title")
	description, hasDescription := c.GetPostForm("description")

	errs := ValidationErrors{}
	if hasTitle {
		requireText(errs, "title", title, 255)
	}
	if hasDescription {
		limitText(errs, "description", description, 2000)
	}

	videoFile, err := c.FormFile("video")
	hasVideoFile := err == nil
	if hasVideoFile {
		validateFile(errs, "video", videoFile, videoExts, maxVideoBytes)
	} else if !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart) {
		errs.Add("video", "The video failed to upload.")
	}

	posterFile, err := c.FormFile("poster")
	hasPosterFile := err == nil
	if hasPosterFile {
		validateFile(errs, "poster", posterFile, posterExts, maxPosterBytes)
	} else if !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart) {
		errs.Add("poster", "The poster failed to upload.")
	}

	if !errs.Empty() {
		respondValidation(c, errs)
		return
	}

	if hasVideoFile {
		if err := a.Store.Delete(video.VideoPath); err != nil {
			log.Printf("deleting old video file %s: %v", video.VideoPath, err)
		}
		path, err := a.saveUpload(videoFile, "videos")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to store video file"})
			return
		}
		video.VideoPath = path
	}
	if hasPosterFile {
		if video.PosterPath != "" {
			if err := a.Store.Delete(video.PosterPath); err != nil {
				log.Printf("deleting old poster %s: %v", video.PosterPath, err)
			}
		}
		path, err := a.saveUpload(posterFile, "posters")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to store poster"})
			return
		}
		video.PosterPath = path
	}

	if hasTitle {
		video.Title = title
	}
	if hasDescription {
		video.Description = description
	}

	if err := database.DB.Save(video).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update video"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": a.videoResource(video, user, false)})
}

// DeleteVideo removes the record, its likes and, best-effort, both backing
// files. Storage failures are logged and not surfaced.
func (a *API) DeleteVideo(c *gin.Context) {
	video, ok := findVideo(c)
	if !ok {
		return
	}
	user := auth.CurrentUser(c)
	if video.UserID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"message": "Access denied"})
		return
	}

	for _, path := range []string{video.VideoPath, video.PosterPath} {
		if path == "" {
			continue
		}
		if err := a.Store.Delete(path); err != nil {
			log.Printf("deleting file %s of video %d: %v", path, video.ID, err)
		}
	}

	database.DB.Where("video_id = ?", video.ID).Delete(&models.Like{})
	if err := database.DB.Delete(video).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete video"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Video deleted"})
}

// ToggleLike flips the caller's like on a video. The unique index on
// (user_id, video_id) turns a concurrent double-create into a no-op.
func (a *API) ToggleLike(c *gin.Context) {
	video, ok := findVideo(c)
	if !ok {
		return
	}
	user := auth.CurrentUser(c)

	status := "liked"
	var like models.Like
	err := database.DB.Where("user_id = ? AND video_id = ?", user.ID, video.ID).First(&like).Error
	switch {
	case err == nil:
		if err := database.DB.Delete(&like).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update like"})
			return
		}
		status = "unliked"
	case gorm.IsRecordNotFoundError(err):
		like = models.Like{UserID: user.ID, VideoID: video.ID}
		if err := database.DB.Create(&like).Error; err != nil && !isUniqueViolation(err) {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update like"})
			return
		}
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update like"})
		return
	}

	message := "Video liked"
	if status == "unliked" {
		message = "Like removed"
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     message,
		"status":      status,
		"likes_count": likesCount(video.ID),
		"is_liked":    status == "liked",
	})
}

// findVideo resolves the :id route param, writing the 404 itself on a miss.
func findVideo(c *gin.Context) (*models.Video, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Video not found"})
		return nil, false
	}

	var video models.Video
	if err := database.DB.First(&video, id).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Video not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load video"})
		}
		return nil, false
	}
	return &video, true
}

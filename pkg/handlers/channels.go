package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"

	"videoshare/pkg/auth"
	"videoshare/pkg/database"
	"videoshare/pkg/models"
)

// ShowChannel returns an account's public profile.
func (a *API) ShowChannel(c *gin.Context) {
	user, ok := findChannel(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": a.userResource(user)})
}

// ChannelVideos returns every video owned by the account, newest first.
func (a *API) ChannelVideos(c *gin.Context) {
	user, ok := findChannel(c)
	if !ok {
		return
	}

	var videos []models.Video
	err := database.DB.Where("user_id = ?", user.ID).
		Preload("User").
		Order("created_at DESC, id DESC").
		Find(&videos).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to list videos"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": a.videoCollection(videos, auth.CurrentUser(c))})
}

func findChannel(c *gin.Context) (*models.User, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Channel not found"})
		return nil, false
	}

	var user models.User
	if err := database.DB.First(&user, id).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Channel not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load channel"})
		}
		return nil, false
	}
	return &user, true
}

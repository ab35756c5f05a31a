package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"golang.org/x/crypto/bcrypt"

	"videoshare/pkg/auth"
	"videoshare/pkg/database"
	"videoshare/pkg/models"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates an account from a multipart form. Every check, including
// uniqueness, runs before the avatar is written so a rejected registration
// leaves nothing behind in storage.
func (a *API) Register(c *gin.Context) {
	channelName := c.PostForm("channel_name")
	channelDescription := c.PostForm("channel_description")
	email := c.PostForm("email")
	password := c.PostForm("password")

	errs := ValidationErrors{}
	requireText(errs, "channel_name", channelName, 255)
	limitText(errs, "channel_description", channelDescription, 1000)
	validateEmail(errs, email)
	if len(password) < 8 {
		errs.Add("password", "The password must be at least 8 characters.")
	}

	avatar, err := c.FormFile("profile_picture")
	switch {
	case err == nil:
		validateFile(errs, "profile_picture", avatar, posterExts, maxAvatarBytes)
	case !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart):
		errs.Add("profile_picture", "The profile picture failed to upload.")
	}

	if _, ok := errs["channel_name"]; !ok {
		var n int
		database.DB.Model(&models.User{}).Where("channel_name = ?", channelName).Count(&n)
		if n > 0 {
			errs.Add("channel_name", "The channel name has already been taken.")
		}
	}
	if _, ok := errs["email"]; !ok {
		var n int
		database.DB.Model(&models.User{}).Where("email = ?", email).Count(&n)
		if n > 0 {
			errs.Add("email", "The email has already been taken.")
		}
	}

	if !errs.Empty() {
		respondValidation(c, errs)
		return
	}

	var avatarPath string
	if avatar != nil {
		avatarPath, err = a.saveUpload(avatar, "avatars")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to store profile picture"})
			return
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating user"})
		return
	}

	user := models.User{
		ChannelName:        channelName,
		ChannelDescription: channelDescription,
		Email:              email,
		Password:           string(hashed),
		ProfilePicturePath: avatarPath,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating user"})
		return
	}

	token, err := auth.GenerateJWT(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error generating token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful",
		"data":    a.userResource(&user),
		"token":   token,
	})
}

// Login verifies credentials and issues a fresh token. Unknown email and
// wrong password produce the same response so accounts cannot be enumerated.
func (a *API) Login(c *gin.Context) {
	var req loginRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if !gorm.IsRecordNotFoundError(err) {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error logging in"})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}

	token, err := auth.GenerateJWT(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error generating token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"data":    a.userResource(&user),
		"token":   token,
	})
}

// Me returns the authenticated caller's account.
func (a *API) Me(c *gin.Context) {
	user := auth.CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{"data": a.userResource(user)})
}

package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"

	"videoshare/pkg/database"
	"videoshare/pkg/models"
)

const userKey = "auth.user"

// RequireAuth rejects the request unless a valid bearer token resolves to an
// existing user. The user is stored on the context for CurrentUser.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := resolveUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthenticated"})
			return
		}
		c.Set(userKey, user)
		c.Next()
	}
}

// OptionalAuth resolves the caller when a valid token is present but lets
// anonymous requests through. Public listings use it for the is_liked flag.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, ok := resolveUser(c); ok {
			c.Set(userKey, user)
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated caller, or nil when anonymous.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	user, ok := v.(*models.User)
	if !ok {
		return nil
	}
	return user
}

func resolveUser(c *gin.Context) (*models.User, bool) {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, false
	}

	claims, err := ValidateJWT(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		return nil, false
	}

	var user models.User
	if err := database.DB.First(&user, claims.UserID).Error; err != nil {
		if !gorm.IsRecordNotFoundError(err) {
			c.Error(err)
		}
		return nil, false
	}
	return &user, true
}

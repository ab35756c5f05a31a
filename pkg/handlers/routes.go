package handlers

import (
	"github.com/gin-gonic/gin"

	"videoshare/pkg/auth"
)

// Routes wires every API endpoint onto the router.
func Routes(r *gin.Engine, api *API) {
	r.POST("/register", api.Register)
	r.POST("/login", api.Login)

	r.GET("/user", auth.RequireAuth(), api.Me)

	r.GET("/videos", auth.OptionalAuth(), api.ListVideos)
	r.GET("/videos/:id", auth.OptionalAuth(), api.ShowVideo)
	r.POST("/videos", auth.RequireAuth(), api.CreateVideo)
	r.PUT("/videos/:id", auth.RequireAuth(), api.UpdateVideo)
	r.DELETE("/videos/:id", auth.RequireAuth(), api.DeleteVideo)
	r.POST("/videos/:id/like", auth.RequireAuth(), api.ToggleLike)

	r.GET("/channels/:id", api.ShowChannel)
	r.GET("/channels/:id/videos", auth.OptionalAuth(), api.ChannelVideos)
}

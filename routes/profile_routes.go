package routes

import (
	"github.com/gin-gonic/gin"

	"travelog/internal/handlers"
)

func SetupProfileRoutes(r *gin.RouterGroup, h *handlers.ProfileHandler, authRequired, mutationLimit gin.HandlerFunc) {
	profile := r.Group("/profile")
	{
		profile.GET("", authRequired, h.Get)
		profile.PUT("", mutationLimit, authRequired, h.Update)
		profile.POST("/photo", mutationLimit, authRequired, h.UploadPhoto)
	}
}

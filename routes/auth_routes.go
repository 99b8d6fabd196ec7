package routes

import (
	"github.com/gin-gonic/gin"

	"travelog/internal/handlers"
)

// SetupAuthRoutes registers registration and login under the strict
// auth rate-limit pool.
func SetupAuthRoutes(r *gin.RouterGroup, h *handlers.AuthHandler, authLimit gin.HandlerFunc) {
	auth := r.Group("/auth")
	auth.Use(authLimit)
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}
}

package routes

import (
	"github.com/gin-gonic/gin"

	"travelog/internal/handlers"
)

func SetupPostRoutes(r *gin.RouterGroup, h *handlers.PostHandler, authRequired, optionalAuth, mutationLimit gin.HandlerFunc) {
	posts := r.Group("/posts")
	{
		posts.GET("", optionalAuth, h.List)
		posts.GET("/:id", optionalAuth, h.Get)
		posts.POST("", mutationLimit, authRequired, h.Create)
		posts.PUT("/:id", mutationLimit, authRequired, h.Update)
		posts.DELETE("/:id", mutationLimit, authRequired, h.Delete)
	}
}

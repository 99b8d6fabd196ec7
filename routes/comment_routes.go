package routes

import (
	"github.com/gin-gonic/gin"

	"travelog/internal/handlers"
)

func SetupCommentRoutes(r *gin.RouterGroup, h *handlers.CommentHandler, authRequired, optionalAuth, mutationLimit gin.HandlerFunc) {
	comments := r.Group("/comments")
	{
		comments.GET("", optionalAuth, h.ListByPost)
		comments.POST("", mutationLimit, authRequired, h.Create)
		comments.PUT("/:id", mutationLimit, authRequired, h.Update)
		// PATCH toggles the hidden flag, editors and admins only.
		comments.PATCH("/:id", mutationLimit, authRequired, h.ToggleHidden)
		comments.DELETE("/:id", mutationLimit, authRequired, h.Delete)
	}
}

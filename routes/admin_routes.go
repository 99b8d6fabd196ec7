package routes

import (
	"github.com/gin-gonic/gin"

	"travelog/internal/handlers"
	"travelog/internal/middleware"
)

func SetupAdminRoutes(r *gin.RouterGroup, h *handlers.AdminHandler, authRequired, mutationLimit gin.HandlerFunc) {
	admin := r.Group("/admin")
	{
		admin.GET("/users", authRequired, middleware.AdminRequired(), h.ListUsers)
		admin.POST("/users/:id/block", mutationLimit, authRequired, middleware.AdminRequired(), h.BlockUser)
		admin.DELETE("/users/:id/block", mutationLimit, authRequired, middleware.AdminRequired(), h.UnblockUser)
	}
}

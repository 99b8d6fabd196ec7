package routes

import (
	"github.com/gin-gonic/gin"

	"travelog/internal/handlers"
)

func SetupStatsRoutes(r *gin.RouterGroup, h *handlers.StatsHandler) {
	r.GET("/stats", h.GetPlatformStats)
}

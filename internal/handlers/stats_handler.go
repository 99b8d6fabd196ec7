package handlers

import (
	"github.com/gin-gonic/gin"

	"travelog/internal/services"
	"travelog/internal/utils"
	"travelog/pkg/logger"
)

type StatsHandler struct {
	statsService services.StatsService
	logger       *logger.Logger
}

func NewStatsHandler(statsService services.StatsService, log *logger.Logger) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
		logger:       log,
	}
}

func (h *StatsHandler) GetPlatformStats(c *gin.Context) {
	stats, err := h.statsService.GetPlatformStats(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, h.logger)
		return
	}

	utils.SuccessResponse(c, gin.H{"stats": stats})
}

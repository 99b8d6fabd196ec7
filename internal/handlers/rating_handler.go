package handlers

import (
	"github.com/gin-gonic/gin"

	"travelog/internal/middleware"
	"travelog/internal/services"
	"travelog/internal/utils"
	"travelog/internal/validators"
	"travelog/pkg/logger"
)

type RatingHandler struct {
	ratingService services.RatingService
	logger        *logger.Logger
}

func NewRatingHandler(ratingService services.RatingService, log *logger.Logger) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
		logger:        log,
	}
}

func (h *RatingHandler) Submit(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	var req validators.SubmitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	result, err := h.ratingService.Submit(c.Request.Context(), principal, &req)
	if err != nil {
		handleServiceError(c, err, h.logger)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"rating":         result.Rating,
		"average_rating": result.AverageRating,
		"total_ratings":  result.TotalRatings,
	})
}

func (h *RatingHandler) ListForDestination(c *gin.Context) {
	destinationID := c.Query("destination_id")
	if destinationID == "" {
		utils.BadRequestResponse(c, "destination_id query parameter is required")
		return
	}

	result, err := h.ratingService.GetForDestination(c.Request.Context(), destinationID, optionalPrincipal(c))
	if err != nil {
		handleServiceError(c, err, h.logger)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"ratings":        result.Ratings,
		"average_rating": result.AverageRating,
		"total_ratings":  result.TotalRatings,
		"user_rating":    result.UserRating,
	})
}

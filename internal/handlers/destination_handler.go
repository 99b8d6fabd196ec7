package handlers

import (
	"github.com/gin-gonic/gin"

	"travelog/internal/middleware"
	"travelog/internal/services"
	"travelog/internal/utils"
	"travelog/internal/validators"
	"travelog/pkg/logger"
)

type DestinationHandler struct {
	destinationService services.DestinationService
	logger             *logger.Logger
}

func NewDestinationHandler(destinationService services.DestinationService, log *logger.Logger) *DestinationHandler {
	return &DestinationHandler{
		destinationService: destinationService,
		logger:             log,
	}
}

func (h *DestinationHandler) Create(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	var req validators.CreateDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	destination, err := h.destinationService.Create(c.Request.Context(), principal, &req)
	if err != nil {
		handleServiceError(c, err, h.logger)
		return
	}

	utils.CreatedResponse(c, gin.H{"destination": destination})
}

func (h *DestinationHandler) Get(c *gin.Context) {
	destination, err := h.destinationService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err, h.logger)
		return
	}

	utils.SuccessResponse(c, gin.H{"destination": destination})
}

func (h *DestinationHandler) List(c *gin.Context) {
	destinations, err := h.destinationService.List(c.Request.Context(), c.Query("country"))
	if err != nil {
		handleServiceError(c, err, h.logger)
		return
	}

	utils.SuccessResponse(c, gin.H{"destinations": destinations})
}

func (h *DestinationHandler) Update(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	var req validators.UpdateDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	destination, err := h.destinationService.Update(c.Request.Context(), principal, c.Param("id"), middleware.ClientIP(c), &req)
	if err != nil {
		handleServiceError(c, err, h.logger)
		return
	}

	utils.SuccessResponse(c, gin.H{"destination": destination})
}

func (h *DestinationHandler) Delete(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	if err := h.destinationService.Delete(c.Request.Context(), principal, c.Param("id"), middleware.ClientIP(c)); err != nil {
		handleServiceError(c, err, h.logger)
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Destination deleted"})
}

package handlers

import (
	"github.com/gin-gonic/gin"

	"travelog/internal/services"
	"travelog/internal/utils"
	"travelog/internal/validators"
	"travelog/pkg/logger"
)

type AuthHandler struct {
	authService services.AuthService
	logger      *logger.Logger
}

func NewAuthHandler(authService services.AuthService, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      log,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req validators.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	user, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err, h.logger)
		return
	}

	utils.CreatedResponse(c, gin.H{"user": user})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req validators.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err, h.logger)
		return
	}

	utils.SuccessResponse(c, gin.H{"token": result.Token, "user": result.User})
}

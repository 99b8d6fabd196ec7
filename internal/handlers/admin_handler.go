package handlers

import (
	"github.com/gin-gonic/gin"

	"travelog/internal/middleware"
	"travelog/internal/services"
	"travelog/internal/utils"
	"travelog/pkg/logger"
)

type AdminHandler struct {
	adminService services.AdminService
	logger       *logger.Logger
}

func NewAdminHandler(adminService services.AdminService, log *logger.Logger) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		logger:       log,
	}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	params := utils.GetPaginationParams(c)
	users, total, err := h.adminService.ListUsers(c.Request.Context(), principal, params)
	if err != nil {
		handleServiceError(c, err, h.logger)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"users": users,
		"total": total,
		"page":  params.Page,
	})
}

func (h *AdminHandler) BlockUser(c *gin.Context) {
	h.setBlocked(c, true)
}

func (h *AdminHandler) UnblockUser(c *gin.Context) {
	h.setBlocked(c, false)
}

func (h *AdminHandler) setBlocked(c *gin.Context, blocked bool) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	user, err := h.adminService.SetBlocked(c.Request.Context(), principal, c.Param("id"), middleware.ClientIP(c), blocked)
	if err != nil {
		handleServiceError(c, err, h.logger)
		return
	}

	utils.SuccessResponse(c, gin.H{"user": user})
}

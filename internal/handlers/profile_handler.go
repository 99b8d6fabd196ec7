package handlers

import (
	"github.com/gin-gonic/gin"

	"travelog/internal/middleware"
	"travelog/internal/services"
	"travelog/internal/utils"
	"travelog/internal/validators"
	"travelog/pkg/logger"
)

type ProfileHandler struct {
	profileService services.ProfileService
	logger         *logger.Logger
}

func NewProfileHandler(profileService services.ProfileService, log *logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		logger:         log,
	}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	user, err := h.profileService.Get(c.Request.Context(), principal)
	if err != nil {
		handleServiceError(c, err, h.logger)
		return
	}

	utils.SuccessResponse(c, gin.H{"user": user})
}

func (h *ProfileHandler) Update(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	var req validators.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	user, err := h.profileService.Update(c.Request.Context(), principal, &req)
	if err != nil {
		handleServiceError(c, err, h.logger)
		return
	}

	utils.SuccessResponse(c, gin.H{"user": user})
}

// UploadPhoto accepts a multipart form with a "photo" field.
func (h *ProfileHandler) UploadPhoto(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		utils.BadRequestResponse(c, "A photo file is required")
		return
	}
	if fileHeader.Size > utils.MaxAvatarSize {
		utils.BadRequestResponse(c, "Photo must be smaller than 5MB")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.BadRequestResponse(c, "Photo could not be read")
		return
	}
	defer file.Close()

	url, err := h.profileService.UploadPhoto(c.Request.Context(), principal, file, fileHeader.Filename, fileHeader.Size)
	if err != nil {
		handleServiceError(c, err, h.logger)
		return
	}

	utils.SuccessResponse(c, gin.H{"profile_photo_url": url})
}

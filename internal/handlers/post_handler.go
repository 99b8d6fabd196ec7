package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"travelog/internal/middleware"
	"travelog/internal/security"
	"travelog/internal/services"
	"travelog/internal/utils"
	"travelog/internal/validators"
	"travelog/pkg/logger"
)

type PostHandler struct {
	postService services.PostService
	logger      *logger.Logger
}

func NewPostHandler(postService services.PostService, log *logger.Logger) *PostHandler {
	return &PostHandler{
		postService: postService,
		logger:      log,
	}
}

func (h *PostHandler) Create(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	var req validators.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	post, err := h.postService.Create(c.Request.Context(), principal, &req)
	if err != nil {
		handleServiceError(c, err, h.logger)
		return
	}

	utils.CreatedResponse(c, gin.H{"post": post})
}

func (h *PostHandler) Get(c *gin.Context) {
	caller := optionalPrincipal(c)

	detail, err := h.postService.GetByID(c.Request.Context(), c.Param("id"), caller)
	if err != nil {
		handleServiceError(c, err, h.logger)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"post":        detail.Post,
		"author":      detail.Author,
		"destination": detail.Destination,
		"comments":    detail.Comments,
	})
}

func (h *PostHandler) List(c *gin.Context) {
	caller := optionalPrincipal(c)

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	filter := services.PostListFilter{
		AuthorID:      c.Query("author_id"),
		DestinationID: c.Query("destination_id"),
		Limit:         limit,
	}

	posts, err := h.postService.List(c.Request.Context(), filter, caller)
	if err != nil {
		handleServiceError(c, err, h.logger)
		return
	}

	utils.SuccessResponse(c, gin.H{"posts": posts})
}

func (h *PostHandler) Update(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	var req validators.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	post, err := h.postService.Update(c.Request.Context(), principal, c.Param("id"), middleware.ClientIP(c), &req)
	if err != nil {
		handleServiceError(c, err, h.logger)
		return
	}

	utils.SuccessResponse(c, gin.H{"post": post})
}

func (h *PostHandler) Delete(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	if err := h.postService.Delete(c.Request.Context(), principal, c.Param("id"), middleware.ClientIP(c)); err != nil {
		handleServiceError(c, err, h.logger)
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Post deleted"})
}

// optionalPrincipal adapts the context principal to the pointer form the
// read paths take.
func optionalPrincipal(c *gin.Context) *security.Principal {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return nil
	}
	return &principal
}

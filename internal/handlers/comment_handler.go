package handlers

import (
	"github.com/gin-gonic/gin"

	"travelog/internal/middleware"
	"travelog/internal/services"
	"travelog/internal/utils"
	"travelog/internal/validators"
	"travelog/pkg/logger"
)

type CommentHandler struct {
	commentService services.CommentService
	logger         *logger.Logger
}

func NewCommentHandler(commentService services.CommentService, log *logger.Logger) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		logger:         log,
	}
}

func (h *CommentHandler) Create(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	var req validators.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	comment, err := h.commentService.Create(c.Request.Context(), principal, &req)
	if err != nil {
		handleServiceError(c, err, h.logger)
		return
	}

	utils.CreatedResponse(c, gin.H{"comment": comment})
}

func (h *CommentHandler) ListByPost(c *gin.Context) {
	postID := c.Query("post_id")
	if postID == "" {
		utils.BadRequestResponse(c, "post_id query parameter is required")
		return
	}

	comments, err := h.commentService.ListByPost(c.Request.Context(), postID, optionalPrincipal(c))
	if err != nil {
		handleServiceError(c, err, h.logger)
		return
	}

	utils.SuccessResponse(c, gin.H{"comments": comments})
}

func (h *CommentHandler) Update(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	var req validators.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	comment, err := h.commentService.Update(c.Request.Context(), principal, c.Param("id"), middleware.ClientIP(c), &req)
	if err != nil {
		handleServiceError(c, err, h.logger)
		return
	}

	utils.SuccessResponse(c, gin.H{"comment": comment})
}

// ToggleHidden flips the comment's moderation state.
func (h *CommentHandler) ToggleHidden(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	comment, err := h.commentService.ToggleHidden(c.Request.Context(), principal, c.Param("id"), middleware.ClientIP(c))
	if err != nil {
		handleServiceError(c, err, h.logger)
		return
	}

	utils.SuccessResponse(c, gin.H{"comment": comment})
}

func (h *CommentHandler) Delete(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	if err := h.commentService.Delete(c.Request.Context(), principal, c.Param("id"), middleware.ClientIP(c)); err != nil {
		handleServiceError(c, err, h.logger)
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Comment deleted"})
}

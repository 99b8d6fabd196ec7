package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"travelog/internal/services"
	"travelog/internal/utils"
	"travelog/pkg/logger"
)

// handleServiceError maps a typed service error to its status code.
// Anything untyped is a 500 with a generic message; the detail stays in
// server-side logs.
func handleServiceError(c *gin.Context, err error, log *logger.Logger) {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		utils.BadRequestResponse(c, validationErr.Message)
		return
	}

	var conflictErr *services.ConflictError
	if errors.As(err, &conflictErr) {
		utils.BadRequestResponse(c, conflictErr.Message)
		return
	}

	var notFoundErr *services.NotFoundError
	if errors.As(err, &notFoundErr) {
		utils.NotFoundResponse(c, notFoundErr.Resource)
		return
	}

	var authzErr *services.AuthorizationError
	if errors.As(err, &authzErr) {
		utils.ForbiddenResponse(c, authzErr.Message)
		return
	}

	var authnErr *services.AuthenticationError
	if errors.As(err, &authnErr) {
		utils.ErrorResponse(c, http.StatusUnauthorized, authnErr.Message)
		return
	}

	log.WithError(err).WithField("path", c.Request.URL.Path).Error("unhandled service error")
	utils.InternalServerErrorResponse(c)
}

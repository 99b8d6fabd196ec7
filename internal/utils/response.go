package utils

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error responses are always the flat {"error": "..."} shape; success
// responses carry the resource payload directly. No stack traces or
// internal identifiers ever reach the client.

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

func BadRequestResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, message)
}

func UnauthorizedResponse(c *gin.Context) {
	ErrorResponse(c, http.StatusUnauthorized, "You must be signed in")
}

func ForbiddenResponse(c *gin.Context, message string) {
	if message == "" {
		message = "You do not have permission to perform this action"
	}
	ErrorResponse(c, http.StatusForbidden, message)
}

func NotFoundResponse(c *gin.Context, resource string) {
	ErrorResponse(c, http.StatusNotFound, resource+" not found")
}

func InternalServerErrorResponse(c *gin.Context) {
	ErrorResponse(c, http.StatusInternalServerError, "Something went wrong")
}

// RateLimitResponse rejects the request with the pool's limit and a
// Retry-After hint in seconds.
func RateLimitResponse(c *gin.Context, limit int, retryAfterSeconds int) {
	c.Header("Retry-After", fmt.Sprintf("%d", retryAfterSeconds))
	c.JSON(http.StatusTooManyRequests, gin.H{
		"error": fmt.Sprintf("Too many requests, limit is %d per minute", limit),
		"limit": limit,
	})
}

func SuccessResponse(c *gin.Context, payload gin.H) {
	c.JSON(http.StatusOK, payload)
}

func CreatedResponse(c *gin.Context, payload gin.H) {
	c.JSON(http.StatusCreated, payload)
}

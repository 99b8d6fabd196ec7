package routes

import (
	"github.com/gin-gonic/gin"

	"travelog/internal/handlers"
)

func SetupRatingRoutes(r *gin.RouterGroup, h *handlers.RatingHandler, authRequired, optionalAuth, mutationLimit gin.HandlerFunc) {
	ratings := r.Group("/ratings")
	{
		ratings.GET("", optionalAuth, h.ListForDestination)
		ratings.POST("", mutationLimit, authRequired, h.Submit)
	}
}

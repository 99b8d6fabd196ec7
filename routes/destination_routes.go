package routes

import (
	"github.com/gin-gonic/gin"

	"travelog/internal/handlers"
)

func SetupDestinationRoutes(r *gin.RouterGroup, h *handlers.DestinationHandler, authRequired, mutationLimit gin.HandlerFunc) {
	destinations := r.Group("/destinations")
	{
		destinations.GET("", h.List)
		destinations.GET("/:id", h.Get)
		destinations.POST("", mutationLimit, authRequired, h.Create)
		destinations.PUT("/:id", mutationLimit, authRequired, h.Update)
		destinations.DELETE("/:id", mutationLimit, authRequired, h.Delete)
	}
}

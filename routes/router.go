package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travelog/internal/config"
	"travelog/internal/handlers"
	"travelog/internal/middleware"
	"travelog/internal/ratelimit"
	"travelog/internal/repositories/interfaces"
	"travelog/internal/utils"
	"travelog/pkg/logger"
)

// Dependencies carries everything the router wires together.
type Dependencies struct {
	Config   *config.Config
	Logger   *logger.Logger
	Pools    *ratelimit.Pools
	UserRepo interfaces.UserRepository

	AuthHandler        *handlers.AuthHandler
	PostHandler        *handlers.PostHandler
	CommentHandler     *handlers.CommentHandler
	DestinationHandler *handlers.DestinationHandler
	RatingHandler      *handlers.RatingHandler
	ProfileHandler     *handlers.ProfileHandler
	AdminHandler       *handlers.AdminHandler
	StatsHandler       *handlers.StatsHandler
}

// SetupRouter builds the full HTTP surface. Every request passes the
// general rate-limit pool and the same-origin check; auth endpoints add
// the stricter auth pool and every mutation the mutation pool.
func SetupRouter(deps *Dependencies) *gin.Engine {
	if deps.Config.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(deps.Logger))
	router.Use(middleware.CORS(deps.Config.Security.CORSAllowedOrigins))
	router.Use(middleware.RateLimit(deps.Pools.General))
	router.Use(middleware.SameOrigin(deps.Config.Security.CORSAllowedOrigins))

	authRequired := middleware.AuthRequired(deps.Config.Security.JWTSecret, deps.UserRepo, deps.Logger)
	optionalAuth := middleware.OptionalAuth(deps.Config.Security.JWTSecret, deps.UserRepo, deps.Logger)
	authLimit := middleware.RateLimit(deps.Pools.Auth)
	mutationLimit := middleware.RateLimit(deps.Pools.Mutation)

	v1 := router.Group("/api/v1")
	{
		SetupAuthRoutes(v1, deps.AuthHandler, authLimit)
		SetupPostRoutes(v1, deps.PostHandler, authRequired, optionalAuth, mutationLimit)
		SetupCommentRoutes(v1, deps.CommentHandler, authRequired, optionalAuth, mutationLimit)
		SetupDestinationRoutes(v1, deps.DestinationHandler, authRequired, mutationLimit)
		SetupRatingRoutes(v1, deps.RatingHandler, authRequired, optionalAuth, mutationLimit)
		SetupProfileRoutes(v1, deps.ProfileHandler, authRequired, mutationLimit)
		SetupAdminRoutes(v1, deps.AdminHandler, authRequired, mutationLimit)
		SetupStatsRoutes(v1, deps.StatsHandler)
	}

	// Locally stored profile photos are served straight from disk.
	if deps.Config.Storage.Provider == "local" {
		router.Static("/uploads", deps.Config.Storage.LocalPath)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": utils.AppVersion,
		})
	})

	return router
}

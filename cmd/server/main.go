package main

import (
	"fmt"
	"log"
	"net/http"

	"travelog/internal/config"
	"travelog/internal/handlers"
	"travelog/internal/ratelimit"
	"travelog/internal/repositories/mongodb"
	"travelog/internal/services"
	"travelog/pkg/cache"
	"travelog/pkg/database"
	"travelog/pkg/geo"
	"travelog/pkg/images"
	"travelog/pkg/logger"
	"travelog/pkg/storage"
	"travelog/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&logger.Config{
		Level:  logger.LogLevel(cfg.App.LogLevel),
		Format: cfg.App.LogFormat,
		Output: "stdout",
		Colors: cfg.App.Environment == "development",
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	db, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		appLogger.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer db.Close()

	// Unique indexes back the duplicate-email, duplicate-destination and
	// one-rating-per-user invariants; create them before serving.
	if err := db.EnsureIndexes(); err != nil {
		appLogger.Fatalf("Failed to create indexes: %v", err)
	}

	var redisCache *cache.RedisCache
	if cfg.Redis.Enabled {
		redisCache, err = cache.NewRedisCache(&cache.RedisConfig{
			Host:         cfg.Redis.Host,
			Port:         cfg.Redis.Port,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
		if err != nil {
			appLogger.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisCache.Close()
	}

	// Repositories
	userRepo := mongodb.NewUserRepository(db.Database)
	postRepo := mongodb.NewPostRepository(db.Database)
	commentRepo := mongodb.NewCommentRepository(db.Database)
	destinationRepo := mongodb.NewDestinationRepository(db.Database)
	ratingRepo := mongodb.NewRatingRepository(db.Database)
	auditLogRepo := mongodb.NewAuditLogRepository(db.Database)

	// Rate limiter pools fall back to in-process counters when Redis is
	// disabled.
	general, auth, mutation := ratelimit.DefaultConfigs()
	general.Limit = cfg.Security.GeneralRateLimit
	auth.Limit = cfg.Security.AuthRateLimit
	mutation.Limit = cfg.Security.MutationRateLimit
	general.Window = cfg.Security.RateLimitWindow
	auth.Window = cfg.Security.RateLimitWindow
	mutation.Window = cfg.Security.RateLimitWindow
	pools := ratelimit.NewPools(redisCache, appLogger, general, auth, mutation)

	// External providers, all optional.
	var geocoder geo.Geocoder
	switch cfg.External.Geocoder {
	case "google":
		if cfg.External.GoogleMapsAPIKey != "" {
			geocoder, err = geo.NewGoogleGeocoder(cfg.External.GoogleMapsAPIKey)
			if err != nil {
				appLogger.Fatalf("Failed to create geocoder: %v", err)
			}
		}
	case "nominatim":
		geocoder = geo.NewNominatimGeocoder(cfg.External.NominatimBaseURL, cfg.External.NominatimAgent)
	}

	var imageFinder services.ImageFinder
	if cfg.External.UnsplashAccessKey != "" {
		imageFinder = images.NewUnsplashClient(cfg.External.UnsplashAccessKey, cfg.External.UnsplashBaseURL)
	}

	var store storage.Provider
	switch cfg.Storage.Provider {
	case "s3":
		store, err = storage.NewAWSS3Storage(cfg.Storage.S3Region, cfg.Storage.S3Bucket, cfg.Storage.S3BaseURL)
	default:
		store, err = storage.NewLocalStorage(cfg.Storage.LocalPath, cfg.Storage.LocalURL)
	}
	if err != nil {
		appLogger.Fatalf("Failed to initialize storage: %v", err)
	}

	// Services
	auditService := services.NewAuditService(auditLogRepo, appLogger)
	authService := services.NewAuthService(userRepo, cfg.Security.JWTSecret, appLogger)
	postService := services.NewPostService(postRepo, commentRepo, destinationRepo, userRepo, auditService, appLogger)
	commentService := services.NewCommentService(commentRepo, postRepo, auditService, appLogger)
	destinationService := services.NewDestinationService(destinationRepo, auditService, imageFinder, geocoder, appLogger)
	ratingService := services.NewRatingService(ratingRepo, destinationRepo, appLogger)
	profileService := services.NewProfileService(userRepo, store, appLogger)
	adminService := services.NewAdminService(userRepo, auditService, appLogger)
	statsService := services.NewStatsService(postRepo, commentRepo, destinationRepo, ratingRepo, userRepo, appLogger)

	router := routes.SetupRouter(&routes.Dependencies{
		Config:             cfg,
		Logger:             appLogger,
		Pools:              pools,
		UserRepo:           userRepo,
		AuthHandler:        handlers.NewAuthHandler(authService, appLogger),
		PostHandler:        handlers.NewPostHandler(postService, appLogger),
		CommentHandler:     handlers.NewCommentHandler(commentService, appLogger),
		DestinationHandler: handlers.NewDestinationHandler(destinationService, appLogger),
		RatingHandler:      handlers.NewRatingHandler(ratingService, appLogger),
		ProfileHandler:     handlers.NewProfileHandler(profileService, appLogger),
		AdminHandler:       handlers.NewAdminHandler(adminService, appLogger),
		StatsHandler:       handlers.NewStatsHandler(statsService, appLogger),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	appLogger.Infof("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		appLogger.Fatalf("Server stopped: %v", err)
	}
}

package utils

import "time"

const (
	AppName    = "Travelog"
	AppVersion = "1.0.0"

	// Pagination
	DefaultPageSize = 10
	MaxPageSize     = 100
	MinPageSize     = 1

	// Authentication
	JWTTokenTTL       = 24 * time.Hour
	PasswordMinLength = 6

	// Rate limiting (requests per 60s window)
	GeneralRateLimit  = 100
	AuthRateLimit     = 10
	MutationRateLimit = 30
	RateLimitWindow   = 60 * time.Second

	// Content
	MinPostTitleLength       = 3
	MinPostContentLength     = 10
	MinDisplayNameLength     = 2
	MinDestinationNameLength = 2
	MinDescriptionLength     = 10
	MinRatingScore           = 1
	MaxRatingScore           = 5

	// Stats
	StatsMonths         = 12
	TopDestinationCount = 7

	// File upload
	MaxAvatarSize   = 5 * 1024 * 1024 // 5MB
	AvatarMaxWidth  = 512
	AvatarMaxHeight = 512
)

// Resource names used in audit records and not-found messages.
const (
	ResourcePost        = "post"
	ResourceComment     = "comment"
	ResourceDestination = "destination"
	ResourceRating      = "rating"
	ResourceUser        = "user"
)

package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"travelog/internal/models"
	"travelog/internal/repositories/interfaces"
	"travelog/internal/security"
	"travelog/internal/utils"
	"travelog/pkg/logger"
)

const principalKey = "principal"

// AuthRequired validates the bearer token, re-reads the user so a block
// takes effect immediately, and attaches the principal to the context.
func AuthRequired(jwtSecret string, userRepo interfaces.UserRepository, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := authenticate(c, jwtSecret, userRepo, log)
		if !ok {
			c.Abort()
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// OptionalAuth attaches a principal when a valid token is present but
// lets anonymous requests through. A token naming a blocked user is
// still rejected.
func OptionalAuth(jwtSecret string, userRepo interfaces.UserRepository, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}

		principal, ok := authenticate(c, jwtSecret, userRepo, log)
		if !ok {
			c.Abort()
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// AdminRequired runs after AuthRequired and rejects non-admins.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			utils.UnauthorizedResponse(c)
			c.Abort()
			return
		}
		if principal.Role != models.RoleAdmin {
			utils.ForbiddenResponse(c, "")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetPrincipal returns the authenticated identity set by AuthRequired or
// OptionalAuth; ok is false on anonymous requests.
func GetPrincipal(c *gin.Context) (security.Principal, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return security.Principal{}, false
	}
	principal, ok := value.(security.Principal)
	return principal, ok
}

func authenticate(c *gin.Context, jwtSecret string, userRepo interfaces.UserRepository, log *logger.Logger) (security.Principal, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		utils.UnauthorizedResponse(c)
		return security.Principal{}, false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		utils.UnauthorizedResponse(c)
		return security.Principal{}, false
	}

	claims, err := utils.ValidateToken(tokenString, jwtSecret)
	if err != nil {
		utils.UnauthorizedResponse(c)
		return security.Principal{}, false
	}

	// The token may outlive a block; the stored record is authoritative.
	user, err := userRepo.GetByID(c.Request.Context(), claims.UserID)
	if err != nil {
		utils.UnauthorizedResponse(c)
		return security.Principal{}, false
	}
	if user.IsBlocked {
		log.LogSecurityEvent("blocked_user_rejected", user.ID, map[string]interface{}{
			"path": c.Request.URL.Path,
		})
		utils.ForbiddenResponse(c, "Your account has been blocked")
		return security.Principal{}, false
	}

	return security.Principal{
		ID:          user.ID,
		Role:        user.Role,
		DisplayName: user.DisplayName,
	}, true
}

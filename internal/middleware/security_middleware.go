package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"travelog/internal/utils"
)

// ClientIP derives the caller's address the way the limiter and audit
// log key it: first X-Forwarded-For entry, then X-Real-IP, then the
// connection's remote address.
func ClientIP(c *gin.Context) string {
	if forwarded := c.GetHeader("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	if realIP := c.GetHeader("X-Real-IP"); realIP != "" {
		return realIP
	}
	return c.ClientIP()
}

// SameOrigin rejects cross-origin state changes. Safe methods pass
// untouched. A browser request must carry an Origin or Referer matching
// the request's own origin or one of the configured allowed origins;
// requests without either header are admitted only when the User-Agent
// does not look like a browser (curl, server-to-server clients).
func SameOrigin(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case "GET", "HEAD", "OPTIONS":
			c.Next()
			return
		}

		scheme := "http"
		if c.Request.TLS != nil {
			scheme = "https"
		}
		requestOrigin := scheme + "://" + c.Request.Host

		allowed := append([]string{requestOrigin}, allowedOrigins...)

		if origin := c.GetHeader("Origin"); origin != "" {
			if originMatches(origin, allowed) {
				c.Next()
				return
			}
			utils.ForbiddenResponse(c, "Cross-origin request rejected")
			c.Abort()
			return
		}

		if referer := c.GetHeader("Referer"); referer != "" {
			if originMatches(referer, allowed) {
				c.Next()
				return
			}
			utils.ForbiddenResponse(c, "Cross-origin request rejected")
			c.Abort()
			return
		}

		// No Origin and no Referer. Browsers always send at least one on
		// state-changing requests, so treat a browser-looking UA as
		// suspect and let API clients through.
		userAgent := c.GetHeader("User-Agent")
		if strings.Contains(userAgent, "Mozilla") || strings.Contains(userAgent, "Chrome") {
			utils.ForbiddenResponse(c, "Cross-origin request rejected")
			c.Abort()
			return
		}

		c.Next()
	}
}

func originMatches(value string, allowed []string) bool {
	for _, origin := range allowed {
		if origin != "" && strings.HasPrefix(value, origin) {
			return true
		}
	}
	return false
}

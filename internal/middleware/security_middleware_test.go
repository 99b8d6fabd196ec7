package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"travelog/internal/ratelimit"
)

func sameOriginRouter(allowed []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(SameOrigin(allowed))
	router.POST("/posts", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/posts", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router
}

func TestSameOrigin(t *testing.T) {
	router := sameOriginRouter([]string{"https://journal.example"})

	tests := []struct {
		name       string
		method     string
		headers    map[string]string
		wantStatus int
	}{
		{
			name:       "GET passes without headers",
			method:     http.MethodGet,
			wantStatus: http.StatusOK,
		},
		{
			name:       "matching origin allowed",
			method:     http.MethodPost,
			headers:    map[string]string{"Origin": "https://journal.example"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "request host origin allowed",
			method:     http.MethodPost,
			headers:    map[string]string{"Origin": "http://api.local"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "foreign origin rejected",
			method:     http.MethodPost,
			headers:    map[string]string{"Origin": "https://evil.example", "User-Agent": "Mozilla/5.0"},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "referer fallback allowed",
			method:     http.MethodPost,
			headers:    map[string]string{"Referer": "https://journal.example/posts/new"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "foreign referer rejected",
			method:     http.MethodPost,
			headers:    map[string]string{"Referer": "https://evil.example/form"},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "headerless browser request rejected",
			method:     http.MethodPost,
			headers:    map[string]string{"User-Agent": "Mozilla/5.0 (X11; Linux x86_64)"},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "headerless API client allowed",
			method:     http.MethodPost,
			headers:    map[string]string{"User-Agent": "curl/8.5.0"},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/posts", nil)
			req.Host = "api.local"
			for key, value := range tt.headers {
				req.Header.Set(key, value)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{
			name:    "first forwarded-for entry wins",
			headers: map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1", "X-Real-IP": "10.9.9.9"},
			want:    "203.0.113.7",
		},
		{
			name:    "real-ip fallback",
			headers: map[string]string{"X-Real-IP": "10.9.9.9"},
			want:    "10.9.9.9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			for key, value := range tt.headers {
				c.Request.Header.Set(key, value)
			}
			assert.Equal(t, tt.want, ClientIP(c))
		})
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter := ratelimit.NewMemoryLimiter(ratelimit.Config{Prefix: ratelimit.PoolAuth, Limit: 2, Window: 60 * time.Second})

	router := gin.New()
	router.Use(RateLimit(limiter))
	router.POST("/auth/login", func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		req.Header.Set("X-Real-IP", "203.0.113.20")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, do().Code)
	assert.Equal(t, http.StatusOK, do().Code)

	rec := do()
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "limit is 2")
}

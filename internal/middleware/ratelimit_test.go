package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/stretchr/testify/require"
)

func TestRateLimiterBlocksOverLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter := &rateLimiter{
		max:     2,
		clients: expirable.NewLRU[string, *int](rateLimitTableSize, nil, time.Minute),
	}

	for i := 0; i < 2; i++ {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/api/notes", nil)
		limiter.handle(c)
		require.False(t, c.IsAborted())
	}

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/notes", nil)
	limiter.handle(c)
	require.True(t, c.IsAborted())
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRateLimiterWindowExpires(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter := &rateLimiter{
		max:     1,
		clients: expirable.NewLRU[string, *int](rateLimitTableSize, nil, 20*time.Millisecond),
	}

	c1, _ := gin.CreateTestContext(httptest.NewRecorder())
	c1.Request = httptest.NewRequest(http.MethodGet, "/api/notes", nil)
	limiter.handle(c1)
	require.False(t, c1.IsAborted())

	c2, _ := gin.CreateTestContext(httptest.NewRecorder())
	c2.Request = httptest.NewRequest(http.MethodGet, "/api/notes", nil)
	limiter.handle(c2)
	require.True(t, c2.IsAborted())

	time.Sleep(40 * time.Millisecond)

	c3, _ := gin.CreateTestContext(httptest.NewRecorder())
	c3.Request = httptest.NewRequest(http.MethodGet, "/api/notes", nil)
	limiter.handle(c3)
	require.False(t, c3.IsAborted())
}

func TestRateLimitDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handle := RateLimit(0, 0)
	for i := 0; i < 10; i++ {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/api/notes", nil)
		handle(c)
		require.False(t, c.IsAborted())
	}
}

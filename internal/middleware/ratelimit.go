package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"notely/internal/pkg/response"
)

// Bounds the per-client table; cold clients fall out of the LRU.
const rateLimitTableSize = 4096

type rateLimiter struct {
	mu      sync.Mutex
	max     int
	clients *expirable.LRU[string, *int]
}

// RateLimit allows max requests per client IP within a fixed window. The
// window starts at a client's first request; the LRU entry expiring ends it.
func RateLimit(window time.Duration, max int) gin.HandlerFunc {
	if window <= 0 || max <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	limiter := &rateLimiter{
		max:     max,
		clients: expirable.NewLRU[string, *int](rateLimitTableSize, nil, window),
	}
	return limiter.handle
}

func (l *rateLimiter) handle(c *gin.Context) {
	ip := c.ClientIP()
	l.mu.Lock()
	count, ok := l.clients.Get(ip)
	if !ok {
		count = new(int)
		l.clients.Add(ip, count)
	}
	*count++
	over := *count > l.max
	l.mu.Unlock()
	if over {
		logutil.GetLogger(c.Request.Context()).Warn("rate limit hit",
			zap.String("ip", ip),
			zap.String("path", c.Request.URL.Path),
		)
		response.Message(c, http.StatusTooManyRequests, "Too many requests")
		c.Abort()
		return
	}
	c.Next()
}

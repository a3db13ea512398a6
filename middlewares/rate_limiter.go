package middlewares

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimit counts requests per client IP in fixed windows.
type RateLimit struct {
	mu          sync.Mutex
	visitors    map[string]int
	limit       int
	window      time.Duration
	windowStart time.Time
	now         func() time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimit {
	return &RateLimit{
		visitors:    make(map[string]int),
		limit:       limit,
		window:      window,
		windowStart: time.Now(),
		now:         time.Now,
	}
}

// allow resets the counters lazily once the window has passed, so no
// background goroutine is needed.
func (rl *RateLimit) allow(visitor string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if now := rl.now(); now.Sub(rl.windowStart) >= rl.window {
		rl.visitors = make(map[string]int)
		rl.windowStart = now
	}

	rl.visitors[visitor]++
	return rl.visitors[visitor] <= rl.limit
}

func (rl *RateLimit) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "Too many requests, try again later"})
			return
		}
		c.Next()
	}
}

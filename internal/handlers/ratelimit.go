package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	msgTooManyEmails = "Too many email requests, please try again later"

	defaultEmailPerMinute = 6
	defaultEmailBurst     = 3
	maxTrackedClients     = 10_000
)

// rateLimiter keeps one token bucket per client key.
type rateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func newRateLimiter(perMinute, burst int) *rateLimiter {
	if perMinute <= 0 {
		perMinute = defaultEmailPerMinute
	}
	if burst <= 0 {
		burst = defaultEmailBurst
	}
	return &rateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    burst,
	}
}

func (rl *rateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, ok := rl.limiters[key]
	if !ok {
		// bound memory
		if len(rl.limiters) >= maxTrackedClients {
			rl.limiters = make(map[string]*rate.Limiter)
		}
		limiter = rate.NewLimiter(rl.limit, rl.burst)
		rl.limiters[key] = limiter
	}
	return limiter.Allow()
}

// throttleEmail limits summary emails per client IP and sends refused
// requests back to fallback with a flash.
func (h *Handler) throttleEmail(fallback string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.emailLimiter.allow(c.ClientIP()) {
			c.Next()
			return
		}
		h.reqLog(c).Infow("email_rate_limited", "ip", c.ClientIP(), "path", c.Request.URL.Path)
		h.sessions.SetFlash(c, msgTooManyEmails)
		c.Redirect(http.StatusSeeOther, fallback)
		c.Abort()
	}
}

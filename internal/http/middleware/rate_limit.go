package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// limiterStore keeps one token bucket per client IP.
type limiterStore struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func (s *limiterStore) get(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.limiters[ip]
	if !ok {
		l = rate.NewLimiter(s.limit, s.burst)
		s.limiters[ip] = l
	}
	return l
}

// RateLimit allows max requests per window per client IP. The quota
// refills continuously rather than resetting on a fixed boundary.
func RateLimit(max int, window time.Duration, message string) gin.HandlerFunc {
	store := &limiterStore{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Every(window / time.Duration(max)),
		burst:    max,
	}

	return func(c *gin.Context) {
		if !store.get(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"message": message,
			})
			return
		}
		c.Next()
	}
}

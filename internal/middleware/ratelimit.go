package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/sirupsen/logrus"
	"github.com/tomasen/realip"
	"golang.org/x/time/rate"

	"github.com/Decentr-net/go-api"
)

var log = logrus.WithField("package", "middleware")

const (
	limitersSize = 10000
	limiterTTL   = 10 * time.Minute
)

// RateLimiter limits requests per client ip.
type RateLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

// NewRateLimiter creates new instance of RateLimiter.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	return &RateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](limitersSize, nil, limiterTTL),
		rate:     rate.Limit(rps),
		burst:    burst,
	}
}

func (rl *RateLimiter) limiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if l, ok := rl.limiters.Get(key); ok {
		return l
	}

	l := rate.NewLimiter(rl.rate, rl.burst)
	rl.limiters.Add(key, l)

	return l
}

// Handler returns middleware which responds 429 when client exceeds its limit.
func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := realip.FromRequest(r)

		if !rl.limiter(ip).Allow() {
			log.WithField("ip", ip).Warn("rate limit exceeded")
			api.WriteError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}

		next.ServeHTTP(w, r)
	})
}

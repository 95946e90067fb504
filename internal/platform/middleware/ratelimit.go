// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/taibuivan/catalog/internal/platform/apperr"
	"github.com/taibuivan/catalog/internal/platform/constants"
	"github.com/taibuivan/catalog/internal/platform/respond"
)

// # Rate Limiting

type rateLimitClient struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// rateLimiter holds one token bucket per client IP.
type rateLimiter struct {
	mu      sync.Mutex
	clients map[string]*rateLimitClient
	limit   rate.Limit
	burst   int
}

/*
RateLimit limits requests per client IP with a token bucket.

Parameters:
  - context: Stops the idle-client sweeper when cancelled
  - rps: Sustained requests per second; non-positive selects [constants.DefaultRateLimitRPS]
  - burst: Bucket size; non-positive selects [constants.DefaultRateLimitBurst]

Rejected requests receive 429 RATE_LIMITED with a Retry-After header.
*/
func RateLimit(context context.Context, rps float64, burst int) func(http.Handler) http.Handler {
	if rps <= 0 {
		rps = constants.DefaultRateLimitRPS
	}
	if burst <= 0 {
		burst = constants.DefaultRateLimitBurst
	}

	limiter := &rateLimiter{clients: make(map[string]*rateLimitClient), limit: rate.Limit(rps), burst: burst}
	go limiter.sweep(context)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if wait, ok := limiter.reserve(RealIP(request)); !ok {
				seconds := int(math.Ceil(wait.Seconds()))
				writer.Header().Set("Retry-After", strconv.Itoa(seconds))
				respond.Error(writer, request, apperr.RateLimited(seconds))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}

// reserve takes a token for ip. When none is left it reports how long the
// client should wait for the next one.
func (limiter *rateLimiter) reserve(ip string) (time.Duration, bool) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	now := time.Now()
	client, found := limiter.clients[ip]
	if !found {
		client = &rateLimitClient{limiter: rate.NewLimiter(limiter.limit, limiter.burst)}
		limiter.clients[ip] = client
	}
	client.lastSeen = now

	if client.limiter.AllowN(now, 1) {
		return 0, true
	}

	reservation := client.limiter.ReserveN(now, 1)
	wait := reservation.DelayFrom(now)
	reservation.CancelAt(now)
	return max(wait, time.Second), false
}

// sweep forgets clients idle for longer than [constants.RateLimitClientTTL].
func (limiter *rateLimiter) sweep(context context.Context) {
	ticker := time.NewTicker(constants.RateLimitCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			limiter.mu.Lock()
			for ip, client := range limiter.clients {
				if time.Since(client.lastSeen) > constants.RateLimitClientTTL {
					delete(limiter.clients, ip)
				}
			}
			limiter.mu.Unlock()
		case <-context.Done():
			return
		}
	}
}

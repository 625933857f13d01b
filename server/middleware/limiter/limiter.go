// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package limiter

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	// ExpiryDuration is how long an idle client's bucket is kept.
	ExpiryDuration = time.Hour

	// CleanupInterval is the minimum time between sweeps of idle buckets.
	CleanupInterval = 5 * time.Minute
)

// Rate limiting header names.
//
// ref: https://www.ietf.org/archive/id/draft-polli-ratelimit-headers-02.html
const (
	HeaderRateLimitLimit     string = "RateLimit-Limit"
	HeaderRateLimitRemaining string = "RateLimit-Remaining"
)

// clientBucket is the token bucket of one client IP.
type clientBucket struct {
	limiter    *rate.Limiter
	mu         sync.Mutex
	lastAccess time.Time
}

// Limiter hands every client IP its own token bucket.
type Limiter struct {
	limit   rate.Limit
	burst   int
	buckets sync.Map // client IP -> *clientBucket

	cleanupMu     sync.Mutex
	lastCleanupAt time.Time

	now func() time.Time
}

// New returns a Limiter allowing requestsPerMinute on average with bursts of burst.
func New(requestsPerMinute, burst int) *Limiter {
	return &Limiter{
		limit: rate.Limit(float64(requestsPerMinute) / time.Minute.Seconds()),
		burst: burst,
		now:   time.Now,
	}
}

// Allow reports whether a request from ip may proceed, and the tokens left.
func (l *Limiter) Allow(ip string) (bool, int) {
	now := l.now()

	value, _ := l.buckets.LoadOrStore(ip, &clientBucket{limiter: rate.NewLimiter(l.limit, l.burst)})
	bucket, _ := value.(*clientBucket)

	bucket.mu.Lock()
	defer bucket.mu.Unlock()

	bucket.lastAccess = now
	allowed := bucket.limiter.AllowN(now, 1)

	return allowed, int(bucket.limiter.TokensAt(now))
}

// Evaluate is the limiter middleware.
func (l *Limiter) Evaluate(w http.ResponseWriter, r *http.Request, next http.Handler) {
	defer l.cleanup()

	ip := getClientIP(r)

	allowed, remaining := l.Allow(ip)

	w.Header().Set(HeaderRateLimitLimit, strconv.Itoa(l.burst))
	w.Header().Set(HeaderRateLimitRemaining, strconv.Itoa(max(remaining, 0)))

	if !allowed {
		log.Warn().
			Str("ip", ip).
			Str("path", r.URL.Path).
			Msg("Rate limit exceeded")

		w.Header().Set("Retry-After", "60")
		http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)

		return
	}

	next.ServeHTTP(w, r)
}

// cleanup drops buckets idle for longer than ExpiryDuration, at most once
// per CleanupInterval.
func (l *Limiter) cleanup() {
	now := l.now()

	l.cleanupMu.Lock()

	if l.lastCleanupAt.IsZero() {
		l.lastCleanupAt = now
	}

	if now.Sub(l.lastCleanupAt) < CleanupInterval {
		l.cleanupMu.Unlock()

		return
	}

	l.lastCleanupAt = now
	l.cleanupMu.Unlock()

	removed := 0

	l.buckets.Range(func(key, value any) bool {
		bucket, _ := value.(*clientBucket)

		bucket.mu.Lock()
		expired := now.Sub(bucket.lastAccess) > ExpiryDuration
		bucket.mu.Unlock()

		if expired {
			l.buckets.Delete(key)

			removed++
		}

		return true
	})

	log.Debug().
		Int("removed", removed).
		Dur("dur", l.now().Sub(now)).
		Msg("limiter cleanup")
}

// Len returns the number of tracked clients.
func (l *Limiter) Len() int {
	n := 0

	l.buckets.Range(func(_, _ any) bool {
		n++

		return true
	})

	return n
}

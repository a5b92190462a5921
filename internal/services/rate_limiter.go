package services

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aabb-jequie/app-inscricao/internal/config"
	"github.com/aabb-jequie/app-inscricao/internal/logging"
	"github.com/aabb-jequie/app-inscricao/internal/observability"
	"go.uber.org/zap"
)

// RateLimiter implements a token bucket rate limiter
type RateLimiter struct {
	tokens     int
	maxTokens  int
	refillRate time.Duration
	lastRefill time.Time
	now        func() time.Time
	mutex      sync.Mutex
	logger     *logging.SafeLogger
}

// NewRateLimiter creates a bucket holding maxTokens that regains one token
// every refillRate.
func NewRateLimiter(maxTokens int, refillRate time.Duration, logger *logging.SafeLogger) *RateLimiter {
	return newRateLimiterAt(maxTokens, refillRate, time.Now, logger)
}

// PerMinute creates a bucket allowing bursts of n and a sustained n per minute.
func PerMinute(n int, logger *logging.SafeLogger) *RateLimiter {
	return NewRateLimiter(n, time.Minute/time.Duration(n), logger)
}

func newRateLimiterAt(maxTokens int, refillRate time.Duration, now func() time.Time, logger *logging.SafeLogger) *RateLimiter {
	return &RateLimiter{
		tokens:     maxTokens,
		maxTokens:  maxTokens,
		refillRate: refillRate,
		lastRefill: now(),
		now:        now,
		logger:     logger,
	}
}

// Allow takes a token if one is available.
func (rl *RateLimiter) Allow(operation string) bool {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	// Refill tokens for whole elapsed intervals
	now := rl.now()
	if added := int(now.Sub(rl.lastRefill) / rl.refillRate); added > 0 {
		rl.tokens += added
		if rl.tokens > rl.maxTokens {
			rl.tokens = rl.maxTokens
		}
		// Keep the remainder so partial intervals are not lost.
		rl.lastRefill = rl.lastRefill.Add(time.Duration(added) * rl.refillRate)
	}

	// Check if we have tokens available
	if rl.tokens > 0 {
		rl.tokens--
		return true
	}

	// Rate limit exceeded
	observability.RateLimitRejections.WithLabelValues(operation).Inc()
	rl.logger.Warn("rate limiter rejected request",
		zap.String("operation", operation),
		zap.Int("max_tokens", rl.maxTokens))
	return false
}

// Status returns the available and maximum tokens.
func (rl *RateLimiter) Status() (int, int) {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()
	return rl.tokens, rl.maxTokens
}

// KeyedRateLimiter keeps one bucket per key, such as a client address.
type KeyedRateLimiter struct {
	buckets   sync.Map // key -> *keyedBucket
	perMinute int
	now       func() time.Time
	logger    *logging.SafeLogger
}

type keyedBucket struct {
	limiter  *RateLimiter
	lastSeen atomic.Int64
}

// NewKeyedRateLimiter allows each key a burst of perMinute requests and
// perMinute sustained requests per minute.
func NewKeyedRateLimiter(perMinute int, logger *logging.SafeLogger) *KeyedRateLimiter {
	return &KeyedRateLimiter{perMinute: perMinute, now: time.Now, logger: logger}
}

// Allow takes a token from key's bucket.
func (m *KeyedRateLimiter) Allow(key string) bool {
	fresh := &keyedBucket{limiter: newRateLimiterAt(m.perMinute, time.Minute/time.Duration(m.perMinute), m.now, m.logger)}
	v, _ := m.buckets.LoadOrStore(key, fresh)
	b := v.(*keyedBucket)
	b.lastSeen.Store(m.now().UnixNano())

	if !b.limiter.Allow("submission") {
		m.logger.Warn("client throttled", zap.String("client", key))
		return false
	}
	return true
}

// CleanupIdle forgets buckets unused for olderThan. An idle bucket is full
// again, so dropping it changes no decision.
func (m *KeyedRateLimiter) CleanupIdle(olderThan time.Duration) int {
	cutoff := m.now().Add(-olderThan).UnixNano()
	removed := 0
	m.buckets.Range(func(key, value interface{}) bool {
		if value.(*keyedBucket).lastSeen.Load() < cutoff {
			m.buckets.Delete(key)
			removed++
		}
		return true
	})
	return removed
}

// Size returns the number of tracked keys.
func (m *KeyedRateLimiter) Size() int {
	count := 0
	m.buckets.Range(func(key, value interface{}) bool {
		count++
		return true
	})
	return count
}

// RunCleanup drops idle buckets every interval until ctx is done.
func (m *KeyedRateLimiter) RunCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.CleanupIdle(interval); n > 0 {
				m.logger.Debug("cleaned up idle rate limit buckets", zap.Int("removed", n))
			}
		}
	}
}

// Global submission limiter, nil when throttling is disabled.
var SubmissionLimiterInstance *KeyedRateLimiter

// InitSubmissionLimiter builds the per-client submission limiter and starts
// its cleanup loop, which stops with ctx.
func InitSubmissionLimiter(ctx context.Context, logger *logging.SafeLogger) {
	perMinute := config.AppConfig.SubmissionRateLimit
	if perMinute <= 0 {
		logger.Info("submission rate limiting disabled")
		return
	}
	SubmissionLimiterInstance = NewKeyedRateLimiter(perMinute, logger.Named("rate_limiter"))
	go SubmissionLimiterInstance.RunCleanup(ctx, 10*time.Minute)

	logger.Info("submission rate limiter initialized",
		zap.Int("max_requests_per_minute", perMinute))
}

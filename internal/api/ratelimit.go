package api

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ClientLimiter keeps a token bucket per client key. Buckets idle for
// longer than maxAge are dropped by the cleanup loop.
type ClientLimiter struct {
	rate  rate.Limit
	burst int

	mu       sync.Mutex
	limiters map[string]*clientBucket

	maxAge time.Duration
	stop   chan struct{}
	once   sync.Once
}

type clientBucket struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

func NewClientLimiter(rps float64, burst int) *ClientLimiter {
	l := &ClientLimiter{
		rate:     rate.Limit(rps),
		burst:    burst,
		limiters: make(map[string]*clientBucket),
		maxAge:   10 * time.Minute,
		stop:     make(chan struct{}),
	}
	go l.cleanup(5 * time.Minute)
	return l
}

func (l *ClientLimiter) Allow(key string) bool {
	now := time.Now()
	l.mu.Lock()
	b, ok := l.limiters[key]
	if !ok {
		b = &clientBucket{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.limiters[key] = b
	}
	b.lastAccess = now
	l.mu.Unlock()
	return b.limiter.AllowN(now, 1)
}

func (l *ClientLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			cutoff := time.Now().Add(-l.maxAge)
			l.mu.Lock()
			for key, b := range l.limiters {
				if b.lastAccess.Before(cutoff) {
					delete(l.limiters, key)
				}
			}
			l.mu.Unlock()
		case <-l.stop:
			return
		}
	}
}

func (l *ClientLimiter) Stop() {
	l.once.Do(func() {
		close(l.stop)
	})
}

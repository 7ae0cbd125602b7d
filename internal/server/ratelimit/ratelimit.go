package ratelimit

import (
	"sync"
	"time"
)

// TokenBucket is a classic token bucket: capacity tokens, refilled at
// refillRate tokens per second, one token per request.
type TokenBucket struct {
	mu         sync.Mutex
	tokens     float64
	capacity   float64
	refillRate float64
	lastRefill time.Time
}

func NewTokenBucket(capacity int, window time.Duration) *TokenBucket {
	rate := float64(capacity) / window.Seconds()
	return &TokenBucket{
		tokens:     float64(capacity),
		capacity:   float64(capacity),
		refillRate: rate,
		lastRefill: time.Now(),
	}
}

func (b *TokenBucket) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.refill()
	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

func (b *TokenBucket) refill() {
	now := time.Now()
	elapsed := now.Sub(b.lastRefill).Seconds()
	b.tokens += elapsed * b.refillRate
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}
	b.lastRefill = now
}

// Info describes the bucket state for response headers.
type Info struct {
	Limit      int
	Remaining  int
	ResetAfter time.Duration
}

func (b *TokenBucket) info() Info {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.refill()
	remaining := int(b.tokens)
	var reset time.Duration
	if b.tokens < b.capacity {
		missing := b.capacity - b.tokens
		reset = time.Duration(missing / b.refillRate * float64(time.Second))
	}
	return Info{Limit: int(b.capacity), Remaining: remaining, ResetAfter: reset}
}

// Limiter tracks one bucket per (client IP, endpoint tier) pair. Idle
// buckets are dropped by a background sweep.
type Limiter struct {
	mu       sync.Mutex
	buckets  map[string]*bucketEntry
	config   Config
	stopOnce sync.Once
	stop     chan struct{}
}

type bucketEntry struct {
	bucket   *TokenBucket
	lastSeen time.Time
}

func NewLimiter(config Config) *Limiter {
	l := &Limiter{
		buckets: make(map[string]*bucketEntry),
		config:  config,
		stop:    make(chan struct{}),
	}
	if config.Enabled {
		go l.sweep()
	}
	return l
}

// Allow reports whether the request identified by ip may proceed against
// the endpoint matched by method and path.
func (l *Limiter) Allow(ip, method, path string) (bool, Info) {
	if !l.config.Enabled {
		return true, Info{}
	}

	ep := l.config.Match(method, path)
	if ep == nil {
		return true, Info{}
	}

	key := ip + "|" + ep.Method + " " + ep.Path
	bucket := l.bucket(key, ep)
	allowed := bucket.allow()
	return allowed, bucket.info()
}

func (l *Limiter) bucket(key string, ep *EndpointConfig) *TokenBucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.buckets[key]
	if !ok {
		entry = &bucketEntry{bucket: NewTokenBucket(ep.Limit, ep.Window)}
		l.buckets[key] = entry
	}
	entry.lastSeen = time.Now()
	return entry.bucket
}

func (l *Limiter) sweep() {
	ticker := time.NewTicker(l.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			cutoff := time.Now().Add(-2 * l.config.CleanupInterval)
			l.mu.Lock()
			for key, entry := range l.buckets {
				if entry.lastSeen.Before(cutoff) {
					delete(l.buckets, key)
				}
			}
			l.mu.Unlock()
		case <-l.stop:
			return
		}
	}
}

// Stop terminates the cleanup goroutine.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}

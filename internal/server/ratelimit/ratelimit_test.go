package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenBucketExhaustsAndRefills(t *testing.T) {
	bucket := NewTokenBucket(3, time.Second)

	assert.True(t, bucket.allow())
	assert.True(t, bucket.allow())
	assert.True(t, bucket.allow())
	assert.False(t, bucket.allow())

	time.Sleep(400 * time.Millisecond)
	assert.True(t, bucket.allow())
}

func TestMatchPrefersExactOverPrefix(t *testing.T) {
	cfg := Config{
		Enabled: true,
		Endpoints: []EndpointConfig{
			{Path: "/resume/", Method: "GET", Limit: 300, Window: time.Minute},
			{Path: "/resumes", Method: "GET", Limit: 100, Window: time.Minute},
		},
	}

	ep := cfg.Match("GET", "/resumes")
	require.NotNil(t, ep)
	assert.Equal(t, 100, ep.Limit)

	ep = cfg.Match("GET", "/resume/abc123")
	require.NotNil(t, ep)
	assert.Equal(t, 300, ep.Limit)
}

func TestMatchSkipsHealthAndUnknown(t *testing.T) {
	cfg := Config{Enabled: true, Endpoints: DefaultEndpoints()}

	assert.Nil(t, cfg.Match("GET", "/health"))
	assert.Nil(t, cfg.Match("GET", "/metrics"))
}

func TestLimiterIsolatesClients(t *testing.T) {
	cfg := Config{
		Enabled:         true,
		CleanupInterval: time.Minute,
		Endpoints: []EndpointConfig{
			{Path: "/resume/", Method: "POST", Limit: 1, Window: time.Minute},
		},
	}
	limiter := NewLimiter(cfg)
	defer limiter.Stop()

	allowed, info := limiter.Allow("10.0.0.1", "POST", "/resume/x/export")
	assert.True(t, allowed)
	assert.Equal(t, 1, info.Limit)

	allowed, _ = limiter.Allow("10.0.0.1", "POST", "/resume/x/export")
	assert.False(t, allowed)

	allowed, _ = limiter.Allow("10.0.0.2", "POST", "/resume/x/export")
	assert.True(t, allowed, "second client has its own bucket")
}

func TestLimiterDisabledAllowsEverything(t *testing.T) {
	limiter := NewLimiter(Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("10.0.0.1", "POST", "/resume/x/export")
		assert.True(t, allowed)
	}
}

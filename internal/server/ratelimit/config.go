package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig pins a limit to one routed endpoint. A Path ending in
// "/" matches as a prefix so parameterized routes share one tier.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int
	Window time.Duration
}

// Config controls the limiter. Zero-value Config disables limiting.
type Config struct {
	Enabled         bool
	CleanupInterval time.Duration
	Endpoints       []EndpointConfig
}

// DefaultEndpoints tiers the API by cost. Exports run a headless
// renderer and an external PDF call, so they get the tightest budget;
// mutations sit in the middle; reads are generous.
func DefaultEndpoints() []EndpointConfig {
	return []EndpointConfig{
		{Path: "/resume/", Method: "POST", Limit: 10, Window: time.Minute},
		{Path: "/resumes", Method: "POST", Limit: 30, Window: time.Minute},
		{Path: "/resume/", Method: "PATCH", Limit: 120, Window: time.Minute},
		{Path: "/resume/", Method: "DELETE", Limit: 30, Window: time.Minute},
		{Path: "/resume/", Method: "GET", Limit: 300, Window: time.Minute},
		{Path: "/resumes", Method: "GET", Limit: 300, Window: time.Minute},
		{Path: "/sample-signal", Method: "POST", Limit: 60, Window: time.Minute},
	}
}

// LoadConfig reads limiter settings from the environment. Endpoints are
// the defaults; only the knobs that operators actually tune are exposed.
func LoadConfig() Config {
	return Config{
		Enabled:         getEnvBool("RATE_LIMIT_ENABLED", true),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Endpoints:       DefaultEndpoints(),
	}
}

// Match finds the endpoint tier for a request. Health checks are never
// limited. Exact path matches win over prefix matches.
func (c Config) Match(method, path string) *EndpointConfig {
	if path == "/health" {
		return nil
	}

	var prefix *EndpointConfig
	for i := range c.Endpoints {
		ep := &c.Endpoints[i]
		if ep.Method != method {
			continue
		}
		if ep.Path == path {
			return ep
		}
		if strings.HasSuffix(ep.Path, "/") && strings.HasPrefix(path, ep.Path) && prefix == nil {
			prefix = ep
		}
	}
	return prefix
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

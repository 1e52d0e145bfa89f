package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig sets the limit for one endpoint. Path is matched exactly or
// by prefix, see MatchEndpoint. A zero Burst defaults to Limit.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int
	Window time.Duration
	Burst  int
}

// LoadConfig builds the rate limiting configuration from RATE_LIMIT_*
// environment variables, falling back to sane defaults.
func LoadConfig() *Config {
	if !envBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    envInt("RATE_LIMIT_DEFAULT_LIMIT", 1000),
		DefaultWindow:   envDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: envDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Whitelist:       splitIPList(os.Getenv("RATE_LIMIT_WHITELIST")),
		Blacklist:       splitIPList(os.Getenv("RATE_LIMIT_BLACKLIST")),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the per-endpoint limits.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Expensive operations: each upload and render costs LLM calls
		{Path: "/api/v1/cv", Method: "POST", Limit: 30, Window: time.Hour, Burst: 5},
		{Path: "/api/v1/cv/render", Method: "POST", Limit: 60, Window: time.Hour, Burst: 10},

		// Auth endpoints: slow by construction (bcrypt), keep abuse out
		{Path: "/api/v1/auth/register", Method: "POST", Limit: 20, Window: time.Minute, Burst: 5},
		{Path: "/api/v1/auth/login", Method: "POST", Limit: 20, Window: time.Minute, Burst: 5},

		// Polling and reads fall through to the default limit.
		// Health check is unlimited, handled by a special case in the matcher.
	}
}

func envInt(key string, fallback int) int {
	if raw := os.Getenv(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if raw := os.Getenv(key); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			return v
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if raw := os.Getenv(key); raw != "" {
		if v, err := time.ParseDuration(raw); err == nil {
			return v
		}
	}
	return fallback
}

// splitIPList turns a comma-separated list of addresses into a set.
func splitIPList(list string) map[string]bool {
	set := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			set[ip] = true
		}
	}
	return set
}

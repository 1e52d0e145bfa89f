package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchEndpoint_HealthUnlimited(t *testing.T) {
	cfg := MatchEndpoint("/api/v1/health", "GET", DefaultEndpointConfigs())
	require.NotNil(t, cfg)
	assert.Equal(t, 0, cfg.Limit, "health endpoint should be unlimited")
}

func TestMatchEndpoint_ExactMatch(t *testing.T) {
	cfg := MatchEndpoint("/api/v1/cv", "POST", DefaultEndpointConfigs())
	require.NotNil(t, cfg)
	assert.Equal(t, 30, cfg.Limit)
}

func TestMatchEndpoint_MethodMismatch(t *testing.T) {
	// GET polling has no endpoint-specific config
	assert.Nil(t, MatchEndpoint("/api/v1/cv", "GET", DefaultEndpointConfigs()))
}

func TestMatchEndpoint_PrefixMatch(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/api/v1/cv/", Method: "GET", Limit: 10, Window: time.Minute},
	}
	cfg := MatchEndpoint("/api/v1/cv/123e4567", "GET", configs)
	require.NotNil(t, cfg)
	assert.Equal(t, 10, cfg.Limit)
}

func TestMatchEndpoint_NoMatch(t *testing.T) {
	assert.Nil(t, MatchEndpoint("/nope", "GET", DefaultEndpointConfigs()))
}

package ratelimit

import (
	"strings"
)

// MatchEndpoint resolves the endpoint configuration for a request. Exact path
// matches win; configs whose Path ends in "/" also match as prefixes, so
// "/api/v1/cv/" covers "/api/v1/cv/{id}". Returns nil when nothing matches.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	// The health check is never limited.
	if path == "/api/v1/health" && method == "GET" {
		return &EndpointConfig{}
	}

	for i := range configs {
		if configs[i].Path == path && configs[i].Method == method {
			return &configs[i]
		}
	}

	for i := range configs {
		c := &configs[i]
		if c.Method == method && strings.HasSuffix(c.Path, "/") && strings.HasPrefix(path, c.Path) {
			return c
		}
	}

	return nil
}

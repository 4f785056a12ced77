package ratelimit

import (
	"net/http"
	"strings"
)

// How specifically a configured path matches a request path.
const (
	noMatch = iota
	prefixMatch
	patternMatch
	exactMatch
)

// MatchEndpoint returns the configuration governing a request, or nil when
// the default limit applies.
//
// Configured paths are literal ("/team/auto-select"), patterns whose "{name}"
// segments match any single segment ("/team/{id}/toggle"), or prefixes
// ending in "/". Literal beats pattern beats prefix; the longest prefix wins.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if unlimited(path, method) {
		return &EndpointConfig{Path: path, Method: method}
	}

	var best *EndpointConfig
	bestRank := noMatch
	for i := range configs {
		config := &configs[i]
		if config.Method != method {
			continue
		}
		rank := matchRank(config.Path, path)
		if rank == noMatch {
			continue
		}
		if rank > bestRank || (rank == bestRank && len(config.Path) > len(best.Path)) {
			best, bestRank = config, rank
		}
	}
	return best
}

// unlimited reports requests that never count against a bucket: the health
// check and CORS preflights.
func unlimited(path, method string) bool {
	return method == http.MethodOptions || (path == "/health" && method == http.MethodGet)
}

func matchRank(pattern, path string) int {
	switch {
	case pattern == path:
		return exactMatch
	case strings.Contains(pattern, "{"):
		if segmentsMatch(pattern, path) {
			return patternMatch
		}
		return noMatch
	case strings.HasSuffix(pattern, "/") && strings.HasPrefix(path, pattern):
		return prefixMatch
	default:
		return noMatch
	}
}

func segmentsMatch(pattern, path string) bool {
	want := strings.Split(strings.Trim(pattern, "/"), "/")
	got := strings.Split(strings.Trim(path, "/"), "/")
	if len(want) != len(got) {
		return false
	}
	for i, seg := range want {
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			if got[i] == "" {
				return false
			}
			continue
		}
		if seg != got[i] {
			return false
		}
	}
	return true
}

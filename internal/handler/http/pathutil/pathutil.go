// Package pathutil provides URL path helpers for handlers and metrics.
package pathutil

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidID is returned when the ID in the URL path is invalid.
var ErrInvalidID = errors.New("invalid id")

// ExtractID parses an integer ID from a URL path after removing prefix.
// Returns ErrInvalidID when the remainder is not a positive integer.
func ExtractID(path, prefix string) (int64, error) {
	idStr := strings.TrimPrefix(path, prefix)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// pathPatterns maps dynamic routes to templates, most specific first.
// Pre-compiled at init so normalization stays cheap on the hot path.
var pathPatterns = []struct {
	pattern  *regexp.Regexp
	template string
}{
	{regexp.MustCompile(`^/recipes/\d+$`), "/recipes/:id"},
	{regexp.MustCompile(`^/users/\d+$`), "/users/:id"},
}

// NormalizePath collapses paths carrying IDs into templates so metric
// labels stay low-cardinality. Static paths pass through unchanged.
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.pattern.MatchString(path) {
			return p.template
		}
	}
	return path
}

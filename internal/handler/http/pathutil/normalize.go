// Package pathutil provides helpers for normalizing dynamic URL paths
// into low-cardinality metrics labels.
package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// staticPaths lists routes whose final segment is an operation name, not an
// identifier. They must never be collapsed by the dynamic patterns below.
var staticPaths = map[string]struct{}{
	"/articles/publish":       {},
	"/articles/edit":          {},
	"/articles/delete":        {},
	"/advertisements/publish": {},
	"/advertisements/edit":    {},
	"/advertisements/delete":  {},
	"/quotes/publish":         {},
	"/quotes/edit":            {},
	"/quotes/delete":          {},
}

// pathPatterns defines the list of patterns for dynamic routes.
// Patterns are evaluated in order from most specific to least specific.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/articles/category/[^/]+$`), Template: "/articles/category/:category"},
	{Pattern: regexp.MustCompile(`^/advertisements/page/[^/]+$`), Template: "/advertisements/page/:page"},
	// The article detail segment accepts either a numeric ID or a slug.
	{Pattern: regexp.MustCompile(`^/articles/[^/]+$`), Template: "/articles/:idOrSlug"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label
// cardinality explosion. Paths carrying IDs, slugs, or category names are
// collapsed to template form (e.g. /articles/my-story becomes
// /articles/:idOrSlug); static paths pass through unchanged.
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	if _, ok := staticPaths[path]; ok {
		return path
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}
	return path
}

package util

import (
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// PathMatcher matches relative file paths against include/exclude globs.
// Exclusions win over inclusions; an empty include list includes everything.
type PathMatcher struct {
	includePatterns []string
	excludePatterns []string
}

// NewPathMatcher creates a matcher from include and exclude patterns
func NewPathMatcher(include, exclude []string) *PathMatcher {
	return &PathMatcher{
		includePatterns: include,
		excludePatterns: exclude,
	}
}

// Matches reports whether the path is selected by the configured patterns
func (m *PathMatcher) Matches(path string) bool {
	path = filepath.ToSlash(path)

	for _, pattern := range m.excludePatterns {
		if matched, err := doublestar.Match(pattern, path); err == nil && matched {
			return false
		}
	}

	if len(m.includePatterns) == 0 {
		return true
	}

	for _, pattern := range m.includePatterns {
		if matched, err := doublestar.Match(pattern, path); err == nil && matched {
			return true
		}
	}

	return false
}

// MatchGlob matches a path against a single doublestar pattern
func MatchGlob(pattern, path string) bool {
	matched, err := doublestar.Match(pattern, filepath.ToSlash(path))
	return err == nil && matched
}

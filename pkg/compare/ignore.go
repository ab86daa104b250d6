package compare

import (
	"path"
	"path/filepath"
	"strings"
)

// shouldIgnore reports whether an entry is skipped by the ignore patterns.
// Patterns support:
//   - bare names and globs matched against the entry name: CVS, *.tmp
//   - directory patterns, matching directories only: build/, .cache/
//   - slash patterns matched against the whole relative path: docs/*.bak
//   - **/ prefixes, matching a suffix at any depth: **/testdata/*.golden
func shouldIgnore(relativePath string, isDir bool, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}

	rel := filepath.ToSlash(relativePath)
	name := filepath.Base(relativePath)

	for _, raw := range patterns {
		pattern := filepath.ToSlash(strings.TrimSpace(raw))
		if pattern == "" {
			continue
		}

		if strings.HasSuffix(pattern, "/") {
			if isDir && matchPattern(strings.TrimSuffix(pattern, "/"), rel, name) {
				return true
			}
			continue
		}

		if matchPattern(pattern, rel, name) {
			return true
		}
	}

	return false
}

// matchPattern matches one pattern, without a trailing slash, against an entry
func matchPattern(pattern, rel, name string) bool {
	if suffix, ok := strings.CutPrefix(pattern, "**/"); ok {
		if matchGlob(suffix, name) {
			return true
		}
		parts := strings.Split(rel, "/")
		depth := strings.Count(suffix, "/") + 1
		if len(parts) >= depth {
			return matchGlob(suffix, strings.Join(parts[len(parts)-depth:], "/"))
		}
		return false
	}

	if strings.Contains(pattern, "/") {
		return matchGlob(pattern, rel)
	}

	return matchGlob(pattern, name)
}

// matchGlob treats malformed patterns as non-matching
func matchGlob(pattern, name string) bool {
	matched, err := path.Match(pattern, name)
	return err == nil && matched
}

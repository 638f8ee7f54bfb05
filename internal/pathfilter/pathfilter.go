// Package pathfilter decides which vault entries are visible and which files are notes.
package pathfilter

import (
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
	"github.com/taigrr/combine-notes/internal/types"
)

// MarkdownExtension is the extension of files that get combined.
const MarkdownExtension = "md"

// PathFilter hides ignored paths and recognizes markdown files.
type PathFilter struct {
	ignoredPatterns []string
	matcher         *ignore.GitIgnore
}

// New creates a new PathFilter with the given configuration.
func New(config *types.PathFilterConfig) *PathFilter {
	patterns := []string{
		".obsidian",
		".git",
		".trash",
		"node_modules",
		".DS_Store",
		"Thumbs.db",
	}

	if config != nil {
		patterns = append(patterns, config.IgnoredPatterns...)
	}

	return &PathFilter{
		ignoredPatterns: patterns,
		matcher:         ignore.CompileIgnoreLines(patterns...),
	}
}

// IsIgnored reports whether a vault path is hidden from the tree.
func (pf *PathFilter) IsIgnored(path string) bool {
	normalizedPath := strings.ReplaceAll(path, "\\", "/")
	normalizedPath = strings.Trim(normalizedPath, "/")
	if normalizedPath == "" {
		return false
	}

	return pf.matcher.MatchesPath(normalizedPath)
}

// IsMarkdown reports whether a file extension marks a note.
// The comparison is exact: "MD" and "markdown" are not notes.
func (pf *PathFilter) IsMarkdown(extension string) bool {
	return extension == MarkdownExtension
}

// Patterns returns the active ignore patterns.
func (pf *PathFilter) Patterns() []string {
	return append([]string(nil), pf.ignoredPatterns...)
}

// FilterPaths filters a slice of paths to only include visible ones.
func (pf *PathFilter) FilterPaths(paths []string) []string {
	var allowed []string
	for _, path := range paths {
		if !pf.IsIgnored(path) {
			allowed = append(allowed, path)
		}
	}
	return allowed
}

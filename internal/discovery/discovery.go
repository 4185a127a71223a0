// Package discovery scans a project tree for React/TypeScript source files
// and produces the immutable file snapshot the rules operate on.
package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/irenetello/react-doctor/internal/types"
)

// sourcePatterns are the glob patterns for eligible source files.
var sourcePatterns = []string{
	"**/*.ts",
	"**/*.tsx",
	"**/*.js",
	"**/*.jsx",
}

// skipComponents are directory names excluded from scanning. Build output
// and dependency trees would dwarf the project's own sources.
var skipComponents = []string{
	"node_modules",
	"dist",
	"build",
	"out",
	".next",
	"coverage",
	".git",
}

// WorkspaceScanner manages source file discovery for one project root.
type WorkspaceScanner struct {
	rootPath string
	exclude  []string
}

// NewWorkspaceScanner creates a new WorkspaceScanner. exclude holds extra
// user-configured glob patterns matched against slash-normalized rel paths.
func NewWorkspaceScanner(rootPath string, exclude []string) *WorkspaceScanner {
	return &WorkspaceScanner{
		rootPath: rootPath,
		exclude:  exclude,
	}
}

// Scan finds all eligible source files under the root and returns them as
// an ordered snapshot, sorted by relative path for deterministic runs.
func (ws *WorkspaceScanner) Scan() ([]types.ScannedFile, error) {
	seen := make(map[string]bool)
	var files []types.ScannedFile

	for _, pattern := range sourcePatterns {
		matches, err := doublestar.Glob(os.DirFS(ws.rootPath), pattern)
		if err != nil {
			return nil, fmt.Errorf("error evaluating pattern %s: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] || ws.skip(match) {
				continue
			}

			f, ok := ws.processMatch(match)
			if !ok {
				continue
			}
			seen[match] = true
			files = append(files, f)
		}
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].RelPath < files[j].RelPath
	})

	return files, nil
}

// skip reports whether a relative path falls in an excluded directory or
// matches a user exclude pattern.
func (ws *WorkspaceScanner) skip(relPath string) bool {
	for _, part := range strings.Split(relPath, "/") {
		for _, comp := range skipComponents {
			if part == comp {
				return true
			}
		}
	}

	for _, pattern := range ws.exclude {
		if ok, err := doublestar.Match(pattern, relPath); err == nil && ok {
			return true
		}
	}

	return false
}

// processMatch converts a glob match into a ScannedFile, returning false if
// the match should be skipped (directory, unreadable).
func (ws *WorkspaceScanner) processMatch(match string) (types.ScannedFile, bool) {
	fullPath := filepath.Join(ws.rootPath, filepath.FromSlash(match))

	info, err := os.Stat(fullPath)
	if err != nil || info.IsDir() {
		return types.ScannedFile{}, false
	}

	contents, err := os.ReadFile(fullPath)
	if err != nil {
		return types.ScannedFile{}, false
	}

	return types.NewScannedFile(fullPath, match, string(contents)), true
}

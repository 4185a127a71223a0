// Package output renders an analysis report in console, JSON, or markdown
// form.
package output

import (
	"path/filepath"
	"time"

	"github.com/irenetello/react-doctor/internal/score"
	"github.com/irenetello/react-doctor/internal/types"
)

// Report is the rendered outcome of one analysis run. Issues are expected
// to arrive already deduplicated and sorted (severity rank descending,
// then file path ascending).
type Report struct {
	ProjectRoot     string
	StartTime       time.Time
	FilesScanned    int
	Issues          []types.Issue
	Health          score.Health
	BaselineIgnored int
}

// IssuesBySeverity returns the report's issues with the given severity,
// preserving their order.
func (r *Report) IssuesBySeverity(severity string) []types.Issue {
	var out []types.Issue
	for _, issue := range r.Issues {
		if issue.Severity == severity {
			out = append(out, issue)
		}
	}
	return out
}

// displayPath shortens an absolute path to be relative to the project root
// when possible.
func (r *Report) displayPath(path string) string {
	if rel, err := filepath.Rel(r.ProjectRoot, path); err == nil {
		return filepath.ToSlash(rel)
	}
	return path
}

package rules

import (
	"fmt"

	"github.com/irenetello/react-doctor/internal/types"
)

// LargeFileRule flags files whose line count exceeds the configured limit.
type LargeFileRule struct{}

var _ Rule = (*LargeFileRule)(nil)

// NewLargeFileRule creates the large file rule.
func NewLargeFileRule() *LargeFileRule {
	return &LargeFileRule{}
}

func (r *LargeFileRule) ID() string {
	return "large-file"
}

func (r *LargeFileRule) Description() string {
	return "Flags source files exceeding the configured line limit"
}

func (r *LargeFileRule) Check(ctx *types.RuleContext, files []types.ScannedFile) []types.Issue {
	limit := ctx.MaxFileLines
	if limit <= 0 {
		limit = 300
	}

	var issues []types.Issue
	for _, f := range files {
		lines := len(f.Lines)
		if lines <= limit {
			continue
		}
		issues = append(issues, types.Issue{
			ID:       "large-file:" + f.RelPath,
			RuleID:   "large-file",
			Severity: types.SeverityWarning,
			Message:  fmt.Sprintf("File is %d lines long (limit %d) - consider splitting it into smaller modules", lines, limit),
			FilePath: f.Path,
		})
	}

	return issues
}

package rules

import (
	"fmt"
	"regexp"

	"github.com/irenetello/react-doctor/internal/types"
)

var consoleLogPattern = regexp.MustCompile(`\bconsole\.log\(`)

// ConsoleLogRule flags leftover console.log calls.
type ConsoleLogRule struct{}

var _ Rule = (*ConsoleLogRule)(nil)

// NewConsoleLogRule creates the console.log rule.
func NewConsoleLogRule() *ConsoleLogRule {
	return &ConsoleLogRule{}
}

func (r *ConsoleLogRule) ID() string {
	return "console-log"
}

func (r *ConsoleLogRule) Description() string {
	return "Flags console.log calls left in source files"
}

func (r *ConsoleLogRule) Check(ctx *types.RuleContext, files []types.ScannedFile) []types.Issue {
	var issues []types.Issue

	for _, f := range files {
		for i, line := range f.Lines {
			if !consoleLogPattern.MatchString(line) {
				continue
			}
			issues = append(issues, types.Issue{
				ID:       fmt.Sprintf("console-log:%s:%d", f.RelPath, i+1),
				RuleID:   "console-log",
				Severity: types.SeverityInfo,
				Message:  "console.log call left in source",
				FilePath: f.Path,
				Line:     i + 1,
			})
		}
	}

	return issues
}

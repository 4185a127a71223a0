// Package rules implements the analysis rules react-doctor runs over a
// workspace snapshot, plus the runner that executes them.
package rules

import (
	"sort"
	"sync"

	"github.com/irenetello/react-doctor/internal/types"
)

// Rule is the interface every analysis rule implements.
//
// Check must be a pure function of the snapshot: it receives a read-only
// slice of files plus the shared context, mutates nothing, and returns its
// findings. That contract is what lets the runner execute rules in parallel
// with no locking discipline.
type Rule interface {
	// ID returns the stable rule identifier (e.g. "circular-deps").
	ID() string

	// Description returns a one-line human description of the rule.
	Description() string

	// Check inspects the snapshot and returns any issues found.
	Check(ctx *types.RuleContext, files []types.ScannedFile) []types.Issue
}

// DefaultRules returns the standard rule set in registration order.
func DefaultRules() []Rule {
	return []Rule{
		NewCircularDepsRule(),
		NewImgAltRule(),
		NewLiteralObjectPropRule(),
		NewLargeFileRule(),
		NewConsoleLogRule(),
	}
}

// Runner executes a set of rules against one snapshot.
type Runner struct {
	rules []Rule
}

// NewRunner creates a Runner for the given rules.
func NewRunner(rules []Rule) *Runner {
	return &Runner{rules: rules}
}

// Rules returns the rules this runner executes.
func (r *Runner) Rules() []Rule {
	return r.rules
}

// Run executes every rule, each in its own goroutine, then merges the
// results: duplicates collapse on Issue.ID and the remainder is sorted by
// severity rank descending, file path ascending, line ascending.
func (r *Runner) Run(ctx *types.RuleContext, files []types.ScannedFile) []types.Issue {
	results := make([][]types.Issue, len(r.rules))

	var wg sync.WaitGroup
	for i, rule := range r.rules {
		wg.Add(1)
		go func(i int, rule Rule) {
			defer wg.Done()
			results[i] = rule.Check(ctx, files)
		}(i, rule)
	}
	wg.Wait()

	seen := make(map[string]bool)
	var all []types.Issue
	for _, issues := range results {
		for _, issue := range issues {
			if seen[issue.ID] {
				continue
			}
			seen[issue.ID] = true
			all = append(all, issue)
		}
	}

	SortIssues(all)
	return all
}

// SortIssues orders issues by severity rank descending, then file path
// ascending, then line ascending. The order is deterministic for any
// snapshot, which keeps repeated runs byte-identical.
func SortIssues(issues []types.Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		a, b := issues[i], issues[j]
		if ra, rb := types.SeverityRank(a.Severity), types.SeverityRank(b.Severity); ra != rb {
			return ra > rb
		}
		if a.FilePath != b.FilePath {
			return a.FilePath < b.FilePath
		}
		return a.Line < b.Line
	})
}

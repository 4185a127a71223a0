package rules

import (
	"fmt"
	"regexp"

	"github.com/irenetello/react-doctor/internal/types"
)

// literalObjectPropPattern matches a JSX prop assigned an inline object
// literal, e.g. style={{ margin: 0 }}.
var literalObjectPropPattern = regexp.MustCompile(`\b([a-zA-Z][a-zA-Z0-9]*)=\{\{`)

// LiteralObjectPropRule flags object literals passed directly as JSX props.
// The literal gets a fresh identity on every render, which defeats memoized
// children and effect dependency checks.
type LiteralObjectPropRule struct{}

var _ Rule = (*LiteralObjectPropRule)(nil)

// NewLiteralObjectPropRule creates the literal prop rule.
func NewLiteralObjectPropRule() *LiteralObjectPropRule {
	return &LiteralObjectPropRule{}
}

func (r *LiteralObjectPropRule) ID() string {
	return "literal-object-prop"
}

func (r *LiteralObjectPropRule) Description() string {
	return "Flags object literals passed inline as JSX props"
}

func (r *LiteralObjectPropRule) Check(ctx *types.RuleContext, files []types.ScannedFile) []types.Issue {
	var issues []types.Issue

	for _, f := range files {
		if !isJSXFile(f.RelPath) {
			continue
		}

		for i, line := range f.Lines {
			for _, m := range literalObjectPropPattern.FindAllStringSubmatch(line, -1) {
				issues = append(issues, types.Issue{
					ID:       fmt.Sprintf("literal-object-prop:%s:%d:%s", f.RelPath, i+1, m[1]),
					RuleID:   "literal-object-prop",
					Severity: types.SeverityWarning,
					Message:  fmt.Sprintf("Prop '%s' receives an inline object literal, creating a new reference on every render", m[1]),
					FilePath: f.Path,
					Line:     i + 1,
				})
			}
		}
	}

	return issues
}

package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/irenetello/react-doctor/internal/types"
)

// imgTagPattern matches an opening <img tag and captures its attributes up
// to the end of the line. Tags split across lines are not matched; this is
// a shallow per-line scan.
var imgTagPattern = regexp.MustCompile(`<img\b([^>]*)`)

// ImgAltRule flags <img> elements without an alt attribute in JSX files.
type ImgAltRule struct{}

var _ Rule = (*ImgAltRule)(nil)

// NewImgAltRule creates the image alt-text rule.
func NewImgAltRule() *ImgAltRule {
	return &ImgAltRule{}
}

func (r *ImgAltRule) ID() string {
	return "img-alt"
}

func (r *ImgAltRule) Description() string {
	return "Flags <img> elements missing an alt attribute"
}

func (r *ImgAltRule) Check(ctx *types.RuleContext, files []types.ScannedFile) []types.Issue {
	var issues []types.Issue

	for _, f := range files {
		if !isJSXFile(f.RelPath) {
			continue
		}

		for i, line := range f.Lines {
			for _, m := range imgTagPattern.FindAllStringSubmatch(line, -1) {
				if strings.Contains(m[1], "alt=") {
					continue
				}
				issues = append(issues, types.Issue{
					ID:       fmt.Sprintf("img-alt:%s:%d", f.RelPath, i+1),
					RuleID:   "img-alt",
					Severity: types.SeverityWarning,
					Message:  "<img> element is missing an alt attribute",
					FilePath: f.Path,
					Line:     i + 1,
				})
			}
		}
	}

	return issues
}

// isJSXFile reports whether a path names a file that can contain JSX.
func isJSXFile(relPath string) bool {
	return strings.HasSuffix(relPath, ".tsx") || strings.HasSuffix(relPath, ".jsx")
}

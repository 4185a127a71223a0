package rules

import (
	"strings"
	"testing"

	"github.com/irenetello/react-doctor/internal/types"
)

func TestImgAltRule(t *testing.T) {
	ctx := &types.RuleContext{}
	rule := NewImgAltRule()

	tests := []struct {
		name      string
		relPath   string
		content   string
		wantCount int
		wantLine  int
	}{
		{
			name:      "img without alt",
			relPath:   "src/App.tsx",
			content:   "export const App = () => (\n  <img src=\"logo.png\" />\n);",
			wantCount: 1,
			wantLine:  2,
		},
		{
			name:      "img with alt passes",
			relPath:   "src/App.tsx",
			content:   `<img src="logo.png" alt="Logo" />`,
			wantCount: 0,
		},
		{
			name:      "non-jsx file ignored",
			relPath:   "src/util.ts",
			content:   `const html = "<img src='x'>";`,
			wantCount: 0,
		},
		{
			name:      "two imgs one missing",
			relPath:   "src/Gallery.jsx",
			content:   "<img src=\"a.png\" alt=\"a\" />\n<img src=\"b.png\" />",
			wantCount: 1,
			wantLine:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := []types.ScannedFile{types.NewScannedFile("/p/"+tt.relPath, tt.relPath, tt.content)}
			issues := rule.Check(ctx, files)
			if len(issues) != tt.wantCount {
				t.Fatalf("Check() returned %d issues, want %d: %v", len(issues), tt.wantCount, issues)
			}
			if tt.wantCount > 0 {
				if issues[0].Line != tt.wantLine {
					t.Errorf("Line = %d, want %d", issues[0].Line, tt.wantLine)
				}
				if issues[0].Severity != types.SeverityWarning {
					t.Errorf("Severity = %q, want warning", issues[0].Severity)
				}
			}
		})
	}
}

func TestLiteralObjectPropRule(t *testing.T) {
	ctx := &types.RuleContext{}
	rule := NewLiteralObjectPropRule()

	t.Run("inline style object", func(t *testing.T) {
		files := []types.ScannedFile{
			types.NewScannedFile("/p/src/App.tsx", "src/App.tsx", `<div style={{ margin: 0 }} />`),
		}
		issues := rule.Check(ctx, files)
		if len(issues) != 1 {
			t.Fatalf("Check() returned %d issues, want 1", len(issues))
		}
		if !strings.Contains(issues[0].Message, "style") {
			t.Errorf("Message = %q, want prop name included", issues[0].Message)
		}
	})

	t.Run("bound variable passes", func(t *testing.T) {
		files := []types.ScannedFile{
			types.NewScannedFile("/p/src/App.tsx", "src/App.tsx", `<div style={styles} />`),
		}
		if issues := rule.Check(ctx, files); len(issues) != 0 {
			t.Errorf("Check() = %v, want no issues", issues)
		}
	})

	t.Run("plain ts file ignored", func(t *testing.T) {
		files := []types.ScannedFile{
			types.NewScannedFile("/p/src/conf.ts", "src/conf.ts", `const x = fn({opts:{}});`),
		}
		if issues := rule.Check(ctx, files); len(issues) != 0 {
			t.Errorf("Check() = %v, want no issues", issues)
		}
	})
}

func TestLargeFileRule(t *testing.T) {
	rule := NewLargeFileRule()

	t.Run("under limit", func(t *testing.T) {
		ctx := &types.RuleContext{MaxFileLines: 5}
		files := []types.ScannedFile{
			types.NewScannedFile("/p/a.ts", "a.ts", "1\n2\n3"),
		}
		if issues := rule.Check(ctx, files); len(issues) != 0 {
			t.Errorf("Check() = %v, want no issues", issues)
		}
	})

	t.Run("over limit", func(t *testing.T) {
		ctx := &types.RuleContext{MaxFileLines: 3}
		files := []types.ScannedFile{
			types.NewScannedFile("/p/a.ts", "a.ts", "1\n2\n3\n4\n5"),
		}
		issues := rule.Check(ctx, files)
		if len(issues) != 1 {
			t.Fatalf("Check() returned %d issues, want 1", len(issues))
		}
		if issues[0].Line != 0 {
			t.Errorf("Line = %d, want 0 (whole-file issue)", issues[0].Line)
		}
		if !strings.Contains(issues[0].Message, "5 lines") {
			t.Errorf("Message = %q, want line count", issues[0].Message)
		}
	})

	t.Run("zero context limit falls back to default", func(t *testing.T) {
		ctx := &types.RuleContext{}
		files := []types.ScannedFile{
			types.NewScannedFile("/p/a.ts", "a.ts", strings.Repeat("x\n", 301)),
		}
		if issues := rule.Check(ctx, files); len(issues) != 1 {
			t.Errorf("Check() returned %d issues, want 1", len(issues))
		}
	})
}

func TestConsoleLogRule(t *testing.T) {
	ctx := &types.RuleContext{}
	rule := NewConsoleLogRule()

	files := []types.ScannedFile{
		types.NewScannedFile("/p/a.ts", "a.ts", "const x = 1;\nconsole.log(x);\nconsole.error(x);"),
	}

	issues := rule.Check(ctx, files)
	if len(issues) != 1 {
		t.Fatalf("Check() returned %d issues, want 1 (console.error is allowed)", len(issues))
	}
	if issues[0].Line != 2 {
		t.Errorf("Line = %d, want 2", issues[0].Line)
	}
	if issues[0].Severity != types.SeverityInfo {
		t.Errorf("Severity = %q, want info", issues[0].Severity)
	}
}

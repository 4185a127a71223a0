package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

// writeFile creates a file under root, making parent directories as needed.
func writeFile(t *testing.T, root, relPath, content string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(full, []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestScanFindsSourceFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/App.tsx", "export const App = () => null;")
	writeFile(t, root, "src/util.ts", "export const u = 1;")
	writeFile(t, root, "index.js", "console.log('hi');")
	writeFile(t, root, "README.md", "# readme")
	writeFile(t, root, "styles.css", "body {}")

	files, err := NewWorkspaceScanner(root, nil).Scan()
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	var rels []string
	for _, f := range files {
		rels = append(rels, f.RelPath)
	}

	want := []string{"index.js", "src/App.tsx", "src/util.ts"}
	if len(rels) != len(want) {
		t.Fatalf("Scan() = %v, want %v", rels, want)
	}
	for i, w := range want {
		if rels[i] != w {
			t.Errorf("Scan()[%d] = %q, want %q (sorted by rel path)", i, rels[i], w)
		}
	}
}

func TestScanSkipsDependencyAndBuildDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/a.ts", "export const a = 1;")
	writeFile(t, root, "node_modules/react/index.js", "module.exports = {};")
	writeFile(t, root, "dist/bundle.js", "var x;")
	writeFile(t, root, "build/out.js", "var y;")
	writeFile(t, root, "coverage/lcov.js", "var z;")

	files, err := NewWorkspaceScanner(root, nil).Scan()
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if len(files) != 1 || files[0].RelPath != "src/a.ts" {
		t.Errorf("Scan() = %v, want only src/a.ts", files)
	}
}

func TestScanHonorsExcludePatterns(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/a.ts", "export const a = 1;")
	writeFile(t, root, "src/a.test.ts", "test('a', () => {});")

	files, err := NewWorkspaceScanner(root, []string{"**/*.test.ts"}).Scan()
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if len(files) != 1 || files[0].RelPath != "src/a.ts" {
		t.Errorf("Scan() = %v, want only src/a.ts", files)
	}
}

func TestScanPopulatesSnapshotFields(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/a.ts", "line one\nline two")

	files, err := NewWorkspaceScanner(root, nil).Scan()
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("Scan() = %d files, want 1", len(files))
	}

	f := files[0]
	if !filepath.IsAbs(f.Path) {
		t.Errorf("Path = %q, want absolute", f.Path)
	}
	if f.RelPath != "src/a.ts" {
		t.Errorf("RelPath = %q, want src/a.ts", f.RelPath)
	}
	if f.Content != "line one\nline two" {
		t.Errorf("Content = %q", f.Content)
	}
	if len(f.Lines) != 2 || f.Lines[1] != "line two" {
		t.Errorf("Lines = %v, want two split lines", f.Lines)
	}
}

func TestScanEmptyRoot(t *testing.T) {
	files, err := NewWorkspaceScanner(t.TempDir(), nil).Scan()
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(files) != 0 {
		t.Errorf("Scan() = %v, want empty", files)
	}
}

package project

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindProjectRoot(t *testing.T) {
	t.Run("walks up to package.json", func(t *testing.T) {
		root := t.TempDir()
		if err := os.WriteFile(filepath.Join(root, "package.json"), []byte("{}"), 0644); err != nil {
			t.Fatal(err)
		}
		nested := filepath.Join(root, "src", "components")
		if err := os.MkdirAll(nested, 0755); err != nil {
			t.Fatal(err)
		}

		got, err := FindProjectRoot(nested)
		if err != nil {
			t.Fatalf("FindProjectRoot() error = %v", err)
		}
		if got != root {
			t.Errorf("FindProjectRoot() = %q, want %q", got, root)
		}
	})

	t.Run("tsconfig.json marks a root", func(t *testing.T) {
		root := t.TempDir()
		if err := os.WriteFile(filepath.Join(root, "tsconfig.json"), []byte("{}"), 0644); err != nil {
			t.Fatal(err)
		}

		got, err := FindProjectRoot(root)
		if err != nil {
			t.Fatalf("FindProjectRoot() error = %v", err)
		}
		if got != root {
			t.Errorf("FindProjectRoot() = %q, want %q", got, root)
		}
	})

	t.Run("nearest marker wins", func(t *testing.T) {
		outer := t.TempDir()
		if err := os.WriteFile(filepath.Join(outer, "package.json"), []byte("{}"), 0644); err != nil {
			t.Fatal(err)
		}
		inner := filepath.Join(outer, "packages", "web")
		if err := os.MkdirAll(inner, 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(inner, "package.json"), []byte("{}"), 0644); err != nil {
			t.Fatal(err)
		}

		got, err := FindProjectRoot(inner)
		if err != nil {
			t.Fatalf("FindProjectRoot() error = %v", err)
		}
		if got != inner {
			t.Errorf("FindProjectRoot() = %q, want nearest root %q", got, inner)
		}
	})
}

package project

import (
	"os"
	"path/filepath"
)

// FindProjectRoot searches for a project root starting from the given path
// and climbing up the directory tree if needed.
func FindProjectRoot(startPath string) (string, error) {
	absPath, err := filepath.Abs(startPath)
	if err != nil {
		return "", err
	}

	currentDir := absPath
	for {
		if isProjectRoot(currentDir) {
			return currentDir, nil
		}

		parent := filepath.Dir(currentDir)
		if parent == currentDir {
			// Reached filesystem root
			break
		}
		currentDir = parent
	}

	// Default to the starting directory if no marker found
	return absPath, nil
}

// isProjectRoot determines if a directory is a project root.
// React/TypeScript projects are identified by their manifest files.
func isProjectRoot(path string) bool {
	if _, err := os.Stat(filepath.Join(path, "package.json")); err == nil {
		return true
	}

	if _, err := os.Stat(filepath.Join(path, "tsconfig.json")); err == nil {
		return true
	}

	if _, err := os.Stat(filepath.Join(path, ".git")); err == nil {
		return true
	}

	return false
}

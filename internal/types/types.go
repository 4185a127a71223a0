// Package types provides shared types used across the react-doctor codebase.
// This package is at the bottom of the dependency graph and should not import
// any other internal packages to avoid circular dependencies.
package types

import "strings"

// Severity level constants.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// SeverityRank maps a severity to a comparable rank. Higher is more severe.
// Unknown severities rank below info.
func SeverityRank(severity string) int {
	switch severity {
	case SeverityError:
		return 3
	case SeverityWarning:
		return 2
	case SeverityInfo:
		return 1
	default:
		return 0
	}
}

// Issue is a single diagnostic produced by a rule.
//
// ID is a stable dedup key derivable solely from what the rule observed:
// two identical findings always carry the same ID, so duplicates collapse
// when results from several rules (or repeated traversals) are merged.
type Issue struct {
	ID       string `json:"id"`
	RuleID   string `json:"rule_id"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	FilePath string `json:"file_path"`
	Line     int    `json:"line,omitempty"` // 1-based; 0 means unknown
}

// ScannedFile is one source file from the workspace snapshot.
// Immutable for the duration of an analysis run; rules never mutate it.
type ScannedFile struct {
	Path    string   // absolute filesystem location
	RelPath string   // slash-normalized path relative to the project root
	Content string   // full text
	Lines   []string // Content split on line breaks
}

// NewScannedFile builds a ScannedFile with pre-split lines.
func NewScannedFile(path, relPath, content string) ScannedFile {
	return ScannedFile{
		Path:    path,
		RelPath: relPath,
		Content: content,
		Lines:   strings.Split(content, "\n"),
	}
}

// RuleContext carries shared run parameters to every rule.
// Rules that don't need a field simply ignore it.
type RuleContext struct {
	RootPath     string
	MaxFileLines int
}

// Package baseline records known issues so existing findings can be
// accepted while new ones still fail the build.
package baseline

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/irenetello/react-doctor/internal/types"
)

// Baseline represents a snapshot of known issues that should be ignored.
type Baseline struct {
	Version      string   `json:"version"`
	CreatedAt    string   `json:"created_at"`
	Fingerprints []string `json:"fingerprints"`
	index        map[string]bool // for fast lookup
}

// Create builds a new baseline from a list of issues. rootPath is used to
// relativize file paths so the snapshot stays portable across checkouts.
func Create(issues []types.Issue, rootPath string) *Baseline {
	fingerprints := make([]string, 0, len(issues))
	index := make(map[string]bool)

	for _, issue := range issues {
		fp := fingerprint(issue, rootPath)
		if !index[fp] {
			fingerprints = append(fingerprints, fp)
			index[fp] = true
		}
	}

	// Sort for deterministic output
	sort.Strings(fingerprints)

	return &Baseline{
		Version:      "1.0",
		Fingerprints: fingerprints,
		index:        index,
	}
}

// Load reads a baseline from a JSON file.
func Load(path string) (*Baseline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read baseline file: %w", err)
	}

	var b Baseline
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("failed to parse baseline file: %w", err)
	}

	b.index = make(map[string]bool, len(b.Fingerprints))
	for _, fp := range b.Fingerprints {
		b.index[fp] = true
	}

	return &b, nil
}

// Save writes the baseline to a JSON file.
func (b *Baseline) Save(path string) error {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal baseline: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write baseline file: %w", err)
	}

	return nil
}

// IsKnown checks if an issue is in the baseline.
func (b *Baseline) IsKnown(issue types.Issue, rootPath string) bool {
	if b == nil || b.index == nil {
		return false
	}
	return b.index[fingerprint(issue, rootPath)]
}

// Filter removes known issues from the slice and returns the remainder
// plus the count of ignored issues.
func (b *Baseline) Filter(issues []types.Issue, rootPath string) ([]types.Issue, int) {
	var kept []types.Issue
	ignored := 0
	for _, issue := range issues {
		if b.IsKnown(issue, rootPath) {
			ignored++
			continue
		}
		kept = append(kept, issue)
	}
	return kept, ignored
}

// fingerprint creates a stable hash of an issue for comparison.
// Line numbers are excluded since they shift as files are edited.
func fingerprint(issue types.Issue, rootPath string) string {
	file := issue.FilePath
	if rel, err := filepath.Rel(rootPath, issue.FilePath); err == nil {
		file = filepath.ToSlash(rel)
	}

	msg := normalizeMessage(issue.Message)
	data := fmt.Sprintf("%s|%s|%s", issue.RuleID, file, msg)

	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}

// normalizeMessage normalizes issue messages into stable patterns by
// replacing values that drift (counts, quoted names) with placeholders.
func normalizeMessage(msg string) string {
	msg = regexp.MustCompile(`"[^"]+"`).ReplaceAllString(msg, `"*"`)
	msg = regexp.MustCompile(`(^|\s)'([^']+)'(\s|$)`).ReplaceAllString(msg, `$1'*'$3`)
	msg = regexp.MustCompile(`\b\d+\b`).ReplaceAllString(msg, `N`)
	msg = strings.Join(strings.Fields(msg), " ")
	return msg
}

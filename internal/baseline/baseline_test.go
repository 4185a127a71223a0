package baseline

import (
	"path/filepath"
	"testing"

	"github.com/irenetello/react-doctor/internal/types"
)

func sampleIssues() []types.Issue {
	return []types.Issue{
		{
			ID:       "circular-deps:src/a.ts -> src/b.ts -> src/a.ts",
			RuleID:   "circular-deps",
			Severity: types.SeverityError,
			Message:  "Circular dependency detected: src/a.ts -> src/b.ts -> src/a.ts",
			FilePath: "/project/src/a.ts",
			Line:     1,
		},
		{
			ID:       "large-file:src/big.ts",
			RuleID:   "large-file",
			Severity: types.SeverityWarning,
			Message:  "File is 412 lines long (limit 300) - consider splitting it into smaller modules",
			FilePath: "/project/src/big.ts",
		},
	}
}

func TestCreateAndIsKnown(t *testing.T) {
	issues := sampleIssues()
	b := Create(issues, "/project")

	if len(b.Fingerprints) != 2 {
		t.Fatalf("Fingerprints = %d, want 2", len(b.Fingerprints))
	}

	for _, issue := range issues {
		if !b.IsKnown(issue, "/project") {
			t.Errorf("IsKnown(%s) = false, want true", issue.ID)
		}
	}

	unknown := types.Issue{RuleID: "img-alt", FilePath: "/project/src/new.tsx", Message: "<img> element is missing an alt attribute"}
	if b.IsKnown(unknown, "/project") {
		t.Error("IsKnown(new issue) = true, want false")
	}
}

func TestFingerprintIgnoresLineShifts(t *testing.T) {
	issue := sampleIssues()[0]
	b := Create([]types.Issue{issue}, "/project")

	shifted := issue
	shifted.Line = 42
	if !b.IsKnown(shifted, "/project") {
		t.Error("IsKnown(shifted issue) = false, want true (line numbers excluded)")
	}
}

func TestFingerprintNormalizesCounts(t *testing.T) {
	issue := sampleIssues()[1]
	b := Create([]types.Issue{issue}, "/project")

	regrown := issue
	regrown.Message = "File is 587 lines long (limit 300) - consider splitting it into smaller modules"
	if !b.IsKnown(regrown, "/project") {
		t.Error("IsKnown(regrown file) = false, want true (numbers normalized)")
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "baseline.json")

	issues := sampleIssues()
	b := Create(issues, "/project")
	b.CreatedAt = "2026-01-01T00:00:00Z"

	if err := b.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if loaded.Version != "1.0" {
		t.Errorf("Version = %q, want 1.0", loaded.Version)
	}
	for _, issue := range issues {
		if !loaded.IsKnown(issue, "/project") {
			t.Errorf("loaded.IsKnown(%s) = false, want true", issue.ID)
		}
	}
}

func TestFilter(t *testing.T) {
	issues := sampleIssues()
	b := Create(issues[:1], "/project")

	kept, ignored := b.Filter(issues, "/project")
	if ignored != 1 {
		t.Errorf("ignored = %d, want 1", ignored)
	}
	if len(kept) != 1 || kept[0].RuleID != "large-file" {
		t.Errorf("kept = %v, want only the large-file issue", kept)
	}
}

func TestNilBaselineKnowsNothing(t *testing.T) {
	var b *Baseline
	if b.IsKnown(sampleIssues()[0], "/project") {
		t.Error("nil baseline IsKnown = true, want false")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("Load(missing) error = nil, want error")
	}
}

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/irenetello/react-doctor/internal/baseline"
	"github.com/irenetello/react-doctor/internal/config"
	"github.com/irenetello/react-doctor/internal/discovery"
	"github.com/irenetello/react-doctor/internal/output"
	"github.com/irenetello/react-doctor/internal/outputters"
	"github.com/irenetello/react-doctor/internal/rules"
	"github.com/irenetello/react-doctor/internal/score"
	"github.com/irenetello/react-doctor/internal/types"
)

// ScanOutcome is the result of a full analysis run.
type ScanOutcome struct {
	Report *output.Report
	Failed bool
}

// runScan executes the full analysis workflow: configuration, discovery,
// rule execution, baseline handling, and output.
func runScan() (*ScanOutcome, error) {
	cfg, err := config.LoadConfig(rootPath)
	if err != nil {
		return nil, fmt.Errorf("error loading configuration: %w", err)
	}

	startTime := time.Now()

	scanner := discovery.NewWorkspaceScanner(cfg.Root, cfg.Exclude)
	files, err := scanner.Scan()
	if err != nil {
		return nil, fmt.Errorf("error scanning workspace: %w", err)
	}

	if cfg.Verbose && !cfg.Quiet {
		fmt.Fprintf(os.Stderr, "Scanning %d files under %s\n", len(files), cfg.Root)
	}

	ruleCtx := &types.RuleContext{
		RootPath:     cfg.Root,
		MaxFileLines: cfg.MaxFileLines,
	}
	runner := rules.NewRunner(rules.DefaultRules())
	issues := runner.Run(ruleCtx, files)

	baselineFile := resolveBaselinePath(cfg.Root)

	// Update mode: accept the current state and exit clean
	if updateBaseline {
		b := baseline.Create(issues, cfg.Root)
		b.CreatedAt = time.Now().UTC().Format(time.RFC3339)
		if err := b.Save(baselineFile); err != nil {
			return nil, fmt.Errorf("failed to save baseline: %w", err)
		}
		if !cfg.Quiet {
			fmt.Printf("Baseline updated: %s (%d issues)\n", baselineFile, len(issues))
		}
		return &ScanOutcome{Failed: false}, nil
	}

	ignored := 0
	if useBaseline {
		if _, statErr := os.Stat(baselineFile); statErr == nil {
			b, err := baseline.Load(baselineFile)
			if err != nil {
				if !cfg.Quiet {
					fmt.Fprintf(os.Stderr, "Warning: Failed to load baseline: %v\n", err)
				}
			} else {
				issues, ignored = b.Filter(issues, cfg.Root)
			}
		}
	}

	report := &output.Report{
		ProjectRoot:     cfg.Root,
		StartTime:       startTime,
		FilesScanned:    len(files),
		Issues:          issues,
		Health:          score.Compute(issues),
		BaselineIgnored: ignored,
	}

	outputter := outputters.NewOutputter(cfg)
	if err := outputter.Format(report, cfg.Format); err != nil {
		return nil, fmt.Errorf("error formatting output: %w", err)
	}

	return &ScanOutcome{
		Report: report,
		Failed: shouldFail(issues, cfg.FailOn),
	}, nil
}

// resolveBaselinePath returns the absolute path to the baseline file.
func resolveBaselinePath(root string) string {
	if filepath.IsAbs(baselinePath) {
		return baselinePath
	}
	return filepath.Join(root, baselinePath)
}

// shouldFail reports whether any issue is at or above the fail-on level.
func shouldFail(issues []types.Issue, failOn string) bool {
	threshold := types.SeverityRank(failOn)
	for _, issue := range issues {
		if types.SeverityRank(issue.Severity) >= threshold {
			return true
		}
	}
	return false
}

package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/irenetello/react-doctor/internal/types"
)

// MarkdownFormatter formats a report as Markdown.
type MarkdownFormatter struct {
	outputFile string
}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter(outputFile string) *MarkdownFormatter {
	return &MarkdownFormatter{outputFile: outputFile}
}

// Format renders the report as Markdown to the output file or stdout.
func (f *MarkdownFormatter) Format(report *Report) error {
	var builder strings.Builder

	builder.WriteString("# react-doctor Report\n\n")
	builder.WriteString(fmt.Sprintf("**Generated:** %s\n\n", time.Now().Format("2006-01-02 15:04:05")))
	builder.WriteString(fmt.Sprintf("**Project:** %s\n\n", report.ProjectRoot))
	builder.WriteString(fmt.Sprintf("**Duration:** %v\n\n", time.Since(report.StartTime).Round(time.Millisecond)))

	builder.WriteString("## Summary\n\n")
	builder.WriteString("| Metric | Value |\n")
	builder.WriteString("|--------|-------|\n")
	builder.WriteString(fmt.Sprintf("| Files Scanned | %d |\n", report.FilesScanned))
	builder.WriteString(fmt.Sprintf("| Errors | %d |\n", report.Health.Errors))
	builder.WriteString(fmt.Sprintf("| Warnings | %d |\n", report.Health.Warnings))
	builder.WriteString(fmt.Sprintf("| Info | %d |\n", report.Health.Infos))
	builder.WriteString(fmt.Sprintf("| Health | %d/100 (%s) |\n", report.Health.Score, report.Health.Tier))
	if report.BaselineIgnored > 0 {
		builder.WriteString(fmt.Sprintf("| Baseline Ignored | %d |\n", report.BaselineIgnored))
	}
	builder.WriteString("\n")

	sections := []struct {
		severity string
		heading  string
	}{
		{types.SeverityError, "Errors"},
		{types.SeverityWarning, "Warnings"},
		{types.SeverityInfo, "Info"},
	}

	for _, section := range sections {
		issues := report.IssuesBySeverity(section.severity)
		if len(issues) == 0 {
			continue
		}

		builder.WriteString(fmt.Sprintf("## %s\n\n", section.heading))
		for _, issue := range issues {
			builder.WriteString(fmt.Sprintf("- **%s**", report.displayPath(issue.FilePath)))
			if issue.Line > 0 {
				builder.WriteString(fmt.Sprintf(" (line %d)", issue.Line))
			}
			builder.WriteString(fmt.Sprintf(" - %s `[%s]`\n", issue.Message, issue.RuleID))
		}
		builder.WriteString("\n")
	}

	builder.WriteString("## Conclusion\n\n")
	if len(report.Issues) == 0 {
		builder.WriteString("✓ No issues found.\n")
	} else {
		builder.WriteString(fmt.Sprintf("✗ %d issues found.\n", len(report.Issues)))
	}

	content := builder.String()
	if f.outputFile != "" {
		if err := os.WriteFile(f.outputFile, []byte(content), 0644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", f.outputFile, err)
		}
		return nil
	}

	fmt.Print(content)
	return nil
}

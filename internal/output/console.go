package output

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/irenetello/react-doctor/internal/types"
)

// ConsoleFormatter formats a report for console display.
type ConsoleFormatter struct {
	quiet    bool
	verbose  bool
	colorize bool
}

// NewConsoleFormatter creates a new ConsoleFormatter.
func NewConsoleFormatter(quiet, verbose bool) *ConsoleFormatter {
	return &ConsoleFormatter{
		quiet:    quiet,
		verbose:  verbose,
		colorize: true,
	}
}

// Format prints the report grouped by severity, most severe first.
func (f *ConsoleFormatter) Format(report *Report) error {
	if f.quiet {
		return nil
	}

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

		fmt.Printf("%s\n", f.severityStyle(section.severity).Render(section.heading))
		for _, issue := range issues {
			f.printIssue(report, issue)
		}
		fmt.Println()
	}

	f.printSummary(report)
	return nil
}

// printIssue prints a single issue with its location.
func (f *ConsoleFormatter) printIssue(report *Report, issue types.Issue) {
	prefix := "  ✘ "
	switch issue.Severity {
	case types.SeverityWarning:
		prefix = "  ⚠ "
	case types.SeverityInfo:
		prefix = "  · "
	}

	location := report.displayPath(issue.FilePath)
	if issue.Line > 0 {
		location = fmt.Sprintf("%s:%d", location, issue.Line)
	}

	style := f.severityStyle(issue.Severity)
	fmt.Printf("%s%s: %s\n", prefix, style.Render(location), issue.Message)
}

// printSummary prints the closing statistics and health score.
func (f *ConsoleFormatter) printSummary(report *Report) {
	h := report.Health

	duration := time.Since(report.StartTime).Round(time.Millisecond)
	fmt.Printf("%d files scanned, %d errors, %d warnings, %d info (%v)\n",
		report.FilesScanned, h.Errors, h.Warnings, h.Infos, duration)

	if report.BaselineIgnored > 0 {
		fmt.Printf("%d baseline issues ignored\n", report.BaselineIgnored)
	}

	scoreLine := fmt.Sprintf("Health: %d/100 (%s)", h.Score, h.Tier)
	if len(report.Issues) == 0 {
		if f.colorize {
			style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
			fmt.Printf("%s\n", style.Render("✓ All clear. "+scoreLine))
		} else {
			fmt.Printf("✓ All clear. %s\n", scoreLine)
		}
		return
	}

	fmt.Println(scoreLine)
}

// severityStyle returns the lipgloss style for a severity.
func (f *ConsoleFormatter) severityStyle(severity string) lipgloss.Style {
	if !f.colorize {
		return lipgloss.NewStyle()
	}

	switch severity {
	case types.SeverityError:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("9")) // red
	case types.SeverityWarning:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // yellow
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7")) // gray
	}
}

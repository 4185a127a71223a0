// Package outputters dispatches a report to the formatter selected by the
// configured output format.
package outputters

import (
	"fmt"
	"time"

	"github.com/irenetello/react-doctor/internal/config"
	"github.com/irenetello/react-doctor/internal/output"
)

// Outputter handles output formatting.
type Outputter struct {
	config *config.Config
}

// NewOutputter creates a new Outputter.
func NewOutputter(config *config.Config) *Outputter {
	return &Outputter{config: config}
}

// Format renders the report using the configured format.
func (o *Outputter) Format(report *output.Report, format string) error {
	if report.StartTime.IsZero() {
		report.StartTime = time.Now()
	}
	report.ProjectRoot = o.config.Root

	switch format {
	case "console":
		formatter := output.NewConsoleFormatter(o.config.Quiet, o.config.Verbose)
		return formatter.Format(report)
	case "json":
		formatter := output.NewJSONFormatter(true, o.config.Output)
		return formatter.Format(report)
	case "markdown":
		formatter := output.NewMarkdownFormatter(o.config.Output)
		return formatter.Format(report)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

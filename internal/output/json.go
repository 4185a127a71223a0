package output

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/irenetello/react-doctor/internal/score"
	"github.com/irenetello/react-doctor/internal/types"
)

// JSONFormatter formats a report as JSON.
type JSONFormatter struct {
	indent     bool
	outputFile string
}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter(indent bool, outputFile string) *JSONFormatter {
	return &JSONFormatter{
		indent:     indent,
		outputFile: outputFile,
	}
}

// JSONReport represents the complete JSON report structure.
type JSONReport struct {
	Header  JSONHeader    `json:"header"`
	Summary JSONSummary   `json:"summary"`
	Issues  []types.Issue `json:"issues"`
}

// JSONHeader contains report metadata.
type JSONHeader struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// JSONSummary contains summary statistics.
type JSONSummary struct {
	ProjectRoot     string       `json:"project_root"`
	FilesScanned    int          `json:"files_scanned"`
	TotalIssues     int          `json:"total_issues"`
	BaselineIgnored int          `json:"baseline_ignored,omitempty"`
	Health          score.Health `json:"health"`
	Duration        string       `json:"duration"`
}

// Format renders the report as JSON to the output file or stdout.
func (f *JSONFormatter) Format(report *Report) error {
	jsonReport := JSONReport{
		Header: JSONHeader{
			Tool:      "react-doctor",
			Version:   "1.0.0",
			Timestamp: time.Now().Format(time.RFC3339),
		},
		Summary: JSONSummary{
			ProjectRoot:     report.ProjectRoot,
			FilesScanned:    report.FilesScanned,
			TotalIssues:     len(report.Issues),
			BaselineIgnored: report.BaselineIgnored,
			Health:          report.Health,
			Duration:        time.Since(report.StartTime).Round(time.Millisecond).String(),
		},
		Issues: report.Issues,
	}

	var jsonBytes []byte
	var err error
	if f.indent {
		jsonBytes, err = json.MarshalIndent(jsonReport, "", "  ")
	} else {
		jsonBytes, err = json.Marshal(jsonReport)
	}
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}

	if f.outputFile != "" {
		if err := os.WriteFile(f.outputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", f.outputFile, err)
		}
		return nil
	}

	fmt.Println(string(jsonBytes))
	return nil
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	rootPath       string
	quiet          bool
	verbose        bool
	outputFormat   string
	outputFile     string
	failOn         string
	maxFileLines   int
	useBaseline    bool
	updateBaseline bool
	baselinePath   string
)

var rootCmd = &cobra.Command{
	Use:   "react-doctor",
	Short: "React Doctor - static analysis for React/TypeScript projects",
	Long: `React Doctor scans a React/TypeScript project for code-quality issues:
circular import dependencies, missing accessibility attributes, inline
literal props, oversized files, and leftover debug logging.

By default, react-doctor scans the whole project and reports every issue.
Use --fail-on to control which severities fail the build.`,
	Run: func(cmd *cobra.Command, args []string) {
		outcome, err := runScan()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		if outcome.Failed {
			os.Exit(1)
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootPath, "root", "r", "", "Project root directory (auto-detected if not specified)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "console", "Output format for reports (console|json|markdown)")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "Output file for reports (requires --format)")
	rootCmd.PersistentFlags().StringVar(&failOn, "fail-on", "error", "Fail build on specified level (error|warning|info)")
	rootCmd.PersistentFlags().IntVar(&maxFileLines, "max-lines", 300, "Line limit for the large-file rule")
	rootCmd.PersistentFlags().BoolVar(&useBaseline, "baseline", false, "Ignore issues recorded in the baseline file")
	rootCmd.PersistentFlags().BoolVar(&updateBaseline, "update-baseline", false, "Write the current issues to the baseline file and exit 0")
	rootCmd.PersistentFlags().StringVar(&baselinePath, "baseline-file", ".reactdoctor-baseline.json", "Baseline file path (relative to project root)")

	viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("failOn", rootCmd.PersistentFlags().Lookup("fail-on"))
	viper.BindPFlag("maxFileLines", rootCmd.PersistentFlags().Lookup("max-lines"))
}

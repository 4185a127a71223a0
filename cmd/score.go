package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Print only the project health score",
	Run: func(cmd *cobra.Command, args []string) {
		// Run the full scan without per-issue output
		viper.Set("quiet", true)
		outcome, err := runScan()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}

		if outcome.Report == nil {
			return
		}

		h := outcome.Report.Health
		fmt.Printf("Health: %d/100 (%s)\n", h.Score, h.Tier)
		fmt.Printf("%d errors, %d warnings, %d info across %d files\n",
			h.Errors, h.Warnings, h.Infos, outcome.Report.FilesScanned)

		if outcome.Failed {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}

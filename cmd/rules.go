package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/irenetello/react-doctor/internal/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the analysis rules react-doctor runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, rule := range rules.DefaultRules() {
			fmt.Printf("%-20s %s\n", rule.ID(), rule.Description())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}

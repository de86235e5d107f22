package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "scoretrack",
	Short:        "Track student scores and class performance",
	Long:         "scoretrack collects three subject scores per student on the console, then reports averages and pass status.",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTracker(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("verbose", false, "Write debug logs to stderr")

	rootCmd.AddCommand(versionCmd)
}

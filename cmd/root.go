package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vexillo",
	Short: "Flag trivia in your terminal",
	Long: "Vexillo is a terminal flag trivia game: name the country, its capital or its currency,\n" +
		"level by level, in English or Khmer. Correct answers earn a fun fact.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config.yaml (default $XDG_CONFIG_HOME/vexillo/config.yaml)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides VEXILLO_DB env var)")
	rootCmd.PersistentFlags().String("lang", "", "Starting display language: km (default) or en")

	rootCmd.AddCommand(libraryCmd)
	rootCmd.AddCommand(factCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

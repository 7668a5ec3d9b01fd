package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "kidarcade",
	Short: "Mini-game arcade for kids",
	Long:  "kidarcade is a terminal arcade of 32 bite-sized learning games for children aged 3-10.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "")
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("db", "", "Path to SQLite database file (overrides KIDARCADE_DB env var)")
	flags.String("config", "", "Optional YAML config file")
	flags.Uint64("seed", 0, "Random seed for reproducible games (0 picks one from the clock)")
	flags.Bool("log-console", false, "Log to stderr instead of the log file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(gamesCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

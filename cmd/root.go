package cmd

import (
	"github.com/spf13/cobra"

	"github.com/thanvish21/systemx/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "sysx",
	Short: "Personal JEE combat mentor",
	Long:  "SYSTEM X — terminal command center for a single JEE Mains candidate: diagnostic calibration, rolling study plan, and a direct mentor uplink.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SYSX_DB env var)")

	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then SYSX_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

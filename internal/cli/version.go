package cli

import (
	"github.com/spf13/cobra"

	"github.com/clipkeeper/clipkeeperd/internal/version"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		green.Printf("clipkeeperd %s\n", version.Version)
		cyan.Printf("  commit: %s\n", version.Commit)
		cyan.Printf("  built:  %s\n", version.BuildDate)
		cyan.Printf("  go:     %s\n", version.GoVersion)
	},
}

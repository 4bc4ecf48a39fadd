package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/clipkeeper/clipkeeperd/internal/app"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the bookmark daemon",
	Long: `Start the HTTP daemon: connects to Redis, imports the optional seed
file, and serves the popup protocol until interrupted.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := app.New().Run(); err != nil {
			red.Fprintf(os.Stderr, "clipkeeperd failed to start: %v\n", err)
			os.Exit(1)
		}
	},
}

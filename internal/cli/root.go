package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"
)

var (
	red   = color.New(color.FgRed)
	cyan  = color.New(color.FgCyan)
	green = color.New(color.FgGreen)
)

var rootCmd = &cobra.Command{
	Use:   "clipkeeperd",
	Short: "Timestamp bookmark service for YouTube watch pages",
	Long: dedent.Dedent(`
		clipkeeperd keeps per-video timestamp bookmarks in Redis and serves
		the popup protocol the ClipKeeper browser extension talks to.

		The daemon renders the bookmark list for the active tab, applies
		edits and deletions, and notifies the page-side player over Redis
		pub/sub so it can seek, or drop its markers, in the open video.`),
	Run: func(cmd *cobra.Command, args []string) {
		// Show help if no command is provided
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

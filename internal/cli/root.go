// Package cli holds the dayplanner command tree.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand builds the command tree. Running it without a subcommand
// starts the HTTP service.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "dayplanner",
		Short: "Day timeline planner service",
		Long: `dayplanner keeps an ordered, per-session timeline of the activities planned for a day.

Examples:
  dayplanner                                   # Start the HTTP service
  dayplanner preview                           # Print the seeded day as a table
  dayplanner preview --add "Stretch,10:00,10,break,low" --output json
  dayplanner format 00:05 13:30                # 12-hour display form`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}

	root.AddCommand(newServeCommand(), newPreviewCommand(), newFormatCommand())
	return root
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fastygo/dayplanner/domain"
)

func newFormatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "format HH:MM...",
		Short: "Print the 12-hour display form of clock times",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, arg := range args {
				display, err := domain.FormatForDisplay(arg)
				if err != nil {
					return fmt.Errorf("%s: %w", arg, err)
				}
				fmt.Fprintf(out, "%s\t%s\n", arg, display)
			}
			return nil
		},
	}
}

package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/fastygo/dayplanner/api/transport"
	"github.com/fastygo/dayplanner/domain"
)

type previewOptions struct {
	adds   []string
	day    string
	output string
	width  int
}

func newPreviewCommand() *cobra.Command {
	opts := &previewOptions{}
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print the seeded day, optionally with extra activities",
		Long: `Builds the seeded timeline, applies every --add in order and prints the result.

Each --add is "title,HH:MM[,minutes[,category[,energy]]]". Missing or unreadable
minutes fall back to the default duration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPreview(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.adds, "add", "a", nil,
		"Activity to add (title,HH:MM,minutes,category,energy); repeatable")
	cmd.Flags().StringVar(&opts.day, "day", "", "Day label (default today)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "table", "Output format (table, json)")
	cmd.Flags().IntVar(&opts.width, "width", 0, "Table width (0 = terminal width)")
	return cmd
}

func runPreview(out io.Writer, opts *previewOptions) error {
	day := opts.day
	if day == "" {
		day = today()
	}
	tl := domain.NewSeededTimeline(domain.WithDay(day))

	for _, raw := range opts.adds {
		candidate, err := parseAddFlag(raw)
		if err != nil {
			return err
		}
		if _, err := tl.Add(candidate); err != nil {
			return fmt.Errorf("add %q: %w", raw, err)
		}
	}

	view := transport.NewTimelineView(tl.Snapshot())
	switch strings.ToLower(opts.output) {
	case "json":
		body, err := sonic.ConfigStd.MarshalIndent(view, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(body))
		return err
	case "table", "":
		width := opts.width
		if width <= 0 {
			width = terminalWidth(out)
		}
		return renderTable(out, view, width)
	default:
		return fmt.Errorf("unknown output format %q", opts.output)
	}
}

// parseAddFlag reads "title,HH:MM[,minutes[,category[,energy]]]".
func parseAddFlag(raw string) (domain.ActivityCandidate, error) {
	parts := strings.Split(raw, ",")
	if len(parts) < 2 || len(parts) > 5 {
		return domain.ActivityCandidate{}, fmt.Errorf("invalid --add %q: want title,HH:MM[,minutes[,category[,energy]]]", raw)
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	candidate := domain.ActivityCandidate{
		Title:     parts[0],
		StartTime: parts[1],
	}
	if len(parts) > 2 {
		// unreadable minutes become 0 and take the default duration
		candidate.DurationMinutes, _ = strconv.Atoi(parts[2])
	}
	var err error
	if len(parts) > 3 {
		if candidate.Category, err = domain.ParseCategory(parts[3]); err != nil {
			return domain.ActivityCandidate{}, err
		}
	}
	if len(parts) > 4 {
		if candidate.EnergyLevel, err = domain.ParseEnergyLevel(parts[4]); err != nil {
			return domain.ActivityCandidate{}, err
		}
	}
	return candidate, nil
}

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/fastygo/dayplanner/api/transport"
	"github.com/fastygo/dayplanner/domain"
)

const (
	defaultTableWidth = 100
	minTitleWidth     = 12
)

var today = func() string { return time.Now().Format(domain.DayLayout) }

func terminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return defaultTableWidth
}

type column struct {
	header string
	width  int
}

// renderTable prints one row per activity. The title column absorbs whatever
// width is left after the fixed columns.
func renderTable(out io.Writer, view transport.TimelineView, width int) error {
	cols := []column{
		{header: "START", width: 8},
		{header: "END", width: 5},
		{header: "MIN", width: 4},
		{header: "TITLE"},
		{header: "CATEGORY", width: 8},
		{header: "ENERGY", width: 9},
	}
	fixed := 0
	for _, c := range cols {
		fixed += c.width
	}
	fixed += 2 * (len(cols) - 1)
	cols[3].width = width - fixed
	if cols[3].width < minTitleWidth {
		cols[3].width = minTitleWidth
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Plan for %s\n", view.Day)
	writeRow(&b, cols, headers(cols))
	b.WriteString(strings.Repeat("-", lineWidth(cols)))
	b.WriteByte('\n')

	for _, a := range view.Activities {
		writeRow(&b, cols, []string{
			a.DisplayTime,
			a.EndTime,
			fmt.Sprintf("%d", a.DurationMinutes),
			a.Title,
			string(a.Category),
			a.EnergyIcon + " " + string(a.EnergyLevel),
		})
	}

	fmt.Fprintf(&b, "\n%d activities, %s planned\n", view.Summary.ItemCount, view.Summary.TotalDisplay)
	_, err := io.WriteString(out, b.String())
	return err
}

func headers(cols []column) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.header
	}
	return out
}

func lineWidth(cols []column) int {
	total := 2 * (len(cols) - 1)
	for _, c := range cols {
		total += c.width
	}
	return total
}

func writeRow(b *strings.Builder, cols []column, cells []string) {
	for i, c := range cols {
		cell := runewidth.Truncate(cells[i], c.width, "…")
		if i == len(cols)-1 {
			b.WriteString(cell)
			break
		}
		b.WriteString(runewidth.FillRight(cell, c.width))
		b.WriteString("  ")
	}
	b.WriteByte('\n')
}

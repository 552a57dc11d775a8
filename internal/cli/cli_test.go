package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/dayplanner/api/transport"
	"github.com/fastygo/dayplanner/domain"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestFormatCommand(t *testing.T) {
	out, err := run(t, "format", "00:05", "13:30", "12:00")
	require.NoError(t, err)
	assert.Contains(t, out, "00:05\t12:05 AM")
	assert.Contains(t, out, "13:30\t1:30 PM")
	assert.Contains(t, out, "12:00\t12:00 PM")

	_, err = run(t, "format", "25:00")
	assert.Error(t, err)
}

func TestPreviewJSON(t *testing.T) {
	out, err := run(t, "preview", "--day", "2025-06-02", "-o", "json",
		"--add", "Stretch break,10:00,10,break,low",
		"--add", "Untimed,17:00,soon")
	require.NoError(t, err)

	var view transport.TimelineView
	require.NoError(t, sonic.Unmarshal([]byte(out), &view))
	assert.Equal(t, "2025-06-02", view.Day)
	require.Len(t, view.Activities, 8)
	assert.Equal(t, "Stretch break", view.Activities[2].Title)
	assert.Equal(t, "Untimed", view.Activities[7].Title)
	assert.Equal(t, domain.DefaultDurationMinutes, view.Activities[7].DurationMinutes)
	assert.Equal(t, 400, view.Summary.TotalMinutes)
}

func TestPreviewTable(t *testing.T) {
	out, err := run(t, "preview", "--day", "2025-06-02", "--width", "72")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, "Plan for 2025-06-02", lines[0])
	assert.Contains(t, lines[1], "START")
	assert.Contains(t, out, "8:00 AM")
	assert.Contains(t, out, "3:00 PM")
	assert.Contains(t, out, "6 activities, 6h 0m planned")
	for _, line := range lines[3:9] {
		assert.LessOrEqual(t, runewidth.StringWidth(line), 72, line)
	}
}

func TestPreviewRejectsBadInput(t *testing.T) {
	_, err := run(t, "preview", "--add", "only-title")
	assert.Error(t, err)

	_, err = run(t, "preview", "--add", "Chores,10:00,15,errands")
	assert.Error(t, err)

	_, err = run(t, "preview", "--add", ",10:00")
	assert.Error(t, err)

	_, err = run(t, "preview", "-o", "yaml")
	assert.Error(t, err)
}

func TestParseAddFlagDefaults(t *testing.T) {
	c, err := parseAddFlag(" Read , 21:15 ")
	require.NoError(t, err)
	assert.Equal(t, "Read", c.Title)
	assert.Equal(t, "21:15", c.StartTime)
	assert.Zero(t, c.DurationMinutes)
	assert.Empty(t, c.Category)
}

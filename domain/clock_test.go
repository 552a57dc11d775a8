package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatForDisplay(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "just after midnight", input: "00:05", expected: "12:05 AM"},
		{name: "midnight", input: "00:00", expected: "12:00 AM"},
		{name: "morning", input: "09:00", expected: "9:00 AM"},
		{name: "last minute before noon", input: "11:59", expected: "11:59 AM"},
		{name: "noon", input: "12:00", expected: "12:00 PM"},
		{name: "early afternoon", input: "13:30", expected: "1:30 PM"},
		{name: "late evening", input: "23:45", expected: "11:45 PM"},
		{name: "unpadded hour", input: "7:15", expected: "7:15 AM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatForDisplay(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormatForDisplayAfternoonHours(t *testing.T) {
	for hour := 13; hour <= 23; hour++ {
		c := ClockTime(hour * 60)
		assert.Equal(t, c.Display(), mustFormat(t, c.String()))
		assert.Contains(t, c.Display(), "PM")
		assert.Equal(t, hour-12, c.Hour()%12)
	}
}

func mustFormat(t *testing.T, in string) string {
	t.Helper()
	out, err := FormatForDisplay(in)
	require.NoError(t, err)
	return out
}

func TestParseClockRejectsMalformed(t *testing.T) {
	for _, input := range []string{"", "9", "24:00", "12:60", "ab:cd", "12:5", "123:00", "+9:00", "12-30"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseClock(input)
			require.Error(t, err)
			assert.True(t, IsDomainError(err, ErrCodeInvalid))
		})
	}
}

func TestClockTimeOrderingIsNumeric(t *testing.T) {
	nine := MustParseClock("9:00")
	ten := MustParseClock("10:00")

	// "9:00" > "10:00" as strings; numeric comparison must not care.
	assert.Less(t, int(nine), int(ten))
	assert.Equal(t, "09:00", nine.String())
}

func TestClockTimeJSON(t *testing.T) {
	var payload struct {
		Start ClockTime `json:"start"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"start":"7:05"}`), &payload))
	assert.Equal(t, ClockTime(7*60+5), payload.Start)

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"07:05"}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"start":705}`), &payload))
}

func TestFormatTotal(t *testing.T) {
	assert.Equal(t, "0h 0m", FormatTotal(0))
	assert.Equal(t, "6h 0m", FormatTotal(360))
	assert.Equal(t, "6h 10m", FormatTotal(370))
	assert.Equal(t, "0h 0m", FormatTotal(-5))
}

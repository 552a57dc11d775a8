package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay bounds every ClockTime.
const MinutesPerDay = 24 * 60

// ClockTime is a wall-clock time of day stored as minutes since midnight.
// It carries no date; the owning timeline supplies the day.
type ClockTime int

// ParseClock accepts "H:MM" or "HH:MM" in 24-hour notation.
func ParseClock(value string) (ClockTime, error) {
	raw := strings.TrimSpace(value)
	hh, mm, ok := strings.Cut(raw, ":")
	if !ok || len(hh) == 0 || len(hh) > 2 || len(mm) != 2 || !digits(hh) || !digits(mm) {
		return 0, WrapError(ErrCodeInvalid, fmt.Sprintf("invalid start time %q", value), nil)
	}

	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return 0, WrapError(ErrCodeInvalid, fmt.Sprintf("invalid hour in %q", value), err)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return 0, WrapError(ErrCodeInvalid, fmt.Sprintf("invalid minute in %q", value), err)
	}

	return ClockTime(hour*60 + minute), nil
}

// MustParseClock panics on malformed input. Intended for fixed tables.
func MustParseClock(value string) ClockTime {
	c, err := ParseClock(value)
	if err != nil {
		panic(err)
	}
	return c
}

func digits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (c ClockTime) Hour() int   { return int(c) / 60 }
func (c ClockTime) Minute() int { return int(c) % 60 }

// String renders the zero-padded 24-hour form, e.g. "08:05".
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// Display renders the 12-hour form used by the timeline, e.g. "1:30 PM".
func (c ClockTime) Display() string {
	suffix := "AM"
	if c.Hour() >= 12 {
		suffix = "PM"
	}
	hour := c.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, c.Minute(), suffix)
}

func (c ClockTime) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(c.String())), nil
}

func (c *ClockTime) UnmarshalJSON(data []byte) error {
	raw, err := strconv.Unquote(string(data))
	if err != nil {
		return WrapError(ErrCodeInvalid, "start time must be a string", err)
	}
	parsed, err := ParseClock(raw)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// FormatForDisplay converts an "HH:MM" string into "H:MM AM/PM".
func FormatForDisplay(startTime string) (string, error) {
	c, err := ParseClock(startTime)
	if err != nil {
		return "", err
	}
	return c.Display(), nil
}

// FormatTotal renders a minute total the way the planner header shows it: "6h 10m".
func FormatTotal(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

package domain

import (
	"strings"
	"time"
)

// DefaultDurationMinutes is applied when a candidate carries no usable duration.
const DefaultDurationMinutes = 30

// MaxDurationMinutes caps a single activity at one full day.
const MaxDurationMinutes = MinutesPerDay

// Category is the closed set of activity kinds shown on the timeline.
type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryHealth   Category = "health"
	CategoryCreative Category = "creative"
	CategoryBreak    Category = "break"
)

// Categories lists every accepted category in display order.
var Categories = []Category{CategoryWork, CategoryPersonal, CategoryHealth, CategoryCreative, CategoryBreak}

var categoryColors = map[Category]string{
	CategoryWork:     "green",
	CategoryPersonal: "blue",
	CategoryHealth:   "red",
	CategoryCreative: "purple",
	CategoryBreak:    "yellow",
}

// ParseCategory resolves free input against the closed set. Empty input yields work.
func ParseCategory(value string) (Category, error) {
	v := Category(strings.ToLower(strings.TrimSpace(value)))
	if v == "" {
		return CategoryWork, nil
	}
	if _, ok := categoryColors[v]; !ok {
		return "", NewError(ErrCodeInvalid, "unknown category "+string(v))
	}
	return v, nil
}

func (c Category) Valid() bool {
	_, ok := categoryColors[c]
	return ok
}

// Color is a pure function of the category and is never stored on its own.
func (c Category) Color() string {
	return categoryColors[c]
}

// EnergyLevel is a self-reported cognitive load tag.
type EnergyLevel string

const (
	EnergyHigh   EnergyLevel = "high"
	EnergyMedium EnergyLevel = "medium"
	EnergyLow    EnergyLevel = "low"
)

// EnergyLevels lists every accepted level from most to least demanding.
var EnergyLevels = []EnergyLevel{EnergyHigh, EnergyMedium, EnergyLow}

var energyIcons = map[EnergyLevel]string{
	EnergyHigh:   "🔥",
	EnergyMedium: "⚡",
	EnergyLow:    "🌱",
}

// ParseEnergyLevel resolves free input against the closed set. Empty input yields medium.
func ParseEnergyLevel(value string) (EnergyLevel, error) {
	v := EnergyLevel(strings.ToLower(strings.TrimSpace(value)))
	if v == "" {
		return EnergyMedium, nil
	}
	if _, ok := energyIcons[v]; !ok {
		return "", NewError(ErrCodeInvalid, "unknown energy level "+string(v))
	}
	return v, nil
}

func (e EnergyLevel) Valid() bool {
	_, ok := energyIcons[e]
	return ok
}

func (e EnergyLevel) Icon() string {
	return energyIcons[e]
}

// Activity is one time-blocked item on a day timeline.
type Activity struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	StartTime       ClockTime   `json:"start_time"`
	DurationMinutes int         `json:"duration_minutes"`
	Category        Category    `json:"category"`
	EnergyLevel     EnergyLevel `json:"energy_level"`
	CreatedAt       time.Time   `json:"created_at"`
}

func (a Activity) Color() string { return a.Category.Color() }

// EndTime is informational only; it may run past midnight and is not used for ordering.
func (a Activity) EndTime() ClockTime {
	end := (int(a.StartTime) + a.DurationMinutes) % MinutesPerDay
	if end < 0 {
		end += MinutesPerDay
	}
	return ClockTime(end)
}

// ActivityCandidate is the raw input accepted by Timeline.Add.
type ActivityCandidate struct {
	Title           string
	StartTime       string
	DurationMinutes int
	Category        Category
	EnergyLevel     EnergyLevel
}

// NormalizeDuration applies the default to non-positive values and reports whether it did.
func NormalizeDuration(minutes int) (int, bool) {
	if minutes < 1 {
		return DefaultDurationMinutes, true
	}
	return minutes, false
}

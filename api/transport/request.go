package transport

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	"github.com/fastygo/dayplanner/domain"
)

// Minutes accepts a duration sent as a number, a numeric string or null.
// Anything it cannot read decodes to 0, which the timeline replaces with the default.
type Minutes int

func (m *Minutes) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		*m = 0
		return nil
	}
	if raw[0] == '"' {
		unquoted, err := strconv.Unquote(string(raw))
		if err != nil {
			*m = 0
			return nil
		}
		*m = Minutes(leadingInt(strings.TrimSpace(unquoted)))
		return nil
	}
	*m = Minutes(truncateNumber(string(raw)))
	return nil
}

// truncateNumber reads a JSON number, exponent forms included, and drops the
// fraction. Magnitudes beyond int32 saturate so the conversion stays defined.
func truncateNumber(s string) int {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) {
		return 0
	}
	f = math.Trunc(f)
	switch {
	case f > math.MaxInt32:
		return math.MaxInt32
	case f < math.MinInt32:
		return math.MinInt32
	}
	return int(f)
}

// leadingInt reads an optional sign followed by digits, ignoring any suffix
// such as "45min" or "45.5".
func leadingInt(s string) int {
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

type ActivityRequest struct {
	Title           string  `json:"title"`
	StartTime       string  `json:"start_time"`
	DurationMinutes Minutes `json:"duration_minutes"`
	Category        string  `json:"category"`
	EnergyLevel     string  `json:"energy_level"`
}

// Candidate normalises free-form category and energy values and hands the
// rest to the timeline for validation.
func (r ActivityRequest) Candidate() (domain.ActivityCandidate, error) {
	category, err := domain.ParseCategory(r.Category)
	if err != nil {
		return domain.ActivityCandidate{}, err
	}
	energy, err := domain.ParseEnergyLevel(r.EnergyLevel)
	if err != nil {
		return domain.ActivityCandidate{}, err
	}
	return domain.ActivityCandidate{
		Title:           r.Title,
		StartTime:       r.StartTime,
		DurationMinutes: int(r.DurationMinutes),
		Category:        category,
		EnergyLevel:     energy,
	}, nil
}

type DayRequest struct {
	Day string `json:"day"`
}

type SessionRequest struct {
	Day string `json:"day"`
}

type AssistantRequest struct {
	Text string `json:"text"`
}

package transport

import (
	"time"

	"github.com/fastygo/dayplanner/domain"
)

// ActivityView is the rendered form of an activity: clock values are
// formatted and color and icon are derived from category and energy.
type ActivityView struct {
	ID              string             `json:"id"`
	Title           string             `json:"title"`
	StartTime       string             `json:"start_time"`
	EndTime         string             `json:"end_time"`
	DisplayTime     string             `json:"display_time"`
	DurationMinutes int                `json:"duration_minutes"`
	Category        domain.Category    `json:"category"`
	EnergyLevel     domain.EnergyLevel `json:"energy_level"`
	Color           string             `json:"color"`
	EnergyIcon      string             `json:"energy_icon"`
}

func NewActivityView(a domain.Activity) ActivityView {
	return ActivityView{
		ID:              a.ID,
		Title:           a.Title,
		StartTime:       a.StartTime.String(),
		EndTime:         a.EndTime().String(),
		DisplayTime:     a.StartTime.Display(),
		DurationMinutes: a.DurationMinutes,
		Category:        a.Category,
		EnergyLevel:     a.EnergyLevel,
		Color:           a.Color(),
		EnergyIcon:      a.EnergyLevel.Icon(),
	}
}

func NewActivityViews(activities []domain.Activity) []ActivityView {
	out := make([]ActivityView, 0, len(activities))
	for _, a := range activities {
		out = append(out, NewActivityView(a))
	}
	return out
}

type TimelineView struct {
	Day        string         `json:"day"`
	Activities []ActivityView `json:"activities"`
	Summary    domain.Summary `json:"summary"`
}

func NewTimelineView(snap domain.TimelineSnapshot) TimelineView {
	return TimelineView{
		Day:        snap.Day,
		Activities: NewActivityViews(snap.Activities),
		Summary:    snap.Summary,
	}
}

type AddActivityResponse struct {
	Activity ActivityView   `json:"activity"`
	Summary  domain.Summary `json:"summary"`
}

type DayView struct {
	Day string `json:"day"`
}

type SessionView struct {
	ID        string    `json:"id"`
	Day       string    `json:"day"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func NewSessionView(s *domain.Session, token string) SessionView {
	view := SessionView{Token: token}
	if s == nil {
		return view
	}
	view.ID = s.ID
	view.CreatedAt = s.CreatedAt
	view.ExpiresAt = s.ExpiresAt
	if s.Timeline != nil {
		view.Day = s.Timeline.Day()
	}
	return view
}

package monitor

import "time"

type Status struct {
	Healthy        bool      `json:"healthy"`
	Sessions       int       `json:"sessions"`
	Activities     int       `json:"activities"`
	PlannedMinutes int       `json:"planned_minutes"`
	LastCheck      time.Time `json:"last_check"`
	Error          string    `json:"error,omitempty"`
}

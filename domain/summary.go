package domain

// Summary aggregates a timeline for the planner header and dashboards.
type Summary struct {
	ItemCount         int                 `json:"item_count"`
	TotalMinutes      int                 `json:"total_minutes"`
	TotalDisplay      string              `json:"total_display"`
	MinutesByCategory map[Category]int    `json:"minutes_by_category"`
	MinutesByEnergy   map[EnergyLevel]int `json:"minutes_by_energy"`
}

func summarize(activities []Activity) Summary {
	s := Summary{
		ItemCount:         len(activities),
		MinutesByCategory: make(map[Category]int, len(Categories)),
		MinutesByEnergy:   make(map[EnergyLevel]int, len(EnergyLevels)),
	}
	for _, c := range Categories {
		s.MinutesByCategory[c] = 0
	}
	for _, e := range EnergyLevels {
		s.MinutesByEnergy[e] = 0
	}
	for _, a := range activities {
		s.TotalMinutes += a.DurationMinutes
		s.MinutesByCategory[a.Category] += a.DurationMinutes
		s.MinutesByEnergy[a.EnergyLevel] += a.DurationMinutes
	}
	s.TotalDisplay = FormatTotal(s.TotalMinutes)
	return s
}

package domain

import "time"

type seedEntry struct {
	title    string
	start    string
	duration int
	category Category
	energy   EnergyLevel
}

var seedEntries = []seedEntry{
	{"Morning routine & coffee", "08:00", 30, CategoryPersonal, EnergyMedium},
	{"Deep work - Project report", "09:00", 120, CategoryWork, EnergyHigh},
	{"Quick walk outside", "11:00", 15, CategoryBreak, EnergyLow},
	{"Lunch & rest", "12:00", 60, CategoryPersonal, EnergyLow},
	{"Meetings & calls", "13:00", 90, CategoryWork, EnergyMedium},
	{"Creative brainstorming", "15:00", 45, CategoryCreative, EnergyHigh},
}

// SeedActivities builds the fixed six-item day every new session starts from.
// The table is already in chronological order.
func SeedActivities(newID IDGenerator, createdAt time.Time) []Activity {
	out := make([]Activity, 0, len(seedEntries))
	for _, e := range seedEntries {
		out = append(out, Activity{
			ID:              newID(),
			Title:           e.title,
			StartTime:       MustParseClock(e.start),
			DurationMinutes: e.duration,
			Category:        e.category,
			EnergyLevel:     e.energy,
			CreatedAt:       createdAt,
		})
	}
	return out
}

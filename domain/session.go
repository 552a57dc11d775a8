package domain

import "time"

// DayLayout is the default label format for a selected day.
const DayLayout = "2006-01-02"

// Session is one planner session. It owns a single timeline and lives only in memory.
type Session struct {
	ID         string    `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	LastSeenAt time.Time `json:"last_seen_at"`
	ExpiresAt  time.Time `json:"expires_at"`

	Timeline *Timeline `json:"-"`
}

func (s *Session) IsExpired(reference time.Time) bool {
	if s == nil {
		return true
	}
	if reference.IsZero() {
		reference = time.Now()
	}
	return !s.ExpiresAt.After(reference)
}

// Touch records activity and slides the expiry forward by ttl.
func (s *Session) Touch(now time.Time, ttl time.Duration) {
	if s == nil {
		return
	}
	s.LastSeenAt = now
	s.ExpiresAt = now.Add(ttl)
}

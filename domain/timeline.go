package domain

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// IDGenerator produces activity identifiers.
type IDGenerator func() string

// TimelineOption customises a Timeline at construction.
type TimelineOption func(*Timeline)

// WithIDGenerator replaces the default uuid generator.
func WithIDGenerator(gen IDGenerator) TimelineOption {
	return func(t *Timeline) {
		if gen != nil {
			t.newID = gen
		}
	}
}

// WithClock replaces time.Now for activity creation timestamps.
func WithClock(now func() time.Time) TimelineOption {
	return func(t *Timeline) {
		if now != nil {
			t.now = now
		}
	}
}

// WithDay sets the initial day label.
func WithDay(day string) TimelineOption {
	return func(t *Timeline) {
		t.day = day
	}
}

// Timeline owns the ordered activities of one selected day.
// Activities are kept sorted by StartTime; equal start times keep insertion order.
type Timeline struct {
	mu         sync.RWMutex
	day        string
	activities []Activity
	total      int

	newID IDGenerator
	now   func() time.Time
}

// NewTimeline returns an empty timeline. Call Initialize to load the seed set.
func NewTimeline(opts ...TimelineOption) *Timeline {
	t := &Timeline{
		newID: uuid.NewString,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewSeededTimeline returns a timeline already holding the seed activities.
func NewSeededTimeline(opts ...TimelineOption) *Timeline {
	t := NewTimeline(opts...)
	t.Initialize()
	return t
}

// Initialize replaces the collection with the seed set and returns a copy of it.
// The returned slice is already ordered.
func (t *Timeline) Initialize() []Activity {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.activities = SeedActivities(t.newID, t.now())
	t.total = 0
	for _, a := range t.activities {
		t.total += a.DurationMinutes
	}
	return cloneActivities(t.activities)
}

// Add validates the candidate, assigns an id and inserts it in chronological position.
func (t *Timeline) Add(c ActivityCandidate) (Activity, error) {
	title := strings.TrimSpace(c.Title)
	if title == "" {
		return Activity{}, WrapError(ErrCodeInvalid, "title is required", ErrInvalidActivity)
	}
	if strings.TrimSpace(c.StartTime) == "" {
		return Activity{}, WrapError(ErrCodeInvalid, "start time is required", ErrInvalidActivity)
	}
	start, err := ParseClock(c.StartTime)
	if err != nil {
		return Activity{}, err
	}

	category := c.Category
	if category == "" {
		category = CategoryWork
	}
	if !category.Valid() {
		return Activity{}, NewError(ErrCodeInvalid, "unknown category "+string(category))
	}
	energy := c.EnergyLevel
	if energy == "" {
		energy = EnergyMedium
	}
	if !energy.Valid() {
		return Activity{}, NewError(ErrCodeInvalid, "unknown energy level "+string(energy))
	}

	duration, _ := NormalizeDuration(c.DurationMinutes)
	if duration > MaxDurationMinutes {
		return Activity{}, WrapError(ErrCodeInvalid, fmt.Sprintf("duration exceeds %d minutes", MaxDurationMinutes), ErrInvalidActivity)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	activity := Activity{
		ID:              t.newID(),
		Title:           title,
		StartTime:       start,
		DurationMinutes: duration,
		Category:        category,
		EnergyLevel:     energy,
		CreatedAt:       t.now(),
	}

	// upper bound: first index whose start is strictly later
	idx := sort.Search(len(t.activities), func(i int) bool {
		return t.activities[i].StartTime > start
	})
	t.activities = append(t.activities, Activity{})
	copy(t.activities[idx+1:], t.activities[idx:])
	t.activities[idx] = activity
	t.total += duration

	return activity, nil
}

// Activities returns an ordered copy of the collection.
func (t *Timeline) Activities() []Activity {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return cloneActivities(t.activities)
}

// TotalPlannedMinutes is the sum of all durations; 0 when empty.
func (t *Timeline) TotalPlannedMinutes() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.total
}

func (t *Timeline) ItemCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.activities)
}

// Day returns the opaque partition label.
func (t *Timeline) Day() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.day
}

// SelectDay changes the label only; activities stay as they are.
func (t *Timeline) SelectDay(day string) {
	t.mu.Lock()
	t.day = day
	t.mu.Unlock()
}

func (t *Timeline) Summary() Summary {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return summarize(t.activities)
}

// Snapshot captures day, activities and aggregates under a single read lock.
func (t *Timeline) Snapshot() TimelineSnapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return TimelineSnapshot{
		Day:        t.day,
		Activities: cloneActivities(t.activities),
		Summary:    summarize(t.activities),
	}
}

// TimelineSnapshot is a consistent read-only view handed to renderers.
type TimelineSnapshot struct {
	Day        string     `json:"day"`
	Activities []Activity `json:"activities"`
	Summary    Summary    `json:"summary"`
}

func cloneActivities(in []Activity) []Activity {
	out := make([]Activity, len(in))
	copy(out, in)
	return out
}

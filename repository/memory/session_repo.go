package memory

import (
	"context"
	"sync"
	"time"

	"github.com/fastygo/dayplanner/domain"
	"github.com/fastygo/dayplanner/repository"
)

type sessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
	ttl      time.Duration
	limit    int
	now      func() time.Time
}

// Option tweaks the in-memory repository.
type Option func(*sessionRepository)

// WithClock overrides time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(r *sessionRepository) {
		if now != nil {
			r.now = now
		}
	}
}

// NewSessionRepository creates a process-local session registry.
// Sessions are never written anywhere else; a restart drops them all.
// limit <= 0 disables the cap.
func NewSessionRepository(ttl time.Duration, limit int, opts ...Option) repository.SessionRepository {
	if ttl <= 0 {
		ttl = time.Hour
	}
	r := &sessionRepository{
		sessions: make(map[string]*domain.Session),
		ttl:      ttl,
		limit:    limit,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *sessionRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	cp := *session
	return &cp, nil
}

func (r *sessionRepository) Save(ctx context.Context, session *domain.Session) error {
	if session == nil || session.ID == "" || session.Timeline == nil {
		return domain.ErrInvalidPayload
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	now := r.now()
	if session.CreatedAt.IsZero() {
		session.CreatedAt = now
	}
	if session.LastSeenAt.IsZero() {
		session.LastSeenAt = session.CreatedAt
	}
	if !session.ExpiresAt.After(session.CreatedAt) {
		session.ExpiresAt = session.CreatedAt.Add(r.ttl)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[session.ID]; !exists && r.limit > 0 && len(r.sessions) >= r.limit {
		return domain.ErrSessionLimit
	}
	cp := *session
	r.sessions[session.ID] = &cp
	return nil
}

func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

func (r *sessionRepository) Extend(ctx context.Context, id string, ttl time.Duration) (*domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if ttl <= 0 {
		ttl = r.ttl
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	session.Touch(r.now(), ttl)
	cp := *session
	return &cp, nil
}

func (r *sessionRepository) DeleteExpired(ctx context.Context, reference time.Time) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if reference.IsZero() {
		reference = r.now()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, session := range r.sessions {
		if session.IsExpired(reference) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed, nil
}

func (r *sessionRepository) Stats(ctx context.Context) (repository.SessionStats, error) {
	if err := ctx.Err(); err != nil {
		return repository.SessionStats{}, err
	}
	r.mu.RLock()
	timelines := make([]*domain.Timeline, 0, len(r.sessions))
	for _, session := range r.sessions {
		timelines = append(timelines, session.Timeline)
	}
	r.mu.RUnlock()

	stats := repository.SessionStats{Sessions: len(timelines)}
	for _, tl := range timelines {
		stats.Activities += tl.ItemCount()
		stats.Minutes += tl.TotalPlannedMinutes()
	}
	return stats, nil
}

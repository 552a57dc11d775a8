package repository

import (
	"context"
	"time"

	"github.com/fastygo/dayplanner/domain"
)

// SessionStats is a point-in-time count across all live sessions.
type SessionStats struct {
	Sessions   int
	Activities int
	Minutes    int
}

type SessionRepository interface {
	Get(ctx context.Context, id string) (*domain.Session, error)
	Save(ctx context.Context, session *domain.Session) error
	Delete(ctx context.Context, id string) error
	Extend(ctx context.Context, id string, ttl time.Duration) (*domain.Session, error)
	DeleteExpired(ctx context.Context, reference time.Time) (int, error)
	Stats(ctx context.Context) (SessionStats, error)
}

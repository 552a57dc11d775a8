package session

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fastygo/dayplanner/domain"
	"github.com/fastygo/dayplanner/internal/observability"
	"github.com/fastygo/dayplanner/repository"
)

// Issued pairs a session with the token a client presents on later calls.
type Issued struct {
	Session *domain.Session `json:"session"`
	Token   string          `json:"token"`
}

type UseCase struct {
	sessions repository.SessionRepository
	tokens   *TokenIssuer
	ttl      time.Duration
	logger   *zap.Logger
	now      func() time.Time
}

func New(sessions repository.SessionRepository, tokens *TokenIssuer, ttl time.Duration, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &UseCase{
		sessions: sessions,
		tokens:   tokens,
		ttl:      ttl,
		logger:   logger,
		now:      time.Now,
	}
}

// CreateSession starts a fresh seeded timeline. A blank day selects today.
func (uc *UseCase) CreateSession(ctx context.Context, day string) (*Issued, error) {
	now := uc.now()
	day = strings.TrimSpace(day)
	if day == "" {
		day = now.Format(domain.DayLayout)
	}

	session := &domain.Session{
		ID:         uuid.NewString(),
		CreatedAt:  now,
		LastSeenAt: now,
		ExpiresAt:  now.Add(uc.ttl),
		Timeline:   domain.NewSeededTimeline(domain.WithDay(day)),
	}

	if err := uc.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	token, err := uc.tokens.Issue(session.ID, now, session.ExpiresAt)
	if err != nil {
		_ = uc.sessions.Delete(ctx, session.ID)
		return nil, domain.WrapError(domain.ErrCodeInternal, "issue session token", err)
	}

	uc.logger.Info("session created", zap.String("session_id", session.ID), zap.String("day", day))
	uc.refreshGauge(ctx)
	return &Issued{Session: session, Token: token}, nil
}

// GetSession resolves a live session and slides its expiry.
func (uc *UseCase) GetSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	session, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.IsExpired(uc.now()) {
		_ = uc.sessions.Delete(ctx, sessionID)
		uc.refreshGauge(ctx)
		return nil, domain.ErrSessionNotFound
	}
	return uc.sessions.Extend(ctx, sessionID, uc.ttl)
}

// RefreshSession extends the session and re-issues its token.
func (uc *UseCase) RefreshSession(ctx context.Context, sessionID string) (*Issued, error) {
	session, err := uc.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	token, err := uc.tokens.Issue(session.ID, uc.now(), session.ExpiresAt)
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "issue session token", err)
	}
	return &Issued{Session: session, Token: token}, nil
}

func (uc *UseCase) RevokeSession(ctx context.Context, sessionID string) error {
	if err := uc.sessions.Delete(ctx, sessionID); err != nil {
		return err
	}
	uc.logger.Info("session revoked", zap.String("session_id", sessionID))
	uc.refreshGauge(ctx)
	return nil
}

func (uc *UseCase) refreshGauge(ctx context.Context) {
	stats, err := uc.sessions.Stats(ctx)
	if err != nil {
		uc.logger.Debug("session stats unavailable", zap.Error(err))
		return
	}
	observability.SetActiveSessions(stats.Sessions)
}

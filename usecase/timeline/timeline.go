package timeline

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/fastygo/dayplanner/domain"
	"github.com/fastygo/dayplanner/internal/observability"
)

// SessionLookup resolves the live session that owns a timeline.
type SessionLookup interface {
	GetSession(ctx context.Context, sessionID string) (*domain.Session, error)
}

type UseCase struct {
	sessions SessionLookup
	logger   *zap.Logger
}

func New(sessions SessionLookup, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		sessions: sessions,
		logger:   logger,
	}
}

func (uc *UseCase) Snapshot(ctx context.Context, sessionID string) (domain.TimelineSnapshot, error) {
	tl, err := uc.timeline(ctx, sessionID)
	if err != nil {
		return domain.TimelineSnapshot{}, err
	}
	return tl.Snapshot(), nil
}

// AddActivity inserts the candidate and returns the stored activity together
// with the aggregates observed right after the insert.
func (uc *UseCase) AddActivity(ctx context.Context, sessionID string, candidate domain.ActivityCandidate) (domain.Activity, domain.Summary, error) {
	tl, err := uc.timeline(ctx, sessionID)
	if err != nil {
		return domain.Activity{}, domain.Summary{}, err
	}

	activity, err := tl.Add(candidate)
	if err != nil {
		uc.logger.Debug("activity rejected", zap.String("session_id", sessionID), zap.Error(err))
		return domain.Activity{}, domain.Summary{}, err
	}

	if _, fellBack := domain.NormalizeDuration(candidate.DurationMinutes); fellBack {
		observability.RecordDurationFallback()
	}
	observability.RecordActivityAdded(string(activity.Category))

	uc.logger.Info("activity added",
		zap.String("session_id", sessionID),
		zap.String("activity_id", activity.ID),
		zap.String("start", activity.StartTime.String()),
		zap.Int("duration", activity.DurationMinutes),
	)
	return activity, tl.Summary(), nil
}

func (uc *UseCase) Summary(ctx context.Context, sessionID string) (domain.Summary, error) {
	tl, err := uc.timeline(ctx, sessionID)
	if err != nil {
		return domain.Summary{}, err
	}
	return tl.Summary(), nil
}

// Reset drops every activity of the session and reloads the seed set.
func (uc *UseCase) Reset(ctx context.Context, sessionID string) (domain.TimelineSnapshot, error) {
	tl, err := uc.timeline(ctx, sessionID)
	if err != nil {
		return domain.TimelineSnapshot{}, err
	}
	tl.Initialize()
	uc.logger.Info("timeline reset", zap.String("session_id", sessionID))
	return tl.Snapshot(), nil
}

func (uc *UseCase) Day(ctx context.Context, sessionID string) (string, error) {
	tl, err := uc.timeline(ctx, sessionID)
	if err != nil {
		return "", err
	}
	return tl.Day(), nil
}

// SelectDay relabels the timeline. Activities are not partitioned by day.
func (uc *UseCase) SelectDay(ctx context.Context, sessionID, day string) (string, error) {
	day = strings.TrimSpace(day)
	if day == "" {
		return "", domain.WrapError(domain.ErrCodeInvalid, "day is required", domain.ErrInvalidPayload)
	}
	tl, err := uc.timeline(ctx, sessionID)
	if err != nil {
		return "", err
	}
	tl.SelectDay(day)
	return day, nil
}

func (uc *UseCase) timeline(ctx context.Context, sessionID string) (*domain.Timeline, error) {
	if sessionID == "" {
		return nil, domain.ErrUnauthorized
	}
	session, err := uc.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Timeline == nil {
		return nil, domain.NewError(domain.ErrCodeInternal, "session has no timeline")
	}
	return session.Timeline, nil
}

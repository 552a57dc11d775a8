// Package assistant serves the canned helper replies shown next to the planner.
// Replies are fixed samples delivered after an artificial delay.
package assistant

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/fastygo/dayplanner/domain"
	"github.com/fastygo/dayplanner/usecase"
)

const (
	KindSummarize = "summarize"
	KindBreakdown = "breakdown"
	KindJournal   = "journal"
	KindDashboard = "dashboard"
)

// Kinds lists every assistant exposed over the API.
var Kinds = []string{KindSummarize, KindBreakdown, KindJournal, KindDashboard}

// IsKind reports whether kind names a known assistant.
func IsKind(kind string) bool {
	for _, k := range Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Request carries the free text an assistant works on. Dashboard ignores it.
type Request struct {
	Text string `json:"text"`
}

type Option func(*Service)

// WithPicker replaces the random choice of the dashboard encouragement.
func WithPicker(pick func(n int) int) Option {
	return func(s *Service) {
		if pick != nil {
			s.pick = pick
		}
	}
}

type Service struct {
	delay  time.Duration
	logger *zap.Logger
	pick   func(n int) int
}

func New(delay time.Duration, logger *zap.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		delay:  delay,
		logger: logger,
		pick:   rand.Intn,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register binds every assistant kind as a dispatcher query.
func (s *Service) Register(d *usecase.Dispatcher) {
	d.RegisterQuery(KindSummarize, s.summarize)
	d.RegisterQuery(KindBreakdown, s.breakdown)
	d.RegisterQuery(KindJournal, s.journal)
	d.RegisterQuery(KindDashboard, s.dashboard)
}

func (s *Service) summarize(ctx context.Context, params interface{}) (interface{}, error) {
	if _, err := s.text(params); err != nil {
		return nil, err
	}
	if err := s.wait(ctx, KindSummarize); err != nil {
		return nil, err
	}
	return sampleSummary(), nil
}

func (s *Service) breakdown(ctx context.Context, params interface{}) (interface{}, error) {
	goal, err := s.text(params)
	if err != nil {
		return nil, err
	}
	if err := s.wait(ctx, KindBreakdown); err != nil {
		return nil, err
	}
	return BreakdownResult{Goal: goal, Tasks: sampleGoalTasks()}, nil
}

func (s *Service) journal(ctx context.Context, params interface{}) (interface{}, error) {
	if _, err := s.text(params); err != nil {
		return nil, err
	}
	if err := s.wait(ctx, KindJournal); err != nil {
		return nil, err
	}
	return JournalResult{Tasks: sampleJournalTasks()}, nil
}

func (s *Service) dashboard(ctx context.Context, _ interface{}) (interface{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	tasks := sampleDashboardTasks()
	completed := 0
	for _, task := range tasks {
		if task.Completed {
			completed++
		}
	}
	return DashboardResult{
		Tasks:           tasks,
		CompletedCount:  completed,
		ProgressPercent: completed * 100 / len(tasks),
		Encouragement:   encouragements[s.pick(len(encouragements))],
	}, nil
}

func (s *Service) text(params interface{}) (string, error) {
	var text string
	switch req := params.(type) {
	case Request:
		text = req.Text
	case *Request:
		if req != nil {
			text = req.Text
		}
	case string:
		text = req
	default:
		return "", domain.ErrInvalidPayload
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", domain.ErrEmptyInput
	}
	return text, nil
}

func (s *Service) wait(ctx context.Context, kind string) error {
	s.logger.Debug("assistant working", zap.String("kind", kind), zap.Duration("delay", s.delay))
	if s.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

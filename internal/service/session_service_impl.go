package service

import (
	"context"
	"time"

	"github.com/alexanderramin/recap/internal/domain"
	"github.com/alexanderramin/recap/internal/insight"
	"github.com/alexanderramin/recap/internal/repository"
)

type sessionService struct {
	sessions repository.SessionRepo
	observer UseCaseObserver
}

func NewSessionService(sessions repository.SessionRepo, observers ...UseCaseObserver) SessionService {
	return &sessionService{
		sessions: sessions,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *sessionService) Log(ctx context.Context, session *domain.SessionRecord) error {
	start := time.Now()
	err := s.sessions.Create(ctx, session)
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "session_log",
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		Fields:    map[string]any{"activity": session.ActivityType},
		StartedAt: start,
	})
	return err
}

func (s *sessionService) GetByID(ctx context.Context, id int64) (*domain.SessionRecord, error) {
	return s.sessions.GetByID(ctx, id)
}

func (s *sessionService) ListRecent(ctx context.Context, days int) ([]domain.SessionRecord, error) {
	return s.sessions.ListRecent(ctx, days)
}

func (s *sessionService) ListByWindow(ctx context.Context, window domain.Window) ([]domain.SessionRecord, error) {
	return windowRecords(ctx, s.sessions, window)
}

func (s *sessionService) Summarize(ctx context.Context, window domain.Window) (*domain.Summary, error) {
	records, err := windowRecords(ctx, s.sessions, window)
	if err != nil {
		return nil, err
	}
	summary := insight.Aggregate(records, window, nil)
	return &summary, nil
}

// windowRecords loads a window's sessions, restricted to one activity
// type for activity windows.
func windowRecords(ctx context.Context, sessions repository.SessionRepo, window domain.Window) ([]domain.SessionRecord, error) {
	if window.Activity != "" {
		return sessions.ListByActivityWindow(ctx, window.Activity, window.Start, window.End)
	}
	return sessions.ListByWindow(ctx, window.Start, window.End)
}

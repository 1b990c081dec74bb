package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/recap/internal/domain"
	"github.com/alexanderramin/recap/internal/insight"
	"github.com/alexanderramin/recap/internal/llm"
	"github.com/alexanderramin/recap/internal/repository"
)

type insightService struct {
	sessions repository.SessionRepo
	cache    repository.InsightCacheRepo
	client   llm.LLMClient
	observer UseCaseObserver
}

// NewInsightService wires the orchestrator: aggregation, fingerprinting,
// the persisted cache and the generative client.
func NewInsightService(
	sessions repository.SessionRepo,
	cache repository.InsightCacheRepo,
	client llm.LLMClient,
	observers ...UseCaseObserver,
) InsightService {
	return &insightService{
		sessions: sessions,
		cache:    cache,
		client:   client,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *insightService) GetInsight(ctx context.Context, window domain.Window) (*InsightResult, error) {
	return s.getInsight(ctx, window, false)
}

func (s *insightService) Regenerate(ctx context.Context, window domain.Window) (*InsightResult, error) {
	return s.getInsight(ctx, window, true)
}

// getInsight is the orchestrator. Cache identity is the (kind, window)
// key; cache validity is the record fingerprint. A cache read failure
// degrades to a miss, and a cache write failure never fails a request
// that already has its text.
func (s *insightService) getInsight(ctx context.Context, window domain.Window, force bool) (*InsightResult, error) {
	start := time.Now()

	records, err := windowRecords(ctx, s.sessions, window)
	if err != nil {
		return nil, fmt.Errorf("loading sessions for %s: %w", window.Label, err)
	}

	prior, err := s.priorSummary(ctx, window)
	if err != nil {
		return nil, err
	}

	summary := insight.Aggregate(records, window, prior)
	fp := insight.Fingerprint(records)

	var cached *domain.CacheEntry
	if !force {
		cached, err = s.cache.Get(ctx, window.Kind, window.Start, window.End)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			// Treat an unreadable cache as a miss.
			s.observe(ctx, "insight_cache_read_failed", start, false, err, window, nil)
			cached = nil
		}
		if cached != nil && cached.Matches(fp) {
			s.observe(ctx, "insight_cache_hit", start, true, nil, window, nil)
			return &InsightResult{
				Text:        cached.Text,
				Summary:     summary,
				FromCache:   true,
				GeneratedAt: cached.GeneratedAt,
			}, nil
		}
	}

	prompt := insight.BuildPrompt(window.Kind, &summary)
	resp, genErr := s.client.Generate(ctx, llm.GenerateRequest{
		Task:   taskForKind(window.Kind),
		Prompt: prompt,
	})
	if genErr != nil {
		if cached != nil {
			// Serve the stale text rather than fail the request.
			s.observe(ctx, "insight_stale_fallback", start, true, genErr, window, nil)
			return &InsightResult{
				Text:        cached.Text,
				Summary:     summary,
				FromCache:   true,
				ServedStale: true,
				GeneratedAt: cached.GeneratedAt,
			}, nil
		}
		s.observe(ctx, "insight_generate", start, false, genErr, window, nil)
		return nil, fmt.Errorf("generating %s insight: %w", window.Kind, genErr)
	}

	now := time.Now().UTC()
	entry := &domain.CacheEntry{
		Kind:        window.Kind,
		PeriodStart: window.Start,
		PeriodEnd:   window.End,
		DataHash:    fp,
		Text:        resp.Text,
		GeneratedAt: now,
	}
	if putErr := s.cache.Put(ctx, entry); putErr != nil {
		// The text is already in hand; log and move on.
		s.observe(ctx, "insight_cache_write_failed", start, false, putErr, window, nil)
	}

	s.observe(ctx, "insight_generate", start, true, nil, window, map[string]any{
		"model":      resp.Model,
		"latency_ms": resp.LatencyMs,
	})
	return &InsightResult{
		Text:        resp.Text,
		Summary:     summary,
		GeneratedAt: now,
	}, nil
}

// priorSummary aggregates the preceding window for weekly trend framing.
// Other kinds carry no trend block.
func (s *insightService) priorSummary(ctx context.Context, window domain.Window) (*domain.Summary, error) {
	if window.Kind != domain.InsightWeekly {
		return nil, nil
	}
	prior := window.Prior()
	records, err := windowRecords(ctx, s.sessions, prior)
	if err != nil {
		return nil, fmt.Errorf("loading sessions for %s: %w", prior.Label, err)
	}
	summary := insight.Aggregate(records, prior, nil)
	return &summary, nil
}

func (s *insightService) observe(ctx context.Context, name string, start time.Time, success bool, err error, window domain.Window, extra map[string]any) {
	fields := map[string]any{
		"kind":   string(window.Kind),
		"window": window.Label,
	}
	for k, v := range extra {
		fields[k] = v
	}
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		Duration:  time.Since(start),
		Success:   success,
		Err:       err,
		Fields:    fields,
		StartedAt: start,
	})
}

func taskForKind(kind domain.InsightKind) llm.TaskType {
	switch kind {
	case domain.InsightWeekly:
		return llm.TaskWeekly
	case domain.InsightMonthly:
		return llm.TaskMonthly
	case domain.InsightActivity:
		return llm.TaskActivity
	default:
		return llm.TaskDaily
	}
}

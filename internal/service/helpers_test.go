package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/recap/internal/domain"
	"github.com/alexanderramin/recap/internal/llm"
	"github.com/alexanderramin/recap/internal/repository"
	"github.com/alexanderramin/recap/internal/testutil"
)

// fakeLLM counts calls and records prompts. Set err to simulate an
// unavailable generator.
type fakeLLM struct {
	mu      sync.Mutex
	calls   int
	prompts []string
	text    string
	err     error
}

func (f *fakeLLM) Generate(ctx context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.prompts = append(f.prompts, req.Prompt)
	if f.err != nil {
		return nil, f.err
	}
	return &llm.GenerateResponse{Text: f.text, Model: "fake", LatencyMs: 1}, nil
}

func (f *fakeLLM) Available(context.Context) bool { return f.err == nil }

func (f *fakeLLM) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeLLM) lastPrompt() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.prompts) == 0 {
		return ""
	}
	return f.prompts[len(f.prompts)-1]
}

// faultyCacheRepo wraps a real cache repo with injectable failures.
type faultyCacheRepo struct {
	inner  repository.InsightCacheRepo
	getErr error
	putErr error
}

func (f *faultyCacheRepo) Get(ctx context.Context, kind domain.InsightKind, start, end time.Time) (*domain.CacheEntry, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.inner.Get(ctx, kind, start, end)
}

func (f *faultyCacheRepo) Put(ctx context.Context, e *domain.CacheEntry) error {
	if f.putErr != nil {
		return f.putErr
	}
	return f.inner.Put(ctx, e)
}

func (f *faultyCacheRepo) List(ctx context.Context) ([]domain.CacheEntry, error) {
	return f.inner.List(ctx)
}

func (f *faultyCacheRepo) PruneOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	return f.inner.PruneOlderThan(ctx, cutoff)
}

type insightFixture struct {
	sessions *repository.SQLiteSessionRepo
	cache    *repository.SQLiteInsightCacheRepo
	llm      *fakeLLM
	svc      InsightService
}

func newInsightFixture(t *testing.T) *insightFixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	sessions := repository.NewSQLiteSessionRepo(database)
	cache := repository.NewSQLiteInsightCacheRepo(database)
	fake := &fakeLLM{text: "generated insight"}
	return &insightFixture{
		sessions: sessions,
		cache:    cache,
		llm:      fake,
		svc:      NewInsightService(sessions, cache, fake),
	}
}

func (f *insightFixture) seedSession(t *testing.T, activity string, start time.Time) {
	t.Helper()
	s := testutil.NewTestSession(activity, testutil.WithStartTime(start))
	require.NoError(t, f.sessions.Create(context.Background(), s))
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/recap/internal/domain"
)

var testDay = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func TestInsightService_FirstCallGeneratesAndCaches(t *testing.T) {
	f := newInsightFixture(t)
	ctx := context.Background()
	f.seedSession(t, "coding", testDay.Add(9*time.Hour))

	window := domain.DayWindow(testDay)
	result, err := f.svc.GetInsight(ctx, window)
	require.NoError(t, err)

	assert.Equal(t, "generated insight", result.Text)
	assert.False(t, result.FromCache)
	assert.False(t, result.ServedStale)
	assert.Equal(t, 1, result.Summary.TotalSessions)
	assert.Equal(t, 1, f.llm.callCount())

	cached, err := f.cache.Get(ctx, domain.InsightDaily, window.Start, window.End)
	require.NoError(t, err)
	assert.Equal(t, "generated insight", cached.Text)
}

func TestInsightService_CacheHitAvoidsLLMCall(t *testing.T) {
	f := newInsightFixture(t)
	ctx := context.Background()
	f.seedSession(t, "coding", testDay.Add(9*time.Hour))

	window := domain.DayWindow(testDay)
	_, err := f.svc.GetInsight(ctx, window)
	require.NoError(t, err)

	result, err := f.svc.GetInsight(ctx, window)
	require.NoError(t, err)

	assert.True(t, result.FromCache)
	assert.Equal(t, "generated insight", result.Text)
	assert.Equal(t, 1, f.llm.callCount(), "unchanged data must not trigger a second generation")
}

func TestInsightService_AddedSessionInvalidatesCache(t *testing.T) {
	f := newInsightFixture(t)
	ctx := context.Background()
	f.seedSession(t, "coding", testDay.Add(9*time.Hour))

	window := domain.DayWindow(testDay)
	_, err := f.svc.GetInsight(ctx, window)
	require.NoError(t, err)

	f.seedSession(t, "reading", testDay.Add(14*time.Hour))
	f.llm.text = "fresh insight"

	result, err := f.svc.GetInsight(ctx, window)
	require.NoError(t, err)

	assert.False(t, result.FromCache)
	assert.Equal(t, "fresh insight", result.Text)
	assert.Equal(t, 2, f.llm.callCount())

	cached, err := f.cache.Get(ctx, domain.InsightDaily, window.Start, window.End)
	require.NoError(t, err)
	assert.Equal(t, "fresh insight", cached.Text, "the cache row is overwritten in place")
}

func TestInsightService_EmptyWindowCachesEncouragement(t *testing.T) {
	f := newInsightFixture(t)
	ctx := context.Background()

	window := domain.DayWindow(testDay)
	result, err := f.svc.GetInsight(ctx, window)
	require.NoError(t, err)

	assert.Contains(t, f.llm.lastPrompt(), "no focus sessions")
	assert.Zero(t, result.Summary.TotalSessions)

	// An empty window is cacheable too; its fingerprint is the sentinel.
	_, err = f.svc.GetInsight(ctx, window)
	require.NoError(t, err)
	assert.Equal(t, 1, f.llm.callCount())
}

func TestInsightService_GenerationFailureServesStale(t *testing.T) {
	f := newInsightFixture(t)
	ctx := context.Background()
	f.seedSession(t, "coding", testDay.Add(9*time.Hour))

	window := domain.DayWindow(testDay)
	_, err := f.svc.GetInsight(ctx, window)
	require.NoError(t, err)

	// New data makes the entry stale; the generator then goes down.
	f.seedSession(t, "reading", testDay.Add(14*time.Hour))
	f.llm.err = errors.New("generator down")

	result, err := f.svc.GetInsight(ctx, window)
	require.NoError(t, err)

	assert.True(t, result.ServedStale)
	assert.True(t, result.FromCache)
	assert.Equal(t, "generated insight", result.Text)
}

func TestInsightService_GenerationFailureWithoutCacheFails(t *testing.T) {
	f := newInsightFixture(t)
	f.seedSession(t, "coding", testDay.Add(9*time.Hour))
	f.llm.err = errors.New("generator down")

	_, err := f.svc.GetInsight(context.Background(), domain.DayWindow(testDay))
	require.Error(t, err)
	assert.ErrorContains(t, err, "generating daily insight")
}

func TestInsightService_CacheWriteFailureStillReturnsText(t *testing.T) {
	f := newInsightFixture(t)
	faulty := &faultyCacheRepo{inner: f.cache, putErr: errors.New("disk full")}
	svc := NewInsightService(f.sessions, faulty, f.llm)
	f.seedSession(t, "coding", testDay.Add(9*time.Hour))

	result, err := svc.GetInsight(context.Background(), domain.DayWindow(testDay))
	require.NoError(t, err, "a failed cache write must not fail a request that has its text")
	assert.Equal(t, "generated insight", result.Text)
}

func TestInsightService_CacheReadFailureTreatedAsMiss(t *testing.T) {
	f := newInsightFixture(t)
	faulty := &faultyCacheRepo{inner: f.cache, getErr: errors.New("io error")}
	svc := NewInsightService(f.sessions, faulty, f.llm)
	f.seedSession(t, "coding", testDay.Add(9*time.Hour))

	result, err := svc.GetInsight(context.Background(), domain.DayWindow(testDay))
	require.NoError(t, err)
	assert.False(t, result.FromCache)
	assert.Equal(t, 1, f.llm.callCount())
}

func TestInsightService_RegenerateBypassesCacheRead(t *testing.T) {
	f := newInsightFixture(t)
	ctx := context.Background()
	f.seedSession(t, "coding", testDay.Add(9*time.Hour))

	window := domain.DayWindow(testDay)
	_, err := f.svc.GetInsight(ctx, window)
	require.NoError(t, err)

	f.llm.text = "regenerated insight"
	result, err := f.svc.Regenerate(ctx, window)
	require.NoError(t, err)

	assert.Equal(t, "regenerated insight", result.Text)
	assert.False(t, result.FromCache)
	assert.Equal(t, 2, f.llm.callCount())

	cached, err := f.cache.Get(ctx, domain.InsightDaily, window.Start, window.End)
	require.NoError(t, err)
	assert.Equal(t, "regenerated insight", cached.Text)
}

func TestInsightService_WeeklyIncludesPriorWeekTrend(t *testing.T) {
	f := newInsightFixture(t)
	ctx := context.Background()

	window := domain.WeekWindow(testDay)
	f.seedSession(t, "coding", window.Start.Add(10*time.Hour))
	f.seedSession(t, "coding", window.Start.AddDate(0, 0, -7).Add(10*time.Hour))

	_, err := f.svc.GetInsight(ctx, window)
	require.NoError(t, err)

	assert.Contains(t, f.llm.lastPrompt(), "Versus prior week")
}

func TestInsightService_KindsCachedIndependently(t *testing.T) {
	f := newInsightFixture(t)
	ctx := context.Background()
	f.seedSession(t, "coding", testDay.Add(9*time.Hour))

	_, err := f.svc.GetInsight(ctx, domain.DayWindow(testDay))
	require.NoError(t, err)
	_, err = f.svc.GetInsight(ctx, domain.WeekWindow(testDay))
	require.NoError(t, err)

	entries, err := f.cache.List(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestInsightService_ActivityWindowRestrictsRecords(t *testing.T) {
	f := newInsightFixture(t)
	ctx := context.Background()
	f.seedSession(t, "guitar", testDay.Add(9*time.Hour))
	f.seedSession(t, "coding", testDay.Add(11*time.Hour))

	window := domain.ActivityWindow("guitar", testDay, 30)
	result, err := f.svc.GetInsight(ctx, window)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Summary.TotalSessions)
	assert.Contains(t, f.llm.lastPrompt(), "guitar")
}

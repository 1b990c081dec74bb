package service

import (
	"context"
	"time"

	"github.com/alexanderramin/recap/internal/domain"
	"github.com/alexanderramin/recap/internal/repository"
)

type cacheService struct {
	cache    repository.InsightCacheRepo
	observer UseCaseObserver
}

func NewCacheService(cache repository.InsightCacheRepo, observers ...UseCaseObserver) CacheService {
	return &cacheService{
		cache:    cache,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *cacheService) List(ctx context.Context) ([]domain.CacheEntry, error) {
	return s.cache.List(ctx)
}

func (s *cacheService) PruneOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	start := time.Now()
	n, err := s.cache.PruneOlderThan(ctx, cutoff)
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "cache_prune",
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		Fields:    map[string]any{"pruned": n},
		StartedAt: start,
	})
	return n, err
}

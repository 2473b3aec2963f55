package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tezcatlipoca/tezcatlipoca-auth/internal/domain/bans"
	"github.com/tezcatlipoca/tezcatlipoca-auth/internal/pkg/logger"
	"golang.org/x/time/rate"
)

// banCheckService implements the BanCheckService interface over a BanCache and a BanSource
type banCheckService struct {
	source    bans.BanSource
	cache     bans.BanCache
	limiter   *rate.Limiter
	refreshMu sync.Mutex
	logger    logger.Logger
}

// NewBanCheckService creates a new banCheckService instance.
//
// minRetryInterval bounds how often a request may trigger a reload while the
// cache is stale. A failing source leaves the cache stale, so without the
// bound every request would hit the source. Zero disables the bound.
func NewBanCheckService(
	source bans.BanSource,
	cache bans.BanCache,
	minRetryInterval time.Duration,
	logger logger.Logger,
) (bans.BanCheckService, error) {
	if source == nil {
		return nil, fmt.Errorf("ban source must not be nil")
	}
	if cache == nil {
		return nil, fmt.Errorf("ban cache must not be nil")
	}

	limit := rate.Inf
	if minRetryInterval > 0 {
		limit = rate.Every(minRetryInterval)
	}

	return &banCheckService{
		source:  source,
		cache:   cache,
		limiter: rate.NewLimiter(limit, 1),
		logger:  logger,
	}, nil
}

// IsBanned reports whether ip is banned. A stale cache is refreshed first;
// if the refresh fails the previous snapshot answers.
func (s *banCheckService) IsBanned(ctx context.Context, ip string) bool {
	if s.cache.IsStale() {
		s.refreshIfStale(ctx)
	}
	return s.cache.Contains(ip)
}

func (s *banCheckService) refreshIfStale(ctx context.Context) {
	// Concurrent requests answer from the current snapshot while one of them reloads.
	if !s.refreshMu.TryLock() {
		return
	}
	defer s.refreshMu.Unlock()

	if !s.cache.IsStale() || !s.limiter.Allow() {
		return
	}

	if err := s.reload(ctx); err != nil {
		s.logger.Warn("Failed to refresh banned IPs cache: ", err)
	}
}

// Count returns the number of entries in the current snapshot
func (s *banCheckService) Count() int {
	return s.cache.Count()
}

// Refresh reloads the snapshot from the source unconditionally
func (s *banCheckService) Refresh(ctx context.Context) error {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()
	return s.reload(ctx)
}

func (s *banCheckService) reload(ctx context.Context) error {
	entries, err := s.source.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load ban list from %s: %w", s.source.Name(), err)
	}

	list := bans.NewBanList(entries, s.cache.Now())
	s.cache.Replace(list)

	s.logger.Debug("Banned IPs cache refreshed with ", list.Len(), " entries")
	return nil
}

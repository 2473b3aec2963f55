package cache

import (
	"sync"
	"time"

	"github.com/tezcatlipoca/tezcatlipoca-auth/internal/domain/bans"
	"github.com/thejerf/abtime"
)

// BannedIPCache is a TTL cache over a single BanList snapshot.
// Readers share the lock; Replace takes it exclusively.
type BannedIPCache struct {
	mu       sync.RWMutex
	list     *bans.BanList
	lastRead time.Time
	ttl      time.Duration
	clock    abtime.AbstractTime
}

// NewBannedIPCache returns an empty cache that is already stale, so the
// first lookup triggers a load.
func NewBannedIPCache(ttl time.Duration, clock abtime.AbstractTime) *BannedIPCache {
	if clock == nil {
		clock = abtime.NewRealTime()
	}
	now := clock.Now()
	return &BannedIPCache{
		list:     bans.EmptyBanList(now),
		lastRead: now.Add(-ttl),
		ttl:      ttl,
		clock:    clock,
	}
}

// IsStale reports whether at least one TTL has passed since the last successful load.
func (c *BannedIPCache) IsStale() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.clock.Now().Sub(c.lastRead) >= c.ttl
}

// Replace installs a freshly loaded snapshot and restarts the TTL.
func (c *BannedIPCache) Replace(list *bans.BanList) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.list = list
	c.lastRead = c.clock.Now()
}

// Contains reports whether ip is in the current snapshot.
func (c *BannedIPCache) Contains(ip string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.list.Contains(ip)
}

// Count returns the number of entries in the current snapshot.
func (c *BannedIPCache) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.list.Len()
}

// Snapshot returns the current snapshot. BanList is immutable, so callers may keep it.
func (c *BannedIPCache) Snapshot() *bans.BanList {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.list
}

// LastRead returns the time of the last successful load.
func (c *BannedIPCache) LastRead() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastRead
}

// Now exposes the cache clock so loaders can stamp snapshots consistently.
func (c *BannedIPCache) Now() time.Time {
	return c.clock.Now()
}

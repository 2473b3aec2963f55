package bans

import (
	"context"
	"time"
)

// BanSource loads the raw entries of a ban list from some backing store.
type BanSource interface {
	// Name identifies the source in logs, e.g. "file:/etc/banned-ips.txt".
	Name() string

	// Load returns every entry currently in the store.
	Load(ctx context.Context) ([]string, error)
}

// BanCheckService answers whether a client address is banned.
type BanCheckService interface {
	// IsBanned reports whether ip is banned, refreshing a stale snapshot first.
	IsBanned(ctx context.Context, ip string) bool

	// Count returns the number of entries in the current snapshot.
	Count() int

	// Refresh reloads the snapshot from the source.
	// On error the previous snapshot stays in place.
	Refresh(ctx context.Context) error
}

// BanAdminService manages bans persisted in the database source.
type BanAdminService interface {
	Add(ctx context.Context, address, reason string) (*BanEntry, error)
	Remove(ctx context.Context, address string) error
	List(ctx context.Context) ([]*BanEntry, error)
}

// BanRepository defines the interface for BanEntry persistence
type BanRepository interface {
	Create(ctx context.Context, entry *BanEntry) error
	List(ctx context.Context) ([]*BanEntry, error)
	GetByAddress(ctx context.Context, address string) (*BanEntry, error)
	DeleteByAddress(ctx context.Context, address string) error
}

// BanCache holds the current snapshot and knows when it has expired.
type BanCache interface {
	IsStale() bool
	Replace(list *BanList)
	Contains(ip string) bool
	Count() int
	Now() time.Time
}

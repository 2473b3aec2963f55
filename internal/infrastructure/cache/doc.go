// Package cache holds the in-memory snapshot of banned addresses together
// with the bookkeeping that decides when the snapshot must be reloaded.
package cache

// Package persistence provides the database-backed ban store.
// It uses GORM as the ORM layer over SQLite or PostgreSQL and exposes the
// stored bans both as a repository for administration and as a BanSource
// for the request path.
package persistence

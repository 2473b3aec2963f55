// Package banlist provides BanSource implementations backed by a plain text
// file and by a redis set. The database-backed source lives with the other
// GORM code in the persistence package.
package banlist

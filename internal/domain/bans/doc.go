// Package bans defines the ban list model and the contracts for loading,
// checking and administering banned client addresses.
//
// A ban list is an immutable snapshot. Entries are single IP addresses or
// CIDR prefixes; anything else is kept verbatim and matched as an exact
// string so that hand-edited lists never silently lose an entry.
package bans

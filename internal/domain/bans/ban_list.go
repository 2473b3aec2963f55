package bans

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net/netip"
	"sort"
	"strings"
	"time"
)

// BanList is an immutable snapshot of banned addresses.
type BanList struct {
	exact    map[string]struct{}
	prefixes []netip.Prefix
	entries  []string
	loadedAt time.Time
}

// NewBanList builds a snapshot from raw entries. Entries are trimmed; blank
// entries and entries starting with '#' are skipped. Duplicates collapse.
func NewBanList(entries []string, loadedAt time.Time) *BanList {
	l := &BanList{
		exact:    make(map[string]struct{}, len(entries)),
		loadedAt: loadedAt,
	}

	for _, raw := range entries {
		entry := strings.TrimSpace(raw)
		if entry == "" || strings.HasPrefix(entry, "#") {
			continue
		}

		key := NormalizeAddress(entry)
		if _, dup := l.exact[key]; dup {
			continue
		}
		if prefix, err := netip.ParsePrefix(key); err == nil {
			if !l.hasPrefix(prefix) {
				l.prefixes = append(l.prefixes, prefix)
				l.entries = append(l.entries, key)
			}
			continue
		}

		l.exact[key] = struct{}{}
		l.entries = append(l.entries, key)
	}

	sort.Strings(l.entries)
	return l
}

func (l *BanList) hasPrefix(p netip.Prefix) bool {
	for _, existing := range l.prefixes {
		if existing == p {
			return true
		}
	}
	return false
}

// ReadEntries returns the lines of r with their line endings removed.
// Lines may be of any length.
func ReadEntries(r io.Reader) ([]string, error) {
	var entries []string

	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			entries = append(entries, strings.TrimRight(line, "\r\n"))
		}
		if errors.Is(err, io.EOF) {
			return entries, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read ban list: %w", err)
		}
	}
}

// EmptyBanList returns a snapshot with no entries.
func EmptyBanList(loadedAt time.Time) *BanList {
	return NewBanList(nil, loadedAt)
}

// Contains reports whether ip is banned, either verbatim, as the same
// address in canonical form, or as a member of a banned prefix.
func (l *BanList) Contains(ip string) bool {
	if l == nil {
		return false
	}
	if _, ok := l.exact[ip]; ok {
		return true
	}

	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	if _, ok := l.exact[addr.String()]; ok {
		return true
	}
	for _, prefix := range l.prefixes {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

// Len returns the number of distinct entries.
func (l *BanList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.entries)
}

// Entries returns the distinct entries in canonical form, sorted.
func (l *BanList) Entries() []string {
	if l == nil {
		return nil
	}
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}

// LoadedAt is the time the snapshot was read from its source.
func (l *BanList) LoadedAt() time.Time {
	if l == nil {
		return time.Time{}
	}
	return l.loadedAt
}

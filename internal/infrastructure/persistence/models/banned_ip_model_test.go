//go:build unit
// +build unit

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tezcatlipoca/tezcatlipoca-auth/internal/domain/bans"
)

func TestBannedIPModel_DomainConversion(t *testing.T) {
	entry := &bans.BanEntry{
		ID:              "0b8f5f8e-5c1e-4d8e-9f3a-2f1d7f0e9c11",
		Address:         "198.51.100.0/24",
		Reason:          "botnet range",
		DateTimeCreated: time.Date(2026, time.May, 1, 12, 0, 0, 0, time.UTC),
	}

	var model BannedIPModel
	model.FromDomain(entry)

	assert.Equal(t, "banned_ips", model.TableName())
	assert.Equal(t, entry, model.ToDomain())
}

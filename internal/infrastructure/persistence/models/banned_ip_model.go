package models

import (
	"time"

	"github.com/tezcatlipoca/tezcatlipoca-auth/internal/domain/bans"
)

// BannedIPModel is the GORM database model for persisted bans
type BannedIPModel struct {
	ID              string    `gorm:"primaryKey;type:varchar(36)"`
	Address         string    `gorm:"not null;uniqueIndex;type:varchar(64)"`
	Reason          string    `gorm:"type:varchar(255)"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (BannedIPModel) TableName() string {
	return "banned_ips"
}

// ToDomain converts GORM model to domain entity
func (m *BannedIPModel) ToDomain() *bans.BanEntry {
	return &bans.BanEntry{
		ID:              m.ID,
		Address:         m.Address,
		Reason:          m.Reason,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *BannedIPModel) FromDomain(e *bans.BanEntry) {
	m.ID = e.ID
	m.Address = e.Address
	m.Reason = e.Reason
	m.DateTimeCreated = e.DateTimeCreated
}

//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/tezcatlipoca/tezcatlipoca-auth/internal/domain/bans"
	"github.com/tezcatlipoca/tezcatlipoca-auth/internal/pkg/config"
	"github.com/tezcatlipoca/tezcatlipoca-auth/internal/pkg/testutil"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB      *gorm.DB
	BanRepo bans.BanRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type:   config.PostgresDbType,
			DSN:    "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			DBName: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	banRepo, err := NewGormBanRepository(db, testutil.SetupTestLogger(t))
	require.NoError(t, err, "Failed to create ban repository")

	return &TestContext{
		DB:      db,
		BanRepo: banRepo,
	}
}

// CreateTestBan creates a ban entry with default values
func CreateTestBan(t *testing.T, address string) *bans.BanEntry {
	t.Helper()

	return &bans.BanEntry{
		ID:              uuid.NewString(),
		Address:         address,
		Reason:          "integration test",
		DateTimeCreated: time.Now(),
	}
}

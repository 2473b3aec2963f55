//go:build unit
// +build unit

package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tezcatlipoca/tezcatlipoca-auth/internal/pkg/config"
)

func TestNewFileLogger(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "nested", "traefik-auth.log")

	logger := NewFileLogger(config.LogLevelInfo, logPath, config.LogRotationDaily, 10, 3)
	require.NotNil(t, logger)
	t.Cleanup(func() { _ = logger.(*FileLogger).Close() })

	logger.Info("info message")
	logger.Warn("BLOCKED: IP 198.51.100.4 attempted to access /admin [BANNED]")
	logger.Error("error message")
	logger.Debug("filtered debug message")

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)

	logOutput := string(content)
	assert.Contains(t, logOutput, "info message")
	assert.Contains(t, logOutput, "BLOCKED: IP 198.51.100.4")
	assert.Contains(t, logOutput, "error message")
	assert.Contains(t, logOutput, "INFO")
	assert.Contains(t, logOutput, "WARN")
	assert.NotContains(t, logOutput, "filtered debug message")
}

func TestFileLogger_CloseIsIdempotent(t *testing.T) {
	logger := NewFileLogger(config.LogLevelInfo, filepath.Join(t.TempDir(), "a.log"), config.LogRotationHourly, 1, 1).(*FileLogger)

	require.NoError(t, logger.Close())
	assert.NoError(t, logger.Close())
}

func TestNextRotation(t *testing.T) {
	now := time.Date(2026, time.March, 31, 23, 42, 10, 0, time.UTC)

	tests := []struct {
		rotation string
		expected time.Time
	}{
		{config.LogRotationHourly, time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)},
		{config.LogRotationDaily, time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)},
		{config.LogRotationNever, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.rotation, func(t *testing.T) {
			assert.Equal(t, tt.expected, nextRotation(now, tt.rotation))
		})
	}

	midday := time.Date(2026, time.March, 31, 12, 5, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, time.March, 31, 13, 0, 0, 0, time.UTC), nextRotation(midday, config.LogRotationHourly))
}

func TestFileLogger_WithAddsAttributes(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "traefik-auth.log")

	base := NewFileLogger(config.LogLevelInfo, logPath, config.LogRotationNever, 10, 3)
	t.Cleanup(func() { _ = base.(*FileLogger).Close() })

	base.With("request_id", "req-7").Warn("BLOCKED: IP 198.51.100.4 attempted to access /admin [BANNED]")
	base.Info("plain line")

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)

	assert.Contains(t, string(content), `"msg":"BLOCKED: IP 198.51.100.4 attempted to access /admin [BANNED]"`)
	assert.Contains(t, string(content), `"request_id":"req-7"`)
	assert.Equal(t, 1, strings.Count(string(content), "request_id"))
}

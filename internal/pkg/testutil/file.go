package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteBanFile writes lines to a banned-ips file in a temporary directory and returns its path.
func WriteBanFile(t *testing.T, lines ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "banned-ips.txt")
	OverwriteBanFile(t, path, lines...)
	return path
}

// OverwriteBanFile replaces the contents of an existing ban file.
func OverwriteBanFile(t *testing.T, path string, lines ...string) {
	t.Helper()

	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}

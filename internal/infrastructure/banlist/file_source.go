package banlist

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/tezcatlipoca/tezcatlipoca-auth/internal/domain/bans"
	"github.com/tezcatlipoca/tezcatlipoca-auth/internal/pkg/logger"
)

type fileSource struct {
	path   string
	logger logger.Logger
}

// NewFileSource creates a BanSource that reads one entry per line from path.
// A missing file is treated as an empty ban list.
func NewFileSource(path string, logger logger.Logger) (bans.BanSource, error) {
	if path == "" {
		return nil, fmt.Errorf("banned ips file path must not be empty")
	}
	return &fileSource{path: path, logger: logger}, nil
}

func (s *fileSource) Name() string {
	return "file:" + s.path
}

func (s *fileSource) Load(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("Banned IPs file not found: ", s.path)
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to open banned ips file: %w", err)
	}
	defer f.Close()

	entries, err := bans.ReadEntries(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read banned ips file: %w", err)
	}

	return entries, nil
}

package persistence

import (
	"context"
	"fmt"

	"github.com/tezcatlipoca/tezcatlipoca-auth/internal/domain/bans"
)

type gormBanSource struct {
	repo bans.BanRepository
	name string
}

// NewGormBanSource exposes the stored bans as a BanSource.
func NewGormBanSource(repo bans.BanRepository, name string) (bans.BanSource, error) {
	if repo == nil {
		return nil, fmt.Errorf("ban repository must not be nil")
	}
	return &gormBanSource{repo: repo, name: name}, nil
}

func (s *gormBanSource) Name() string {
	return "database:" + s.name
}

func (s *gormBanSource) Load(ctx context.Context) ([]string, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	addresses := make([]string, len(entries))
	for i, entry := range entries {
		addresses[i] = entry.Address
	}
	return addresses, nil
}

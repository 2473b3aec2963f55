package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tezcatlipoca/tezcatlipoca-auth/internal/domain/bans"
	"github.com/tezcatlipoca/tezcatlipoca-auth/internal/pkg/logger"
)

// banAdminService implements the BanAdminService interface on top of a BanRepository
type banAdminService struct {
	repo   bans.BanRepository
	logger logger.Logger
}

// NewBanAdminService creates a new banAdminService instance
func NewBanAdminService(repo bans.BanRepository, logger logger.Logger) (bans.BanAdminService, error) {
	if repo == nil {
		return nil, fmt.Errorf("ban repository must not be nil")
	}
	return &banAdminService{repo: repo, logger: logger}, nil
}

// Add stores a ban for address in canonical form
func (s *banAdminService) Add(ctx context.Context, address, reason string) (*bans.BanEntry, error) {
	entry := &bans.BanEntry{
		ID:              uuid.NewString(),
		Address:         bans.NormalizeAddress(address),
		Reason:          reason,
		DateTimeCreated: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to add ban: %w", err)
	}
	return entry, nil
}

// Remove deletes the ban for address
func (s *banAdminService) Remove(ctx context.Context, address string) error {
	if err := s.repo.DeleteByAddress(ctx, bans.NormalizeAddress(address)); err != nil {
		return fmt.Errorf("failed to remove ban: %w", err)
	}
	return nil
}

// List returns every stored ban
func (s *banAdminService) List(ctx context.Context) ([]*bans.BanEntry, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bans: %w", err)
	}
	return entries, nil
}

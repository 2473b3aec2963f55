package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/tezcatlipoca/tezcatlipoca-auth/internal/domain/bans"
	"github.com/tezcatlipoca/tezcatlipoca-auth/internal/infrastructure/persistence/models"
	"github.com/tezcatlipoca/tezcatlipoca-auth/internal/pkg/logger"

	"gorm.io/gorm"
)

// ErrBanNotFound is returned when no ban exists for an address.
var ErrBanNotFound = errors.New("ban not found")

type gormBanRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormBanRepository creates a new GORM-based BanRepository implementation
func NewGormBanRepository(db *gorm.DB, logger logger.Logger) (bans.BanRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("db must not be nil")
	}
	return &gormBanRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormBanRepository) Create(ctx context.Context, entry *bans.BanEntry) error {
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.BannedIPModel{}
	model.FromDomain(entry)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create ban for %s: %w", entry.Address, err)
	}

	r.logger.Info("Created ban for address ", entry.Address)
	return nil
}

func (r *gormBanRepository) List(ctx context.Context) ([]*bans.BanEntry, error) {
	var modelList []*models.BannedIPModel
	if err := r.db.WithContext(ctx).Order("address asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch bans: %w", err)
	}

	domainList := make([]*bans.BanEntry, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormBanRepository) GetByAddress(ctx context.Context, address string) (*bans.BanEntry, error) {
	var model models.BannedIPModel
	if err := r.db.WithContext(ctx).Where("address = ?", address).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrBanNotFound, address)
		}
		return nil, fmt.Errorf("failed to fetch ban: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormBanRepository) DeleteByAddress(ctx context.Context, address string) error {
	result := r.db.WithContext(ctx).Where("address = ?", address).Delete(&models.BannedIPModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete ban: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrBanNotFound, address)
	}

	r.logger.Info("Deleted ban for address ", address)
	return nil
}

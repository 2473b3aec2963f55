package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// BanListSettings controls where banned addresses come from and how long a loaded list stays fresh
type BanListSettings struct {
	Source          string        `mapstructure:"ban_source" validate:"required,oneof=file database redis"`
	BannedIPsFile   string        `mapstructure:"banned_ips_file"`
	CacheTTL        time.Duration `mapstructure:"-" validate:"required,gt=0"`
	RefreshInterval time.Duration `mapstructure:"-" validate:"required,gt=0"`
}

// Validate checks that all fields in BanListSettings are valid
func (s *BanListSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for BanListSettings: %w", err)
	}

	if s.Source == BanSourceFile && s.BannedIPsFile == "" {
		return fmt.Errorf("banned ips file is required for file source")
	}

	return nil
}

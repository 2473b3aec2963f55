package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// RedisSettings holds the connection details for the redis ban source
type RedisSettings struct {
	Addr     string `mapstructure:"redis_addr" validate:"required,hostname_port"`
	Password string `mapstructure:"redis_password"`
	DB       int    `mapstructure:"redis_db" validate:"min=0,max=15"`
	Key      string `mapstructure:"redis_key" validate:"required"`
}

// Validate checks that all fields in RedisSettings are valid
func (s *RedisSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for RedisSettings: %w", err)
	}

	return nil
}

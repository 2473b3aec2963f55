package config

import (
	"fmt"
	"net"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// ServerSettings holds the listen address of the HTTP server
type ServerSettings struct {
	Hostname string `mapstructure:"hostname" validate:"required"`
	Port     int    `mapstructure:"port" validate:"required,min=1,max=65535"`
}

// Validate checks that all fields in ServerSettings are valid
func (s *ServerSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for ServerSettings: %w", err)
	}

	return nil
}

// Addr returns the host:port pair the server binds to.
func (s *ServerSettings) Addr() string {
	return net.JoinHostPort(s.Hostname, strconv.Itoa(s.Port))
}

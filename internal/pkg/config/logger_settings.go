package config

import (
	"fmt"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// LoggerSettings holds configuration settings for logging, including log level, type and rotation
type LoggerSettings struct {
	LogLevel  string `mapstructure:"log_level" validate:"required,oneof=debug info warning error"`
	LogType   string `mapstructure:"log_type" validate:"required,oneof=console file both"`
	LogDir    string `mapstructure:"log_dir"`
	LogFile   string `mapstructure:"log_file"`
	Rotation  string `mapstructure:"log_rotation" validate:"omitempty,oneof=hourly daily never"`
	MaxFiles  int    `mapstructure:"log_max_files"`
	MaxSizeMB int    `mapstructure:"log_max_size_mb"`
}

// Validate checks that all fields in LoggerSettings are valid
func (s *LoggerSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for LoggerSettings: %w", err)
	}

	if !s.WritesFile() {
		return nil
	}

	if s.LogFile == "" {
		return fmt.Errorf("log file is required for file logger")
	}
	if s.Rotation == "" {
		return fmt.Errorf("log rotation is required for file logger")
	}
	if s.MaxFiles < 1 || s.MaxFiles > 365 {
		return fmt.Errorf("max files must be between 1 and 365")
	}
	if s.MaxSizeMB < 1 || s.MaxSizeMB > 1024 {
		return fmt.Errorf("max size must be between 1 and 1024 MB")
	}

	return nil
}

// WritesFile reports whether the configured log type includes file output.
func (s *LoggerSettings) WritesFile() bool {
	return s.LogType == LogTypeFile || s.LogType == LogTypeBoth
}

// FilePath is the active log file: the base name of LogFile placed inside LogDir.
func (s *LoggerSettings) FilePath() string {
	dir := s.LogDir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, filepath.Base(s.LogFile))
}

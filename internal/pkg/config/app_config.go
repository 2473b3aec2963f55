package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Default values used when the environment leaves a setting unset or unparsable.
const (
	DefaultBannedIPsFile = "./banned-ips.txt"
	DefaultCacheTTLSecs  = 5
	DefaultLogFile       = "./traefik-auth.log"
	DefaultLogDir        = "./logs"
	DefaultLogMaxFiles   = 7
	DefaultLogMaxSizeMB  = 100
	DefaultPort          = 8199
	DefaultHostname      = "0.0.0.0"
	DefaultRedisKey      = "banned_ips"
)

// AppConfig aggregates every settings group the service needs
type AppConfig struct {
	Server   ServerSettings
	Logger   LoggerSettings
	BanList  BanListSettings
	Database DatabaseSettings
	Redis    RedisSettings
}

// Validate checks the always-required groups plus whichever backend the ban source selects
func (c *AppConfig) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.BanList.Validate(); err != nil {
		return err
	}

	switch c.BanList.Source {
	case BanSourceDatabase:
		return c.Database.Validate()
	case BanSourceRedis:
		return c.Redis.Validate()
	}
	return nil
}

// InitializeAppConfig loads the optional env file, reads the environment and validates the result.
// A missing env file is not an error.
func InitializeAppConfig(envFile string) (*AppConfig, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	cfg, err := LoadFromEnv(newEnvViper())
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// envKeys lists every environment variable the service reads, lower-cased as
// viper stores them. Each key matches a mapstructure tag on a settings struct,
// except the *_secs keys which are converted to durations.
var envKeys = []string{
	"hostname", "port",
	"log_level", "log_type", "log_dir", "log_file", "log_rotation", "log_max_files", "log_max_size_mb",
	"ban_source", "banned_ips_file", "cache_ttl_secs", "refresh_interval_secs",
	"db_type", "db_dsn", "db_name",
	"redis_addr", "redis_password", "redis_db", "redis_key",
}

// intDefaults are the numeric keys and the values they fall back to when unset,
// negative or unparsable.
var intDefaults = map[string]int{
	"port":                  DefaultPort,
	"log_max_files":         DefaultLogMaxFiles,
	"log_max_size_mb":       DefaultLogMaxSizeMB,
	"cache_ttl_secs":        DefaultCacheTTLSecs,
	"refresh_interval_secs": 0,
	"redis_db":              0,
}

func newEnvViper() *viper.Viper {
	v := viper.New()
	for _, key := range envKeys {
		_ = v.BindEnv(key)
	}

	v.SetDefault("banned_ips_file", DefaultBannedIPsFile)
	v.SetDefault("ban_source", BanSourceFile)
	v.SetDefault("log_file", DefaultLogFile)
	v.SetDefault("log_dir", DefaultLogDir)
	v.SetDefault("log_rotation", LogRotationDaily)
	v.SetDefault("log_level", LogLevelInfo)
	v.SetDefault("log_type", LogTypeBoth)
	v.SetDefault("hostname", DefaultHostname)
	v.SetDefault("db_type", SqliteDbType)
	v.SetDefault("db_dsn", "./bans.db")
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("redis_key", DefaultRedisKey)

	return v
}

// LoadFromEnv decodes every settings group from v without validating the result.
// Numeric settings that fail to parse fall back to their defaults.
func LoadFromEnv(v *viper.Viper) (*AppConfig, error) {
	for key, def := range intDefaults {
		v.Set(key, intOrDefault(v, key, def))
	}

	cfg := &AppConfig{}
	groups := []interface{}{&cfg.Server, &cfg.Logger, &cfg.BanList, &cfg.Database, &cfg.Redis}
	for _, group := range groups {
		if err := v.Unmarshal(group); err != nil {
			return nil, fmt.Errorf("failed to decode settings: %w", err)
		}
	}

	cfg.Logger.LogLevel = strings.ToLower(cfg.Logger.LogLevel)
	cfg.Logger.LogType = strings.ToLower(cfg.Logger.LogType)
	cfg.Logger.Rotation = strings.ToLower(cfg.Logger.Rotation)
	cfg.BanList.Source = strings.ToLower(cfg.BanList.Source)
	cfg.Database.Type = strings.ToLower(cfg.Database.Type)

	cfg.BanList.CacheTTL = time.Duration(v.GetInt("cache_ttl_secs")) * time.Second
	cfg.BanList.RefreshInterval = cfg.BanList.CacheTTL
	if secs := v.GetInt("refresh_interval_secs"); secs > 0 {
		cfg.BanList.RefreshInterval = time.Duration(secs) * time.Second
	}

	return cfg, nil
}

func intOrDefault(v *viper.Viper, key string, def int) int {
	raw := strings.TrimSpace(v.GetString(key))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return def
	}
	return n
}

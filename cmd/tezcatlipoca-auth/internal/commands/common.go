package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tezcatlipoca/tezcatlipoca-auth/internal/domain/bans"
	"github.com/tezcatlipoca/tezcatlipoca-auth/internal/infrastructure/banlist"
	"github.com/tezcatlipoca/tezcatlipoca-auth/internal/infrastructure/persistence"
	"github.com/tezcatlipoca/tezcatlipoca-auth/internal/pkg/config"
	"github.com/tezcatlipoca/tezcatlipoca-auth/internal/pkg/logger"
)

const envFileFlag = "env-file"

// InitCommands registers the persistent flags and every sub-command on rootCmd.
// Running rootCmd without a sub-command serves HTTP.
func InitCommands(rootCmd *cobra.Command) error {
	rootCmd.PersistentFlags().String(envFileFlag, ".env", "Path to an optional env file")

	serveCmd := newServeCommand()
	rootCmd.RunE = serveCmd.RunE
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newBansCommand())

	return nil
}

func loadConfig(cmd *cobra.Command) (*config.AppConfig, error) {
	envFile, err := cmd.Flags().GetString(envFileFlag)
	if err != nil {
		return nil, fmt.Errorf("invalid %s flag: %w", envFileFlag, err)
	}
	return config.InitializeAppConfig(envFile)
}

func setupLogger(settings *config.LoggerSettings) (logger.Logger, error) {
	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// setupCLILogger logs to the console only, so one-shot commands never touch the service log files.
func setupCLILogger(settings config.LoggerSettings) (logger.Logger, error) {
	settings.LogType = config.LogTypeConsole
	return setupLogger(&settings)
}

// buildBanSource returns the source BAN_SOURCE selects along with a function releasing its connections.
func buildBanSource(cfg *config.AppConfig, log logger.Logger) (bans.BanSource, func() error, error) {
	noop := func() error { return nil }

	switch cfg.BanList.Source {
	case config.BanSourceFile:
		source, err := banlist.NewFileSource(cfg.BanList.BannedIPsFile, log)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create file source: %w", err)
		}
		return source, noop, nil

	case config.BanSourceDatabase:
		repo, closeDB, err := openBanRepository(cfg.Database, log)
		if err != nil {
			return nil, nil, err
		}
		source, err := persistence.NewGormBanSource(repo, cfg.Database.Type)
		if err != nil {
			_ = closeDB()
			return nil, nil, fmt.Errorf("failed to create database source: %w", err)
		}
		return source, closeDB, nil

	case config.BanSourceRedis:
		client := banlist.NewRedisClient(cfg.Redis)
		source, err := banlist.NewRedisSource(client, cfg.Redis.Key)
		if err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("failed to create redis source: %w", err)
		}
		return source, client.Close, nil

	default:
		return nil, nil, fmt.Errorf("unsupported ban source: %s", cfg.BanList.Source)
	}
}

func openBanRepository(settings config.DatabaseSettings, log logger.Logger) (bans.BanRepository, func() error, error) {
	db, err := persistence.NewDBConnection(settings)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	repo, err := persistence.NewGormBanRepository(db, log)
	if err != nil {
		_ = persistence.CloseDB(db)
		return nil, nil, fmt.Errorf("failed to create ban repository: %w", err)
	}

	return repo, func() error { return persistence.CloseDB(db) }, nil
}

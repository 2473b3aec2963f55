package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	v1 "github.com/tezcatlipoca/tezcatlipoca-auth/internal/api/rest/v1"
	"github.com/tezcatlipoca/tezcatlipoca-auth/internal/app"
	"github.com/tezcatlipoca/tezcatlipoca-auth/internal/domain/bans"
	"github.com/tezcatlipoca/tezcatlipoca-auth/internal/infrastructure/cache"
	"github.com/tezcatlipoca/tezcatlipoca-auth/internal/pkg/config"
	"github.com/tezcatlipoca/tezcatlipoca-auth/internal/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the ForwardAuth endpoint (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			log, err := setupLogger(&cfg.Logger)
			if err != nil {
				return err
			}
			defer func() { _ = logger.CloseLogger() }()

			return serve(cmd.Context(), cfg, log)
		},
	}
}

func serve(parent context.Context, cfg *config.AppConfig, log logger.Logger) error {
	if parent == nil {
		parent = context.Background()
	}

	source, closeSource, err := buildBanSource(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeSource(); err != nil {
			log.Warn("failed to close ban source: ", err)
		}
	}()

	banCheckService, err := app.NewBanCheckService(
		source,
		cache.NewBannedIPCache(cfg.BanList.CacheTTL, nil),
		cfg.BanList.CacheTTL,
		log,
	)
	if err != nil {
		return fmt.Errorf("failed to create ban check service: %w", err)
	}

	log.Info("Using ban source ", source.Name())
	if err := banCheckService.Refresh(parent); err != nil {
		log.Warn("Initial ban list load failed: ", err)
	} else {
		log.Info("Loaded ", banCheckService.Count(), " banned IPs")
	}

	refresher, err := app.NewBanRefresher(banCheckService, cfg.BanList.RefreshInterval, log)
	if err != nil {
		return fmt.Errorf("failed to create ban refresher: %w", err)
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	supervisor := app.NewSupervisor("tezcatlipoca-auth", log, refresher)
	supervisorDone := supervisor.ServeBackground(ctx)

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           newRouter(banCheckService, log),
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	err = runServer(ctx, srv, log)

	cancel()
	<-supervisorDone
	return err
}

func newRouter(banCheckService bans.BanCheckService, log logger.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	v1.SetupRoutes(r, banCheckService, log)
	return r
}

// runServer serves until ctx is cancelled, a signal arrives or the listener fails, then shuts down gracefully.
func runServer(ctx context.Context, srv *http.Server, log logger.Logger) error {
	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Starting server on ", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

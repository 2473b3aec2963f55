package app

import (
	"context"
	"fmt"
	"time"

	"github.com/tezcatlipoca/tezcatlipoca-auth/internal/domain/bans"
	"github.com/tezcatlipoca/tezcatlipoca-auth/internal/pkg/logger"
	"github.com/thejerf/suture/v4"
)

// BanRefresher periodically reloads the ban list. It is a suture.Service and
// is meant to run under a supervisor.
type BanRefresher struct {
	service  bans.BanCheckService
	interval time.Duration
	logger   logger.Logger
}

// NewBanRefresher creates a refresher that reloads service every interval.
func NewBanRefresher(service bans.BanCheckService, interval time.Duration, logger logger.Logger) (*BanRefresher, error) {
	if service == nil {
		return nil, fmt.Errorf("ban check service must not be nil")
	}
	if interval <= 0 {
		return nil, fmt.Errorf("refresh interval must be positive, got %s", interval)
	}
	return &BanRefresher{service: service, interval: interval, logger: logger}, nil
}

// Serve refreshes once immediately and then on every tick until ctx is done.
func (r *BanRefresher) Serve(ctx context.Context) error {
	r.refresh(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

func (r *BanRefresher) refresh(ctx context.Context) {
	if err := r.service.Refresh(ctx); err != nil && ctx.Err() == nil {
		r.logger.Warn("Background refresh of banned IPs failed: ", err)
	}
}

// String names the service in supervisor events.
func (r *BanRefresher) String() string {
	return "ban refresher"
}

// NewSupervisor returns a supervisor that reports its events to log.
func NewSupervisor(name string, log logger.Logger, services ...suture.Service) *suture.Supervisor {
	supervisor := suture.New(name, suture.Spec{
		EventHook: func(e suture.Event) {
			log.Warn("supervisor event: ", e.String())
		},
	})
	for _, service := range services {
		supervisor.Add(service)
	}
	return supervisor
}

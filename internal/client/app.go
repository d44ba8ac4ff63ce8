package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/scale-sync/internal/config"
	"github.com/MKhiriev/scale-sync/internal/logger"
	"github.com/MKhiriev/scale-sync/internal/server"
	"github.com/MKhiriev/scale-sync/internal/service"
	"github.com/MKhiriev/scale-sync/internal/workers"
)

const shutdownTimeout = 10 * time.Second

var _ Client = (*App)(nil)

type App struct {
	services *service.Services
	server   server.Server
	workers  *workers.Workers
	cfg      *config.ClientConfig
	logger   *logger.Logger
}

// NewApp wires the lifecycle. srv may be nil when the HTTP surface is
// disabled.
func NewApp(services *service.Services, srv server.Server, ws *workers.Workers, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("services are required")
	}
	if ws == nil {
		ws = workers.NewWorkers()
	}
	return &App{
		services: services,
		server:   srv,
		workers:  ws,
		cfg:      cfg,
		logger:   logger,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	if err := a.bootstrap(ctx); err != nil {
		return err
	}

	if a.cfg.Workers.RunOnce {
		return a.runOnce(ctx)
	}

	return a.serve(ctx)
}

// bootstrap saves credentials passed through configuration and makes sure
// the install has a device id.
func (a *App) bootstrap(ctx context.Context) error {
	if a.cfg.App.Email != "" && a.cfg.App.Password != "" {
		if err := a.services.CredentialsService.SaveCredentials(ctx, a.cfg.App.Email, a.cfg.App.Password); err != nil {
			return fmt.Errorf("save credentials: %w", err)
		}
		a.logger.Info().Str("email", a.cfg.App.Email).Msg("vendor credentials stored")
	}

	deviceID, err := a.services.CredentialsService.EnsureDeviceID(ctx)
	if err != nil {
		return fmt.Errorf("ensure device id: %w", err)
	}
	a.logger.Debug().Str("device_id", deviceID).Msg("device id ready")

	return nil
}

func (a *App) runOnce(ctx context.Context) error {
	result := a.services.SyncJob.Trigger(ctx)
	if !result.Success {
		return fmt.Errorf("%w: %s", ErrRunFailed, result.Message)
	}
	return nil
}

// serve runs the periodic worker and the HTTP surface until ctx is done.
func (a *App) serve(ctx context.Context) error {
	a.workers.Run(ctx)
	defer a.workers.Stop()

	serverErr := make(chan error, 1)
	if a.server != nil {
		go func() { serverErr <- a.server.RunServer() }()
	}

	select {
	case <-ctx.Done():
		a.logger.Info().Msg("shutdown signal received")
	case err := <-serverErr:
		if err != nil {
			return err
		}
	}

	if a.server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
	}

	a.logger.Info().Msg("syncer stopped gracefully")
	return nil
}

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/MKhiriev/scale-sync/internal/adapter"
	"github.com/MKhiriev/scale-sync/internal/client"
	"github.com/MKhiriev/scale-sync/internal/config"
	"github.com/MKhiriev/scale-sync/internal/crypto"
	"github.com/MKhiriev/scale-sync/internal/handler"
	"github.com/MKhiriev/scale-sync/internal/logger"
	"github.com/MKhiriev/scale-sync/internal/metrics"
	"github.com/MKhiriev/scale-sync/internal/server"
	"github.com/MKhiriev/scale-sync/internal/service"
	"github.com/MKhiriev/scale-sync/internal/store"
	"github.com/MKhiriev/scale-sync/internal/workers"
	"github.com/MKhiriev/scale-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("scale-sync")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.LogFile != "" {
		log = logger.NewFileLogger("scale-sync", cfg.App.LogFile)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, crypto.NewKeychain(cfg.App.SecretKey), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	ciphers, err := crypto.NewVendorFactory()
	if err != nil {
		log.Fatal().Err(err).Msg("error loading vendor public key")
	}

	vendorAdapter, err := adapter.NewHTTPVendorAdapter(cfg.Adapter, ciphers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating vendor adapter")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	services := service.NewServices(storages, vendorAdapter, cfg, metrics.New(registry), log)

	var srv server.Server
	handlers, err := handler.NewHandlers(services, registry, buildInfo, cfg.Server, log)
	switch {
	case handler.IsDisabled(err):
		log.Info().Msg("local http surface disabled")
	case err != nil:
		log.Fatal().Err(err).Msg("error creating handlers")
	default:
		if srv, err = server.NewServer(handlers, cfg.Server, log); err != nil && !errors.Is(err, server.ErrNoServersAreCreated) {
			log.Fatal().Err(err).Msg("error creating server")
		}
	}

	app, err := client.NewApp(services, srv,
		workers.NewWorkers(workers.NewSyncWorker(services.SyncJob, cfg.Workers.SyncInterval)),
		cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("syncer run error")
		stop()
		_ = storages.Close()
		os.Exit(1)
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}

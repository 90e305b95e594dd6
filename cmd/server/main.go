package main

import (
	"context"
	"os"

	"github.com/MKhiriev/go-product-catalog/internal/config"
	"github.com/MKhiriev/go-product-catalog/internal/handler"
	"github.com/MKhiriev/go-product-catalog/internal/logger"
	"github.com/MKhiriev/go-product-catalog/internal/metrics"
	"github.com/MKhiriev/go-product-catalog/internal/server"
	"github.com/MKhiriev/go-product-catalog/internal/service"
	"github.com/MKhiriev/go-product-catalog/internal/store"
	"github.com/MKhiriev/go-product-catalog/internal/workers"
	"github.com/MKhiriev/go-product-catalog/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	buildInfo.Print(os.Stdout)

	log := logger.NewLogger("catalog-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		return 1
	}
	log = log.WithLevel(cfg.App.LogLevel)

	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating storages")
		return 1
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating services")
		return 1
	}

	metricsManager := metrics.NewManager()

	handlers, err := handler.NewHandlers(services, cfg, metricsManager, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating handlers")
		return 1
	}

	sinks := []workers.StorageStatusSink{metricsManager}
	if handlers.GRPC != nil {
		sinks = append(sinks, handlers.GRPC)
	}
	backgroundWorkers := workers.NewWorkers(
		workers.NewHealthProbe(services.HealthService, cfg.Workers.HealthCheckInterval, log, sinks...),
	)

	srv, err := server.NewServer(handlers, cfg.Server, log, backgroundWorkers)
	if err != nil {
		log.Error().Err(err).Msg("error creating server")
		return 1
	}

	if err = srv.RunServer(); err != nil {
		log.Err(err).Msg("error running server")
		return 1
	}
	return 0
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-product-catalog/internal/adapter"
	"github.com/MKhiriev/go-product-catalog/internal/client"
	"github.com/MKhiriev/go-product-catalog/internal/config"
	"github.com/MKhiriev/go-product-catalog/internal/logger"
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
	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		return 2
	}

	log := logger.New(os.Stderr, "catalog-client").WithLevel(cfg.LogLevel)

	args := flag.Args()
	if len(args) > 0 && args[0] == "build-info" {
		models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).Print(os.Stdout)
		return 0
	}

	catalog, err := adapter.NewHTTPCatalogAdapter(cfg.Adapter, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating catalog adapter")
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(catalog, os.Stdout, log)
	if err = app.Run(ctx, args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if errors.Is(err, client.ErrNoCommand) ||
			errors.Is(err, client.ErrUnknownCommand) ||
			errors.Is(err, client.ErrInvalidArgs) {
			return 2
		}
		return 1
	}

	return 0
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
	"time"
)

const (
	defaultLogLevel            = "info"
	defaultHTTPAddress         = "localhost:8080"
	defaultDriver              = DriverSQLite
	defaultSQLiteDSN           = "products.db"
	defaultEngine              = EngineSQL
	defaultPerPage             = 10
	defaultMaxPerPage          = 100
	defaultAdapterTimeout      = 10 * time.Second
	defaultHealthCheckInterval = 15 * time.Second
)

var logLevels = []string{"trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled"}

// applyDefaults fills every unset field that has a sensible default.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = defaultLogLevel
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}

	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = defaultDriver
	}
	if cfg.Storage.DB.DSN == "" && cfg.Storage.DB.Driver == DriverSQLite {
		cfg.Storage.DB.DSN = defaultSQLiteDSN
	}
	if cfg.Storage.DB.Engine == "" {
		cfg.Storage.DB.Engine = defaultEngine
	}

	if cfg.Pagination.DefaultPerPage == 0 {
		cfg.Pagination.DefaultPerPage = defaultPerPage
	}
	if cfg.Pagination.MaxPerPage == 0 {
		cfg.Pagination.MaxPerPage = max(defaultMaxPerPage, cfg.Pagination.DefaultPerPage)
	}

	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = cfg.Server.HTTPAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultAdapterTimeout
	}

	if cfg.Workers.HealthCheckInterval == 0 {
		cfg.Workers.HealthCheckInterval = defaultHealthCheckInterval
	}
}

// validate checks that the merged [StructuredConfig] is usable at startup.
func (cfg *StructuredConfig) validate() error {
	if !slices.Contains(logLevels, cfg.App.LogLevel) {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidAppConfigs, cfg.App.LogLevel)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	switch cfg.Storage.DB.Engine {
	case EngineSQL, EngineORM:
	default:
		return fmt.Errorf("%w: unsupported engine %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Engine)
	}
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Pagination.DefaultPerPage < 1 || cfg.Pagination.MaxPerPage < cfg.Pagination.DefaultPerPage {
		return ErrInvalidPaginationConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.HealthCheckInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

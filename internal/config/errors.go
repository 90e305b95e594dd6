package config

import "errors"

// Validation errors returned by validate when a configuration group is
// incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates an unknown log level.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or a negative timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates an unsupported driver or engine, or an empty DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidPaginationConfigs indicates non-positive or inconsistent page sizes.
	ErrInvalidPaginationConfigs = errors.New("invalid pagination configuration")
	// ErrInvalidAdapterConfigs indicates a missing client address or a non-positive timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidWorkerConfigs indicates a non-positive probe interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)

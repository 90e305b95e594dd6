package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the catalog server address used by the client.
	HTTPAddress string
	// RequestTimeout is the timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientConfig is the client view of [StructuredConfig].
type ClientConfig struct {
	// LogLevel is the minimum client log level.
	LogLevel string
	// Adapter contains the server address and request timeout.
	Adapter ClientAdapter
}

// GetClientConfig loads the merged configuration via [GetStructuredConfig]
// and keeps only the fields relevant to the client.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return NewClientConfig(cfg), nil
}

// NewClientConfig maps cfg onto a [ClientConfig].
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		LogLevel: cfg.App.LogLevel,
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
	}
}

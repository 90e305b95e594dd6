package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-product-catalog/internal/config"
	"github.com/MKhiriev/go-product-catalog/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppInfoService(t *testing.T) {
	t.Run("configured version", func(t *testing.T) {
		svc, err := NewAppInfoService(config.App{Version: "v1.2.3-beta+build.42"}, logger.Nop())
		require.NoError(t, err)
		assert.Equal(t, "v1.2.3-beta+build.42", svc.GetAppVersion(context.Background()))
	})

	t.Run("empty version", func(t *testing.T) {
		svc, err := NewAppInfoService(config.App{}, logger.Nop())
		assert.Nil(t, svc)
		assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
	})
}

func TestGetAppVersion_CancelledContext_StillReturnsVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx))
}

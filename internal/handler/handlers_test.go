package handler

import (
	"testing"

	"github.com/MKhiriev/fuel-station-dashboard/internal/config"
	"github.com/MKhiriev/fuel-station-dashboard/internal/logger"
	"github.com/MKhiriev/fuel-station-dashboard/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlers(t *testing.T) {
	t.Run("http address configured", func(t *testing.T) {
		handlers, err := NewHandlers(&service.Services{}, prometheus.NewRegistry(), config.Server{HTTPAddress: ":5000"}, logger.Nop())
		require.NoError(t, err)
		assert.NotNil(t, handlers.HTTP)
	})

	t.Run("no address", func(t *testing.T) {
		handlers, err := NewHandlers(&service.Services{}, nil, config.Server{}, logger.Nop())
		assert.ErrorIs(t, err, errNoHandlersAreCreated)
		assert.Nil(t, handlers)
	})
}

package http

import (
	"net/http"

	"github.com/MKhiriev/fuel-station-dashboard/internal/config"
	"github.com/MKhiriev/fuel-station-dashboard/internal/logger"
	"github.com/MKhiriev/fuel-station-dashboard/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler serves the dashboard REST API on top of [service.Services].
type Handler struct {
	services *service.Services

	// metrics serves the prometheus exposition on GET /metrics.
	metrics http.Handler

	cfg    config.Server
	logger *logger.Logger
}

// NewHandler builds a Handler. A nil gatherer exposes
// [prometheus.DefaultGatherer].
func NewHandler(services *service.Services, gatherer prometheus.Gatherer, cfg config.Server, logger *logger.Logger) *Handler {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}),
		cfg:      cfg,
		logger:   logger,
	}
}

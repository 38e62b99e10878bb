package service

import (
	"github.com/MKhiriev/fuel-station-dashboard/internal/adapter"
	"github.com/MKhiriev/fuel-station-dashboard/internal/config"
	"github.com/MKhiriev/fuel-station-dashboard/internal/crypto"
	"github.com/MKhiriev/fuel-station-dashboard/internal/logger"
	"github.com/MKhiriev/fuel-station-dashboard/internal/store"
	"github.com/prometheus/client_golang/prometheus"
)

// Services groups the services exposed to the transport layer.
type Services struct {
	AuthService    AuthService
	TokenService   TokenService
	AppInfoService AppInfoService
}

// NewServices builds every service. The auth service is decorated as
// metrics(validation(core)), so rejected input is counted too.
func NewServices(storages *store.Storages, mail adapter.MailDispatcher, reg prometheus.Registerer, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	tokenService := NewTokenService(cfg.App, nil, logger)

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	metrics, err := NewAuthMetrics(reg)
	if err != nil {
		return nil, err
	}

	core := NewAuthService(storages, crypto.NewBcryptHasher(cfg.App.PasswordHashCost), tokenService, mail, cfg, logger)
	authService := NewAuthMetricsService(metrics).Wrap(
		NewAuthValidationService().Wrap(core),
	)

	return &Services{
		AuthService:    authService,
		TokenService:   tokenService,
		AppInfoService: appInfoService,
	}, nil
}

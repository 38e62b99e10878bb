package main

import (
	"context"
	"os"

	"github.com/MKhiriev/fuel-station-dashboard/internal/adapter"
	"github.com/MKhiriev/fuel-station-dashboard/internal/config"
	"github.com/MKhiriev/fuel-station-dashboard/internal/handler"
	"github.com/MKhiriev/fuel-station-dashboard/internal/logger"
	"github.com/MKhiriev/fuel-station-dashboard/internal/server"
	"github.com/MKhiriev/fuel-station-dashboard/internal/service"
	"github.com/MKhiriev/fuel-station-dashboard/internal/store"
	"github.com/MKhiriev/fuel-station-dashboard/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("fuel-station-dashboard")
	buildInfo := models.NewAppBuildInfo(valueOrNA(buildVersion), valueOrNA(buildDate), valueOrNA(buildCommit))
	log.Info().
		Str("version", buildInfo.BuildVersion()).
		Str("date", buildInfo.BuildDate()).
		Str("commit", buildInfo.BuildCommit()).
		Msg("build info")

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	if cfg.App.InsecureTokenSignKey {
		log.Warn().Msg("APP_TOKEN_SIGN_KEY is not set, tokens are signed with the insecure built-in key")
	}
	if cfg.Mail.FallbackToLog {
		log.Warn().Msg("MAIL_TRANSPORT and MAIL_SMTP_HOST are not set, reset mails are only logged and never delivered")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages, err := store.NewStorages(ctx, db, cfg.Limiter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	mail, err := adapter.NewMailDispatcher(cfg.Mail, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating mail dispatcher")
	}
	defer func() {
		if err := adapter.Close(mail); err != nil {
			log.Err(err).Msg("error closing mail dispatcher")
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	services, err := service.NewServices(storages, mail, registry, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, registry, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func valueOrNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}

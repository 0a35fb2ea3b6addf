package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bookmarks/internal/config"
	"github.com/MKhiriev/go-bookmarks/internal/handler"
	"github.com/MKhiriev/go-bookmarks/internal/logger"
	"github.com/MKhiriev/go-bookmarks/internal/server"
	"github.com/MKhiriev/go-bookmarks/internal/service"
	"github.com/MKhiriev/go-bookmarks/internal/store"
	"github.com/MKhiriev/go-bookmarks/internal/validators"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-bookmarks-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = log.SetLevel(cfg.Log.Level); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("db_driver", cfg.Storage.DB.DriverName()).
		Str("version", cfg.App.Version).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Error().Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, validators.NewRequestValidator(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

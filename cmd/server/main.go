package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-poke-keeper/internal/adapter"
	"github.com/MKhiriev/go-poke-keeper/internal/config"
	"github.com/MKhiriev/go-poke-keeper/internal/handler"
	"github.com/MKhiriev/go-poke-keeper/internal/logger"
	"github.com/MKhiriev/go-poke-keeper/internal/server"
	"github.com/MKhiriev/go-poke-keeper/internal/service"
	"github.com/MKhiriev/go-poke-keeper/internal/store"
	"github.com/MKhiriev/go-poke-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("go-poke-server").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLoggerWithLevel("go-poke-server", cfg.App.LogLevel)
	log.Debug().Any("config", cfg.Masked()).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)
	provider := adapter.NewPokeAPIAdapter(cfg.Adapter, log)

	services, err := service.NewServices(storages, provider, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}

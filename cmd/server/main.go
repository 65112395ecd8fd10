package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/hero-api/internal/cache"
	"github.com/MKhiriev/hero-api/internal/config"
	"github.com/MKhiriev/hero-api/internal/handler"
	"github.com/MKhiriev/hero-api/internal/logger"
	"github.com/MKhiriev/hero-api/internal/server"
	"github.com/MKhiriev/hero-api/internal/service"
	"github.com/MKhiriev/hero-api/internal/store"
	"github.com/MKhiriev/hero-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger("hero-api", cfg.App.LogLevel)
	ctx := log.WithContext(context.Background())

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	cacheStore, closeCache, err := cache.NewStore(ctx, cfg.Storage.Cache)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating cache store")
	}
	defer closeCache()

	services := service.NewServices(storages, cfg.App, buildInfo, log)

	if cfg.App.FirstSuperuserEmail != "" && cfg.App.FirstSuperuserPassword != "" {
		if _, err = services.AuthService.EnsureSuperuser(ctx, cfg.App.FirstSuperuserEmail, cfg.App.FirstSuperuserPassword); err != nil {
			log.Fatal().Err(err).Msg("error creating first superuser")
		}
	}

	handlers, err := handler.NewHandlers(services, cacheStore, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}

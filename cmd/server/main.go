package main

import (
	"fmt"
	"os"

	"github.com/maxim-ist/mcp-bear/internal/adapter"
	"github.com/maxim-ist/mcp-bear/internal/config"
	"github.com/maxim-ist/mcp-bear/internal/handler"
	"github.com/maxim-ist/mcp-bear/internal/logger"
	"github.com/maxim-ist/mcp-bear/internal/server"
	"github.com/maxim-ist/mcp-bear/internal/service"
	"github.com/maxim-ist/mcp-bear/internal/store"
	"github.com/maxim-ist/mcp-bear/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("mcp-bear", config.DefaultLogLevel).Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log := logger.NewLogger(cfg.App.Name, cfg.Log.Level)
	log.Debug().Any("config", cfg).Msg("received configs")

	storages := store.NewStorages(cfg.Storage, log)
	launcher := adapter.NewExecLauncher(cfg.Launcher, log)

	services, err := service.NewServices(storages, launcher, *cfg, log)
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

	if err := srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

// printBuildInfo writes to stderr; stdout belongs to the stdio transport.
func printBuildInfo(info models.AppBuildInfo) {
	fmt.Fprintf(os.Stderr, "Build version: %s\n", info.BuildVersion())
	fmt.Fprintf(os.Stderr, "Build date: %s\n", info.BuildDate())
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", info.BuildCommit())
}

package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/webapp-dev-server/internal/config"
	"github.com/MKhiriev/webapp-dev-server/internal/handler"
	"github.com/MKhiriev/webapp-dev-server/internal/logger"
	"github.com/MKhiriev/webapp-dev-server/internal/server"
	"github.com/MKhiriev/webapp-dev-server/internal/webenv"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("webapp-dev-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err := log.SetLevel(cfg.Log.Level); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	loader := webenv.NewFileLoader(cfg.Static.EnvFile, log)

	// report what config.js will contain right now; requests reload the file
	webCfg, err := loader.Load(context.Background())
	if err != nil {
		log.Error().Err(err).Msg("error loading webapp environment, /config.js will fail until it is fixed")
	} else {
		log.Info().
			Str("env_file", loader.Path()).
			Object("webapp", webenv.Summarize(webCfg)).
			Msg("configuration loaded")
	}

	handlers, err := handler.NewHandlers(loader, cfg.Static, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	log.Info().
		Str("url", "http://localhost:"+strconv.Itoa(cfg.Server.Port)).
		Msg("starting server, press Ctrl+C to stop")

	if err := srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}

	log.Info().Msg("server stopped")
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

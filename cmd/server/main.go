package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/eye-test-server/internal/config"
	myHTTP "github.com/MKhiriev/eye-test-server/internal/handler/http"
	"github.com/MKhiriev/eye-test-server/internal/logger"
	"github.com/MKhiriev/eye-test-server/internal/server"
	"github.com/MKhiriev/eye-test-server/internal/service"
	"github.com/MKhiriev/eye-test-server/internal/store"
	"github.com/MKhiriev/eye-test-server/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("eye-test-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err := migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	repositories := store.NewRepositories(db, log)
	services := service.NewServices(repositories, cfg.Auth, log)
	handler := myHTTP.NewHandler(services, cfg.Server, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
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

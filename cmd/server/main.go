package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-budget-keeper/internal/adapter"
	"github.com/MKhiriev/go-budget-keeper/internal/config"
	"github.com/MKhiriev/go-budget-keeper/internal/handler"
	"github.com/MKhiriev/go-budget-keeper/internal/logger"
	"github.com/MKhiriev/go-budget-keeper/internal/server"
	"github.com/MKhiriev/go-budget-keeper/internal/service"
	"github.com/MKhiriev/go-budget-keeper/internal/workers"
)

const appName = "go-budget-keeper"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger(appName)
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("default_budget", cfg.Budget.DefaultBudget).Msg("received configs")

	api := adapter.NewHTTPBudgetAPI(adapter.HTTPClientConfig{
		BaseURL:     cfg.Budget.BaseURL,
		AccessToken: cfg.Budget.AccessToken,
		Timeout:     cfg.Budget.RequestTimeout,
	})

	repo := service.NewRepository(api, service.RepositoryConfig{
		BudgetID: cfg.Budget.DefaultBudget,
		MaxAge:   cfg.Workers.MaxAge,
	}, log)
	defer repo.Close()

	backgroundWorkers := workers.NewWorkers(
		workers.NewRefreshWorker(repo, cfg.Workers.SyncInterval, log),
	)
	backgroundWorkers.Start(context.Background())
	defer backgroundWorkers.Stop()

	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	handlers := handler.NewHandlers(repo, api, cfg, log)

	srv, err := server.NewServer(handlers, cfg, appName, cfg.App.Version, log)
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

	// stdout is the MCP transport, build info goes to stderr
	fmt.Fprintf(os.Stderr, "Build version: %s\n", buildVersion)
	fmt.Fprintf(os.Stderr, "Build date: %s\n", buildDate)
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", buildCommit)
}

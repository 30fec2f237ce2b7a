package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/thecivicscenter/prereg/internal/adapters/feed/census"
	"github.com/thecivicscenter/prereg/internal/adapters/feed/democracyworks"
	"github.com/thecivicscenter/prereg/internal/adapters/repository/postgres"
	"github.com/thecivicscenter/prereg/internal/config"
	"github.com/thecivicscenter/prereg/internal/core/services"
	"github.com/thecivicscenter/prereg/internal/logging"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	var apiBaseURL, apiKey, warehouseURL string
	flag.StringVar(&apiBaseURL, "api-base-url", cfg.Feeds.ElectionsAPIBaseURL, "Elections API base URL")
	flag.StringVar(&apiKey, "api-key", cfg.Feeds.ElectionsAPIKey, "Elections API key")
	flag.StringVar(&warehouseURL, "warehouse-url", cfg.Feeds.WarehouseURL, "Census warehouse extract URL")
	flag.Parse()

	logger := logging.New(cfg.Logging)

	db, err := sql.Open("postgres", cfg.Database.ConnString())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	stateRepo := postgres.NewStateRepository(db)
	authorityRepo := postgres.NewAuthorityRepository(db)
	electionRepo := postgres.NewElectionRepository(db)
	popRepo := postgres.NewPopulationRepository(db)

	// Use a timeout for the job execution to prevent it from hanging indefinitely
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	states, err := stateRepo.GetAll(ctx)
	if err != nil {
		log.Fatal(err)
	}

	electionsClient := democracyworks.NewClient(apiBaseURL, apiKey)
	censusClient := census.NewClient(warehouseURL, states)

	refreshService := services.NewRefreshService(
		electionsClient, electionsClient, censusClient,
		authorityRepo, electionRepo, popRepo,
		logger,
	)

	summary, err := refreshService.RefreshAll(ctx)
	if err != nil {
		logger.Error("snapshot refresh failed", "error", err)
		os.Exit(1)
	}

	logger.Info("snapshot refresh completed",
		"run_id", summary.RunID,
		"authorities", summary.Authorities,
		"elections", summary.Elections,
		"populations", summary.Populations,
	)
}

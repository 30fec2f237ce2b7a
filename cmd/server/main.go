package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	stdhttp "net/http"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/thecivicscenter/prereg/internal/adapters/handler/http"
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

	rulesService := services.NewRulesService(stateRepo, authorityRepo, electionRepo, popRepo)
	overviewService := services.NewOverviewService(stateRepo, authorityRepo, electionRepo, popRepo)

	handler := http.NewHandler(
		http.NewRulesHandler(rulesService),
		http.NewOverviewHandler(overviewService),
	)

	server := &stdhttp.Server{
		Addr:         cfg.HTTP.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	logger.Info("gracefully shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal(err)
	}
}

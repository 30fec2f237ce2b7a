package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/thecivicscenter/prereg/internal/core/ports"
)

type refreshService struct {
	authorityFeed  ports.AuthorityFeed
	electionFeed   ports.ElectionFeed
	populationFeed ports.PopulationFeed
	authorityRepo  ports.AuthorityRepository
	electionRepo   ports.ElectionRepository
	popRepo        ports.PopulationRepository
	logger         *slog.Logger
}

func NewRefreshService(
	authorityFeed ports.AuthorityFeed,
	electionFeed ports.ElectionFeed,
	populationFeed ports.PopulationFeed,
	authorityRepo ports.AuthorityRepository,
	electionRepo ports.ElectionRepository,
	popRepo ports.PopulationRepository,
	logger *slog.Logger,
) ports.RefreshService {
	return &refreshService{
		authorityFeed:  authorityFeed,
		electionFeed:   electionFeed,
		populationFeed: populationFeed,
		authorityRepo:  authorityRepo,
		electionRepo:   electionRepo,
		popRepo:        popRepo,
		logger:         logger,
	}
}

// RefreshAll pulls fresh snapshots of the three upstream feeds and replaces
// the stored copies. The feeds are independent, so they run concurrently;
// the first failure wins.
func (s *refreshService) RefreshAll(ctx context.Context) (*ports.RefreshSummary, error) {
	summary := &ports.RefreshSummary{RunID: uuid.New().String()}
	s.logger.Info("starting snapshot refresh", "run_id", summary.RunID)

	var wg sync.WaitGroup
	errChan := make(chan error, 3)

	wg.Add(3)

	go func() {
		defer wg.Done()
		authorities, err := s.authorityFeed.FetchAuthorities(ctx)
		if err != nil {
			errChan <- fmt.Errorf("failed to fetch authorities: %w", err)
			return
		}
		if err := s.authorityRepo.ReplaceAll(ctx, authorities); err != nil {
			errChan <- fmt.Errorf("failed to store authorities: %w", err)
			return
		}
		summary.Authorities = len(authorities)
		s.logger.Info("authorities refreshed", "run_id", summary.RunID, "count", len(authorities))
	}()

	go func() {
		defer wg.Done()
		elections, err := s.electionFeed.FetchElections(ctx)
		if err != nil {
			errChan <- fmt.Errorf("failed to fetch elections: %w", err)
			return
		}
		if err := s.electionRepo.ReplaceAll(ctx, elections); err != nil {
			errChan <- fmt.Errorf("failed to store elections: %w", err)
			return
		}
		summary.Elections = len(elections)
		s.logger.Info("elections refreshed", "run_id", summary.RunID, "count", len(elections))
	}()

	go func() {
		defer wg.Done()
		populations, err := s.populationFeed.FetchPopulations(ctx)
		if err != nil {
			errChan <- fmt.Errorf("failed to fetch populations: %w", err)
			return
		}
		if err := s.popRepo.ReplaceAll(ctx, populations); err != nil {
			errChan <- fmt.Errorf("failed to store populations: %w", err)
			return
		}
		summary.Populations = len(populations)
		s.logger.Info("populations refreshed", "run_id", summary.RunID, "count", len(populations))
	}()

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return nil, err
		}
	}

	return summary, nil
}

package ports

import (
	"context"

	"github.com/thecivicscenter/prereg/internal/core/domain"
)

type PopulationFeed interface {
	FetchPopulations(ctx context.Context) ([]domain.StatePopulation, error)
}

// RefreshSummary reports one snapshot refresh run.
type RefreshSummary struct {
	RunID       string `json:"runId"`
	Authorities int    `json:"authorities"`
	Elections   int    `json:"elections"`
	Populations int    `json:"populations"`
}

type RefreshService interface {
	RefreshAll(ctx context.Context) (*RefreshSummary, error)
}

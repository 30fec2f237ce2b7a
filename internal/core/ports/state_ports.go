package ports

import (
	"context"

	"github.com/thecivicscenter/prereg/internal/core/domain"
)

type StateRepository interface {
	GetAll(ctx context.Context) ([]domain.State, error)
	GetBySlug(ctx context.Context, slug string) (*domain.State, error)
}

type PopulationRepository interface {
	ReplaceAll(ctx context.Context, populations []domain.StatePopulation) error
	GetAll(ctx context.Context) ([]domain.StatePopulation, error)
	GetByFIPS(ctx context.Context, fips string) (*domain.StatePopulation, error)
}

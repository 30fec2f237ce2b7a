package ports

import (
	"context"

	"github.com/thecivicscenter/prereg/internal/core/domain"
)

type ElectionRepository interface {
	ReplaceAll(ctx context.Context, elections []domain.Election) error
	GetAll(ctx context.Context) ([]domain.Election, error)
}

type ElectionFeed interface {
	FetchElections(ctx context.Context) ([]domain.Election, error)
}

package ports

import (
	"context"

	"github.com/thecivicscenter/prereg/internal/core/domain"
)

type AuthorityRepository interface {
	ReplaceAll(ctx context.Context, authorities []domain.Authority) error
	GetAll(ctx context.Context) ([]domain.Authority, error)
	GetByStateCode(ctx context.Context, code string) (*domain.Authority, error)
}

// AuthorityFeed fetches the current authority records from the upstream
// elections API. The core receives already-typed records; paging and
// authentication live behind this port.
type AuthorityFeed interface {
	FetchAuthorities(ctx context.Context) ([]domain.Authority, error)
}

package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thecivicscenter/prereg/internal/core/domain"
	"github.com/thecivicscenter/prereg/internal/core/ports"
)

type stateRepository struct {
	db *sql.DB
}

func NewStateRepository(db *sql.DB) ports.StateRepository {
	return &stateRepository{
		db: db,
	}
}

// GetAll returns the state reference list in its seeded display order,
// which downstream table/map building preserves.
func (r *stateRepository) GetAll(ctx context.Context) ([]domain.State, error) {
	query := `
		SELECT code, name, fips, slug
		FROM states
		ORDER BY position
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get states: %w", err)
	}
	defer rows.Close()

	var states []domain.State
	for rows.Next() {
		var state domain.State
		if err := rows.Scan(&state.Code, &state.Name, &state.FIPS, &state.Slug); err != nil {
			return nil, fmt.Errorf("failed to scan state: %w", err)
		}
		states = append(states, state)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating states: %w", err)
	}
	return states, nil
}

func (r *stateRepository) GetBySlug(ctx context.Context, slug string) (*domain.State, error) {
	query := `
		SELECT code, name, fips, slug
		FROM states
		WHERE slug = $1
	`

	var state domain.State
	err := r.db.QueryRowContext(ctx, query, slug).Scan(&state.Code, &state.Name, &state.FIPS, &state.Slug)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrStateNotFound
		}
		return nil, fmt.Errorf("failed to get state: %w", err)
	}

	return &state, nil
}

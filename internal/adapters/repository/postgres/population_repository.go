package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thecivicscenter/prereg/internal/core/domain"
	"github.com/thecivicscenter/prereg/internal/core/ports"
)

type populationRepository struct {
	db *sql.DB
}

func NewPopulationRepository(db *sql.DB) ports.PopulationRepository {
	return &populationRepository{
		db: db,
	}
}

func (r *populationRepository) ReplaceAll(ctx context.Context, populations []domain.StatePopulation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM state_populations`); err != nil {
		return fmt.Errorf("failed to clear populations: %w", err)
	}

	query := `
		INSERT INTO state_populations (fips, code, pop18)
		VALUES ($1, $2, $3)
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare population statement: %w", err)
	}
	defer stmt.Close()

	for _, pop := range populations {
		if _, err := stmt.ExecContext(ctx, pop.FIPS, pop.Code, pop.Pop18); err != nil {
			return fmt.Errorf("failed to insert population: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *populationRepository) GetAll(ctx context.Context) ([]domain.StatePopulation, error) {
	query := `
		SELECT fips, code, pop18
		FROM state_populations
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get populations: %w", err)
	}
	defer rows.Close()

	var populations []domain.StatePopulation
	for rows.Next() {
		var pop domain.StatePopulation
		if err := rows.Scan(&pop.FIPS, &pop.Code, &pop.Pop18); err != nil {
			return nil, fmt.Errorf("failed to scan population: %w", err)
		}
		populations = append(populations, pop)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating populations: %w", err)
	}
	return populations, nil
}

// GetByFIPS returns nil without error when no population row exists; the
// figure is optional everywhere it is displayed.
func (r *populationRepository) GetByFIPS(ctx context.Context, fips string) (*domain.StatePopulation, error) {
	query := `
		SELECT fips, code, pop18
		FROM state_populations
		WHERE fips = $1
	`

	var pop domain.StatePopulation
	err := r.db.QueryRowContext(ctx, query, fips).Scan(&pop.FIPS, &pop.Code, &pop.Pop18)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get population: %w", err)
	}

	return &pop, nil
}

package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/thecivicscenter/prereg/internal/core/domain"
	"github.com/thecivicscenter/prereg/internal/core/ports"
)

type electionRepository struct {
	db *sql.DB
}

func NewElectionRepository(db *sql.DB) ports.ElectionRepository {
	return &electionRepository{
		db: db,
	}
}

func (r *electionRepository) ReplaceAll(ctx context.Context, elections []domain.Election) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM elections`); err != nil {
		return fmt.Errorf("failed to clear elections: %w", err)
	}

	query := `
		INSERT INTO elections (id, election_date, payload)
		VALUES ($1, $2, $3)
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare election statement: %w", err)
	}
	defer stmt.Close()

	for i := range elections {
		payload, err := json.Marshal(&elections[i])
		if err != nil {
			return fmt.Errorf("failed to marshal election: %w", err)
		}
		if _, err := stmt.ExecContext(ctx, uuid.New(), elections[i].Date, payload); err != nil {
			return fmt.Errorf("failed to insert election: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *electionRepository) GetAll(ctx context.Context) ([]domain.Election, error) {
	query := `
		SELECT payload
		FROM elections
		ORDER BY election_date, id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get elections: %w", err)
	}
	defer rows.Close()

	var elections []domain.Election
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan election: %w", err)
		}
		var election domain.Election
		if err := json.Unmarshal(payload, &election); err != nil {
			return nil, fmt.Errorf("failed to unmarshal election: %w", err)
		}
		elections = append(elections, election)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating elections: %w", err)
	}
	return elections, nil
}

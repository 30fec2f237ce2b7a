package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/thecivicscenter/prereg/internal/core/domain"
	"github.com/thecivicscenter/prereg/internal/core/ports"
)

type authorityRepository struct {
	db *sql.DB
}

func NewAuthorityRepository(db *sql.DB) ports.AuthorityRepository {
	return &authorityRepository{
		db: db,
	}
}

// ReplaceAll swaps the stored authority snapshot for a fresh one in a
// single transaction. The state code is derived from the OCD id at write
// time so reads can join on it directly.
func (r *authorityRepository) ReplaceAll(ctx context.Context, authorities []domain.Authority) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM authorities`); err != nil {
		return fmt.Errorf("failed to clear authorities: %w", err)
	}

	query := `
		INSERT INTO authorities (state_code, ocd_id, payload)
		VALUES ($1, $2, $3)
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare authority statement: %w", err)
	}
	defer stmt.Close()

	for i := range authorities {
		payload, err := json.Marshal(&authorities[i])
		if err != nil {
			return fmt.Errorf("failed to marshal authority: %w", err)
		}
		stateCode := domain.StateCodeFromOcdID(authorities[i].OcdID)
		if _, err := stmt.ExecContext(ctx, stateCode, authorities[i].OcdID, payload); err != nil {
			return fmt.Errorf("failed to insert authority: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *authorityRepository) GetAll(ctx context.Context) ([]domain.Authority, error) {
	query := `
		SELECT payload
		FROM authorities
		ORDER BY state_code
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get authorities: %w", err)
	}
	defer rows.Close()

	var authorities []domain.Authority
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan authority: %w", err)
		}
		var authority domain.Authority
		if err := json.Unmarshal(payload, &authority); err != nil {
			return nil, fmt.Errorf("failed to unmarshal authority: %w", err)
		}
		authorities = append(authorities, authority)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authorities: %w", err)
	}
	return authorities, nil
}

func (r *authorityRepository) GetByStateCode(ctx context.Context, code string) (*domain.Authority, error) {
	query := `
		SELECT payload
		FROM authorities
		WHERE state_code = $1
	`

	var payload []byte
	err := r.db.QueryRowContext(ctx, query, code).Scan(&payload)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrAuthorityNotFound
		}
		return nil, fmt.Errorf("failed to get authority: %w", err)
	}

	var authority domain.Authority
	if err := json.Unmarshal(payload, &authority); err != nil {
		return nil, fmt.Errorf("failed to unmarshal authority: %w", err)
	}

	return &authority, nil
}

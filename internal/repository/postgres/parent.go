package postgres

import (
	"context"
	"database/sql"
	"errors"

	"fieldtrip/internal/domain"
	"fieldtrip/internal/repository"
)

// ParentRepository is a PostgreSQL implementation of repository.ParentRepository.
type ParentRepository struct {
	q Querier
}

// NewParentRepository creates a new PostgreSQL parent repository.
func NewParentRepository(db *sql.DB) *ParentRepository {
	return &ParentRepository{q: db}
}

// GetOrCreate resolves a parent by (first name, last name, email),
// creating the row if absent. ON CONFLICT DO NOTHING plus a re-select
// keeps this correct when two submissions race on the same key.
func (r *ParentRepository) GetOrCreate(ctx context.Context, parent *domain.Parent) (*domain.Parent, error) {
	insert := `
		INSERT INTO parents (id, first_name, last_name, email)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (first_name, last_name, email) DO NOTHING
	`

	_, err := r.q.ExecContext(ctx, insert,
		parent.ID,
		parent.FirstName,
		parent.LastName,
		parent.Email,
	)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, first_name, last_name, email
		FROM parents
		WHERE first_name = $1 AND last_name = $2 AND email = $3
	`

	var existing domain.Parent
	err = r.q.QueryRowContext(ctx, query, parent.FirstName, parent.LastName, parent.Email).Scan(
		&existing.ID,
		&existing.FirstName,
		&existing.LastName,
		&existing.Email,
	)
	if err != nil {
		return nil, err
	}

	return &existing, nil
}

// GetByID retrieves a parent by ID.
func (r *ParentRepository) GetByID(ctx context.Context, id string) (*domain.Parent, error) {
	query := `SELECT id, first_name, last_name, email FROM parents WHERE id = $1`

	var parent domain.Parent
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&parent.ID,
		&parent.FirstName,
		&parent.LastName,
		&parent.Email,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &parent, nil
}

// Delete removes a parent. Blocked while a student references it.
func (r *ParentRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM parents WHERE id = $1`
	result, err := r.q.ExecContext(ctx, query, id)
	return mapDeleteError(result, err)
}

// Ensure ParentRepository implements repository.ParentRepository.
var _ repository.ParentRepository = (*ParentRepository)(nil)

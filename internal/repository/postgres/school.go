package postgres

import (
	"context"
	"database/sql"
	"errors"

	"fieldtrip/internal/domain"
	"fieldtrip/internal/repository"
)

// SchoolRepository is a PostgreSQL implementation of repository.SchoolRepository.
type SchoolRepository struct {
	q Querier
}

// NewSchoolRepository creates a new PostgreSQL school repository.
func NewSchoolRepository(db *sql.DB) *SchoolRepository {
	return &SchoolRepository{q: db}
}

// Create persists a new school.
func (r *SchoolRepository) Create(ctx context.Context, school *domain.School) error {
	query := `INSERT INTO schools (id, name) VALUES ($1, $2)`
	_, err := r.q.ExecContext(ctx, query, school.ID, school.Name)
	return err
}

// GetByID retrieves a school by ID.
func (r *SchoolRepository) GetByID(ctx context.Context, id string) (*domain.School, error) {
	query := `SELECT id, name FROM schools WHERE id = $1`

	var school domain.School
	err := r.q.QueryRowContext(ctx, query, id).Scan(&school.ID, &school.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &school, nil
}

// GetAll retrieves all schools.
func (r *SchoolRepository) GetAll(ctx context.Context) ([]*domain.School, error) {
	query := `SELECT id, name FROM schools ORDER BY name`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schools []*domain.School
	for rows.Next() {
		var school domain.School
		if err := rows.Scan(&school.ID, &school.Name); err != nil {
			return nil, err
		}
		schools = append(schools, &school)
	}
	return schools, rows.Err()
}

// Delete removes a school. Students cascade; the delete is blocked if
// any of those students has a recorded transaction.
func (r *SchoolRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM schools WHERE id = $1`
	result, err := r.q.ExecContext(ctx, query, id)
	return mapDeleteError(result, err)
}

// Ensure SchoolRepository implements repository.SchoolRepository.
var _ repository.SchoolRepository = (*SchoolRepository)(nil)

package postgres

import (
	"context"
	"database/sql"
	"errors"

	"fieldtrip/internal/domain"
	"fieldtrip/internal/repository"
)

// StudentRepository is a PostgreSQL implementation of repository.StudentRepository.
type StudentRepository struct {
	q Querier
}

// NewStudentRepository creates a new PostgreSQL student repository.
func NewStudentRepository(db *sql.DB) *StudentRepository {
	return &StudentRepository{q: db}
}

// GetOrCreate resolves a student by (first name, last name, parent,
// school), creating the row if absent.
func (r *StudentRepository) GetOrCreate(ctx context.Context, student *domain.Student) (*domain.Student, error) {
	insert := `
		INSERT INTO students (id, first_name, last_name, parent_id, school_id)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (first_name, last_name, parent_id, school_id) DO NOTHING
	`

	_, err := r.q.ExecContext(ctx, insert,
		student.ID,
		student.FirstName,
		student.LastName,
		student.ParentID,
		student.SchoolID,
	)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, first_name, last_name, parent_id, school_id
		FROM students
		WHERE first_name = $1 AND last_name = $2 AND parent_id = $3 AND school_id = $4
	`

	var existing domain.Student
	err = r.q.QueryRowContext(ctx, query,
		student.FirstName,
		student.LastName,
		student.ParentID,
		student.SchoolID,
	).Scan(
		&existing.ID,
		&existing.FirstName,
		&existing.LastName,
		&existing.ParentID,
		&existing.SchoolID,
	)
	if err != nil {
		return nil, err
	}

	return &existing, nil
}

// GetByID retrieves a student by ID.
func (r *StudentRepository) GetByID(ctx context.Context, id string) (*domain.Student, error) {
	query := `SELECT id, first_name, last_name, parent_id, school_id FROM students WHERE id = $1`

	var student domain.Student
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&student.ID,
		&student.FirstName,
		&student.LastName,
		&student.ParentID,
		&student.SchoolID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &student, nil
}

// Delete removes a student. Blocked while a transaction references it;
// registrations cascade.
func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM students WHERE id = $1`
	result, err := r.q.ExecContext(ctx, query, id)
	return mapDeleteError(result, err)
}

// Ensure StudentRepository implements repository.StudentRepository.
var _ repository.StudentRepository = (*StudentRepository)(nil)

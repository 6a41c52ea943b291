package postgres

import (
	"context"
	"database/sql"
	"errors"

	"fieldtrip/internal/domain"
	"fieldtrip/internal/repository"
)

// RegistrationRepository is a PostgreSQL implementation of repository.RegistrationRepository.
type RegistrationRepository struct {
	q Querier
}

// NewRegistrationRepository creates a new PostgreSQL registration repository.
func NewRegistrationRepository(db *sql.DB) *RegistrationRepository {
	return &RegistrationRepository{q: db}
}

// GetOrCreate resolves a registration by (student, field trip),
// creating the row if absent.
func (r *RegistrationRepository) GetOrCreate(ctx context.Context, reg *domain.Registration) (*domain.Registration, error) {
	insert := `
		INSERT INTO registrations (id, student_id, field_trip_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (student_id, field_trip_id) DO NOTHING
	`

	_, err := r.q.ExecContext(ctx, insert, reg.ID, reg.StudentID, reg.FieldTripID)
	if err != nil {
		return nil, err
	}

	return r.getByNaturalKey(ctx, reg.StudentID, reg.FieldTripID)
}

// GetByStudentAndTrip retrieves a registration by its natural key.
func (r *RegistrationRepository) GetByStudentAndTrip(ctx context.Context, studentID, fieldTripID string) (*domain.Registration, error) {
	reg, err := r.getByNaturalKey(ctx, studentID, fieldTripID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return reg, nil
}

func (r *RegistrationRepository) getByNaturalKey(ctx context.Context, studentID, fieldTripID string) (*domain.Registration, error) {
	query := `
		SELECT id, student_id, field_trip_id
		FROM registrations
		WHERE student_id = $1 AND field_trip_id = $2
	`

	var reg domain.Registration
	err := r.q.QueryRowContext(ctx, query, studentID, fieldTripID).Scan(
		&reg.ID,
		&reg.StudentID,
		&reg.FieldTripID,
	)
	if err != nil {
		return nil, err
	}

	return &reg, nil
}

// Ensure RegistrationRepository implements repository.RegistrationRepository.
var _ repository.RegistrationRepository = (*RegistrationRepository)(nil)

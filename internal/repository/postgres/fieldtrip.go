package postgres

import (
	"context"
	"database/sql"
	"errors"

	"fieldtrip/internal/domain"
	"fieldtrip/internal/repository"
)

// FieldTripRepository is a PostgreSQL implementation of repository.FieldTripRepository.
type FieldTripRepository struct {
	q Querier
}

// NewFieldTripRepository creates a new PostgreSQL field trip repository.
func NewFieldTripRepository(db *sql.DB) *FieldTripRepository {
	return &FieldTripRepository{q: db}
}

// Create persists a new field trip.
func (r *FieldTripRepository) Create(ctx context.Context, trip *domain.FieldTrip) error {
	query := `INSERT INTO field_trips (id, location, cost, date) VALUES ($1, $2, $3, $4)`
	_, err := r.q.ExecContext(ctx, query, trip.ID, trip.Location, trip.Cost, trip.Date)
	return err
}

// GetByID retrieves a field trip by ID.
func (r *FieldTripRepository) GetByID(ctx context.Context, id string) (*domain.FieldTrip, error) {
	query := `SELECT id, location, cost, date FROM field_trips WHERE id = $1`

	var trip domain.FieldTrip
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&trip.ID,
		&trip.Location,
		&trip.Cost,
		&trip.Date,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &trip, nil
}

// GetAll retrieves all field trips ordered by date.
func (r *FieldTripRepository) GetAll(ctx context.Context) ([]*domain.FieldTrip, error) {
	query := `SELECT id, location, cost, date FROM field_trips ORDER BY date`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trips []*domain.FieldTrip
	for rows.Next() {
		var trip domain.FieldTrip
		if err := rows.Scan(&trip.ID, &trip.Location, &trip.Cost, &trip.Date); err != nil {
			return nil, err
		}
		trips = append(trips, &trip)
	}
	return trips, rows.Err()
}

// Delete removes a field trip. Registrations cascade; blocked while a
// transaction references it.
func (r *FieldTripRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM field_trips WHERE id = $1`
	result, err := r.q.ExecContext(ctx, query, id)
	return mapDeleteError(result, err)
}

// Ensure FieldTripRepository implements repository.FieldTripRepository.
var _ repository.FieldTripRepository = (*FieldTripRepository)(nil)

package repository

import (
	"context"

	"fieldtrip/internal/domain"
)

// FieldTripRepository defines the persistence operations for field trips.
type FieldTripRepository interface {
	// Create persists a new field trip.
	Create(ctx context.Context, trip *domain.FieldTrip) error

	// GetByID retrieves a field trip by ID.
	GetByID(ctx context.Context, id string) (*domain.FieldTrip, error)

	// GetAll retrieves all field trips ordered by date.
	GetAll(ctx context.Context) ([]*domain.FieldTrip, error)

	// Delete removes a field trip. Registrations for the trip are
	// removed with it; fails with ErrProtected while a transaction
	// references it.
	Delete(ctx context.Context, id string) error
}

// RegistrationRepository defines the persistence operations for
// field-trip registrations.
type RegistrationRepository interface {
	// GetOrCreate resolves a registration by its natural key
	// (student, field trip), creating the row if absent. Safe under
	// concurrent duplicate submissions.
	GetOrCreate(ctx context.Context, reg *domain.Registration) (*domain.Registration, error)

	// GetByStudentAndTrip retrieves a registration by its natural key.
	GetByStudentAndTrip(ctx context.Context, studentID, fieldTripID string) (*domain.Registration, error)
}

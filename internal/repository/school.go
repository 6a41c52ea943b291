package repository

import (
	"context"

	"fieldtrip/internal/domain"
)

// SchoolRepository defines the persistence operations for schools.
type SchoolRepository interface {
	// Create persists a new school.
	Create(ctx context.Context, school *domain.School) error

	// GetByID retrieves a school by ID.
	GetByID(ctx context.Context, id string) (*domain.School, error)

	// GetAll retrieves all schools.
	GetAll(ctx context.Context) ([]*domain.School, error)

	// Delete removes a school. Students enrolled at the school are
	// removed with it; the delete fails with ErrProtected if any of
	// those students has a recorded transaction.
	Delete(ctx context.Context, id string) error
}

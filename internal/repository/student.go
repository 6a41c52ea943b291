package repository

import (
	"context"

	"fieldtrip/internal/domain"
)

// StudentRepository defines the persistence operations for students.
type StudentRepository interface {
	// GetOrCreate resolves a student by its natural key
	// (first name, last name, parent, school), creating the row if
	// absent. Safe under concurrent duplicate submissions.
	GetOrCreate(ctx context.Context, student *domain.Student) (*domain.Student, error)

	// GetByID retrieves a student by ID.
	GetByID(ctx context.Context, id string) (*domain.Student, error)

	// Delete removes a student. Fails with ErrProtected while a
	// transaction references it; registrations are removed with it.
	Delete(ctx context.Context, id string) error
}

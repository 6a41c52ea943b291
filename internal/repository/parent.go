package repository

import (
	"context"

	"fieldtrip/internal/domain"
)

// ParentRepository defines the persistence operations for parents.
type ParentRepository interface {
	// GetOrCreate resolves a parent by its natural key
	// (first name, last name, email), creating the row if absent.
	// The match is exact and case-sensitive. Safe under concurrent
	// duplicate submissions.
	GetOrCreate(ctx context.Context, parent *domain.Parent) (*domain.Parent, error)

	// GetByID retrieves a parent by ID.
	GetByID(ctx context.Context, id string) (*domain.Parent, error)

	// Delete removes a parent. Fails with ErrProtected while a student
	// references it.
	Delete(ctx context.Context, id string) error
}

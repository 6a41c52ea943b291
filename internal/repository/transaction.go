package repository

import (
	"context"

	"fieldtrip/internal/domain"
)

// TransactionRepository defines the persistence operations for
// payment transactions.
type TransactionRepository interface {
	// Create persists a new transaction. The ID is the gateway-issued
	// transaction id.
	Create(ctx context.Context, tx *domain.Transaction) error

	// GetByID retrieves a transaction by ID.
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)

	// GetByStudentID retrieves all transactions for a student, newest
	// first.
	GetByStudentID(ctx context.Context, studentID string) ([]*domain.Transaction, error)
}

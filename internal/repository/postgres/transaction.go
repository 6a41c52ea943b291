package postgres

import (
	"context"
	"database/sql"
	"errors"

	"fieldtrip/internal/domain"
	"fieldtrip/internal/repository"
)

// TransactionRepository is a PostgreSQL implementation of repository.TransactionRepository.
type TransactionRepository struct {
	q Querier
}

// NewTransactionRepository creates a new PostgreSQL transaction repository.
func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{q: db}
}

// Create persists a new transaction keyed by the gateway-issued id.
func (r *TransactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	query := `
		INSERT INTO transactions (id, date, amount, student_id, field_trip_id)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.q.ExecContext(ctx, query,
		tx.ID,
		tx.Date,
		tx.Amount,
		tx.StudentID,
		tx.FieldTripID,
	)

	return err
}

// GetByID retrieves a transaction by ID.
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	query := `
		SELECT id, date, amount, student_id, field_trip_id
		FROM transactions WHERE id = $1
	`

	var tx domain.Transaction
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&tx.ID,
		&tx.Date,
		&tx.Amount,
		&tx.StudentID,
		&tx.FieldTripID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &tx, nil
}

// GetByStudentID retrieves all transactions for a student, newest first.
func (r *TransactionRepository) GetByStudentID(ctx context.Context, studentID string) ([]*domain.Transaction, error) {
	query := `
		SELECT id, date, amount, student_id, field_trip_id
		FROM transactions WHERE student_id = $1 ORDER BY date DESC
	`

	rows, err := r.q.QueryContext(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []*domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		if err := rows.Scan(&tx.ID, &tx.Date, &tx.Amount, &tx.StudentID, &tx.FieldTripID); err != nil {
			return nil, err
		}
		txs = append(txs, &tx)
	}
	return txs, rows.Err()
}

// Ensure TransactionRepository implements repository.TransactionRepository.
var _ repository.TransactionRepository = (*TransactionRepository)(nil)

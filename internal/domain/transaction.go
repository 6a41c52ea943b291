package domain

import "time"

// Transaction records a successful payment for a field trip.
// The ID is the gateway-issued transaction id, not generated locally.
// Exactly one row is created per successful gateway call; failed calls
// create nothing. Deleting the student or trip is blocked while the
// transaction exists.
type Transaction struct {
	ID          string
	Date        time.Time
	Amount      float64
	StudentID   string
	FieldTripID string
}

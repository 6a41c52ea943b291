package domain

import "time"

// FieldTrip represents a paid field trip students can register for.
// Read-only in the payment workflow; the trip cost is the authoritative
// charge amount.
type FieldTrip struct {
	ID       string
	Location string
	Cost     float64
	Date     time.Time
}

// Registration links one student to one field trip. A duplicate
// (student, field trip) pair resolves to the existing row. Deleting
// either side removes the registration.
type Registration struct {
	ID          string
	StudentID   string
	FieldTripID string
}

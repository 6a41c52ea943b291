package domain

// School represents a school whose students can register for field trips.
// Schools are referenced by the payment workflow but never mutated by it.
type School struct {
	ID   string
	Name string
}

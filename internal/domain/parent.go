package domain

// Parent represents a paying parent or guardian.
// A parent is identified by the (first name, last name, email) triple:
// the workflow reuses an existing row on an exact match and never
// updates one once created.
type Parent struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
}

// FullName returns the parent's display name.
func (p *Parent) FullName() string {
	return p.FirstName + " " + p.LastName
}

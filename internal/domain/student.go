package domain

// Student represents a student enrolled at a school.
// Identified by (first name, last name, parent, school). Deleting the
// parent is blocked while the student exists; deleting the school
// cascades to its students.
type Student struct {
	ID        string
	FirstName string
	LastName  string
	ParentID  string
	SchoolID  string
}

// FullName returns the student's display name.
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

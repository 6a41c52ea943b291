package repository

import "errors"

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrProtected is returned when a delete is blocked by a dependent
	// record (referential protection).
	ErrProtected = errors.New("entity is referenced by dependent records")
)

package memory

import "errors"

var (
	// ErrDuplicateKey is returned when inserting an entity whose id is
	// already present. Should not surface as long as ids come from the
	// random generator.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrNotFound is returned when the requested id is absent.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidArgument is returned for out-of-range pagination
	// parameters.
	ErrInvalidArgument = errors.New("invalid argument")
)

package memory

import "errors"

var (
	ErrClientNotFound = errors.New("client not found")

	// ErrForeignKeyViolation mirrors the database rejecting a reference to
	// a missing branch or supervisor.
	ErrForeignKeyViolation = errors.New("foreign key violation")
)

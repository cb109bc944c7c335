package store

import "errors"

// Violation sentinels. Every rejected mutation wraps exactly one of these,
// so callers branch with errors.Is and still get a descriptive message.
var (
	// ErrUniquenessViolation is returned when a unique field or field tuple
	// is already present in the store.
	ErrUniquenessViolation = errors.New("uniqueness violation")

	// ErrReferenceViolation is returned when a foreign reference does not
	// resolve, or when a delete is blocked by a restrict policy.
	ErrReferenceViolation = errors.New("reference violation")

	// ErrConstraintViolation is returned when a field-level check fails,
	// such as a non-positive quantity or an inverted time range.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrNotFound is returned when the addressed record does not exist.
	ErrNotFound = errors.New("record not found")
)

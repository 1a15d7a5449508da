package domain

import "errors"

// Sentinel errors shared across services and adapters.
// Callers classify failures with errors.Is and map them to transport codes.
var (
	// ErrValidation marks malformed or missing caller input.
	ErrValidation = errors.New("validation error")

	// ErrNotFound marks an unresolved reference (destination, quote, ZIP).
	ErrNotFound = errors.New("not found")

	// ErrOutOfRange marks a date outside the permitted booking horizon.
	ErrOutOfRange = errors.New("out of range")

	// ErrTampering marks a client price breakdown that disagrees with the
	// server recomputation. Always fatal for the quote request.
	ErrTampering = errors.New("quote tampering detected")
)

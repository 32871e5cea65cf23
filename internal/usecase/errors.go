package usecase

import "errors"

// Page loaders return these wrapped with context. Only the primary entity of a
// page produces ErrNotFound; secondary sections degrade instead of failing.
var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDependencyUnavailable = errors.New("stats api unavailable")
)

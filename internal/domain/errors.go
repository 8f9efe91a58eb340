package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Profile / points errors
	ErrMsgProfileNotFound    = "profile not found"
	ErrMsgInvalidPointsDelta = "points to add must be a positive integer"
	ErrMsgPointsCapExceeded  = "points to add exceeds maximum allowed per call"

	// Catalog errors
	ErrMsgPartNotFound    = "part not found"
	ErrMsgScooterNotFound = "scooter not found"

	// Garage errors
	ErrMsgGarageItemNotFound   = "garage item not found"
	ErrMsgNotGarageOwner       = "garage item does not belong to user"
	ErrMsgModificationNotFound = "modification not found"
	ErrMsgNotesTooLong         = "notes exceed maximum length"
	ErrMsgOrderItemInstalled   = "order item already marked as installed"

	// Purchase errors
	ErrMsgOrderAlreadyCredited = "order already credited"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Profile / points errors
	ErrProfileNotFound    = errors.New(ErrMsgProfileNotFound)
	ErrInvalidPointsDelta = errors.New(ErrMsgInvalidPointsDelta)
	ErrPointsCapExceeded  = errors.New(ErrMsgPointsCapExceeded)

	// Catalog errors
	ErrPartNotFound    = errors.New(ErrMsgPartNotFound)
	ErrScooterNotFound = errors.New(ErrMsgScooterNotFound)

	// Garage errors
	ErrGarageItemNotFound   = errors.New(ErrMsgGarageItemNotFound)
	ErrNotGarageOwner       = errors.New(ErrMsgNotGarageOwner)
	ErrModificationNotFound = errors.New(ErrMsgModificationNotFound)
	ErrNotesTooLong         = errors.New(ErrMsgNotesTooLong)
	ErrOrderItemInstalled   = errors.New(ErrMsgOrderItemInstalled)

	// Purchase errors
	ErrOrderAlreadyCredited = errors.New(ErrMsgOrderAlreadyCredited)

	// Input errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)

// IsNotFound reports whether err is one of the not-found domain errors.
// Handlers use this to distinguish 404-class failures from validation errors.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrProfileNotFound) ||
		errors.Is(err, ErrPartNotFound) ||
		errors.Is(err, ErrScooterNotFound) ||
		errors.Is(err, ErrGarageItemNotFound) ||
		errors.Is(err, ErrModificationNotFound)
}

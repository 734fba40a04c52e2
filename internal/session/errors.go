package session

import "errors"

var (
	// ErrBusy is returned when an import is requested while a load or
	// another import is still outstanding.
	ErrBusy = errors.New("an operation is already in progress")

	// ErrInvalidTransition is returned when an event does not apply to the
	// controller's current state.
	ErrInvalidTransition = errors.New("invalid session transition")
)

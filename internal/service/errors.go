package service

import "errors"

var (
	// ErrNoDraft is returned when the store holds no snapshot.
	ErrNoDraft = errors.New("no stored draft")

	// ErrSaveFailure wraps any failure to persist the draft.
	ErrSaveFailure = errors.New("saving draft failed")

	// ErrUnsupportedFile is returned for uploads that are not JSON text.
	ErrUnsupportedFile = errors.New("unsupported file type")
)

package service

import "errors"

var (
	// ErrNotAuthenticated is returned by mutating operations when no user
	// session is active. Checked before any store I/O is attempted.
	ErrNotAuthenticated = errors.New("no active user session")

	// ErrNotFound is returned when an operation references an unknown entity.
	ErrNotFound = errors.New("not found")

	// ErrNothingToUndo is returned when the undo buffer holds no entry for
	// the requested task (never deleted, or the undo window has passed).
	ErrNothingToUndo = errors.New("nothing to undo")
)

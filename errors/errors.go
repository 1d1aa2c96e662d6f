// Package errors defines all exported error sentinels for the byteview library.
//
// This is the single source of truth for error values. Both the top-level
// byteview package and the xxhash64 package import from here, ensuring
// errors.Is checks work across package boundaries.
package errors

import "errors"

// View errors
var (
	// ErrOutOfBounds is the sentinel wrapped by every bounds-violation panic:
	// negative offsets, ranges exceeding a view's length, or mismatched
	// source/destination lengths in bulk transfers. The panic value is an
	// error, so recover + errors.Is(err, ErrOutOfBounds) works.
	ErrOutOfBounds = errors.New("byteview: index out of bounds")

	// ErrEmptyBacking is raised when constructing a view over zero backing
	// bytes. Use byteview.Empty instead; every non-empty view is guaranteed
	// a non-empty backing array.
	ErrEmptyBacking = errors.New("byteview: cannot create view over empty backing storage, use Empty")

	// ErrValueOutOfRange is raised when a widened byte argument falls
	// outside [0, 255].
	ErrValueOutOfRange = errors.New("byteview: byte value out of range")
)

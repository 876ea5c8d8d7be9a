// Package sawerr defines the sentinel error taxonomy surfaced by the saw
// storage engine. Callers should match on these with errors.Is; the engine
// always wraps the underlying cause with %w so the sentinel survives
// wrapping.
package sawerr

import "errors"

var (
	// ErrInvalidArgument marks a caller error: an empty parent directory,
	// an unknown column type tag, or a malformed metadata document.
	ErrInvalidArgument = errors.New("saw: invalid argument")

	// ErrIOError marks a filesystem or stream failure. The underlying cause
	// is wrapped alongside this sentinel.
	ErrIOError = errors.New("saw: io error")

	// ErrCorrupt marks a structurally unreadable file: a truncated stream,
	// invalid UTF-8, or a unique-count/row-count mismatch.
	ErrCorrupt = errors.New("saw: corrupt data")

	// ErrInterrupted marks cooperative cancellation surfaced to the driver.
	ErrInterrupted = errors.New("saw: interrupted")

	// ErrInternal marks an engine failure that is neither an I/O error nor
	// bad input; it is returned when the metadata document cannot be
	// marshaled. A panic inside a column task is not recovered into it.
	ErrInternal = errors.New("saw: internal error")
)

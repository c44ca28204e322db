package uuid7

import "errors"

var (
	// ErrInvalidFormat indicates that a textual value does not match the
	// canonical UUIDv7 layout. Call sites wrap it with the rejected value.
	ErrInvalidFormat = errors.New("uuid7: invalid UUIDv7 format")

	// ErrInvalidLength indicates that a byte representation has the wrong size
	ErrInvalidLength = errors.New("uuid7: invalid length (expected 16 bytes)")

	// ErrInvalidCount indicates a negative batch count. Call sites wrap it
	// with the rejected count.
	ErrInvalidCount = errors.New("uuid7: batch count must be non-negative")

	// ErrGeneration indicates that the underlying source produced no value
	// or a value that failed validation. A compliant source never triggers it.
	ErrGeneration = errors.New("uuid7: identifier generation failed")
)

package deck

import "errors"

var (
	// ErrInvalidInput means jump text did not parse as an integer.
	ErrInvalidInput = errors.New("invalid input")

	// ErrOutOfRange means a slide number fell outside [1, N].
	ErrOutOfRange = errors.New("out of range")

	ErrEmptyDeck = errors.New("deck has no slides")
)

package core

import "errors"

var (
	// ErrMalformedInput is returned when puzzle text cannot be interpreted:
	// a grid without any line terminator, or a token that is not a number.
	ErrMalformedInput = errors.New("malformed input")

	// ErrWalkerTrapped is returned when a walker is blocked in all four
	// directions and can make no further progress.
	ErrWalkerTrapped = errors.New("walker trapped")
)

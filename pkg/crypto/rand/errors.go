package rand

import "errors"

var (
	// ErrInvalidLength is returned when requested length is invalid
	ErrInvalidLength = errors.New("invalid length: must be positive")

	// ErrInvalidMax is returned when the sampling bound is zero
	ErrInvalidMax = errors.New("max must be positive")
)

package bigint

import "errors"

var (
	// ErrInvalidLength is returned when a requested limb count is not positive
	ErrInvalidLength = errors.New("limb count must be positive")

	// ErrValueTooLarge is returned when a value does not fit the requested width
	ErrValueTooLarge = errors.New("value does not fit in the requested number of limbs")

	// ErrInvalidHex is returned when a hex string cannot be parsed
	ErrInvalidHex = errors.New("invalid hex string")
)

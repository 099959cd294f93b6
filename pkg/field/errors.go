package field

import "errors"

var (
	// ErrEvenModulus is returned when the modulus is not odd
	ErrEvenModulus = errors.New("modulus must be odd")

	// ErrModulusTooSmall is returned when the modulus is below 3
	ErrModulusTooSmall = errors.New("modulus must be at least 3")

	// ErrWidthMismatch is returned when a value has a different limb
	// count than the modulus
	ErrWidthMismatch = errors.New("value width does not match modulus width")

	// ErrNonCanonical is returned when converting a residue that is not
	// fully reduced below the modulus
	ErrNonCanonical = errors.New("residue is not reduced below the modulus")
)

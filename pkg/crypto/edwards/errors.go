package edwards

import "errors"

var (
	// ErrInvalidCombWidth is returned when a comb width is outside [1, 16]
	ErrInvalidCombWidth = errors.New("comb width must be between 1 and 16")
)

package commitment

import "errors"

var (
	// ErrGeneratorOffCurve is returned when a generator does not satisfy
	// the curve equation.
	ErrGeneratorOffCurve = errors.New("generator is not on the curve")

	// ErrGeneratorIdentity is returned when a generator is the identity.
	ErrGeneratorIdentity = errors.New("generator cannot be the identity")

	// ErrGeneratorsEqual is returned when both generators are the same
	// point, which would break the binding property.
	ErrGeneratorsEqual = errors.New("generators must be distinct")

	// ErrNoGenerator is returned when no curve point exists at the
	// requested y coordinate.
	ErrNoGenerator = errors.New("no curve point at generator coordinate")
)

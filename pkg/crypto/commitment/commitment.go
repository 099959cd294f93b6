// Package commitment implements Pedersen commitments over a twisted
// Edwards curve: C = v*G + r*H for a pair of independent generators.
//
// Commitments are perfectly hiding and computationally binding, and
// additively homomorphic: Commit(a, r) + Commit(b, s) opens to (a+b, r+s).
package commitment

import (
	"github.com/Caqil/qhalo/pkg/bigint"
	"github.com/Caqil/qhalo/pkg/crypto/edwards"
	"github.com/Caqil/qhalo/pkg/crypto/rand"
	"github.com/Caqil/qhalo/pkg/field"
	"github.com/Caqil/qhalo/pkg/logger"
)

// Commitment is a Pedersen commitment, a point on the scheme's curve.
// The point is kept in extended projective form; use Scheme.Equal to
// compare commitments across different projective representatives.
type Commitment struct {
	P edwards.Point
}

// Scheme holds the curve and generator pair for Pedersen commitments.
// Both generators carry fixed-base comb tables, so Commit costs two
// accelerated scalar multiplications and one addition.
type Scheme struct {
	curve *edwards.Curve
	g     edwards.Point
	h     edwards.Point
	combG *edwards.Comb
	combH *edwards.Comb
	width int
}

// NewScheme creates a Pedersen scheme over c with generators g and h.
// The generators must be distinct points on the curve, neither the
// identity; combWidth sets the comb track count for both base points.
func NewScheme(c *edwards.Curve, g, h edwards.Point, combWidth int) (*Scheme, error) {
	if !c.OnCurve(g) || !c.OnCurve(h) {
		return nil, ErrGeneratorOffCurve
	}
	if c.IsIdentity(g) || c.IsIdentity(h) {
		return nil, ErrGeneratorIdentity
	}
	if c.PointsEqual(g, h) {
		return nil, ErrGeneratorsEqual
	}

	combG, err := edwards.NewComb(c, g, combWidth)
	if err != nil {
		return nil, err
	}
	combH, err := edwards.NewComb(c, h, combWidth)
	if err != nil {
		return nil, err
	}

	logger.DebugEvent().
		Int("comb_width", combWidth).
		Int("limbs", c.F.M.Limbs()).
		Msg("pedersen scheme initialized")

	return &Scheme{
		curve: c,
		g:     c.Normalize(g),
		h:     c.Normalize(h),
		combG: combG,
		combH: combH,
		width: c.F.M.Limbs(),
	}, nil
}

// Default creates the standard scheme: the a=6, d=4 twisted Edwards
// curve over Fp2 of the 434-bit prime, with generators at y=2 and y=3
// and an 8-track comb.
func Default() (*Scheme, error) {
	m, err := field.NewP434()
	if err != nil {
		return nil, err
	}
	f := field.NewQuad(m)
	c := edwards.New(f, f.NewE2(6, 0), f.NewE2(4, 0))

	g, ok := c.FromY(f.NewE2(2, 0))
	if !ok {
		return nil, ErrNoGenerator
	}
	h, ok := c.FromY(f.NewE2(3, 0))
	if !ok {
		return nil, ErrNoGenerator
	}
	return NewScheme(c, g, h, 8)
}

// Curve returns the underlying Edwards curve.
func (s *Scheme) Curve() *edwards.Curve { return s.curve }

// G returns the value generator.
func (s *Scheme) G() edwards.Point { return s.g }

// H returns the blinding generator.
func (s *Scheme) H() edwards.Point { return s.h }

// CommitScalars computes C = v*G + r*H for full-width scalars.
func (s *Scheme) CommitScalars(v, r bigint.Int) Commitment {
	vg := s.combG.Mul(v)
	rh := s.combH.Mul(r)
	return Commitment{P: s.curve.Add(vg, rh)}
}

// Commit computes C = v*G + r*H for single-word value and blinding.
func (s *Scheme) Commit(v, r uint64) Commitment {
	return s.CommitScalars(bigint.FromUint64(s.width, v), bigint.FromUint64(s.width, r))
}

// CommitRandom commits to v under a fresh random blinding factor and
// returns the commitment together with the blinding.
func (s *Scheme) CommitRandom(v bigint.Int) (Commitment, bigint.Int, error) {
	r, err := rand.Scalar(s.width)
	if err != nil {
		return Commitment{}, nil, err
	}
	return s.CommitScalars(v, r), r, nil
}

// Add combines two commitments homomorphically.
func (s *Scheme) Add(a, b Commitment) Commitment {
	return Commitment{P: s.curve.Add(a.P, b.P)}
}

// ScalarMul scales a commitment: k*Commit(v, r) opens to (k*v, k*r).
func (s *Scheme) ScalarMul(a Commitment, k bigint.Int) Commitment {
	return Commitment{P: s.curve.ScalarMul(a.P, k)}
}

// Open reports whether c is a commitment to value v under blinding r.
func (s *Scheme) Open(c Commitment, v, r bigint.Int) bool {
	expect := s.CommitScalars(v, r)
	return s.curve.PointsEqual(c.P, expect.P)
}

// Equal reports whether two commitments represent the same point.
func (s *Scheme) Equal(a, b Commitment) bool {
	return s.curve.PointsEqual(a.P, b.P)
}

// Normalize returns the commitment with Z scaled to one.
func (s *Scheme) Normalize(c Commitment) Commitment {
	return Commitment{P: s.curve.Normalize(c.P)}
}

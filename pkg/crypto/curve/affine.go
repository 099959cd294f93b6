package curve

import (
	"github.com/Caqil/qhalo/pkg/bigint"
	"github.com/Caqil/qhalo/pkg/field"
)

// FullPoint is a Weierstrass-style point (X:Y:Z) on the normalized
// curve y^2 = x^3 + A*x^2 + x, carrying the y-coordinate the x-only
// ladder discards. Z = 0 denotes the point at infinity, represented
// (0:1:0); finite points produced by this package are affine (Z = 1).
type FullPoint struct {
	X, Y, Z field.E2
}

// FullInfinity returns the point at infinity (0:1:0).
func (c *Curve) FullInfinity() FullPoint {
	return FullPoint{X: c.F.Zero(), Y: c.F.One(), Z: c.F.Zero()}
}

// IsFullInfinity reports whether p is the point at infinity.
func (c *Curve) IsFullInfinity(p FullPoint) bool {
	return c.F.IsZero(p.Z)
}

// NewFullPoint returns the affine point (x, y) with Z = 1. The
// coordinates are not checked against the curve equation.
func (c *Curve) NewFullPoint(x, y field.E2) FullPoint {
	return FullPoint{X: x, Y: y, Z: c.F.One()}
}

// OnCurve reports whether an affine point satisfies
// y^2 = x^3 + A*x^2 + x.
func (c *Curve) OnCurve(p FullPoint) bool {
	if c.IsFullInfinity(p) {
		return true
	}
	f := c.F
	lhs := f.Sqr(p.Y)
	x2 := f.Sqr(p.X)
	rhs := f.Add(f.Add(f.Mul(x2, p.X), f.Mul(c.A, x2)), p.X)
	return f.Equal(lhs, rhs)
}

// AddAffine adds two distinct affine points through the chord slope
// lambda = (y2-y1)/(x2-x1), at the cost of one field inversion.
// Equal x-coordinates (doubling or inverse points) are a precondition
// violation with an undefined result: callers must guarantee distinct
// x inputs and use DblAffine for doubling.
func (c *Curve) AddAffine(p, q FullPoint) FullPoint {
	if c.IsFullInfinity(p) {
		return q
	}
	if c.IsFullInfinity(q) {
		return p
	}
	f := c.F

	lambda := f.Mul(f.Sub(q.Y, p.Y), f.Inv(f.Sub(q.X, p.X)))

	x3 := f.Sub(f.Sub(f.Sub(f.Sqr(lambda), c.A), p.X), q.X)
	y3 := f.Sub(f.Mul(lambda, f.Sub(p.X, x3)), p.Y)
	return c.NewFullPoint(x3, y3)
}

// DblAffine doubles an affine point through the tangent slope
// lambda = (3x^2 + 2Ax + 1) / 2y. A point with y = 0 has order 2 and
// doubles to infinity; passing one is a precondition violation.
func (c *Curve) DblAffine(p FullPoint) FullPoint {
	if c.IsFullInfinity(p) {
		return p
	}
	f := c.F

	two := f.NewE2(2, 0)
	three := f.NewE2(3, 0)

	num := f.Mul(three, f.Sqr(p.X))
	num = f.Add(num, f.Mul(two, f.Mul(c.A, p.X)))
	num = f.Add(num, f.One())
	lambda := f.Mul(num, f.Inv(f.Mul(two, p.Y)))

	x3 := f.Sub(f.Sub(f.Sqr(lambda), c.A), f.Mul(two, p.X))
	y3 := f.Sub(f.Mul(lambda, f.Sub(p.X, x3)), p.Y)
	return c.NewFullPoint(x3, y3)
}

// ScalarMulAffine computes k*P by textbook MSB-first double-and-add
// over the affine formulas. Returns infinity for k = 0. P must not be
// the point at infinity when k > 0 hits the AddAffine distinct-x
// precondition; scalars k with k*P passing through P's inverse are the
// caller's responsibility, as with the reference formulas.
func (c *Curve) ScalarMulAffine(p FullPoint, k bigint.Int) FullPoint {
	msb := k.BitLen() - 1
	if msb < 0 {
		return c.FullInfinity()
	}

	r := p
	for i := msb - 1; i >= 0; i-- {
		r = c.DblAffine(r)
		if k.Bit(i) {
			r = c.AddAffine(r, p)
		}
	}
	return r
}

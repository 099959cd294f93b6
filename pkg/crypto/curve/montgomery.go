// Package curve implements x-only Montgomery curve arithmetic over
// Fp2: projective (X:Z) points, the differential-addition ladder, the
// j-invariant, and a full (X,Y,Z) point type with affine group law for
// the cases where the y-coordinate is needed.
//
// The projective curve model is C*y^2 = C*x^3 + A*x^2 + C*x with
// coefficients (A:C); the affine routines assume the normalized model
// C = 1. All coefficients must already be in the engine's Montgomery
// domain: the package performs no domain conversion of curve
// parameters.
package curve

import (
	"github.com/Caqil/qhalo/pkg/bigint"
	"github.com/Caqil/qhalo/pkg/field"
)

// Curve is a Montgomery curve with projective coefficient pair (A:C)
// over a quadratic extension field. The coefficients are fixed at
// construction and shared read-only by all point operations.
type Curve struct {
	F *field.Quad
	A field.E2
	C field.E2
}

// New returns a curve with coefficients (A:C) over f.
func New(f *field.Quad, a, c field.E2) *Curve {
	return &Curve{F: f, A: a, C: c}
}

// NewNormalized returns the curve with coefficient A and C = 1.
func NewNormalized(f *field.Quad, a field.E2) *Curve {
	return New(f, a, f.One())
}

// PointXZ is an x-only projective point: the equivalence class of
// (X:Z) under any nonzero scalar. Z = 0 denotes the point at infinity.
type PointXZ struct {
	X, Z field.E2
}

// Infinity returns the x-only point at infinity, represented (1:0).
func (c *Curve) Infinity() PointXZ {
	return PointXZ{X: c.F.One(), Z: c.F.Zero()}
}

// IsInfinity reports whether p is the point at infinity.
func (c *Curve) IsInfinity(p PointXZ) bool {
	return c.F.IsZero(p.Z)
}

// XZEqual reports whether two x-only points are the same projective
// class, by cross-multiplication.
func (c *Curve) XZEqual(p, q PointXZ) bool {
	f := c.F
	return f.Equal(f.Mul(p.X, q.Z), f.Mul(q.X, p.Z))
}

// XDbl doubles an x-only point.
//
// The sum/difference-of-squares identities compute a representative
// carrying an extra factor of 4 in Z relative to the textbook doubled
// point, so X picks up a matching *4 to stay in the same projective
// class. Dropping that correction corrupts every downstream
// cross-multiplication comparison.
func (c *Curve) XDbl(p PointXZ) PointXZ {
	f := c.F

	t0 := f.Sqr(f.Add(p.X, p.Z)) // (X+Z)^2
	t1 := f.Sqr(f.Sub(p.X, p.Z)) // (X-Z)^2
	t2 := f.Sub(t0, t1)          // 4XZ

	x2 := f.Mul(c.C, f.Mul(t0, t1))

	// Z2 = 4XZ * (2C*(t0+t1) + A*4XZ), which is 4 times the textbook
	// Z; compensate on X below.
	twoC := f.Double(c.C)
	z2 := f.Mul(t2, f.Add(f.Mul(twoC, f.Add(t0, t1)), f.Mul(c.A, t2)))

	x2 = f.Double(f.Double(x2))
	return PointXZ{X: x2, Z: z2}
}

// XAdd computes the differential addition P + Q given the difference
// point diff = P - Q. This is not a general two-point addition: the
// difference must be supplied, as in the Montgomery ladder.
func (c *Curve) XAdd(p, q, diff PointXZ) PointXZ {
	f := c.F

	t0 := f.Add(p.X, p.Z)
	t1 := f.Sub(p.X, p.Z)
	t2 := f.Add(q.X, q.Z)
	t3 := f.Sub(q.X, q.Z)

	t4 := f.Mul(t0, t3) // (XP+ZP)(XQ-ZQ)
	t5 := f.Mul(t1, t2) // (XP-ZP)(XQ+ZQ)

	sum := f.Sqr(f.Add(t4, t5))
	dif := f.Sqr(f.Sub(t4, t5))

	return PointXZ{
		X: f.Mul(diff.Z, sum),
		Z: f.Mul(diff.X, dif),
	}
}

// XMul computes the scalar multiple k*P with the Montgomery ladder.
// One differential addition and one doubling per scalar bit below the
// most significant set bit, maintaining (R0, R1) = (m*P, (m+1)*P).
// Returns the point at infinity for k = 0.
func (c *Curve) XMul(p PointXZ, k bigint.Int) PointXZ {
	msb := k.BitLen() - 1
	if msb < 0 {
		return c.Infinity()
	}

	r0 := p
	r1 := c.XDbl(p)

	for i := msb - 1; i >= 0; i-- {
		if k.Bit(i) {
			r0 = c.XAdd(r0, r1, p)
			r1 = c.XDbl(r1)
		} else {
			r1 = c.XAdd(r0, r1, p)
			r0 = c.XDbl(r0)
		}
	}
	return r0
}

// JInvariant computes j = 256*(A^2-3)^3 / (A^2-4) for the normalized
// coefficient A (the C = 1 model). Undefined when A^2 = 4 (a singular
// curve); the caller must not pass such a coefficient.
func JInvariant(f *field.Quad, a field.E2) field.E2 {
	a2 := f.Sqr(a)

	three := f.NewE2(3, 0)
	four := f.NewE2(4, 0)
	c256 := f.NewE2(256, 0)

	base := f.Sub(a2, three)
	num := f.Mul(f.Sqr(base), base)
	num = f.Mul(num, c256)

	den := f.Sub(a2, four)
	return f.Mul(num, f.Inv(den))
}

// TwoIsogenyCurve computes the codomain coefficient pair of the
// degree-2 isogeny with kernel point k of order 2:
//
//	A' = 2*(Z^2 - 2*X^2), C' = Z^2
//
// Higher-degree isogeny evaluation belongs to the isogeny layer and
// is not part of this engine.
func (c *Curve) TwoIsogenyCurve(k PointXZ) (field.E2, field.E2) {
	f := c.F
	x2 := f.Sqr(k.X)
	z2 := f.Sqr(k.Z)
	aOut := f.Double(f.Sub(z2, f.Double(x2)))
	return aOut, z2
}

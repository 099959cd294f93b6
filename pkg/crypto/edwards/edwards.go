// Package edwards implements Twisted Edwards curve arithmetic over
// Fp2 in extended projective coordinates: a point (X:Y:Z:T) with
// X*Y = T*Z represents the affine point (X/Z, Y/Z). The unified
// addition formula is complete: it is valid for every input pairing,
// including doubling and the identity, so commitment arithmetic needs
// no case analysis.
//
// Curve coefficients must already be in the engine's Montgomery
// domain. The group law branches on scalar bits; nothing here is
// hardened against timing side channels.
package edwards

import (
	"github.com/Caqil/qhalo/pkg/bigint"
	"github.com/Caqil/qhalo/pkg/field"
)

// Curve is a Twisted Edwards curve a*x^2 + y^2 = 1 + d*x^2*y^2 with
// coefficients fixed at construction and shared read-only.
type Curve struct {
	F *field.Quad
	A field.E2
	D field.E2
}

// New returns the curve with Edwards coefficients a and d over f.
func New(f *field.Quad, a, d field.E2) *Curve {
	return &Curve{F: f, A: a, D: d}
}

// FromMontgomery builds the Edwards curve birationally equivalent to
// the Montgomery curve B*y^2 = x^3 + A*x^2 + x, with a = (A+2)/B and
// d = (A-2)/B.
func FromMontgomery(f *field.Quad, bigA, bigB field.E2) *Curve {
	two := f.NewE2(2, 0)
	bInv := f.Inv(bigB)
	return New(f, f.Mul(f.Add(bigA, two), bInv), f.Mul(f.Sub(bigA, two), bInv))
}

// Point is an extended projective point. The zero value is not a
// valid point; use Identity or FromAffine.
type Point struct {
	X, Y, Z, T field.E2
}

// Identity returns the neutral element (0:1:1:0).
func (c *Curve) Identity() Point {
	return Point{X: c.F.Zero(), Y: c.F.One(), Z: c.F.One(), T: c.F.Zero()}
}

// FromAffine lifts an affine point (x, y) to extended coordinates
// with Z = 1 and T = x*y.
func (c *Curve) FromAffine(x, y field.E2) Point {
	return Point{X: x, Y: y, Z: c.F.One(), T: c.F.Mul(x, y)}
}

// Affine returns the affine coordinates (X/Z, Y/Z) at the cost of one
// field inversion. Undefined for Z = 0.
func (c *Curve) Affine(p Point) (field.E2, field.E2) {
	zi := c.F.Inv(p.Z)
	return c.F.Mul(p.X, zi), c.F.Mul(p.Y, zi)
}

// IsIdentity reports whether p is the neutral element.
func (c *Curve) IsIdentity(p Point) bool {
	return c.F.IsZero(p.X) && !c.F.IsZero(p.Y) &&
		c.F.Equal(p.Y, p.Z)
}

// OnCurve reports whether p satisfies both the curve equation and the
// extended-coordinate invariant X*Y = T*Z, after clearing projective
// denominators: a*X^2*Z^2 + Y^2*Z^2 = Z^4 + d*X^2*Y^2.
func (c *Curve) OnCurve(p Point) bool {
	f := c.F
	x2 := f.Sqr(p.X)
	y2 := f.Sqr(p.Y)
	z2 := f.Sqr(p.Z)
	lhs := f.Mul(f.Add(f.Mul(c.A, x2), y2), z2)
	rhs := f.Add(f.Sqr(z2), f.Mul(c.D, f.Mul(x2, y2)))
	if !f.Equal(lhs, rhs) {
		return false
	}
	return f.Equal(f.Mul(p.X, p.Y), f.Mul(p.T, p.Z))
}

// Add computes P + Q with the unified extended-coordinate formula
// (Hisil et al., "Twisted Edwards Curves Revisited", 3.1). It is
// complete: correct for P = Q, for the identity, and for inverse
// pairs, with no branching.
func (c *Curve) Add(p, q Point) Point {
	f := c.F

	a := f.Mul(p.X, q.X)            // A = X1*X2
	b := f.Mul(p.Y, q.Y)            // B = Y1*Y2
	cc := f.Mul(c.D, f.Mul(p.T, q.T)) // C = d*T1*T2
	dd := f.Mul(p.Z, q.Z)           // D = Z1*Z2

	e := f.Mul(f.Add(p.X, p.Y), f.Add(q.X, q.Y))
	e = f.Sub(f.Sub(e, a), b) // E = (X1+Y1)(X2+Y2) - A - B

	ff := f.Sub(dd, cc)          // F = D - C
	g := f.Add(dd, cc)           // G = D + C
	h := f.Sub(b, f.Mul(c.A, a)) // H = B - a*A

	return Point{
		X: f.Mul(e, ff),
		Y: f.Mul(g, h),
		Z: f.Mul(ff, g),
		T: f.Mul(e, h),
	}
}

// Double computes 2P with the dedicated doubling formula (Hisil et
// al., 3.2), trading multiplications for squarings. Algebraically
// equal to Add(P, P).
func (c *Curve) Double(p Point) Point {
	f := c.F

	a := f.Sqr(p.X)           // A = X1^2
	b := f.Sqr(p.Y)           // B = Y1^2
	cc := f.Double(f.Sqr(p.Z)) // C = 2*Z1^2
	d := f.Mul(c.A, a)        // D = a*A

	e := f.Sqr(f.Add(p.X, p.Y))
	e = f.Sub(f.Sub(e, a), b) // E = (X1+Y1)^2 - A - B

	g := f.Add(d, b)  // G = D + B
	ff := f.Sub(g, cc) // F = G - C
	h := f.Sub(d, b)  // H = D - B

	return Point{
		X: f.Mul(e, ff),
		Y: f.Mul(g, h),
		Z: f.Mul(ff, g),
		T: f.Mul(e, h),
	}
}

// ScalarMul computes k*P by least-significant-bit-first double-and-add:
// one Double per bit, one Add when the bit is set. Branches on k.
func (c *Curve) ScalarMul(p Point, k bigint.Int) Point {
	if k.IsZero() {
		return c.Identity()
	}

	r := c.Identity()
	q := p
	top := k.BitLen()
	for i := 0; i < top; i++ {
		if k.Bit(i) {
			r = c.Add(r, q)
		}
		q = c.Double(q)
	}
	return r
}

// ScalarMul64 is ScalarMul specialized to a machine-word scalar.
func (c *Curve) ScalarMul64(p Point, k uint64) Point {
	if k == 0 {
		return c.Identity()
	}
	if k == 1 {
		return p
	}

	r := c.Identity()
	q := p
	for ; k > 0; k >>= 1 {
		if k&1 == 1 {
			r = c.Add(r, q)
		}
		q = c.Double(q)
	}
	return r
}

// Normalize rescales p to the canonical Z = 1 representative with a
// single field inversion. A point with Z = 0 is returned unchanged;
// callers must detect that case separately.
func (c *Curve) Normalize(p Point) Point {
	if c.F.IsZero(p.Z) {
		return p
	}
	x, y := c.Affine(p)
	return c.FromAffine(x, y)
}

// PointsEqual reports whether P and Q are the same projective point,
// by cross-multiplication: X1*Z2 = X2*Z1 and Y1*Z2 = Y2*Z1. No
// inversion is performed.
func (c *Curve) PointsEqual(p, q Point) bool {
	f := c.F
	return f.Equal(f.Mul(p.X, q.Z), f.Mul(q.X, p.Z)) &&
		f.Equal(f.Mul(p.Y, q.Z), f.Mul(q.Y, p.Z))
}

// FromY finds a point with the given y-coordinate by solving
// x^2 = (1 - y^2) / (a - d*y^2). ok is false when no such point
// exists; the returned x is the square root chosen by the field's
// Sqrt, with -x giving the conjugate point.
func (c *Curve) FromY(y field.E2) (Point, bool) {
	f := c.F
	y2 := f.Sqr(y)
	num := f.Sub(f.One(), y2)
	den := f.Sub(c.A, f.Mul(c.D, y2))
	x, ok := f.Sqrt(f.Mul(num, f.Inv(den)))
	if !ok {
		return c.Identity(), false
	}
	return c.FromAffine(x, y), true
}

// Neg returns -P = (-X : Y : Z : -T).
func (c *Curve) Neg(p Point) Point {
	return Point{X: c.F.Neg(p.X), Y: p.Y, Z: p.Z, T: c.F.Neg(p.T)}
}

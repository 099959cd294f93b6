package field

import "fmt"

// E2 is an element of the quadratic extension Fp[i]/(i^2+1),
// representing C0 + C1*i. Both coordinates are Montgomery-domain
// elements of the same base field.
type E2 struct {
	C0, C1 Element
}

// Quad provides arithmetic over Fp[i]/(i^2+1) for a base field in
// which -1 is a quadratic non-residue (p = 3 mod 4), so that i^2 = -1
// really is a proper extension and the norm c0^2 + c1^2 only vanishes
// at zero.
type Quad struct {
	M *Modulus
}

// NewQuad returns the quadratic extension over m.
func NewQuad(m *Modulus) *Quad {
	return &Quad{M: m}
}

// Zero returns 0 + 0i.
func (q *Quad) Zero() E2 {
	return E2{q.M.Zero(), q.M.Zero()}
}

// One returns 1 + 0i.
func (q *Quad) One() E2 {
	return E2{q.M.One(), q.M.Zero()}
}

// FromElement lifts a base-field element into the extension.
func (q *Quad) FromElement(c0 Element) E2 {
	return E2{c0, q.M.Zero()}
}

// NewE2 converts a pair of small integers into the extension.
func (q *Quad) NewE2(c0, c1 uint64) E2 {
	return E2{q.M.NewElement(c0), q.M.NewElement(c1)}
}

// Add computes a + b coordinate-wise.
func (q *Quad) Add(a, b E2) E2 {
	return E2{q.M.Add(a.C0, b.C0), q.M.Add(a.C1, b.C1)}
}

// Sub computes a - b coordinate-wise.
func (q *Quad) Sub(a, b E2) E2 {
	return E2{q.M.Sub(a.C0, b.C0), q.M.Sub(a.C1, b.C1)}
}

// Neg computes -a.
func (q *Quad) Neg(a E2) E2 {
	return E2{q.M.Neg(a.C0), q.M.Neg(a.C1)}
}

// Double computes 2a.
func (q *Quad) Double(a E2) E2 {
	return E2{q.M.Double(a.C0), q.M.Double(a.C1)}
}

// Conjugate computes c0 - c1*i.
func (q *Quad) Conjugate(a E2) E2 {
	return E2{a.C0, q.M.Neg(a.C1)}
}

// Mul computes a * b with the Karatsuba three-multiplication schedule:
//
//	t0 = a0*b0, t1 = a1*b1, t2 = (a0+a1)*(b0+b1)
//	result = (t0 - t1) + (t2 - t0 - t1)*i
func (q *Quad) Mul(a, b E2) E2 {
	m := q.M
	t0 := m.Mul(a.C0, b.C0)
	t1 := m.Mul(a.C1, b.C1)
	t2 := m.Mul(m.Add(a.C0, a.C1), m.Add(b.C0, b.C1))

	re := m.Sub(t0, t1)
	im := m.Sub(m.Sub(t2, t0), t1)
	return E2{re, im}
}

// Sqr computes a^2 with two base-field multiplications:
// (a0+a1)(a0-a1) + (2*a0*a1)*i.
func (q *Quad) Sqr(a E2) E2 {
	m := q.M
	re := m.Mul(m.Add(a.C0, a.C1), m.Sub(a.C0, a.C1))
	im := m.Double(m.Mul(a.C0, a.C1))
	return E2{re, im}
}

// MulByElement scales both coordinates by a base-field element.
func (q *Quad) MulByElement(a E2, k Element) E2 {
	return E2{q.M.Mul(a.C0, k), q.M.Mul(a.C1, k)}
}

// Inv computes a^-1 as conj(a) / (a0^2 + a1^2). The result for a = 0
// is undefined; with p = 3 (mod 4) the norm of any nonzero element is
// nonzero.
func (q *Quad) Inv(a E2) E2 {
	m := q.M
	norm := m.Add(m.Sqr(a.C0), m.Sqr(a.C1))
	ni := m.Inv(norm)
	return E2{m.Mul(a.C0, ni), m.Mul(m.Neg(a.C1), ni)}
}

// Equal reports whether a and b are the same extension element.
func (q *Quad) Equal(a, b E2) bool {
	return q.M.Equal(a.C0, b.C0) && q.M.Equal(a.C1, b.C1)
}

// IsZero reports whether a is the additive identity.
func (q *Quad) IsZero(a E2) bool {
	return q.M.IsZero(a.C0) && q.M.IsZero(a.C1)
}

// Sqrt computes a square root of u. ok is false when u has no root;
// the result is always verified by re-squaring before being returned.
//
// For purely real u the root is either real (u0 a residue) or purely
// imaginary (i * sqrt(-u0)). Otherwise the complex square-root
// identity applies: with g = sqrt(u0^2 + u1^2), a root x + y*i
// satisfies x^2 = (u0 +/- g)/2 and y = u1 / (2x).
func (q *Quad) Sqrt(u E2) (E2, bool) {
	m := q.M

	if m.IsZero(u.C1) {
		if r, ok := m.Sqrt(u.C0); ok {
			return E2{r, m.Zero()}, true
		}
		if r, ok := m.Sqrt(m.Neg(u.C0)); ok {
			return E2{m.Zero(), r}, true
		}
		return q.Zero(), false
	}

	norm := m.Add(m.Sqr(u.C0), m.Sqr(u.C1))
	g, ok := m.Sqrt(norm)
	if !ok {
		return q.Zero(), false
	}

	inv2 := m.Inv(m.NewElement(2))
	delta := m.Mul(m.Add(u.C0, g), inv2)
	x, ok := m.Sqrt(delta)
	if !ok {
		delta = m.Mul(m.Sub(u.C0, g), inv2)
		x, ok = m.Sqrt(delta)
		if !ok {
			return q.Zero(), false
		}
	}

	y := m.Mul(u.C1, m.Inv(m.Double(x)))
	r := E2{x, y}
	if !q.Equal(q.Sqr(r), u) {
		return q.Zero(), false
	}
	return r, true
}

// String renders both coordinates' raw Montgomery limbs for debugging.
func (a E2) String() string {
	return fmt.Sprintf("(%s + %s*i)", a.C0, a.C1)
}

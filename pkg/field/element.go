package field

import "github.com/Caqil/qhalo/pkg/bigint"

// Element is a field element in the Montgomery domain: the stored
// limbs encode a*R mod p for the logical value a. Elements are opaque
// so that plain integer residues (bigint.Int) cannot be mixed in
// without an explicit ToMont conversion. An Element is only meaningful
// together with the Modulus that produced it.
type Element struct {
	v bigint.Int
}

// ToMont converts a canonical integer residue in [0, p) into the
// Montgomery domain. Values that are the wrong width or not reduced
// are rejected.
func (m *Modulus) ToMont(x bigint.Int) (Element, error) {
	if x.Width() != m.n {
		return Element{}, ErrWidthMismatch
	}
	if bigint.Cmp(x, m.p) >= 0 {
		return Element{}, ErrNonCanonical
	}
	return Element{m.montMul(x, m.r2)}, nil
}

// FromMont converts a Montgomery-domain element back to its canonical
// integer residue in [0, p).
func (m *Modulus) FromMont(a Element) bigint.Int {
	return m.montMul(m.limbs(a), bigint.FromUint64(m.n, 1))
}

// limbs returns the raw limb vector of a, substituting zero for the
// zero-value Element so that `var e Element` behaves as 0.
func (m *Modulus) limbs(a Element) bigint.Int {
	if a.v == nil {
		return bigint.New(m.n)
	}
	return a.v
}

// Zero returns the additive identity.
func (m *Modulus) Zero() Element { return Element{bigint.New(m.n)} }

// One returns the multiplicative identity (1 in Montgomery form).
func (m *Modulus) One() Element { return Element{m.one.v.Clone()} }

// NewElement converts a small integer into the Montgomery domain.
func (m *Modulus) NewElement(v uint64) Element {
	if m.n == 1 && v >= m.p[0] {
		v %= m.p[0]
	}
	e, _ := m.ToMont(bigint.FromUint64(m.n, v))
	return e
}

// Add computes a + b mod p.
func (m *Modulus) Add(a, b Element) Element {
	r, carry := bigint.Add(m.limbs(a), m.limbs(b))
	if carry == 1 || bigint.Cmp(r, m.p) >= 0 {
		r, _ = bigint.Sub(r, m.p)
	}
	return Element{r}
}

// Sub computes a - b mod p.
func (m *Modulus) Sub(a, b Element) Element {
	r, borrow := bigint.Sub(m.limbs(a), m.limbs(b))
	if borrow == 1 {
		r, _ = bigint.Add(r, m.p)
	}
	return Element{r}
}

// Neg computes -a mod p.
func (m *Modulus) Neg(a Element) Element {
	return m.Sub(m.Zero(), a)
}

// Double computes 2a mod p.
func (m *Modulus) Double(a Element) Element {
	return m.Add(a, a)
}

// Mul computes a * b mod p via CIOS Montgomery multiplication. Both
// inputs must be reduced below p.
func (m *Modulus) Mul(a, b Element) Element {
	return Element{m.montMul(m.limbs(a), m.limbs(b))}
}

// Sqr computes a^2 mod p.
func (m *Modulus) Sqr(a Element) Element {
	return m.Mul(a, a)
}

// Pow computes base^exp mod p by square-and-multiply, scanning the
// exponent bits from least to most significant.
func (m *Modulus) Pow(base Element, exp bigint.Int) Element {
	res := m.One()
	b := base
	for i := 0; i < exp.Width()*64; i++ {
		if exp.Bit(i) {
			res = m.Mul(res, b)
		}
		b = m.Sqr(b)
	}
	return res
}

// Inv computes a^-1 mod p as a^(p-2). The result for a = 0 is
// undefined; callers must never invert the additive identity.
func (m *Modulus) Inv(a Element) Element {
	return m.Pow(a, m.pMinus2)
}

// Sqrt computes a square root of a as a^((p+1)/4), valid for primes
// p = 3 (mod 4). The candidate is verified by re-squaring: ok is false
// when a is not a quadratic residue (or when the prime does not
// support this exponent), and the returned element is then zero. When
// ok is true the other root is the negation of the returned one.
func (m *Modulus) Sqrt(a Element) (Element, bool) {
	if !m.sqrt3m4 {
		return m.Zero(), false
	}
	r := m.Pow(a, m.sqrtExp)
	if !m.Equal(m.Sqr(r), a) {
		return m.Zero(), false
	}
	return r, true
}

// Equal reports whether a and b are the same residue.
func (m *Modulus) Equal(a, b Element) bool {
	return bigint.Cmp(m.limbs(a), m.limbs(b)) == 0
}

// IsZero reports whether a is the additive identity.
func (m *Modulus) IsZero(a Element) bool {
	return a.v == nil || a.v.IsZero()
}

// Hex renders the raw Montgomery-domain limbs of a. This is the
// debugging surface: deterministic, but NOT the canonical residue.
// Use FromMont for the integer value.
func (a Element) Hex() string {
	if a.v == nil {
		return "0x0"
	}
	return a.v.Hex()
}

// String implements fmt.Stringer via Hex.
func (a Element) String() string { return a.Hex() }

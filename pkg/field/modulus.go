// Package field implements Montgomery-form modular arithmetic over an
// odd prime, together with the quadratic extension Fp[i]/(i^2+1).
//
// The two residue representations are kept apart at the type level:
// plain integer residues travel as bigint.Int, Montgomery-domain
// values as the opaque Element type. ToMont and FromMont are the only
// bridges between the two, so a plain residue can never silently reach
// a Montgomery-domain operation.
package field

import (
	"github.com/Caqil/qhalo/internal/limb"
	"github.com/Caqil/qhalo/pkg/bigint"
)

// Modulus bundles every per-prime constant the arithmetic needs: the
// prime p, the word-level Montgomery constant mu = -p^-1 mod 2^64,
// R^2 mod p for domain conversion, and the precomputed exponents for
// inversion and square roots. A Modulus is built once at startup and
// then shared read-only; all arithmetic is expressed as methods on it.
type Modulus struct {
	n  int        // limb count
	p  bigint.Int // the odd prime
	mu uint64     // -p^-1 mod 2^64
	r2 bigint.Int // R^2 mod p, R = 2^(64n)

	pMinus2 bigint.Int // exponent for Fermat inversion
	sqrtExp bigint.Int // (p+1)/4, valid when p = 3 (mod 4)
	sqrt3m4 bool       // p = 3 (mod 4): Sqrt is available

	one Element // 1 in the Montgomery domain
}

// NewModulus constructs the constant bundle for an odd prime p. The
// limb count is taken from the width of p. Primality is not checked;
// supplying a composite modulus yields a ring in which inversion and
// square roots silently misbehave.
func NewModulus(p bigint.Int) (*Modulus, error) {
	n := p.Width()
	if p[0]&1 == 0 {
		return nil, ErrEvenModulus
	}
	if bigint.Cmp(p, bigint.FromUint64(n, 3)) < 0 {
		return nil, ErrModulusTooSmall
	}

	m := &Modulus{
		n:       n,
		p:       p.Clone(),
		mu:      negInvWord(p[0]),
		sqrt3m4: p[0]&3 == 3,
	}

	// R^2 mod p by 2*64n doublings of 1, reducing as we go. Cheap
	// one-time setup that avoids any wide division.
	r2 := bigint.FromUint64(n, 1)
	for i := 0; i < 2*64*n; i++ {
		var carry uint64
		r2, carry = bigint.Add(r2, r2)
		if carry == 1 || bigint.Cmp(r2, m.p) >= 0 {
			r2, _ = bigint.Sub(r2, m.p)
		}
	}
	m.r2 = r2

	m.pMinus2, _ = bigint.Sub(m.p, bigint.FromUint64(n, 2))

	// For p = 3 (mod 4), (p+1)/4 = (p >> 2) + 1 with no carry out.
	if m.sqrt3m4 {
		m.sqrtExp, _ = bigint.Add(m.p.Rsh2(), bigint.FromUint64(n, 1))
	}

	m.one = Element{m.montMul(bigint.FromUint64(n, 1), m.r2)}
	return m, nil
}

// negInvWord computes -p^-1 mod 2^64 for odd p by Newton iteration;
// each step doubles the number of correct low bits.
func negInvWord(p0 uint64) uint64 {
	x := p0 // correct to 3 bits for odd p0
	for i := 0; i < 5; i++ {
		x *= 2 - p0*x
	}
	return -x
}

// Limbs returns the limb count of the modulus.
func (m *Modulus) Limbs() int { return m.n }

// Bits returns the storage width in bits (64 * limb count).
func (m *Modulus) Bits() int { return m.n * 64 }

// P returns a copy of the prime.
func (m *Modulus) P() bigint.Int { return m.p.Clone() }

// SqrtAvailable reports whether the prime supports the a^((p+1)/4)
// square root, i.e. p = 3 (mod 4).
func (m *Modulus) SqrtAvailable() bool { return m.sqrt3m4 }

// montMul is the CIOS core: the full 2n-limb product of a and b
// followed by n Montgomery reduction rounds, producing a*b*R^-1 mod p.
// Requires a, b < p; the single trailing conditional subtraction is
// then sufficient.
func (m *Modulus) montMul(a, b bigint.Int) bigint.Int {
	n := m.n
	t := make([]uint64, 2*n)

	for i := 0; i < n; i++ {
		var carry uint64
		for j := 0; j < n; j++ {
			hi, lo := limb.MulAddCarry(a[i], b[j], t[i+j], carry)
			t[i+j] = lo
			carry = hi
		}
		t[i+n] = carry
	}

	var ovf uint64 // carry out of the top accumulator limb
	for i := 0; i < n; i++ {
		// q annihilates limb i of the accumulator: t[i] + q*p = 0 mod 2^64.
		q := t[i] * m.mu
		var carry uint64
		for j := 0; j < n; j++ {
			hi, lo := limb.MulAddCarry(q, m.p[j], t[i+j], carry)
			t[i+j] = lo
			carry = hi
		}
		var c uint64
		t[i+n], c = limb.Add(t[i+n], carry, 0)
		for k := i + n + 1; c != 0 && k < 2*n; k++ {
			t[k], c = limb.Add(t[k], 0, c)
		}
		ovf += c
	}

	r := make(bigint.Int, n)
	copy(r, t[n:])
	if ovf != 0 || bigint.Cmp(r, m.p) >= 0 {
		r, _ = bigint.Sub(r, m.p)
	}
	return r
}

// Package bigint provides fixed-width multi-precision unsigned integers
// built from 64-bit limbs. Values are little-endian limb vectors: the
// integer is the sum of limbs[i] * 2^(64*i). Widths are fixed at
// construction and never change; operands of a binary operation must
// share the same width. There is no implicit reduction against any
// modulus; intermediate values may exceed a field's modulus, and
// reduction is the caller's responsibility.
package bigint

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/Caqil/qhalo/internal/limb"
)

// Int is a fixed-width unsigned integer, stored as little-endian
// 64-bit limbs. Ints are value types: operations return fresh limb
// vectors and never alias or mutate their operands.
type Int []uint64

// New returns a zero value n limbs wide.
func New(n int) Int {
	if n <= 0 {
		panic(ErrInvalidLength)
	}
	return make(Int, n)
}

// FromUint64 returns an n-limb value holding v.
func FromUint64(n int, v uint64) Int {
	r := New(n)
	r[0] = v
	return r
}

// FromBig converts a non-negative big.Int into an n-limb value.
func FromBig(n int, v *big.Int) (Int, error) {
	if n <= 0 {
		return nil, ErrInvalidLength
	}
	if v.Sign() < 0 || v.BitLen() > n*64 {
		return nil, ErrValueTooLarge
	}
	r := New(n)
	buf := v.Bytes()
	for i := 0; i < len(buf); i++ {
		b := buf[len(buf)-1-i]
		r[i/8] |= uint64(b) << (8 * (i % 8))
	}
	return r, nil
}

// FromHex parses a big-endian hex string (optional 0x prefix) into an
// n-limb value.
func FromHex(n int, s string) (Int, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, ErrInvalidHex
	}
	return FromBig(n, v)
}

// Clone returns a copy of a.
func (a Int) Clone() Int {
	r := make(Int, len(a))
	copy(r, a)
	return r
}

// Width returns the limb count of a.
func (a Int) Width() int { return len(a) }

// checkLen panics when two operands have different widths. Mixing
// widths is a wiring bug in the caller, not a runtime condition.
func checkLen(a, b Int) {
	if len(a) != len(b) {
		panic(fmt.Sprintf("bigint: operand width mismatch: %d vs %d limbs", len(a), len(b)))
	}
}

// Add computes a + b over the shared width, returning the sum and the
// outgoing carry (0 or 1).
func Add(a, b Int) (Int, uint64) {
	checkLen(a, b)
	r := make(Int, len(a))
	var carry uint64
	for i := range a {
		r[i], carry = limb.Add(a[i], b[i], carry)
	}
	return r, carry
}

// Sub computes a - b over the shared width, returning the difference
// and the outgoing borrow (0 or 1).
func Sub(a, b Int) (Int, uint64) {
	checkLen(a, b)
	r := make(Int, len(a))
	var borrow uint64
	for i := range a {
		r[i], borrow = limb.Sub(a[i], b[i], borrow)
	}
	return r, borrow
}

// Cmp compares a and b, returning -1, 0 or 1. Most significant limb
// decides first.
func Cmp(a, b Int) int {
	checkLen(a, b)
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] > b[i] {
			return 1
		}
		if a[i] < b[i] {
			return -1
		}
	}
	return 0
}

// Bit reports whether bit i of the value is set. Bits at or beyond the
// width are zero.
func (a Int) Bit(i int) bool {
	if i < 0 || i >= len(a)*64 {
		return false
	}
	return (a[i/64]>>(i%64))&1 == 1
}

// IsZero reports whether every limb is zero.
func (a Int) IsZero() bool {
	var acc uint64
	for _, w := range a {
		acc |= w
	}
	return acc == 0
}

// BitLen returns the position of the highest set bit plus one, or 0
// for the zero value.
func (a Int) BitLen() int {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != 0 {
			n := 0
			for w := a[i]; w != 0; w >>= 1 {
				n++
			}
			return i*64 + n
		}
	}
	return 0
}

// Rsh2 returns a >> 2. Used when deriving the (p+1)/4 square-root
// exponent from an odd prime.
func (a Int) Rsh2() Int {
	r := make(Int, len(a))
	for i := 0; i < len(a); i++ {
		r[i] = a[i] >> 2
		if i+1 < len(a) {
			r[i] |= a[i+1] << 62
		}
	}
	return r
}

// Big converts a to a math/big integer. Intended for interop with
// reference computations and debugging, not for hot paths.
func (a Int) Big() *big.Int {
	r := new(big.Int)
	for i := len(a) - 1; i >= 0; i-- {
		r.Lsh(r, 64)
		r.Or(r, new(big.Int).SetUint64(a[i]))
	}
	return r
}

// Hex renders a as a fixed-width big-endian hex string with 0x prefix.
// The rendering is deterministic: every limb contributes exactly 16
// digits.
func (a Int) Hex() string {
	var sb strings.Builder
	sb.WriteString("0x")
	for i := len(a) - 1; i >= 0; i-- {
		fmt.Fprintf(&sb, "%016x", a[i])
	}
	return sb.String()
}

// String implements fmt.Stringer via Hex.
func (a Int) String() string { return a.Hex() }

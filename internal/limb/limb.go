// Package limb provides the 64-bit word primitives underlying all
// multi-precision arithmetic in this module: addition with carry,
// subtraction with borrow, and 64x64->128-bit multiply-accumulate.
package limb

import "math/bits"

// Add computes x + y + carry. carry must be 0 or 1; carryOut is 0 or 1.
func Add(x, y, carry uint64) (sum, carryOut uint64) {
	return bits.Add64(x, y, carry)
}

// Sub computes x - y - borrow. borrow must be 0 or 1; borrowOut is 0 or 1.
func Sub(x, y, borrow uint64) (diff, borrowOut uint64) {
	return bits.Sub64(x, y, borrow)
}

// MulAdd computes the 128-bit quantity a*b + c.
// The result cannot overflow: (2^64-1)^2 + (2^64-1) < 2^128.
func MulAdd(a, b, c uint64) (hi, lo uint64) {
	hi, lo = bits.Mul64(a, b)
	var carry uint64
	lo, carry = bits.Add64(lo, c, 0)
	hi += carry
	return hi, lo
}

// MulAddCarry computes the 128-bit quantity a*b + c + carry.
// As with MulAdd the result fits in 128 bits for all inputs.
func MulAddCarry(a, b, c, carry uint64) (hi, lo uint64) {
	hi, lo = bits.Mul64(a, b)
	var cc uint64
	lo, cc = bits.Add64(lo, c, 0)
	hi += cc
	lo, cc = bits.Add64(lo, carry, 0)
	hi += cc
	return hi, lo
}

package field

import "github.com/Caqil/qhalo/pkg/bigint"

// P434Limbs is the 434-bit prime 2^216 * 3^137 - 1 used by the proof
// protocol, as little-endian limbs. Seven limbs (448 bits) of storage.
var P434Limbs = bigint.Int{
	0xFFFFFFFFFFFFFFFF,
	0xFFFFFFFFFFFFFFFF,
	0xFFFFFFFFFFFFFFFF,
	0xFDC1767AE2FFFFFF,
	0x7BC65C783158AEA3,
	0x6CFC5FD681C52056,
	0x0002341F27177344,
}

// NewP434 constructs the modulus descriptor for the protocol prime.
// p = 3 (mod 4), so square roots are available.
func NewP434() (*Modulus, error) {
	return NewModulus(P434Limbs.Clone())
}

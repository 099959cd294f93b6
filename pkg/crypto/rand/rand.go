// Package rand provides cryptographically secure random number generation
// for the arithmetic engine: raw bytes, fixed-width limb vectors, and
// uniform field elements.
package rand

import (
	"crypto/rand"
	"encoding/binary"
	"io"

	"github.com/Caqil/qhalo/pkg/bigint"
	"github.com/Caqil/qhalo/pkg/field"
)

// Reader is the default cryptographically secure random number generator
var Reader io.Reader = rand.Reader

// Bytes generates n cryptographically secure random bytes
func Bytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, ErrInvalidLength
	}

	buf := make([]byte, n)
	if _, err := io.ReadFull(Reader, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// Scalar generates a uniform random limb vector of the given width,
// i.e. an integer in [0, 2^(64*width)).
func Scalar(width int) (bigint.Int, error) {
	if width <= 0 {
		return nil, ErrInvalidLength
	}

	buf, err := Bytes(width * 8)
	if err != nil {
		return nil, err
	}
	k := bigint.New(width)
	for i := range k {
		k[i] = binary.LittleEndian.Uint64(buf[i*8:])
	}
	return k, nil
}

// ScalarBelow generates a uniform integer in [0, max) by rejection
// sampling over max's bit length.
func ScalarBelow(max bigint.Int) (bigint.Int, error) {
	bits := max.BitLen()
	if bits == 0 {
		return nil, ErrInvalidMax
	}

	// Mask the top limb down to max's bit length so most draws land.
	topBits := ((bits - 1) % 64) + 1
	mask := ^uint64(0) >> (64 - uint(topBits))
	topLimb := (bits - 1) / 64

	for {
		k, err := Scalar(max.Width())
		if err != nil {
			return nil, err
		}
		for i := topLimb + 1; i < len(k); i++ {
			k[i] = 0
		}
		k[topLimb] &= mask
		if bigint.Cmp(k, max) < 0 {
			return k, nil
		}
	}
}

// FieldElement generates a uniform Montgomery-domain element of the
// field described by m.
func FieldElement(m *field.Modulus) (field.Element, error) {
	r, err := ScalarBelow(m.P())
	if err != nil {
		return field.Element{}, err
	}
	return m.ToMont(r)
}

// E2 generates a uniform element of the quadratic extension over q.
func E2(q *field.Quad) (field.E2, error) {
	c0, err := FieldElement(q.M)
	if err != nil {
		return field.E2{}, err
	}
	c1, err := FieldElement(q.M)
	if err != nil {
		return field.E2{}, err
	}
	return field.E2{C0: c0, C1: c1}, nil
}

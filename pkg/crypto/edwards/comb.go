package edwards

import (
	"github.com/Caqil/qhalo/pkg/bigint"
	"github.com/Caqil/qhalo/pkg/logger"
)

// Comb accelerates repeated scalar multiplication by one fixed base
// point. Construction splits the scalar bit range into w tracks spaced
// d = ceil(bits/w) doublings apart, precomputes the w basis points
// 2^(j*d)*base, and tabulates all 2^w subset sums. A multiplication
// then costs d doublings plus at most d additions, against one eager
// O(2^w) table build. The finished table is immutable and safe to
// share between goroutines.
type Comb struct {
	curve   *Curve
	width   int
	spacing int
	table   []Point
}

// NewComb builds the comb table for base with the given width. Width
// must lie in [1, 16]; table construction performs 2^width point
// additions.
func NewComb(c *Curve, base Point, width int) (*Comb, error) {
	if width < 1 || width > 16 {
		return nil, ErrInvalidCombWidth
	}

	bits := c.F.M.Bits()
	spacing := (bits + width - 1) / width

	// basis[j] = 2^(j*spacing) * base
	basis := make([]Point, width)
	basis[0] = base
	for j := 1; j < width; j++ {
		p := basis[j-1]
		for i := 0; i < spacing; i++ {
			p = c.Double(p)
		}
		basis[j] = p
	}

	// table[s] = sum of basis[j] over the set bits j of s
	table := make([]Point, 1<<width)
	table[0] = c.Identity()
	for s := 1; s < len(table); s++ {
		low := s & (-s) // lowest set bit of s
		j := 0
		for 1<<j != low {
			j++
		}
		table[s] = c.Add(table[s^low], basis[j])
	}

	logger.DebugEvent().
		Int("width", width).
		Int("spacing", spacing).
		Int("table_size", len(table)).
		Msg("fixed-base comb table built")

	return &Comb{curve: c, width: width, spacing: spacing, table: table}, nil
}

// Width returns the comb width w.
func (cb *Comb) Width() int { return cb.width }

// Mul computes k*base, identically to curve.ScalarMul(base, k) for
// every scalar up to the field's bit width. Scalar bits at or beyond
// width*spacing (>= the field width) are ignored.
func (cb *Comb) Mul(k bigint.Int) Point {
	c := cb.curve
	acc := c.Identity()

	for i := cb.spacing - 1; i >= 0; i-- {
		acc = c.Double(acc)
		col := 0
		for j := 0; j < cb.width; j++ {
			if k.Bit(j*cb.spacing + i) {
				col |= 1 << j
			}
		}
		if col != 0 {
			acc = c.Add(acc, cb.table[col])
		}
	}
	return acc
}

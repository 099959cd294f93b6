package edwards

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Caqil/qhalo/pkg/bigint"
)

func TestCombWidthValidation(t *testing.T) {
	c, g := commitCurve(t)

	for _, w := range []int{0, -1, 17} {
		_, err := NewComb(c, g, w)
		require.ErrorIs(t, err, ErrInvalidCombWidth, "width %d", w)
	}
	cb, err := NewComb(c, g, 2)
	require.NoError(t, err)
	require.Equal(t, 2, cb.Width())
}

func TestCombMatchesScalarMul(t *testing.T) {
	c, g := commitCurve(t)

	for _, w := range []int{1, 4, 8} {
		cb, err := NewComb(c, g, w)
		require.NoError(t, err)

		// Edge scalars.
		require.True(t, c.IsIdentity(cb.Mul(bigint.New(7))), "w=%d: 0*G", w)
		require.True(t, c.PointsEqual(cb.Mul(bigint.FromUint64(7, 1)), g), "w=%d: 1*G", w)
		require.True(t, c.PointsEqual(cb.Mul(bigint.FromUint64(7, 2)), c.Double(g)), "w=%d: 2*G", w)

		// Random full-width scalars.
		for i := 0; i < 3; i++ {
			k := randomScalar(t, 7)
			require.True(t, c.PointsEqual(cb.Mul(k), c.ScalarMul(g, k)),
				"w=%d: comb disagrees with double-and-add for k=%s", w, k)
		}
	}
}

func TestCombTableIsSharedSafely(t *testing.T) {
	c, g := commitCurve(t)
	cb, err := NewComb(c, g, 4)
	require.NoError(t, err)

	// Concurrent multiplications against the same immutable table.
	k1 := randomScalar(t, 7)
	k2 := randomScalar(t, 7)
	done := make(chan Point, 2)
	go func() { done <- cb.Mul(k1) }()
	go func() { done <- cb.Mul(k2) }()
	a, b := <-done, <-done

	want1 := c.ScalarMul(g, k1)
	want2 := c.ScalarMul(g, k2)
	ok := (c.PointsEqual(a, want1) && c.PointsEqual(b, want2)) ||
		(c.PointsEqual(a, want2) && c.PointsEqual(b, want1))
	require.True(t, ok, "concurrent comb multiplications corrupted results")
}

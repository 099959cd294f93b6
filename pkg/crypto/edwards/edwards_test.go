package edwards

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Caqil/qhalo/pkg/bigint"
	"github.com/Caqil/qhalo/pkg/field"
)

// commitCurve returns the commitment curve a=6, d=4 over Fp2 for the
// protocol prime, with the generator at y=2.
func commitCurve(t *testing.T) (*Curve, Point) {
	t.Helper()
	m, err := field.NewP434()
	require.NoError(t, err)
	f := field.NewQuad(m)

	c := New(f, f.NewE2(6, 0), f.NewE2(4, 0))
	g, ok := c.FromY(f.NewE2(2, 0))
	require.True(t, ok, "no point at y=2")
	require.True(t, c.OnCurve(g))
	return c, g
}

func randomScalar(t *testing.T, width int) bigint.Int {
	t.Helper()
	buf := make([]byte, width*8)
	_, err := rand.Read(buf)
	require.NoError(t, err)
	k := bigint.New(width)
	for i := range k {
		for j := 0; j < 8; j++ {
			k[i] |= uint64(buf[i*8+j]) << (8 * j)
		}
	}
	return k
}

func TestIdentityIsNeutral(t *testing.T) {
	c, g := commitCurve(t)
	id := c.Identity()

	require.True(t, c.OnCurve(id))
	require.True(t, c.PointsEqual(c.Add(g, id), g), "P + O != P")
	require.True(t, c.PointsEqual(c.Add(id, g), g), "O + P != P")
	require.True(t, c.IsIdentity(c.Add(id, id)))
}

func TestAddCommutes(t *testing.T) {
	c, g := commitCurve(t)
	p := c.ScalarMul64(g, 5)
	q := c.ScalarMul64(g, 11)
	require.True(t, c.PointsEqual(c.Add(p, q), c.Add(q, p)))
}

func TestAddAssociates(t *testing.T) {
	c, g := commitCurve(t)
	p := c.ScalarMul64(g, 3)
	q := c.ScalarMul64(g, 7)
	r := c.ScalarMul64(g, 13)

	lhs := c.Add(c.Add(p, q), r)
	rhs := c.Add(p, c.Add(q, r))
	require.True(t, c.PointsEqual(lhs, rhs))
}

func TestUnifiedAddHandlesDoubling(t *testing.T) {
	c, g := commitCurve(t)
	p := g
	for i := 0; i < 10; i++ {
		viaAdd := c.Add(p, p)
		viaDouble := c.Double(p)
		require.True(t, c.PointsEqual(viaAdd, viaDouble),
			"Add(P,P) != Double(P) at step %d", i)
		require.True(t, c.OnCurve(viaDouble))
		p = viaDouble
	}
}

func TestNegation(t *testing.T) {
	c, g := commitCurve(t)
	require.True(t, c.IsIdentity(c.Add(g, c.Neg(g))), "P + (-P) != O")
}

func TestScalarMulEdgeCases(t *testing.T) {
	c, g := commitCurve(t)

	require.True(t, c.IsIdentity(c.ScalarMul(g, bigint.New(7))), "0*P")
	require.True(t, c.PointsEqual(c.ScalarMul(g, bigint.FromUint64(7, 1)), g), "1*P")
	require.True(t, c.PointsEqual(c.ScalarMul(g, bigint.FromUint64(7, 2)), c.Double(g)), "2*P")
}

func TestScalarMul64MatchesWide(t *testing.T) {
	c, g := commitCurve(t)
	for _, k := range []uint64{0, 1, 2, 3, 254, 255, 256, 0xfedcba9876543210} {
		wide := c.ScalarMul(g, bigint.FromUint64(7, k))
		narrow := c.ScalarMul64(g, k)
		if k == 0 {
			require.True(t, c.IsIdentity(narrow))
			continue
		}
		require.True(t, c.PointsEqual(wide, narrow), "mismatch for k=%d", k)
	}
}

func TestScalarMulDistributes(t *testing.T) {
	c, g := commitCurve(t)
	for i := 0; i < 5; i++ {
		a := randomScalar(t, 1)[0] >> 1
		b := randomScalar(t, 1)[0] >> 1

		sum := c.ScalarMul64(g, a+b)
		split := c.Add(c.ScalarMul64(g, a), c.ScalarMul64(g, b))
		require.True(t, c.PointsEqual(sum, split), "(a+b)G != aG + bG")
	}
}

func TestNormalize(t *testing.T) {
	c, g := commitCurve(t)
	p := c.ScalarMul64(g, 1234567)

	n := c.Normalize(p)
	require.True(t, c.F.Equal(n.Z, c.F.One()), "normalized Z must be 1")
	require.True(t, c.PointsEqual(p, n))
	require.True(t, c.F.Equal(n.T, c.F.Mul(n.X, n.Y)), "T must be X*Y after normalization")

	// Z = 0 is returned unchanged, not an error.
	degenerate := Point{X: c.F.Zero(), Y: c.F.One(), Z: c.F.Zero(), T: c.F.Zero()}
	same := c.Normalize(degenerate)
	require.True(t, c.F.IsZero(same.Z))
}

func TestPointsEqualAcrossScales(t *testing.T) {
	c, g := commitCurve(t)
	p := c.ScalarMul64(g, 42)

	// Scale all coordinates by a common factor; same projective point.
	lambda := c.F.NewE2(9, 3)
	scaled := Point{
		X: c.F.Mul(p.X, lambda),
		Y: c.F.Mul(p.Y, lambda),
		Z: c.F.Mul(p.Z, lambda),
		T: c.F.Mul(p.T, lambda),
	}
	require.True(t, c.PointsEqual(p, scaled))
	require.False(t, c.PointsEqual(p, c.Double(p)))
}

func TestFromMontgomeryCoefficients(t *testing.T) {
	m, err := field.NewP434()
	require.NoError(t, err)
	f := field.NewQuad(m)

	// A = 6, B = 1 maps to a = 8, d = 4.
	c := FromMontgomery(f, f.NewE2(6, 0), f.One())
	require.True(t, f.Equal(c.A, f.NewE2(8, 0)))
	require.True(t, f.Equal(c.D, f.NewE2(4, 0)))
}

func TestFromYAtIdentityCoordinate(t *testing.T) {
	c, _ := commitCurve(t)
	// y = 1 forces x = 0: the identity, which FromY does find.
	p, ok := c.FromY(c.F.One())
	require.True(t, ok)
	require.True(t, c.F.IsZero(p.X))
}

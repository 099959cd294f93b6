package field

import (
	"math/big"
	"testing"
)

// TestP434ClosedForm pins the limb vector to the closed form of the
// protocol prime, 2^216 * 3^137 - 1, so a corrupted constant cannot
// hide behind the derived-constant checks.
func TestP434ClosedForm(t *testing.T) {
	want := new(big.Int).Lsh(big.NewInt(1), 216)
	want.Mul(want, new(big.Int).Exp(big.NewInt(3), big.NewInt(137), nil))
	want.Sub(want, big.NewInt(1))

	if P434Limbs.Big().Cmp(want) != 0 {
		t.Fatalf("P434Limbs = %s\nwant 2^216 * 3^137 - 1 = %s",
			P434Limbs.Big().Text(16), want.Text(16))
	}
	if want.BitLen() != 434 {
		t.Errorf("p434 bit length = %d, want 434", want.BitLen())
	}
	if !want.ProbablyPrime(64) {
		t.Error("p434 failed the primality test")
	}
}

// The whole field stack depends on inversion working over the
// production prime, not just the toy field.
func TestP434Inversion(t *testing.T) {
	m := newP434(t)

	two := m.NewElement(2)
	inv := m.Inv(two)
	if !m.Equal(m.Mul(two, inv), m.One()) {
		t.Error("2 * inv(2) != 1 over p434")
	}
}

func TestP434Sqrt(t *testing.T) {
	m := newP434(t)

	hundred := m.NewElement(100)
	root, ok := m.Sqrt(hundred)
	if !ok {
		t.Fatal("100 reported as a non-residue over p434")
	}
	if !m.Equal(m.Sqr(root), hundred) {
		t.Error("sqrt(100)^2 != 100 over p434")
	}
}

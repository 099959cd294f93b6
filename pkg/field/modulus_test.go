package field

import (
	"math/big"
	"testing"

	"github.com/Caqil/qhalo/pkg/bigint"
)

// newToyModulus builds the one-limb field F_19 used by the concrete
// scenario tests. 19 = 3 (mod 4).
func newToyModulus(t *testing.T) *Modulus {
	t.Helper()
	m, err := NewModulus(bigint.FromUint64(1, 19))
	if err != nil {
		t.Fatalf("NewModulus(19): %v", err)
	}
	return m
}

func newP434(t *testing.T) *Modulus {
	t.Helper()
	m, err := NewP434()
	if err != nil {
		t.Fatalf("NewP434: %v", err)
	}
	return m
}

func TestNewModulusRejectsBadPrimes(t *testing.T) {
	if _, err := NewModulus(bigint.FromUint64(1, 18)); err != ErrEvenModulus {
		t.Errorf("even modulus: got %v, want ErrEvenModulus", err)
	}
	if _, err := NewModulus(bigint.FromUint64(1, 1)); err != ErrModulusTooSmall {
		t.Errorf("modulus 1: got %v, want ErrModulusTooSmall", err)
	}
}

func TestModulusConstants(t *testing.T) {
	m := newP434(t)

	if m.Limbs() != 7 || m.Bits() != 448 {
		t.Fatalf("unexpected width: %d limbs, %d bits", m.Limbs(), m.Bits())
	}
	if !m.SqrtAvailable() {
		t.Fatal("p434 = 3 (mod 4), Sqrt must be available")
	}

	p := m.P().Big()

	// mu * p = -1 mod 2^64
	word := new(big.Int).Lsh(big.NewInt(1), 64)
	muP := new(big.Int).Mul(new(big.Int).SetUint64(m.mu), new(big.Int).SetUint64(m.p[0]))
	muP.Mod(muP, word)
	if muP.Cmp(new(big.Int).Sub(word, big.NewInt(1))) != 0 {
		t.Errorf("mu*p mod 2^64 = %s, want 2^64-1", muP.Text(16))
	}

	// R^2 mod p
	r2 := new(big.Int).Lsh(big.NewInt(1), uint(2*m.Bits()))
	r2.Mod(r2, p)
	if m.r2.Big().Cmp(r2) != 0 {
		t.Errorf("R2 = %s, want %s", m.r2.Big().Text(16), r2.Text(16))
	}

	// (p+1)/4
	sq := new(big.Int).Add(p, big.NewInt(1))
	sq.Rsh(sq, 2)
	if m.sqrtExp.Big().Cmp(sq) != 0 {
		t.Errorf("sqrt exponent mismatch")
	}
}

func TestToMontRejectsNonCanonical(t *testing.T) {
	m := newToyModulus(t)
	if _, err := m.ToMont(bigint.FromUint64(1, 19)); err != ErrNonCanonical {
		t.Errorf("ToMont(p): got %v, want ErrNonCanonical", err)
	}
	if _, err := m.ToMont(bigint.FromUint64(2, 3)); err != ErrWidthMismatch {
		t.Errorf("ToMont(wrong width): got %v, want ErrWidthMismatch", err)
	}
}

func TestDomainRoundTrip(t *testing.T) {
	m := newP434(t)
	for _, v := range []uint64{0, 1, 2, 0xdeadbeef, ^uint64(0)} {
		x := bigint.FromUint64(7, v)
		e, err := m.ToMont(x)
		if err != nil {
			t.Fatalf("ToMont(%d): %v", v, err)
		}
		back := m.FromMont(e)
		if bigint.Cmp(x, back) != 0 {
			t.Errorf("round trip of %d: got %s", v, back)
		}
	}
}

// Concrete scenarios over F_19.
func TestToyFieldScenarios(t *testing.T) {
	m := newToyModulus(t)

	one := m.One()
	if got := m.FromMont(m.Mul(one, one)); got[0] != 1 {
		t.Errorf("1*1 = %d, want 1", got[0])
	}

	two := m.NewElement(2)
	three := m.NewElement(3)
	if got := m.FromMont(m.Mul(two, three)); got[0] != 6 {
		t.Errorf("2*3 = %d, want 6", got[0])
	}

	four := m.NewElement(4)
	r, ok := m.Sqrt(four)
	if !ok {
		t.Fatal("4 is a quadratic residue mod 19")
	}
	got := m.FromMont(r)[0]
	if got != 2 && got != 17 {
		t.Errorf("sqrt(4) = %d, want 2 or 17", got)
	}

	// 2 is a non-residue mod 19.
	if _, ok := m.Sqrt(two); ok {
		t.Error("sqrt(2) mod 19 must report no root")
	}
}

func TestInverseToy(t *testing.T) {
	m := newToyModulus(t)
	for v := uint64(1); v < 19; v++ {
		a := m.NewElement(v)
		if !m.Equal(m.Mul(a, m.Inv(a)), m.One()) {
			t.Errorf("a * a^-1 != 1 for a = %d", v)
		}
	}
}

func TestPowEdgeCases(t *testing.T) {
	m := newToyModulus(t)
	a := m.NewElement(7)

	if !m.Equal(m.Pow(a, bigint.New(1)), m.One()) {
		t.Error("a^0 must be 1")
	}
	if !m.Equal(m.Pow(a, bigint.FromUint64(1, 1)), a) {
		t.Error("a^1 must be a")
	}
	// Fermat: a^(p-1) = 1
	if !m.Equal(m.Pow(a, bigint.FromUint64(1, 18)), m.One()) {
		t.Error("a^(p-1) must be 1")
	}
}

func TestElementHexDeterministic(t *testing.T) {
	m := newP434(t)
	a := m.NewElement(5)
	if a.Hex() != a.Hex() || len(a.Hex()) != 2+16*7 {
		t.Errorf("hex rendering must be fixed width, got %q", a.Hex())
	}

	var zero Element
	if zero.Hex() != "0x0" {
		t.Errorf("zero-value element hex = %q", zero.Hex())
	}
}

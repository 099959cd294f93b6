// Package transcript implements a Keccak-based Fiat-Shamir transcript.
//
// A transcript is a running hash of labeled protocol messages. Both
// parties absorb the same messages in the same order; challenges
// squeezed from the transcript are then unpredictable to the prover
// but reproducible by the verifier. Every absorb is framed with the
// label and a length prefix, so distinct message sequences never
// collide by concatenation.
package transcript

import (
	"encoding/binary"
	"hash"
	"math/big"

	"golang.org/x/crypto/sha3"

	"github.com/Caqil/qhalo/pkg/bigint"
	"github.com/Caqil/qhalo/pkg/crypto/edwards"
	"github.com/Caqil/qhalo/pkg/field"
)

// challengeSlack is the extra squeeze width, in bytes, beyond the
// modulus size. Reducing a value this much wider keeps the bias below
// 2^-128.
const challengeSlack = 16

// Transcript accumulates labeled messages and produces challenge
// scalars. It is not safe for concurrent use.
type Transcript struct {
	state [32]byte
}

// New creates a transcript bound to a protocol label.
func New(label string) *Transcript {
	t := &Transcript{}
	t.AppendBytes("protocol", []byte(label))
	return t
}

// AppendBytes absorbs a labeled byte string.
func (t *Transcript) AppendBytes(label string, data []byte) {
	h := sha3.NewLegacyKeccak256()
	h.Write(t.state[:])
	writeFramed(h, []byte(label))
	writeFramed(h, data)
	h.Sum(t.state[:0])
}

// AppendUint64 absorbs a labeled word.
func (t *Transcript) AppendUint64(label string, v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	t.AppendBytes(label, buf[:])
}

// AppendScalar absorbs a labeled multi-word integer, little-endian.
func (t *Transcript) AppendScalar(label string, v bigint.Int) {
	t.AppendBytes(label, scalarBytes(v))
}

// AppendElement absorbs a field element in its canonical integer
// representation, so the absorbed bytes are independent of the
// Montgomery domain.
func (t *Transcript) AppendElement(label string, m *field.Modulus, e field.Element) {
	t.AppendScalar(label, m.FromMont(e))
}

// AppendE2 absorbs a quadratic extension element, real part first.
func (t *Transcript) AppendE2(label string, q *field.Quad, e field.E2) {
	buf := append(scalarBytes(q.M.FromMont(e.C0)), scalarBytes(q.M.FromMont(e.C1))...)
	t.AppendBytes(label, buf)
}

// AppendPoint absorbs an Edwards point by its affine coordinates, so
// all projective representatives of a point absorb identically.
func (t *Transcript) AppendPoint(label string, c *edwards.Curve, p edwards.Point) {
	x, y := c.Affine(p)
	t.AppendE2(label+"/x", c.F, x)
	t.AppendE2(label+"/y", c.F, y)
}

// ChallengeBytes squeezes n bytes bound to the given label. The
// transcript state advances, so repeated calls with the same label
// yield independent outputs.
func (t *Transcript) ChallengeBytes(label string, n int) []byte {
	out := make([]byte, 0, n)
	var counter uint64
	for len(out) < n {
		h := sha3.NewLegacyKeccak256()
		h.Write(t.state[:])
		writeFramed(h, []byte(label))
		var cbuf [8]byte
		binary.LittleEndian.PutUint64(cbuf[:], counter)
		h.Write(cbuf[:])
		out = h.Sum(out)
		counter++
	}
	out = out[:n]

	// Fold the challenge back into the state so later absorbs and
	// challenges depend on it.
	t.AppendBytes("challenge/"+label, out)
	return out
}

// ChallengeScalar squeezes a challenge in [0, p) for the given
// modulus, as a canonical integer.
func (t *Transcript) ChallengeScalar(label string, m *field.Modulus) bigint.Int {
	wide := t.ChallengeBytes(label, m.Limbs()*8+challengeSlack)
	v := new(big.Int).SetBytes(wide)
	v.Mod(v, m.P().Big())
	r, _ := bigint.FromBig(m.Limbs(), v)
	return r
}

func writeFramed(h hash.Hash, data []byte) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(len(data)))
	h.Write(buf[:])
	h.Write(data)
}

func scalarBytes(v bigint.Int) []byte {
	buf := make([]byte, len(v)*8)
	for i, w := range v {
		binary.LittleEndian.PutUint64(buf[i*8:], w)
	}
	return buf
}

package sigma

import (
	"fmt"
	"io"

	"github.com/luxfi/beacon/pkg/curve"
)

// Glow is a non-interactive proof of knowledge of x such that g_x = g·x
// AND h_x = h·x over two independent bases (spec.md §4.2.2) — the
// "DDH tuple" proof GLOW uses to tie a partial evaluation to its
// verification key.
//
// spec.md §9 open question 1 flags a transcript bug carried over from
// the original Rust source's zkp_glow.rs, whose challenge_bytes binds
// h_affine to instance.g instead of instance.h. This implementation
// hashes the actual h the verifier re-derives, not a second copy of g:
// the corrected layout, not the byte-identical one.
type Glow struct {
	C curve.Scalar
	S curve.Scalar
}

func challengeGlow(c curve.Curve, g, gx, h, hx, tg, th curve.Point) (curve.Scalar, error) {
	parts := make([][]byte, 0, 6)
	for _, p := range []curve.Point{g, gx, h, hx, tg, th} {
		b, err := p.Bytes()
		if err != nil {
			return nil, fmt.Errorf("sigma: serializing transcript point: %w", err)
		}
		parts = append(parts, b)
	}
	return curve.HashToScalar(c, parts...)
}

// ProveGlow produces a Glow proof for instance (g, g_x, h, h_x) with
// witness x (spec.md §4.2.2).
func ProveGlow(c curve.Curve, g, gx, h, hx curve.Point, x curve.Scalar, rand io.Reader) (*Glow, error) {
	r, err := c.RandomScalar(rand)
	if err != nil {
		return nil, fmt.Errorf("sigma: drawing nonce: %w", err)
	}
	tg := g.Mul(r)
	th := h.Mul(r)
	challenge, err := challengeGlow(c, g, gx, h, hx, tg, th)
	if err != nil {
		return nil, err
	}
	s := r.Sub(challenge.Mul(x))
	return &Glow{C: challenge, S: s}, nil
}

// VerifyGlow checks a Glow proof. Per spec.md §4.2.2 it only validates the
// "g side" (g, g_x non-identity) — the caller is responsible for having
// derived h itself (e.g. h = H(m)) before calling this.
func VerifyGlow(c curve.Curve, g, gx, h, hx curve.Point, proof *Glow) bool {
	if g.IsIdentity() || gx.IsIdentity() {
		return false
	}
	tg := g.Mul(proof.S).Add(gx.Mul(proof.C))
	th := h.Mul(proof.S).Add(hx.Mul(proof.C))
	cPrime, err := challengeGlow(c, g, gx, h, hx, tg, th)
	if err != nil {
		return false
	}
	return proof.C.Equal(cPrime)
}

// Package sigma implements the two non-interactive Schnorr-style
// sigma proofs from spec.md §4.2: ZkpDl (knowledge of a discrete log)
// and ZkpGlow (knowledge of equal discrete logs over two independent
// bases). Both are curve-agnostic over pkg/curve.Curve so the same
// code backs the secp256k1 Goldberg VRF and the BN-254 GLOW DVRF /
// FlexiRand.
package sigma

import (
	"fmt"
	"io"

	"github.com/luxfi/beacon/pkg/curve"
)

// Dl is a non-interactive proof of knowledge of x such that g_x = g·x.
type Dl struct {
	C curve.Scalar
	S curve.Scalar
}

func challengeDL(c curve.Curve, g, gx, t curve.Point) (curve.Scalar, error) {
	gb, err := g.Bytes()
	if err != nil {
		return nil, fmt.Errorf("sigma: serializing g: %w", err)
	}
	gxb, err := gx.Bytes()
	if err != nil {
		return nil, fmt.Errorf("sigma: serializing g_x: %w", err)
	}
	tb, err := t.Bytes()
	if err != nil {
		return nil, fmt.Errorf("sigma: serializing commitment: %w", err)
	}
	return curve.HashToScalar(c, gb, gxb, tb)
}

// ProveDL produces a ZkpDl for instance (g, g_x) with witness x
// (spec.md §4.2.1). rand supplies the prover's nonce r; it must be a
// cryptographically secure source (spec.md §5).
func ProveDL(c curve.Curve, g, gx curve.Point, x curve.Scalar, rand io.Reader) (*Dl, error) {
	r, err := c.RandomScalar(rand)
	if err != nil {
		return nil, fmt.Errorf("sigma: drawing nonce: %w", err)
	}
	t := g.Mul(r)
	challenge, err := challengeDL(c, g, gx, t)
	if err != nil {
		return nil, err
	}
	s := r.Sub(challenge.Mul(x))
	return &Dl{C: challenge, S: s}, nil
}

// VerifyDL checks a ZkpDl against public instance (g, g_x). It rejects if
// either base is the identity element, per spec.md §4.2.1.
func VerifyDL(c curve.Curve, g, gx curve.Point, proof *Dl) bool {
	if g.IsIdentity() || gx.IsIdentity() {
		return false
	}
	tPrime := g.Mul(proof.S).Add(gx.Mul(proof.C))
	cPrime, err := challengeDL(c, g, gx, tPrime)
	if err != nil {
		return false
	}
	return proof.C.Equal(cPrime)
}

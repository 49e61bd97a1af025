// Package vrf implements the two single-party verifiable random
// functions from spec.md §4.4–§4.5: the Goldberg construction over
// secp256k1, and a hashless BLS-VRF over BN-254. Both are stateless;
// every call takes its inputs by value and returns a fresh result
// (spec.md §5).
package vrf

import (
	"bytes"
	"fmt"
	"io"

	"github.com/luxfi/beacon/pkg/curve"
)

// GoldbergKeyPair is a secp256k1 VRF keypair (spec.md §3).
type GoldbergKeyPair struct {
	SK curve.Scalar
	PK curve.Point
}

// GoldbergKeygen draws sk uniformly from Sc and sets pk = g·sk
// (spec.md §4.4).
func GoldbergKeygen(rand io.Reader) (*GoldbergKeyPair, error) {
	c := curve.Secp256k1{}
	sk, err := c.RandomScalar(rand)
	if err != nil {
		return nil, fmt.Errorf("vrf: generating secp256k1 key: %w", err)
	}
	pk := c.Generator().Mul(sk)
	return &GoldbergKeyPair{SK: sk, PK: pk}, nil
}

// GoldbergOutput is a single VRF evaluation: gamma = H(m)·sk, (c, s) is
// the sigma proof that gamma and pk share the same sk, and beta is the
// public VRF output (spec.md §3, §4.4).
type GoldbergOutput struct {
	Gamma curve.Point
	C     curve.Scalar
	S     curve.Scalar
	Beta  []byte // 33-byte compressed secp256k1 encoding of Gamma
}

// GoldbergEval computes gamma = H(m)·sk and a DL-sigma proof tying gamma
// to sk under pk = g·sk (spec.md §4.4). rand supplies the nonce k and
// must be a cryptographically secure source.
func GoldbergEval(m []byte, sk curve.Scalar, pk curve.Point, rand io.Reader) (*GoldbergOutput, error) {
	c := curve.Secp256k1{}
	g := c.Generator()

	h, err := curve.HashToCurve(c, m)
	if err != nil {
		return nil, fmt.Errorf("vrf: hashing message to curve: %w", err)
	}
	gamma := h.Mul(sk)

	k, err := c.RandomScalar(rand)
	if err != nil {
		return nil, fmt.Errorf("vrf: drawing nonce: %w", err)
	}
	gk := g.Mul(k)
	hk := h.Mul(k)

	challenge, err := goldbergChallenge(c, g, h, pk, gamma, gk, hk)
	if err != nil {
		return nil, err
	}
	s := k.Sub(challenge.Mul(sk))

	beta, err := gamma.Bytes()
	if err != nil {
		return nil, fmt.Errorf("vrf: serializing output: %w", err)
	}

	return &GoldbergOutput{Gamma: gamma, C: challenge, S: s, Beta: beta}, nil
}

func goldbergChallenge(c curve.Curve, g, h, pk, gamma, u, v curve.Point) (curve.Scalar, error) {
	parts := make([][]byte, 0, 6)
	for _, p := range []curve.Point{g, h, pk, gamma, u, v} {
		b, err := p.Bytes()
		if err != nil {
			return nil, fmt.Errorf("vrf: serializing transcript point: %w", err)
		}
		parts = append(parts, b)
	}
	return curve.HashToScalar(c, parts...)
}

// GoldbergVerify checks out against message m and public key pk
// (spec.md §4.4). It rejects the identity gamma and a beta that doesn't
// match gamma's serialization before re-deriving the challenge.
func GoldbergVerify(m []byte, pk curve.Point, out *GoldbergOutput) bool {
	c := curve.Secp256k1{}
	if out.Gamma.IsIdentity() {
		return false
	}
	gammaBytes, err := out.Gamma.Bytes()
	if err != nil || !bytes.Equal(gammaBytes, out.Beta) {
		return false
	}

	g := c.Generator()
	h, err := curve.HashToCurve(c, m)
	if err != nil {
		return false
	}

	u := pk.Mul(out.C).Add(g.Mul(out.S))
	v := out.Gamma.Mul(out.C).Add(h.Mul(out.S))

	cPrime, err := goldbergChallenge(c, g, h, pk, out.Gamma, u, v)
	if err != nil {
		return false
	}
	return out.C.Equal(cPrime)
}

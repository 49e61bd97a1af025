package vrf

import (
	"fmt"
	"io"

	"github.com/luxfi/beacon/pkg/curve"
)

// BLSKeyPair is a BN-254 BLS-VRF keypair: sk ∈ Fr, pk = g2·sk
// (spec.md §4.5).
type BLSKeyPair struct {
	SK curve.Scalar
	PK curve.G2Point
}

// BLSKeygen draws sk uniformly and sets pk = g2·sk.
func BLSKeygen(rand io.Reader) (*BLSKeyPair, error) {
	c := curve.BN254G1{}
	sk, err := c.RandomScalar(rand)
	if err != nil {
		return nil, fmt.Errorf("vrf: generating bn254 key: %w", err)
	}
	pk := curve.G2Generator().Mul(sk)
	return &BLSKeyPair{SK: sk, PK: pk}, nil
}

// BLSOutput is the hashless BLS-VRF output: a raw G1 point, no proof
// beyond the pairing equation itself (spec.md §4.5).
type BLSOutput struct {
	Out curve.Point
}

// BLSHashedOutput additionally exposes the 32-byte digest of Out, per the
// "hashed" variant spec.md §4.5 describes alongside the raw one.
type BLSHashedOutput struct {
	Digest [32]byte
	Out    curve.Point
}

// BLSEval computes H1(m)·sk (spec.md §4.5). BLS-VRF has no sigma proof:
// correctness is checked directly via pairing in BLSVerify.
func BLSEval(m []byte, sk curve.Scalar) (*BLSOutput, error) {
	c := curve.BN254G1{}
	h, err := curve.HashToCurve(c, m)
	if err != nil {
		return nil, fmt.Errorf("vrf: hashing message to curve: %w", err)
	}
	return &BLSOutput{Out: h.Mul(sk)}, nil
}

// BLSEvalHashed computes the hashed variant of BLSEval.
func BLSEvalHashed(m []byte, sk curve.Scalar) (*BLSHashedOutput, error) {
	out, err := BLSEval(m, sk)
	if err != nil {
		return nil, err
	}
	digest, err := curve.HashPointToBytes(out.Out)
	if err != nil {
		return nil, fmt.Errorf("vrf: hashing output point: %w", err)
	}
	return &BLSHashedOutput{Digest: digest, Out: out.Out}, nil
}

// BLSVerify checks e(out, g2) == e(H1(m), pk) (spec.md §4.5).
func BLSVerify(m []byte, pk curve.G2Point, out *BLSOutput) bool {
	c := curve.BN254G1{}
	h, err := curve.HashToCurve(c, m)
	if err != nil {
		return false
	}
	ok, err := curve.PairingEqual(out.Out, curve.G2Generator(), h, pk)
	if err != nil {
		return false
	}
	return ok
}

package curve

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
)

// G2Point wraps the BN-254 G2 group. Per spec.md §4.1 its serialization is
// implementation-defined and only ever consumed inside a pairing check, so
// it does not implement the generic Point interface used by the sigma
// proofs — it only needs scalar multiplication and the generator.
type G2Point struct{ p bn254.G2Affine }

// G2Generator returns g2.
func G2Generator() G2Point {
	_, _, _, g2 := bn254.Generators()
	return G2Point{p: g2}
}

// Mul multiplies the point by a BN254G1-family scalar (Fr is shared
// between G1 and G2 on a pairing curve).
func (p G2Point) Mul(s Scalar) G2Point {
	sc := s.(*bn254Scalar)
	var scalarInt big.Int
	sc.e.BigInt(&scalarInt)
	var jac bn254.G2Jac
	jac.ScalarMultiplication(&p.p, &scalarInt)
	var aff bn254.G2Affine
	aff.FromJacobian(&jac)
	return G2Point{p: aff}
}

// Affine exposes the underlying gnark-crypto representation for pairing calls.
func (p G2Point) Affine() bn254.G2Affine { return p.p }

// Bytes returns gnark-crypto's uncompressed (raw) G2 encoding. Per spec.md §4.1
// this layout is implementation-defined — G2 is "only used inside
// pairing verify, never hashed" — so no normative byte layout is pinned
// here the way it is for G1.
func (p G2Point) Bytes() []byte {
	b := p.p.Marshal()
	return b
}

// G2FromBytes parses a gnark-crypto G2 encoding, compressed or uncompressed.
func G2FromBytes(b []byte) (G2Point, error) {
	var a bn254.G2Affine
	if _, err := a.SetBytes(b); err != nil {
		return G2Point{}, err
	}
	return G2Point{p: a}, nil
}

// PairingEqual reports whether e(a1, b1) == e(a2, b2), computed as a single
// PairingCheck over {a1, -a2} / {b1, b2} so the costly final exponentiation
// runs once instead of twice.
func PairingEqual(a1 Point, b1 G2Point, a2 Point, b2 G2Point) (bool, error) {
	p1 := a1.(*bn254Point).Affine()
	p2 := a2.(*bn254Point).Affine()
	var negP2 bn254.G1Affine
	negP2.Neg(&p2)
	return bn254.PairingCheck(
		[]bn254.G1Affine{p1, negP2},
		[]bn254.G2Affine{b1.Affine(), b2.Affine()},
	)
}

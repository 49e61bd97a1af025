package curve

import "github.com/luxfi/beacon/pkg/hashutil"

// HashToScalar implements spec.md §4.1's hash_to_scalar: seed the
// Keccak-seeded DRBG with the concatenation of parts and draw a uniform
// element of c's scalar field.
func HashToScalar(c Curve, parts ...[]byte) (Scalar, error) {
	field := hashutil.ScalarField{Modulus: c.ScalarFieldModulus()}
	n := field.HashToScalarInt(parts...)
	buf := make([]byte, c.ScalarBytesLen())
	n.FillBytes(buf)
	return c.ScalarFromBytes(buf)
}

// HashToCurve implements spec.md §4.1's hash_to_curve: draw a scalar via
// HashToScalar from the same seed and return generator·scalar. This is
// explicitly not IETF hash-to-curve — it is pinned exactly this way
// because verifiers must reproduce it bit-for-bit.
func HashToCurve(c Curve, parts ...[]byte) (Point, error) {
	s, err := HashToScalar(c, parts...)
	if err != nil {
		return nil, err
	}
	return c.Generator().Mul(s), nil
}

// HashPointToBytes implements spec.md §4.1's hash_g1_to_bytes: H32 of the
// point's canonical serialization. Used for 32-byte beacon/digest outputs.
func HashPointToBytes(p Point) ([32]byte, error) {
	b, err := p.Bytes()
	if err != nil {
		return [32]byte{}, err
	}
	return hashutil.H32(b), nil
}

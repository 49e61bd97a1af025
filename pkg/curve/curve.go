// Package curve adapts two concrete elliptic-curve backends — a
// prime-order curve (secp256k1) and the G1/G2 groups of a pairing
// curve (BN-254) — behind one small interface, so the sigma-proof and
// Lagrange-interpolation machinery in this module is written once and
// used by both the secp256k1-based Goldberg VRF and the BN-254-based
// GLOW DVRF / FlexiRand (spec.md §9, "Trait-based polymorphism").
package curve

import (
	"io"
	"math/big"
)

// Scalar is an element of a curve's scalar field.
type Scalar interface {
	Add(Scalar) Scalar
	Sub(Scalar) Scalar
	Mul(Scalar) Scalar
	Negate() Scalar
	Invert() Scalar
	IsZero() bool
	Equal(Scalar) bool
	// Bytes returns the canonical fixed-length big-endian encoding.
	Bytes() []byte
}

// Point is an element of a curve's group.
type Point interface {
	Add(Point) Point
	Mul(Scalar) Point
	IsIdentity() bool
	Equal(Point) bool
	// Bytes returns the curve's normative serialization. It errors on
	// the identity element, which spec.md §4.1 disallows representing.
	Bytes() ([]byte, error)
}

// Curve names a concrete group/field pair and constructs its elements.
type Curve interface {
	Name() string
	Generator() Point
	Identity() Point
	NewScalar() Scalar
	// RandomScalar draws a uniform nonzero scalar from rand, which must be
	// a cryptographically secure source. Every fresh secret, nonce and
	// blinding factor in the module comes from here; all other
	// pseudorandomness comes from the seeded hash-to-scalar DRBG (spec.md §5).
	RandomScalar(rand io.Reader) (Scalar, error)
	ScalarFromUint64(v uint64) Scalar
	ScalarFromBytes(b []byte) (Scalar, error)
	PointFromBytes(b []byte) (Point, error)
	// ScalarFieldModulus is the field modulus, needed by the
	// hash-to-scalar rejection sampler in pkg/hashutil.
	ScalarFieldModulus() *big.Int
	// ScalarBytesLen is the canonical width of Scalar.Bytes().
	ScalarBytesLen() int
}

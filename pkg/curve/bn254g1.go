package curve

import (
	"fmt"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// BN254G1 is the G1 group of the BN-254 pairing curve (spec.md §3): scalar
// field Fr, 64-byte big-endian x||y affine encoding, identity disallowed.
type BN254G1 struct{}

// Name implements Curve.
func (BN254G1) Name() string { return "bn254-g1" }

// ScalarFieldModulus implements Curve.
func (BN254G1) ScalarFieldModulus() *big.Int {
	return fr.Modulus()
}

// ScalarBytesLen implements Curve.
func (BN254G1) ScalarBytesLen() int { return fr.Bytes }

// NewScalar returns the zero scalar of Fr.
func (BN254G1) NewScalar() Scalar { return &bn254Scalar{} }

// Generator returns g1, the canonical BN-254 G1 generator.
func (BN254G1) Generator() Point {
	_, _, g1, _ := bn254.Generators()
	return &bn254Point{p: g1}
}

// Identity implements Curve.
func (BN254G1) Identity() Point {
	return &bn254Point{} // zero-value G1Affine is the point at infinity
}

// RandomScalar implements Curve.
func (BN254G1) RandomScalar(rand io.Reader) (Scalar, error) {
	buf := make([]byte, fr.Bytes)
	for {
		if _, err := io.ReadFull(rand, buf); err != nil {
			return nil, fmt.Errorf("curve: reading random scalar: %w", err)
		}
		candidate := new(big.Int).SetBytes(buf)
		if candidate.Cmp(fr.Modulus()) < 0 && candidate.Sign() != 0 {
			var e fr.Element
			e.SetBigInt(candidate)
			return &bn254Scalar{e: e}, nil
		}
	}
}

// ScalarFromUint64 implements Curve.
func (BN254G1) ScalarFromUint64(v uint64) Scalar {
	var e fr.Element
	e.SetUint64(v)
	return &bn254Scalar{e: e}
}

// ScalarFromBytes implements Curve.
func (BN254G1) ScalarFromBytes(b []byte) (Scalar, error) {
	if len(b) != fr.Bytes {
		return nil, fmt.Errorf("curve: bn254 scalar must be %d bytes, got %d", fr.Bytes, len(b))
	}
	asInt := new(big.Int).SetBytes(b)
	if asInt.Cmp(fr.Modulus()) >= 0 {
		return nil, fmt.Errorf("curve: bn254 scalar out of range")
	}
	var e fr.Element
	e.SetBytes(b)
	return &bn254Scalar{e: e}, nil
}

// PointFromBytes parses the 64-byte big-endian x||y encoding (spec.md §4.1).
func (BN254G1) PointFromBytes(b []byte) (Point, error) {
	if len(b) != 64 {
		return nil, fmt.Errorf("curve: bn254 G1 point must be 64 bytes, got %d", len(b))
	}
	var x, y fp.Element
	x.SetBytes(b[:32])
	y.SetBytes(b[32:])
	aff := bn254.G1Affine{X: x, Y: y}
	if !aff.IsOnCurve() {
		return nil, fmt.Errorf("curve: bn254 G1 point is not on the curve")
	}
	return &bn254Point{p: aff}, nil
}

type bn254Scalar struct{ e fr.Element }

func (s *bn254Scalar) Add(other Scalar) Scalar {
	o := other.(*bn254Scalar)
	var out fr.Element
	out.Add(&s.e, &o.e)
	return &bn254Scalar{e: out}
}

func (s *bn254Scalar) Sub(other Scalar) Scalar {
	o := other.(*bn254Scalar)
	var out fr.Element
	out.Sub(&s.e, &o.e)
	return &bn254Scalar{e: out}
}

func (s *bn254Scalar) Mul(other Scalar) Scalar {
	o := other.(*bn254Scalar)
	var out fr.Element
	out.Mul(&s.e, &o.e)
	return &bn254Scalar{e: out}
}

func (s *bn254Scalar) Negate() Scalar {
	var out fr.Element
	out.Neg(&s.e)
	return &bn254Scalar{e: out}
}

func (s *bn254Scalar) Invert() Scalar {
	var out fr.Element
	out.Inverse(&s.e)
	return &bn254Scalar{e: out}
}

func (s *bn254Scalar) IsZero() bool { return s.e.IsZero() }

func (s *bn254Scalar) Equal(other Scalar) bool {
	o := other.(*bn254Scalar)
	return s.e.Equal(&o.e)
}

func (s *bn254Scalar) Bytes() []byte {
	b := s.e.Bytes()
	return b[:]
}

type bn254Point struct{ p bn254.G1Affine }

func (p *bn254Point) Add(other Point) Point {
	o := other.(*bn254Point)
	var out bn254.G1Affine
	out.Add(&p.p, &o.p)
	return &bn254Point{p: out}
}

func (p *bn254Point) Mul(s Scalar) Point {
	sc := s.(*bn254Scalar)
	var scalarInt big.Int
	sc.e.BigInt(&scalarInt)
	var out bn254.G1Jac
	out.ScalarMultiplication(&p.p, &scalarInt)
	var aff bn254.G1Affine
	aff.FromJacobian(&out)
	return &bn254Point{p: aff}
}

func (p *bn254Point) IsIdentity() bool { return p.p.IsInfinity() }

func (p *bn254Point) Equal(other Point) bool {
	o := other.(*bn254Point)
	return p.p.Equal(&o.p)
}

// Bytes returns the 64-byte big-endian x||y encoding (spec.md §4.1, §6).
func (p *bn254Point) Bytes() ([]byte, error) {
	if p.p.IsInfinity() {
		return nil, fmt.Errorf("curve: cannot serialize the identity point")
	}
	out := make([]byte, 64)
	xb := p.p.X.Bytes()
	yb := p.p.Y.Bytes()
	copy(out[:32], xb[:])
	copy(out[32:], yb[:])
	return out, nil
}

// Affine exposes the underlying gnark-crypto point for pairing calls,
// which operate directly on bn254.G1Affine/G2Affine rather than the Point
// interface (spec.md §4.1: G2 is "only used inside pairing verify, never
// hashed", so it never needs to satisfy this module's generic Point contract).
func (p *bn254Point) Affine() bn254.G1Affine { return p.p }

// FromAffineG1 wraps a raw gnark-crypto G1Affine as a curve.Point.
func FromAffineG1(a bn254.G1Affine) Point { return &bn254Point{p: a} }

package curve_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/beacon/pkg/curve"
)

// curves returns one instance of each concrete Curve backend, so the
// shared algebraic properties below run against both secp256k1 and
// BN-254 G1 without duplicating the test bodies.
func curves() map[string]curve.Curve {
	return map[string]curve.Curve{
		"secp256k1": curve.Secp256k1{},
		"bn254-g1":  curve.BN254G1{},
	}
}

func TestScalarArithmetic(t *testing.T) {
	for name, group := range curves() {
		group := group
		t.Run(name, func(t *testing.T) {
			a, err := group.RandomScalar(rand.Reader)
			require.NoError(t, err)
			b, err := group.RandomScalar(rand.Reader)
			require.NoError(t, err)

			sum := a.Add(b)
			diff := sum.Sub(b)
			assert.True(t, diff.Equal(a))

			negA := a.Negate()
			assert.True(t, a.Add(negA).IsZero())

			inv := a.Invert()
			assert.True(t, a.Mul(inv).Equal(group.ScalarFromUint64(1)))
		})
	}
}

func TestPointArithmetic(t *testing.T) {
	for name, group := range curves() {
		group := group
		t.Run(name, func(t *testing.T) {
			g := group.Generator()
			two := group.ScalarFromUint64(2)
			three := group.ScalarFromUint64(3)
			five := group.ScalarFromUint64(5)

			lhs := g.Mul(two).Add(g.Mul(three))
			rhs := g.Mul(five)
			assert.True(t, lhs.Equal(rhs))

			assert.True(t, group.Identity().IsIdentity())
			assert.False(t, g.IsIdentity())
		})
	}
}

func TestPointSerializationRoundTrip(t *testing.T) {
	for name, group := range curves() {
		group := group
		t.Run(name, func(t *testing.T) {
			s, err := group.RandomScalar(rand.Reader)
			require.NoError(t, err)
			p := group.Generator().Mul(s)

			b, err := p.Bytes()
			require.NoError(t, err)

			got, err := group.PointFromBytes(b)
			require.NoError(t, err)
			assert.True(t, got.Equal(p))
		})
	}
}

func TestIdentitySerializationFails(t *testing.T) {
	for name, group := range curves() {
		group := group
		t.Run(name, func(t *testing.T) {
			_, err := group.Identity().Bytes()
			assert.Error(t, err)
		})
	}
}

func TestScalarSerializationRoundTrip(t *testing.T) {
	for name, group := range curves() {
		group := group
		t.Run(name, func(t *testing.T) {
			s, err := group.RandomScalar(rand.Reader)
			require.NoError(t, err)

			got, err := group.ScalarFromBytes(s.Bytes())
			require.NoError(t, err)
			assert.True(t, got.Equal(s))
		})
	}
}

func TestHashToCurveDeterministic(t *testing.T) {
	for name, group := range curves() {
		group := group
		t.Run(name, func(t *testing.T) {
			a, err := curve.HashToCurve(group, []byte("message"))
			require.NoError(t, err)
			b, err := curve.HashToCurve(group, []byte("message"))
			require.NoError(t, err)
			assert.True(t, a.Equal(b))

			c, err := curve.HashToCurve(group, []byte("different"))
			require.NoError(t, err)
			assert.False(t, a.Equal(c))
		})
	}
}

func TestG2SerializationRoundTrip(t *testing.T) {
	secret := curve.BN254G1{}.ScalarFromUint64(9)
	g2 := curve.G2Generator()
	p := g2.Mul(secret)

	b := p.Bytes()
	got, err := curve.G2FromBytes(b)
	require.NoError(t, err)
	assert.Equal(t, p.Affine(), got.Affine())
}

func TestPairingEqualHoldsForMatchingExponents(t *testing.T) {
	group := curve.BN254G1{}
	secret, err := group.RandomScalar(rand.Reader)
	require.NoError(t, err)

	g1 := group.Generator()
	g2 := curve.G2Generator()

	out := g1.Mul(secret)
	pk := g2.Mul(secret)

	ok, err := curve.PairingEqual(out, g2, g1, pk)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPairingEqualFailsForMismatchedExponents(t *testing.T) {
	group := curve.BN254G1{}
	a, err := group.RandomScalar(rand.Reader)
	require.NoError(t, err)
	b, err := group.RandomScalar(rand.Reader)
	require.NoError(t, err)

	g1 := group.Generator()
	g2 := curve.G2Generator()

	out := g1.Mul(a)
	pk := g2.Mul(b)

	ok, err := curve.PairingEqual(out, g2, g1, pk)
	require.NoError(t, err)
	assert.False(t, ok)
}

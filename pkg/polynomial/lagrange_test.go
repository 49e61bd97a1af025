package polynomial_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/luxfi/beacon/pkg/curve"
	"github.com/luxfi/beacon/pkg/party"
	"github.com/luxfi/beacon/pkg/polynomial"
)

func TestLagrangeCoefficientsSumToOne(t *testing.T) {
	group := curve.Secp256k1{}

	n := 10
	allIDs := party.IDs(n)
	coefsFull := polynomial.Coefficients(group, allIDs)
	coefsShort := polynomial.Coefficients(group, allIDs[:n-1])

	one := group.ScalarFromUint64(1)

	sumFull := group.NewScalar()
	for _, c := range coefsFull {
		sumFull = sumFull.Add(c)
	}
	sumShort := group.NewScalar()
	for _, c := range coefsShort {
		sumShort = sumShort.Add(c)
	}

	assert.True(t, sumFull.Equal(one))
	assert.True(t, sumShort.Equal(one))
}

func TestLagrangeCoefficientsOverBN254(t *testing.T) {
	group := curve.BN254G1{}

	ids := party.IDs(5)
	coefs := polynomial.Coefficients(group, ids)

	one := group.ScalarFromUint64(1)
	sum := group.NewScalar()
	for _, c := range coefs {
		sum = sum.Add(c)
	}
	assert.True(t, sum.Equal(one))
}

func TestInterpolatePointReconstructsSecret(t *testing.T) {
	group := curve.BN254G1{}

	secret := group.ScalarFromUint64(42)
	poly, err := polynomial.New(group, 2, secret, testRand{})
	assert.NoError(t, err)

	g := group.Generator()
	ids := party.IDs(3)
	shares := make(map[party.ID]curve.Point, 3)
	for _, id := range ids {
		x := group.ScalarFromUint64(uint64(id))
		shares[id] = g.Mul(poly.Evaluate(x))
	}

	got := polynomial.InterpolatePoint(group, shares)
	want := g.Mul(secret)
	assert.True(t, got.Equal(want))
}

func TestInterpolatePointSingleShareUnchanged(t *testing.T) {
	group := curve.Secp256k1{}
	p := group.Generator().Mul(group.ScalarFromUint64(7))
	shares := map[party.ID]curve.Point{1: p}
	got := polynomial.InterpolatePoint(group, shares)
	assert.True(t, got.Equal(p))
}

func TestInterpolatePointEmptyIsIdentity(t *testing.T) {
	group := curve.Secp256k1{}
	got := polynomial.InterpolatePoint(group, map[party.ID]curve.Point{})
	assert.True(t, got.IsIdentity())
}

// testRand is a fixed-byte deterministic reader, good enough for
// constructing test polynomials without pulling in crypto/rand.
type testRand struct{}

func (testRand) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(i + 1)
	}
	return len(p), nil
}

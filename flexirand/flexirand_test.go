package flexirand_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/beacon/dvrf"
	"github.com/luxfi/beacon/flexirand"
	"github.com/luxfi/beacon/pkg/party"
)

func TestBlindInputVerify(t *testing.T) {
	bf, err := flexirand.BlindingFactor(rand.Reader)
	require.NoError(t, err)

	m := []byte("blind me")
	blinded, err := flexirand.BlindInputWithBF(m, bf, rand.Reader)
	require.NoError(t, err)

	assert.True(t, flexirand.InputVerify(m, blinded))
	assert.False(t, flexirand.InputVerify([]byte("different message"), blinded))
}

func TestFlexiRandRoundTrip(t *testing.T) {
	threshold, n := 5, 9
	ks, err := dvrf.TrustedDealerKeygen(dvrf.Config{Threshold: threshold, N: n}, rand.Reader)
	require.NoError(t, err)

	m := []byte("a client input that stays hidden from the committee")
	bf, err := flexirand.BlindingFactor(rand.Reader)
	require.NoError(t, err)

	blinded, err := flexirand.BlindInputWithBF(m, bf, rand.Reader)
	require.NoError(t, err)
	require.True(t, flexirand.InputVerify(m, blinded))

	ids := []party.ID{2, 4, 5, 7, 9}
	pevals := make([]dvrf.Entry, 0, len(ids))
	for _, id := range ids {
		pe, err := flexirand.PartialEval(blinded, ks.Shares[id], ks.VerificationKeys[id], rand.Reader)
		require.NoError(t, err)
		assert.True(t, flexirand.PartialVerify(blinded, ks.VerificationKeys[id], pe))
		pevals = append(pevals, dvrf.Entry{ID: id, Eval: pe})
	}

	blindedOut, err := flexirand.Aggregate(threshold, pevals)
	require.NoError(t, err)
	assert.True(t, flexirand.PreverifyWithPK(blinded, ks.PK, blindedOut))

	out, err := flexirand.UnblindOutput(bf, blindedOut)
	require.NoError(t, err)

	assert.True(t, flexirand.VerifyOutWithPK(m, out, ks.PK))
}

func TestFlexiRandUnblindPrecomputedInvMatches(t *testing.T) {
	threshold, n := 3, 5
	ks, err := dvrf.TrustedDealerKeygen(dvrf.Config{Threshold: threshold, N: n}, rand.Reader)
	require.NoError(t, err)

	m := []byte("precomputed inverse path")
	bf, err := flexirand.BlindingFactor(rand.Reader)
	require.NoError(t, err)

	blinded, err := flexirand.BlindInputWithBF(m, bf, rand.Reader)
	require.NoError(t, err)

	ids := []party.ID{1, 2, 3}
	pevals := make([]dvrf.Entry, 0, len(ids))
	for _, id := range ids {
		pe, err := flexirand.PartialEval(blinded, ks.Shares[id], ks.VerificationKeys[id], rand.Reader)
		require.NoError(t, err)
		pevals = append(pevals, dvrf.Entry{ID: id, Eval: pe})
	}

	blindedOut, err := flexirand.Aggregate(threshold, pevals)
	require.NoError(t, err)

	viaInverse, err := flexirand.UnblindOutput(bf, blindedOut)
	require.NoError(t, err)

	viaPrecomputed, err := flexirand.UnblindOutputPrecomputedInv(bf.Invert(), blindedOut)
	require.NoError(t, err)

	assert.Equal(t, viaInverse.Digest, viaPrecomputed.Digest)
	assert.True(t, viaInverse.Point.Equal(viaPrecomputed.Point))
	assert.True(t, flexirand.VerifyOutWithPK(m, viaPrecomputed, ks.PK))
}

func TestFlexiRandWrongBlindingFactorFailsVerification(t *testing.T) {
	threshold, n := 2, 3
	ks, err := dvrf.TrustedDealerKeygen(dvrf.Config{Threshold: threshold, N: n}, rand.Reader)
	require.NoError(t, err)

	m := []byte("wrong bf")
	bf, err := flexirand.BlindingFactor(rand.Reader)
	require.NoError(t, err)
	blinded, err := flexirand.BlindInputWithBF(m, bf, rand.Reader)
	require.NoError(t, err)

	ids := []party.ID{1, 2}
	pevals := make([]dvrf.Entry, 0, len(ids))
	for _, id := range ids {
		pe, err := flexirand.PartialEval(blinded, ks.Shares[id], ks.VerificationKeys[id], rand.Reader)
		require.NoError(t, err)
		pevals = append(pevals, dvrf.Entry{ID: id, Eval: pe})
	}
	blindedOut, err := flexirand.Aggregate(threshold, pevals)
	require.NoError(t, err)

	wrongBF, err := flexirand.BlindingFactor(rand.Reader)
	require.NoError(t, err)
	out, err := flexirand.UnblindOutput(wrongBF, blindedOut)
	require.NoError(t, err)

	assert.False(t, flexirand.VerifyOutWithPK(m, out, ks.PK))
}

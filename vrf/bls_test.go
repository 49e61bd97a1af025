package vrf_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/beacon/vrf"
)

func TestBLSVRFSmoke(t *testing.T) {
	kp, err := vrf.BLSKeygen(rand.Reader)
	require.NoError(t, err)

	m := []byte("test string 1")
	out, err := vrf.BLSEval(m, kp.SK)
	require.NoError(t, err)

	assert.True(t, vrf.BLSVerify(m, kp.PK, out))
	assert.False(t, vrf.BLSVerify([]byte("test string 2"), kp.PK, out))
}

func TestBLSVRFHashedVariant(t *testing.T) {
	kp, err := vrf.BLSKeygen(rand.Reader)
	require.NoError(t, err)

	m := []byte("hash me")
	hashed, err := vrf.BLSEvalHashed(m, kp.SK)
	require.NoError(t, err)

	assert.True(t, vrf.BLSVerify(m, kp.PK, &vrf.BLSOutput{Out: hashed.Out}))
}

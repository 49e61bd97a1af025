// Package hashutil implements the deterministic hash primitives that every
// Fiat–Shamir transcript and every hash-to-curve call in this module
// depends on (spec.md §4.1). The construction is pinned exactly as
// specified: a single Keccak-256 digest seeds a ChaCha20 stream, and
// field/group elements are drawn from that stream by rejection sampling.
// This is deliberately not IETF hash-to-curve.
package hashutil

import (
	"crypto/cipher"
	"encoding/binary"
	"math/big"

	"golang.org/x/crypto/chacha20"
	"golang.org/x/crypto/sha3"
)

// Size is the width in bytes of H32, the Fiat–Shamir digest.
const Size = 32

// H32 computes the Keccak-256 digest of the concatenation of parts. This is the original Keccak
// padding (Legacy), not NIST SHA3-256 — the two diverge and every
// transcript in this module must use the same one.
func H32(parts ...[]byte) [Size]byte {
	h := sha3.NewLegacyKeccak256()
	for _, p := range parts {
		h.Write(p)
	}
	var out [Size]byte
	copy(out[:], h.Sum(nil))
	return out
}

// seededStream derives a deterministic keystream from seed. ChaCha20
// requires a 32-byte key and a 12-byte nonce; seed (an H32 digest) is the key
// and the nonce is fixed to all-zero, since the key alone already binds
// the stream to the caller's input.
func seededStream(seed [Size]byte) cipher.Stream {
	var nonce [chacha20.NonceSize]byte
	stream, err := chacha20.NewUnauthenticatedCipher(seed[:], nonce[:])
	if err != nil {
		// Only possible if the key/nonce sizes are wrong, which they are not.
		panic(err)
	}
	return stream
}

// drawBytes pulls n pseudorandom bytes from a stream seeded by H32(parts...).
// counter distinguishes independent draws from the same seed (used when a
// single hash input must yield more than one field element).
func drawBytes(n int, counter uint32, parts ...[]byte) []byte {
	digest := H32(parts...)
	stream := seededStream(digest)
	// Burn counter*n bytes so successive counters draw independent blocks
	// from the same keystream without re-hashing.
	if counter > 0 {
		discard := make([]byte, int(counter)*n)
		stream.XORKeyStream(discard, discard)
	}
	out := make([]byte, n)
	stream.XORKeyStream(out, out)
	return out
}

// ScalarField describes the field a scalar must be reduced into: its
// modulus, expressed as the value one past the field's largest element.
type ScalarField struct {
	Modulus *big.Int
}

// HashToScalarInt draws a uniform value in [0, f.Modulus) from the stream
// seeded by H32(parts...), by rejection sampling draws of the modulus's bit
// length against the modulus — the same recursive-rejection idea as
// Goldberg-VRF's ZqHash, generalized to a continuous keystream instead of
// repeated re-hashing.
func (f ScalarField) HashToScalarInt(parts ...[]byte) *big.Int {
	bits := f.Modulus.BitLen()
	n := (bits + 7) / 8
	for counter := uint32(0); ; counter++ {
		b := drawBytes(n, counter, parts...)
		if extra := uint(n*8 - bits); extra > 0 {
			b[0] &= 0xFF >> extra
		}
		candidate := new(big.Int).SetBytes(b)
		if candidate.Cmp(f.Modulus) < 0 {
			return candidate
		}
	}
}

// DeterministicUint64 draws a plain uint64 from the seeded stream; used by
// callers that need a non-field-valued pseudorandom draw (e.g. picking a
// blinding nonce index in tests).
func DeterministicUint64(parts ...[]byte) uint64 {
	b := drawBytes(8, 0, parts...)
	return binary.BigEndian.Uint64(b)
}

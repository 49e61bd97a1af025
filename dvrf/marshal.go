package dvrf

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/luxfi/beacon/pkg/curve"
	"github.com/luxfi/beacon/pkg/party"
)

// PartyConfig is the long-term material a single committee member holds
// after a trusted-dealer keygen: its own share, the committee's public
// key, and every party's verification key (spec.md §3). This is the
// shape a dealer hands to a party and a party persists between rounds.
type PartyConfig struct {
	ID               party.ID
	Config           Config
	SK               curve.Scalar
	PK               curve.G2Point
	VerificationKeys map[party.ID]curve.Point
}

// PartyConfig extracts the material for a single party out of a KeySet.
func (ks *KeySet) PartyConfig(id party.ID) (*PartyConfig, error) {
	sk, ok := ks.Shares[id]
	if !ok {
		return nil, fmt.Errorf("dvrf: no share for party %d", id)
	}
	return &PartyConfig{
		ID:               id,
		Config:           ks.Config,
		SK:               sk,
		PK:               ks.PK,
		VerificationKeys: ks.VerificationKeys,
	}, nil
}

// wire is the CBOR-serializable shape of a PartyConfig: every curve value
// is already reduced to its canonical byte encoding, so round-tripping
// never depends on which concrete curve.Scalar/Point implementation
// produced it.
type wire struct {
	ID        uint16   `cbor:"1,keyasint"`
	Threshold int      `cbor:"2,keyasint"`
	N         int      `cbor:"3,keyasint"`
	SK        []byte   `cbor:"4,keyasint"`
	PK        []byte   `cbor:"5,keyasint"`
	VKIDs     []uint16 `cbor:"6,keyasint"`
	VKBytes   [][]byte `cbor:"7,keyasint"`
}

// MarshalCBOR implements cbor.Marshaler.
func (pc *PartyConfig) MarshalCBOR() ([]byte, error) {
	ids := make([]uint16, 0, len(pc.VerificationKeys))
	vkBytes := make([][]byte, 0, len(pc.VerificationKeys))
	for id, vk := range pc.VerificationKeys {
		b, err := vk.Bytes()
		if err != nil {
			return nil, fmt.Errorf("dvrf: serializing verification key for party %d: %w", id, err)
		}
		ids = append(ids, uint16(id))
		vkBytes = append(vkBytes, b)
	}
	w := wire{
		ID:        uint16(pc.ID),
		Threshold: pc.Config.Threshold,
		N:         pc.Config.N,
		SK:        pc.SK.Bytes(),
		PK:        pc.PK.Bytes(),
		VKIDs:     ids,
		VKBytes:   vkBytes,
	}
	return cbor.Marshal(w)
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (pc *PartyConfig) UnmarshalCBOR(data []byte) error {
	var w wire
	if err := cbor.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("dvrf: decoding party config: %w", err)
	}

	sk, err := group.ScalarFromBytes(w.SK)
	if err != nil {
		return fmt.Errorf("dvrf: decoding share: %w", err)
	}
	pk, err := curve.G2FromBytes(w.PK)
	if err != nil {
		return fmt.Errorf("dvrf: decoding committee public key: %w", err)
	}

	if len(w.VKIDs) != len(w.VKBytes) {
		return fmt.Errorf("dvrf: malformed verification key list")
	}
	vks := make(map[party.ID]curve.Point, len(w.VKIDs))
	for i, id := range w.VKIDs {
		pt, err := group.PointFromBytes(w.VKBytes[i])
		if err != nil {
			return fmt.Errorf("dvrf: decoding verification key for party %d: %w", id, err)
		}
		vks[party.ID(id)] = pt
	}

	pc.ID = party.ID(w.ID)
	pc.Config = Config{Threshold: w.Threshold, N: w.N}
	pc.SK = sk
	pc.PK = pk
	pc.VerificationKeys = vks
	return nil
}

// Package instarand implements the client-side glue from spec.md §4.8: a
// Goldberg-VRF client that composes its own local evaluation with a
// server-side (D)VRF response to produce an "instant" beacon output.
//
// Both functions are pure: GenerateServerInput only binds the client's
// public key into the request so a server cannot predict which client it
// is serving, and HashOutput only combines the client's own VRF output
// with whatever beta the server returns. Running the actual round — doing
// I/O against a server — is the caller's concern, not this package's
// (spec.md §5: the core has no suspension points).
package instarand

import (
	"fmt"

	"github.com/luxfi/beacon/pkg/curve"
	"github.com/luxfi/beacon/pkg/hashutil"
)

// GenerateServerInput computes u || ser_compressed(pkC), the value a
// client sends a server so the server's VRF input is bound to the
// client's identity (spec.md §4.8).
func GenerateServerInput(u []byte, pkC curve.Point) ([]byte, error) {
	pkBytes, err := pkC.Bytes()
	if err != nil {
		return nil, fmt.Errorf("instarand: serializing client public key: %w", err)
	}
	out := make([]byte, 0, len(u)+len(pkBytes))
	out = append(out, u...)
	out = append(out, pkBytes...)
	return out, nil
}

// HashOutput computes H32(clientPrefix || beta), the final beacon digest
// (spec.md §4.8). clientPrefix is the client's own local VRF output beta;
// beta is the server response's beta.
func HashOutput(clientPrefix, beta []byte) [32]byte {
	return hashutil.H32(clientPrefix, beta)
}

// Package dvrf implements the GLOW distributed VRF from spec.md §4.6:
// trusted-dealer keygen, partial evaluation, partial verification,
// Lagrange aggregation, and pairing-based output verification, in both
// the hashless and hashed output variants.
package dvrf

import (
	"fmt"

	"github.com/luxfi/beacon/pkg/errs"
	"github.com/luxfi/beacon/pkg/party"
)

// Config holds a committee's threshold parameters (spec.md §3: 1 ≤ t ≤ n ≤ 256).
type Config struct {
	Threshold int
	N         int
}

// Validate checks the threshold invariants (spec.md §7).
func (c Config) Validate() error {
	if c.Threshold == 0 {
		return errs.New(errs.KindInvalidConfig, "threshold must be nonzero")
	}
	if c.Threshold > c.N {
		return errs.New(errs.KindInvalidConfig,
			fmt.Sprintf("threshold %d exceeds party count %d", c.Threshold, c.N))
	}
	if c.N > party.MaxID {
		return errs.New(errs.KindInvalidConfig,
			fmt.Sprintf("party count %d exceeds maximum %d", c.N, party.MaxID))
	}
	return nil
}

package polynomial

import (
	"github.com/luxfi/beacon/pkg/curve"
	"github.com/luxfi/beacon/pkg/party"
)

// Coefficients computes the Lagrange coefficients λ_i(0) for evaluating a
// polynomial at zero given the sample points ids (spec.md §4.3):
//
//	λ_i(0) = Π_{j≠i} (−id_j)/(id_i − id_j)
//
// The numerators are computed with one prefix pass and one suffix pass
// over {−id_k}; the denominators are accumulated directly per i and
// inverted once each. Duplicate ids are not checked here — the caller
// must ensure uniqueness (spec.md §4.3); a duplicate surfaces as a
// division by zero, which panics rather than returning an error, because
// it indicates a programming error, not a runtime condition.
func Coefficients(group curve.Curve, ids []party.ID) map[party.ID]curve.Scalar {
	n := len(ids)
	out := make(map[party.ID]curve.Scalar, n)
	if n == 0 {
		return out
	}

	one := group.ScalarFromUint64(1)
	xs := make([]curve.Scalar, n)
	for i, id := range ids {
		xs[i] = group.ScalarFromUint64(uint64(id))
	}

	// prefix[i] = Π_{j<i} (−xs[j]); suffix[i] = Π_{j>=i} (−xs[j])
	prefix := make([]curve.Scalar, n+1)
	suffix := make([]curve.Scalar, n+1)
	prefix[0] = one
	for i := 0; i < n; i++ {
		prefix[i+1] = prefix[i].Mul(xs[i].Negate())
	}
	suffix[n] = one
	for i := n - 1; i >= 0; i-- {
		suffix[i] = suffix[i+1].Mul(xs[i].Negate())
	}

	for i, id := range ids {
		numerator := prefix[i].Mul(suffix[i+1])

		denom := one
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			diff := xs[i].Sub(xs[j])
			if diff.IsZero() {
				panic("polynomial: duplicate identifier in Lagrange interpolation")
			}
			denom = denom.Mul(diff)
		}

		out[id] = numerator.Mul(denom.Invert())
	}
	return out
}

// InterpolatePoint reconstructs Σ λ_i(0)·P_i from threshold partial
// values (spec.md §4.3, §4.6 aggregate): zero points return the
// identity, a single point is returned unchanged, and anything larger
// uses the Lagrange coefficients above.
func InterpolatePoint(group curve.Curve, shares map[party.ID]curve.Point) curve.Point {
	if len(shares) == 0 {
		return group.Identity()
	}
	if len(shares) == 1 {
		for _, p := range shares {
			return p
		}
	}

	ids := make([]party.ID, 0, len(shares))
	for id := range shares {
		ids = append(ids, id)
	}
	coeffs := Coefficients(group, ids)

	sum := group.Identity()
	for _, id := range ids {
		sum = sum.Add(shares[id].Mul(coeffs[id]))
	}
	return sum
}

// InterpolateScalar reconstructs Σ λ_i(0)·s_i, the scalar analogue of
// InterpolatePoint, used when reconstructing a secret (e.g. in tests, or
// a future DKG seam) rather than a public output.
func InterpolateScalar(group curve.Curve, shares map[party.ID]curve.Scalar) curve.Scalar {
	if len(shares) == 0 {
		return group.NewScalar()
	}
	if len(shares) == 1 {
		for _, s := range shares {
			return s
		}
	}

	ids := make([]party.ID, 0, len(shares))
	for id := range shares {
		ids = append(ids, id)
	}
	coeffs := Coefficients(group, ids)

	sum := group.NewScalar()
	for _, id := range ids {
		sum = sum.Add(shares[id].Mul(coeffs[id]))
	}
	return sum
}

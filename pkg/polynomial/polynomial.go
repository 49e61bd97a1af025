// Package polynomial implements Shamir secret sharing (a random
// polynomial over a curve's scalar field with a fixed constant term)
// and Lagrange-in-the-exponent interpolation, used by the GLOW DVRF's
// trusted-dealer keygen and by partial-evaluation aggregation
// (spec.md §3, §4.3, §4.6).
package polynomial

import (
	"fmt"
	"io"

	"github.com/luxfi/beacon/pkg/curve"
)

// Polynomial is f(X) = c_0 + c_1*X + ... + c_d*X^d over a curve's scalar
// field, with c_0 the secret constant term (spec.md §3).
type Polynomial struct {
	group  curve.Curve
	coeffs []curve.Scalar
}

// New builds a random polynomial of the given degree with a fixed constant
// term (the secret). rand must be a cryptographically secure source — the
// coefficients above the constant term are fresh secrets, not
// deterministically derived (spec.md §5).
func New(group curve.Curve, degree int, constant curve.Scalar, rand io.Reader) (*Polynomial, error) {
	if degree < 0 {
		return nil, fmt.Errorf("polynomial: degree must be non-negative, got %d", degree)
	}
	coeffs := make([]curve.Scalar, degree+1)
	coeffs[0] = constant
	for i := 1; i <= degree; i++ {
		c, err := group.RandomScalar(rand)
		if err != nil {
			return nil, fmt.Errorf("polynomial: drawing coefficient %d: %w", i, err)
		}
		coeffs[i] = c
	}
	return &Polynomial{group: group, coeffs: coeffs}, nil
}

// Evaluate computes f(x) by Horner's method.
func (p *Polynomial) Evaluate(x curve.Scalar) curve.Scalar {
	result := p.group.NewScalar()
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		result = result.Mul(x).Add(p.coeffs[i])
	}
	return result
}

// Constant returns f(0), the secret.
func (p *Polynomial) Constant() curve.Scalar {
	return p.coeffs[0]
}

// Degree returns the polynomial's degree.
func (p *Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

// CoefficientCommitments returns g·c_k for each coefficient c_k, which a
// trusted dealer may publish so parties can verify their share against
// the public polynomial commitment without revealing the coefficients
// themselves.
func (p *Polynomial) CoefficientCommitments() []curve.Point {
	out := make([]curve.Point, len(p.coeffs))
	g := p.group.Generator()
	for i, c := range p.coeffs {
		out[i] = g.Mul(c)
	}
	return out
}

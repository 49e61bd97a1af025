// Package flexirand implements the blinding wrapper from spec.md §4.7:
// a client blinds its VRF input before a GLOW committee ever sees it,
// the committee partially evaluates and aggregates over the blinded
// point exactly as it would any other GLOW input, and the client
// unblinds the aggregate to recover a standard, publicly verifiable
// DVRF output.
//
// The committee's partial evaluation must operate on the blinded G1
// point directly rather than re-hashing its serialization — otherwise
// the unblinding algebra does not cancel the blinding factor
// (spec.md §4.7, §9 open question 2). This package therefore always
// calls dvrf.PartialEvalOnPoint / PartialVerifyOnPoint / OutputVerifyOnPoint,
// never the message-hashing entry points.
package flexirand

import (
	"fmt"
	"io"

	"github.com/luxfi/beacon/dvrf"
	"github.com/luxfi/beacon/pkg/curve"
	"github.com/luxfi/beacon/pkg/sigma"
)

var group = curve.BN254G1{}

// BlindedInput is a client's blinded VRF input alongside the ZkpDl
// proving it is a power of H1(m) (spec.md §4.7).
type BlindedInput struct {
	Point curve.Point
	Proof *sigma.Dl
}

// BlindingFactor draws a uniform nonzero Fr scalar (spec.md §4.7, §5 —
// this is one of the module's two cryptographically-random-only draws).
func BlindingFactor(rand io.Reader) (curve.Scalar, error) {
	return group.RandomScalar(rand)
}

// BlindInputWithBF computes (H1(m)·bf, ZkpDl over (H1(m), H1(m)·bf))
// with witness bf (spec.md §4.7).
func BlindInputWithBF(m []byte, bf curve.Scalar, rand io.Reader) (*BlindedInput, error) {
	h, err := curve.HashToCurve(group, m)
	if err != nil {
		return nil, fmt.Errorf("flexirand: hashing input: %w", err)
	}
	blinded := h.Mul(bf)
	proof, err := sigma.ProveDL(group, h, blinded, bf, rand)
	if err != nil {
		return nil, fmt.Errorf("flexirand: proving blinding factor: %w", err)
	}
	return &BlindedInput{Point: blinded, Proof: proof}, nil
}

// InputVerify recomputes h = H1(m) and validates the ZkpDl against
// (h, blinded.Point) (spec.md §4.7).
func InputVerify(m []byte, blinded *BlindedInput) bool {
	h, err := curve.HashToCurve(group, m)
	if err != nil {
		return false
	}
	return sigma.VerifyDL(group, h, blinded.Point, blinded.Proof)
}

// PartialEval computes a GLOW partial evaluation directly on the
// blinded point — never on a re-hash of its serialization — so that
// UnblindOutput's algebra holds (spec.md §4.7).
func PartialEval(blinded *BlindedInput, skI curve.Scalar, vkI curve.Point, rand io.Reader) (*dvrf.PartialEvaluation, error) {
	return dvrf.PartialEvalOnPoint(blinded.Point, skI, vkI, rand)
}

// PartialVerify validates a partial evaluation against the blinded point.
func PartialVerify(blinded *BlindedInput, vkI curve.Point, pe *dvrf.PartialEvaluation) bool {
	return dvrf.PartialVerifyOnPoint(blinded.Point, vkI, pe)
}

// Aggregate forwards to GLOW's aggregation, reconstructing the blinded
// output from the first t partials by arrival order (spec.md §4.6, §4.7).
func Aggregate(threshold int, pevals []dvrf.Entry) (curve.Point, error) {
	return dvrf.Aggregate(threshold, pevals)
}

// PreverifyWithPK checks e(blindedOut, g2) == e(blinded.Point, pk) before
// the client has unblinded anything (spec.md §4.7).
func PreverifyWithPK(blinded *BlindedInput, pk curve.G2Point, blindedOut curve.Point) bool {
	return dvrf.OutputVerifyOnPoint(blinded.Point, pk, blindedOut)
}

// Output is FlexiRand's unblinded result: a 32-byte digest alongside the
// raw G1 point, the same shape as dvrf's hashed GLOW output
// (spec.md §6).
type Output = dvrf.HashedOutput

// UnblindOutput computes π = blindedOut·bf⁻¹ and y = H32(ser(π))
// (spec.md §4.7).
func UnblindOutput(bf curve.Scalar, blindedOut curve.Point) (*Output, error) {
	return UnblindOutputPrecomputedInv(bf.Invert(), blindedOut)
}

// UnblindOutputPrecomputedInv is UnblindOutput for a caller that already
// holds bf⁻¹, avoiding a redundant field inversion (spec.md §4.7).
func UnblindOutputPrecomputedInv(bfInv curve.Scalar, blindedOut curve.Point) (*Output, error) {
	pi := blindedOut.Mul(bfInv)
	digest, err := curve.HashPointToBytes(pi)
	if err != nil {
		return nil, fmt.Errorf("flexirand: hashing unblinded output: %w", err)
	}
	return &Output{Digest: digest, Point: pi}, nil
}

// VerifyOutWithPK checks e(π, g2) == e(H1(m), pk) and H32(ser(π)) == y
// (spec.md §4.7) — the full public verification of an unblinded output
// against the original (unblinded) input m.
func VerifyOutWithPK(m []byte, out *Output, pk curve.G2Point) bool {
	return dvrf.OutputVerifyHashed(m, pk, out)
}

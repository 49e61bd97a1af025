package dvrf

import (
	"fmt"
	"io"

	"github.com/luxfi/beacon/pkg/curve"
	"github.com/luxfi/beacon/pkg/errs"
	"github.com/luxfi/beacon/pkg/party"
	"github.com/luxfi/beacon/pkg/polynomial"
	"github.com/luxfi/beacon/pkg/sigma"
)

// group is the BN-254 G1 group GLOW operates over.
var group = curve.BN254G1{}

// KeySet is the output of a trusted-dealer keygen (spec.md §4.6): a
// Shamir sharing of a committee secret with per-party verification keys
// and the committee's BN-254 G2 public key. The secret itself is never
// exposed outside this package: it is held in the unexported committeeSK
// field, which no exported API returns (spec.md §9's DKG-ready seam).
type KeySet struct {
	Config           Config
	PK               curve.G2Point
	Shares           map[party.ID]curve.Scalar
	VerificationKeys map[party.ID]curve.Point

	committeeSK curve.Scalar
}

// TrustedDealerKeygen implements spec.md §4.6's trusted keygen: a random
// degree-(t-1) polynomial f over Fr with f(0) the committee secret,
// sk_i = f(i) and vk_i = g1·sk_i for every party, and pk = g2·f(0).
func TrustedDealerKeygen(cfg Config, rand io.Reader) (*KeySet, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	secret, err := group.RandomScalar(rand)
	if err != nil {
		return nil, fmt.Errorf("dvrf: drawing committee secret: %w", err)
	}
	poly, err := polynomial.New(group, cfg.Threshold-1, secret, rand)
	if err != nil {
		return nil, fmt.Errorf("dvrf: building sharing polynomial: %w", err)
	}

	g1 := group.Generator()
	shares := make(map[party.ID]curve.Scalar, cfg.N)
	vks := make(map[party.ID]curve.Point, cfg.N)
	for _, id := range party.IDs(cfg.N) {
		x := group.ScalarFromUint64(uint64(id))
		skI := poly.Evaluate(x)
		shares[id] = skI
		vks[id] = g1.Mul(skI)
	}

	pk := curve.G2Generator().Mul(secret)

	return &KeySet{
		Config:           cfg,
		PK:               pk,
		Shares:           shares,
		VerificationKeys: vks,
		committeeSK:      secret,
	}, nil
}

// PartialEvaluation is one party's share of a DVRF output plus the
// DDH-sigma proof tying it to that party's verification key
// (spec.md §3, §4.6).
type PartialEvaluation struct {
	PSig  curve.Point
	Proof *sigma.Glow
}

// PartialEval computes psig = H(m)·sk_i and a Glow proof over bases
// (g1, H(m)) with images (vk_i, psig) (spec.md §4.6).
func PartialEval(m []byte, skI curve.Scalar, vkI curve.Point, rand io.Reader) (*PartialEvaluation, error) {
	h, err := curve.HashToCurve(group, m)
	if err != nil {
		return nil, fmt.Errorf("dvrf: hashing message to curve: %w", err)
	}
	return partialEvalOnBase(h, skI, vkI, rand)
}

// PartialEvalOnPoint computes the partial evaluation directly on a given
// G1 point rather than hashing a byte message. FlexiRand uses this entry
// point so the committee signs the client's blinded point itself, not a
// re-hash of its serialization — the GLOW partial must operate on the
// blinded point directly for FlexiRand's unblinding algebra to hold
// (spec.md §4.7, §9 open question 2).
func PartialEvalOnPoint(point curve.Point, skI curve.Scalar, vkI curve.Point, rand io.Reader) (*PartialEvaluation, error) {
	return partialEvalOnBase(point, skI, vkI, rand)
}

func partialEvalOnBase(h curve.Point, skI curve.Scalar, vkI curve.Point, rand io.Reader) (*PartialEvaluation, error) {
	hx := h.Mul(skI)
	proof, err := sigma.ProveGlow(group, group.Generator(), vkI, h, hx, skI, rand)
	if err != nil {
		return nil, fmt.Errorf("dvrf: proving partial evaluation: %w", err)
	}
	return &PartialEvaluation{PSig: hx, Proof: proof}, nil
}

// PartialVerify recomputes h = H1(m) and validates pe's proof
// (spec.md §4.6).
func PartialVerify(m []byte, vkI curve.Point, pe *PartialEvaluation) bool {
	h, err := curve.HashToCurve(group, m)
	if err != nil {
		return false
	}
	return PartialVerifyOnPoint(h, vkI, pe)
}

// PartialVerifyOnPoint is the point-based analogue of PartialVerify, used
// by FlexiRand to verify partials computed via PartialEvalOnPoint.
func PartialVerifyOnPoint(point curve.Point, vkI curve.Point, pe *PartialEvaluation) bool {
	return sigma.VerifyGlow(group, group.Generator(), vkI, point, pe.PSig, pe.Proof)
}

// Entry pairs a party's identifier with its partial evaluation. Aggregate
// takes a slice (not a map) because spec.md §4.6 requires selecting the
// first t entries by arrival order, which a map cannot represent.
type Entry struct {
	ID   party.ID
	Eval *PartialEvaluation
}

// Output is the hashless GLOW output: a raw G1 point (spec.md §4.6).
type Output = curve.Point

// HashedOutput is the "hashed" GLOW output variant: the 32-byte digest
// alongside the raw G1 point (spec.md §4.6).
type HashedOutput struct {
	Digest [32]byte
	Point  curve.Point
}

// Aggregate reconstructs Σ λ_i(0)·psig_i from the first threshold entries
// of pevals, in arrival order (spec.md §4.6). Individual bad partials are
// not rejected here — callers must pre-filter with PartialVerify
// (spec.md §7).
func Aggregate(threshold int, pevals []Entry) (curve.Point, error) {
	if len(pevals) < threshold {
		return nil, errs.New(errs.KindInsufficientPartials,
			fmt.Sprintf("have %d, need %d", len(pevals), threshold))
	}
	chosen := pevals[:threshold]
	shares := make(map[party.ID]curve.Point, threshold)
	for _, e := range chosen {
		shares[e.ID] = e.Eval.PSig
	}
	return polynomial.InterpolatePoint(group, shares), nil
}

// AggregateHashed is the hashed-variant counterpart to Aggregate.
func AggregateHashed(threshold int, pevals []Entry) (*HashedOutput, error) {
	point, err := Aggregate(threshold, pevals)
	if err != nil {
		return nil, err
	}
	digest, err := curve.HashPointToBytes(point)
	if err != nil {
		return nil, fmt.Errorf("dvrf: hashing aggregate output: %w", err)
	}
	return &HashedOutput{Digest: digest, Point: point}, nil
}

// OutputVerify checks e(out, g2) == e(H1(m), pk), the hashless DVRF
// output verification (spec.md §4.6).
func OutputVerify(m []byte, pk curve.G2Point, out curve.Point) bool {
	h, err := curve.HashToCurve(group, m)
	if err != nil {
		return false
	}
	return OutputVerifyOnPoint(h, pk, out)
}

// OutputVerifyOnPoint is the point-based analogue of OutputVerify: it
// checks e(out, g2) == e(base, pk) against a given G1 point rather than
// hashing a byte message. FlexiRand uses this to pre-verify a blinded
// output against the blinded input point directly (spec.md §4.7).
func OutputVerifyOnPoint(base curve.Point, pk curve.G2Point, out curve.Point) bool {
	ok, err := curve.PairingEqual(out, curve.G2Generator(), base, pk)
	return err == nil && ok
}

// OutputVerifyHashed additionally checks the digest against the raw
// output, the hashed-variant verification (spec.md §4.6).
func OutputVerifyHashed(m []byte, pk curve.G2Point, out *HashedOutput) bool {
	if !OutputVerify(m, pk, out.Point) {
		return false
	}
	got, err := curve.HashPointToBytes(out.Point)
	if err != nil {
		return false
	}
	return got == out.Digest
}

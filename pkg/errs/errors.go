// Package errs collects the tagged error kinds the DVRF/FlexiRand core
// can return, per spec.md §7. Proof and pairing verification never
// return errors — only booleans — so this package only covers the
// construction- and aggregation-time failure modes.
package errs

// Kind tags the reason an operation failed, so callers can branch on
// cause without string matching.
type Kind int

const (
	// KindInsufficientPartials: aggregate was called with fewer than t partials.
	KindInsufficientPartials Kind = iota
	// KindDuplicateIdentifier: two entries in a key set share an id.
	KindDuplicateIdentifier
	// KindInvalidPoint: an attempt to serialize the identity element, or a malformed point.
	KindInvalidPoint
	// KindInvalidConfig: t == 0, t > n, or n > the party-count ceiling.
	KindInvalidConfig
)

func (k Kind) String() string {
	switch k {
	case KindInsufficientPartials:
		return "insufficient partial evaluations"
	case KindDuplicateIdentifier:
		return "duplicate identifier"
	case KindInvalidPoint:
		return "invalid point"
	case KindInvalidConfig:
		return "invalid config"
	default:
		return "unknown error"
	}
}

// Error is a tagged error carrying a Kind alongside a human-readable message.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Msg
}

// Is implements the errors.Is matching protocol: two *Error values match
// if they share a Kind, regardless of message, so errors.Is(err,
// errs.InsufficientPartials) works against a message-carrying error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// New constructs an *Error of the given kind.
func New(kind Kind, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

// Sentinel values for errors.Is-style comparisons against a fixed kind.
// These are never returned directly; they exist so callers who only care
// about the kind can write errors.Is(err, errs.InsufficientPartials).
var (
	InsufficientPartials = &Error{Kind: KindInsufficientPartials}
	DuplicateIdentifier  = &Error{Kind: KindDuplicateIdentifier}
	InvalidPoint         = &Error{Kind: KindInvalidPoint}
	InvalidConfig        = &Error{Kind: KindInvalidConfig}
)

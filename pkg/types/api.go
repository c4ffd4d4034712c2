package types

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindFormat      ErrKind = iota // not MXF, wrong key where a specific structure is required
	ErrKindCorrupt                    // decode errors: bad lengths, size mismatches, truncation
	ErrKindUnsupported                // valid feature we don't support (yet)
	ErrKindNotFound                   // missing partition, set or reference
	ErrKindState                      // invalid operation for current state (e.g., closed)
	ErrKindIO                         // byte-range provider failures
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindFormat:
		return "format"
	case ErrKindCorrupt:
		return "corrupt"
	case ErrKindUnsupported:
		return "unsupported"
	case ErrKindNotFound:
		return "not-found"
	case ErrKindState:
		return "state"
	case ErrKindIO:
		return "io"
	default:
		return "unknown"
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches by kind, so errors.Is(err, ErrCorrupt) holds for every corrupt
// error regardless of message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels commonly returned by implementations.
var (
	// ErrNotMXF indicates the byte range does not start with the expected MXF structure.
	ErrNotMXF = &Error{Kind: ErrKindFormat, Msg: "not an MXF structure"}
	// ErrCorrupt indicates non-recoverable structural inconsistency.
	ErrCorrupt = &Error{Kind: ErrKindCorrupt, Msg: "corrupt MXF structure"}
	// ErrUnsupported indicates a recognized but unsupported feature/variant.
	ErrUnsupported = &Error{Kind: ErrKindUnsupported, Msg: "unsupported MXF feature"}
	// ErrNotFound indicates a missing partition, set or reference.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "not found"}
	// ErrClosed indicates an operation on a closed file or range.
	ErrClosed = &Error{Kind: ErrKindState, Msg: "closed"}
)

// Wrap returns a typed error of the given kind wrapping err.
func Wrap(kind ErrKind, msg string, err error) error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

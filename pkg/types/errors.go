package types

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
//
// The set is closed: every fallible enummap operation reports exactly one of
// these kinds. OutOfMemory, OutOfBounds, and Uninitialized are reserved for
// API parity with embedded ports of the same format; no current operation
// produces them (Go allocation failure panics rather than returning).
type ErrKind int

const (
	ErrKindInvalidArg    ErrKind = iota // null/zero/malformed input, mode mismatch, read-only
	ErrKindOutOfMemory                  // reserved: allocation failure
	ErrKindOutOfBounds                  // reserved: index out of bounds
	ErrKindNotFound                     // lookup miss (key or name)
	ErrKindExists                       // duplicate key on insert
	ErrKindUninitialized                // reserved: required setup skipped
)

// String returns a short stable label for the kind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindInvalidArg:
		return "invalid argument"
	case ErrKindOutOfMemory:
		return "out of memory"
	case ErrKindOutOfBounds:
		return "index out of bounds"
	case ErrKindNotFound:
		return "not found"
	case ErrKindExists:
		return "already exists"
	case ErrKindUninitialized:
		return "uninitialized"
	default:
		return "unknown error"
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

// Sentinels returned by the enummap engine. Callers match them with
// errors.Is, or switch on Kind for category-level handling.
var (
	// ErrInvalidArg indicates a malformed argument (zero capacity, wrong
	// value width, value kind not matching the map's storage mode).
	ErrInvalidArg = &Error{Kind: ErrKindInvalidArg, Msg: "invalid argument"}
	// ErrNotFound indicates a missing key or name.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "not found"}
	// ErrExists indicates an insert collided with a live key. Associate is
	// strict insert-only; it never overwrites.
	ErrExists = &Error{Kind: ErrKindExists, Msg: "key already exists"}
	// ErrReadOnly indicates a mutation was attempted on a read-only map.
	ErrReadOnly = &Error{Kind: ErrKindInvalidArg, Msg: "map is read-only"}
	// ErrBadFormat indicates a serialized stream failed validation
	// (bad magic, unsupported version, or truncated data).
	ErrBadFormat = &Error{Kind: ErrKindInvalidArg, Msg: "malformed enum map stream"}
)

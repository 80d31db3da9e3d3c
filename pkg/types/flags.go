package types

import "strings"

// Flags is the bitmask of per-map configuration options. The word is
// persisted verbatim in the serialized header, so the bit assignments are
// part of the wire format and must not be renumbered.
type Flags uint32

const (
	// FlagNone requests default behavior.
	FlagNone Flags = 0

	// FlagNoNames suppresses name storage entirely. Names passed to
	// Associate are discarded and every name lookup reports not-found.
	FlagNoNames Flags = 1 << 0

	// FlagReadOnly rejects all mutation (Associate, Clear) with
	// ErrReadOnly. Lookups are unaffected.
	FlagReadOnly Flags = 1 << 1

	// FlagCopyValues requests value copying in reference-storage mode.
	// Accepted and preserved in the flag word for wire compatibility;
	// copy behavior is currently governed by the map's value width alone.
	FlagCopyValues Flags = 1 << 2
)

// flagMask covers every assigned bit. Unassigned bits in a serialized
// header are rejected during deserialization.
const flagMask = FlagNoNames | FlagReadOnly | FlagCopyValues

// Has reports whether every bit of q is set in f.
func (f Flags) Has(q Flags) bool { return f&q == q }

// Valid reports whether f uses only assigned bits.
func (f Flags) Valid() bool { return f&^flagMask == 0 }

// String renders the set bits as a pipe-separated list, "none" when empty.
func (f Flags) String() string {
	if f == 0 {
		return "none"
	}
	var parts []string
	if f.Has(FlagNoNames) {
		parts = append(parts, "nonames")
	}
	if f.Has(FlagReadOnly) {
		parts = append(parts, "readonly")
	}
	if f.Has(FlagCopyValues) {
		parts = append(parts, "copyvalues")
	}
	if f&^flagMask != 0 {
		parts = append(parts, "invalid")
	}
	return strings.Join(parts, "|")
}

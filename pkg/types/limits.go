package types

// ============================================================================
// Engine Limits
// ============================================================================
// Hard limits enforced by the enummap engine. MaxNameLen and MaxValueWidth
// derive from the serialized layout (name lengths travel as uint16, value
// widths as an unsigned word that hostile streams could inflate); the others
// bound allocation requests to sane magnitudes.

const (
	// MaxCapacityHint is the largest accepted capacity hint at map
	// creation. Hints above this are rejected as invalid arguments.
	MaxCapacityHint = 1 << 30

	// MaxNameLen is the longest entry name, in bytes, representable in
	// the serialized record layout. Longer names are rejected at
	// Associate time rather than truncated at write time.
	MaxNameLen = 1<<16 - 1

	// MaxValueWidth is the largest fixed value width, in bytes, accepted
	// at map creation. Bounds both caller mistakes and header fields
	// read from untrusted streams.
	MaxValueWidth = 1 << 24
)

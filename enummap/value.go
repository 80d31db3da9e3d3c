package enummap

// Value is the tagged payload stored against a key: either an owned copy of
// fixed-width bytes (copy storage) or a borrowed reference the map does not
// manage (reference storage). The zero Value is an empty bytes payload.
type Value struct {
	b     []byte
	ref   any
	isRef bool
}

// BytesValue wraps b as a copy-storage payload. Associate copies the bytes
// into map-owned storage; the caller's slice is not retained.
func BytesValue(b []byte) Value { return Value{b: b} }

// RefValue wraps v as a reference-storage payload. The map stores v as-is
// and never copies or releases it; the caller must keep it alive for as
// long as lookups may return it. A nil reference is permitted.
func RefValue(v any) Value { return Value{ref: v, isRef: true} }

// IsRef reports whether v carries a borrowed reference rather than bytes.
func (v Value) IsRef() bool { return v.isRef }

// Bytes returns the byte payload. For values returned by lookups on a
// copy-storage map this is the map-owned buffer; treat it as read-only.
// Nil for reference payloads.
func (v Value) Bytes() []byte {
	if v.isRef {
		return nil
	}
	return v.b
}

// Ref returns the borrowed reference, or nil for byte payloads.
func (v Value) Ref() any {
	if !v.isRef {
		return nil
	}
	return v.ref
}

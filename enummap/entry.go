package enummap

// entry is one key slot in a bucket chain.
type entry struct {
	key     int32
	name    string
	hasName bool
	val     []byte // owned copy, copy storage only
	ref     any    // borrowed reference, reference storage only
	next    *entry
}

// value re-wraps the stored payload as a tagged Value.
func (e *entry) value(valueSize int) Value {
	if valueSize > 0 {
		return Value{b: e.val}
	}
	return Value{ref: e.ref, isRef: true}
}

// hashKey distributes enumerant keys across buckets with Knuth's
// multiplicative hash. Typical enum keys are small and sequential; the
// multiplication spreads consecutive keys across the table.
func hashKey(key int32) uint32 {
	return uint32(key) * 2654435761
}

// Package enummap implements a chained hash table mapping small integer
// keys (enumerants) to values, optionally paired with a human-readable name
// per key.
//
// # Overview
//
// A Map is created with a capacity hint and a fixed value width. The width
// selects the storage mode:
//
//   - Copy storage (width > 0): the map owns a byte-for-byte copy of every
//     value and each value must be exactly the configured width.
//   - Reference storage (width 0): the map stores caller references without
//     copying; their lifetime remains the caller's responsibility.
//
// The two modes surface through the tagged Value type: BytesValue for owned
// copies, RefValue for borrowed references.
//
// # Semantics
//
// Keys are unique within a map. Associate is strict insert-only: a duplicate
// key is rejected with ErrExists and the stored value is untouched. There is
// no delete-by-key; Clear drops every entry at once while retaining
// capacity. The table doubles its bucket count whenever an insert would push
// the load factor above 0.75, so lookups stay O(1) amortized.
//
// Name lookup (FindByName) is a linear scan by design: no inverse index is
// maintained, trading lookup speed for zero memory overhead. Callers that
// resolve names frequently on large maps can opt into a secondary index
// with EnableNameIndex.
//
// # Serialization
//
// Serialize and Deserialize move a map through the fixed binary layout
// described in the internal/format package (magic-tagged header followed by
// one record per entry). Deserialization rebuilds the table through the
// normal insertion path, so uniqueness and load-factor invariants are
// re-enforced rather than trusted from the stream. WriteFile and OpenFile
// add durable file persistence on top of the stream codec.
//
// # Thread Safety
//
// A Map is not safe for concurrent use. Every operation runs under the
// map's lock seam, which ships as a no-op: the intended discipline is a
// single owner goroutine. Callers that need sharing install their own
// mutex via SetLocker rather than the package adding hidden locking.
package enummap

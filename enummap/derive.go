package enummap

import (
	"fmt"

	"github.com/joshuapare/enumkit/pkg/types"
)

// Copy creates an independent map with the same value width and flags,
// re-associating every entry through the normal insertion path. Copied
// byte values are fresh map-owned buffers; references stay borrowed from
// the same underlying objects. A read-only source yields a read-only copy.
// On any failure no map is returned.
func (m *Map) Copy() (*Map, error) {
	m.lk.Lock()
	defer m.lk.Unlock()

	hint := m.count
	if hint == 0 {
		hint = 1
	}
	// Build with mutation permitted, restore the flag word afterwards;
	// otherwise a read-only source could never be copied.
	out, err := New(hint, m.valueSize, m.flags&^types.FlagReadOnly)
	if err != nil {
		return nil, fmt.Errorf("copy: %w", err)
	}

	var insertErr error
	m.forEach(func(key int32, name string, hasName bool, v Value) {
		if insertErr != nil {
			return
		}
		if !hasName {
			name = ""
		}
		insertErr = out.associate(key, v, name)
	})
	if insertErr != nil {
		return nil, fmt.Errorf("copy: %w", insertErr)
	}

	out.flags = m.flags
	if m.names != nil {
		out.EnableNameIndex()
	}
	return out, nil
}

// Merge combines a and b into a new map. Both inputs must share a value
// width; the result's flags are the bitwise union of both inputs'.
//
// Entries of a are inserted first. For each entry of b whose key already
// exists in the result: with overwrite true, the existing value bytes are
// overwritten in place (the reference replaced, in reference storage) and
// the name replaced; with overwrite false the entry is skipped, keeping
// a's value. Fresh keys insert normally. On any failure no map is
// returned.
func Merge(a, b *Map, overwrite bool) (*Map, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("merge: nil map: %w", types.ErrInvalidArg)
	}
	if a.valueSize != b.valueSize {
		return nil, fmt.Errorf("merge: value widths differ (%d vs %d): %w",
			a.valueSize, b.valueSize, types.ErrInvalidArg)
	}

	a.lk.Lock()
	defer a.lk.Unlock()
	if b != a {
		b.lk.Lock()
		defer b.lk.Unlock()
	}

	flags := a.flags | b.flags
	hint := a.count + b.count
	if hint == 0 {
		hint = 1
	}
	out, err := New(hint, a.valueSize, flags&^types.FlagReadOnly)
	if err != nil {
		return nil, fmt.Errorf("merge: %w", err)
	}

	var insertErr error
	a.forEach(func(key int32, name string, hasName bool, v Value) {
		if insertErr != nil {
			return
		}
		if !hasName {
			name = ""
		}
		insertErr = out.associate(key, v, name)
	})
	if insertErr != nil {
		return nil, fmt.Errorf("merge: %w", insertErr)
	}

	b.forEach(func(key int32, name string, hasName bool, v Value) {
		if insertErr != nil {
			return
		}
		existing := out.findEntry(key)
		if existing == nil {
			if !hasName {
				name = ""
			}
			insertErr = out.associate(key, v, name)
			return
		}
		if !overwrite {
			return
		}
		if out.valueSize > 0 {
			copy(existing.val, v.b)
		} else {
			existing.ref = v.ref
		}
		if hasName && !flags.Has(types.FlagNoNames) {
			existing.name = name
			existing.hasName = true
		} else {
			existing.name = ""
			existing.hasName = false
		}
	})
	if insertErr != nil {
		return nil, fmt.Errorf("merge: %w", insertErr)
	}

	out.flags = flags
	if a.names != nil || b.names != nil {
		out.EnableNameIndex()
	}
	return out, nil
}

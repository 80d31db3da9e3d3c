package enummap

import (
	"fmt"

	"github.com/joshuapare/enumkit/pkg/types"
)

// Value returns the payload stored under key. In copy storage the returned
// bytes view the map-owned buffer; treat it as read-only. Fails with
// ErrNotFound when the key is absent.
func (m *Map) Value(key int32) (Value, error) {
	m.lk.Lock()
	defer m.lk.Unlock()
	e := m.findEntry(key)
	if e == nil {
		return Value{}, fmt.Errorf("key %d: %w", key, types.ErrNotFound)
	}
	return e.value(m.valueSize), nil
}

// Exists reports whether key is present.
func (m *Map) Exists(key int32) bool {
	m.lk.Lock()
	defer m.lk.Unlock()
	return m.findEntry(key) != nil
}

// ValueOr returns the payload stored under key, or def when absent.
func (m *Map) ValueOr(key int32, def Value) Value {
	m.lk.Lock()
	defer m.lk.Unlock()
	e := m.findEntry(key)
	if e == nil {
		return def
	}
	return e.value(m.valueSize)
}

// Name returns the name stored under key. Fails with ErrNotFound when the
// key is absent, the entry has no name, or the map was created with
// FlagNoNames (no name could ever be present).
func (m *Map) Name(key int32) (string, error) {
	m.lk.Lock()
	defer m.lk.Unlock()
	if m.flags.Has(types.FlagNoNames) {
		return "", fmt.Errorf("key %d: names suppressed: %w", key, types.ErrNotFound)
	}
	e := m.findEntry(key)
	if e == nil || !e.hasName {
		return "", fmt.Errorf("key %d: %w", key, types.ErrNotFound)
	}
	return e.name, nil
}

// FindByName returns the key whose entry carries exactly name.
//
// Without the optional index this is a full table scan in bucket-then-chain
// order, returning the first match: O(n), the deliberate tradeoff for
// keeping no inverse index. With EnableNameIndex the lookup is O(1); if
// several entries share the name, which key is returned is unspecified.
func (m *Map) FindByName(name string) (int32, error) {
	m.lk.Lock()
	defer m.lk.Unlock()
	if name == "" {
		return 0, fmt.Errorf("empty name: %w", types.ErrInvalidArg)
	}
	if m.flags.Has(types.FlagNoNames) {
		return 0, fmt.Errorf("name %q: names suppressed: %w", name, types.ErrNotFound)
	}
	if m.names != nil {
		if key, ok := m.names.lookup(m, name); ok {
			return key, nil
		}
		return 0, fmt.Errorf("name %q: %w", name, types.ErrNotFound)
	}
	for _, head := range m.buckets {
		for e := head; e != nil; e = e.next {
			if e.hasName && e.name == name {
				return e.key, nil
			}
		}
	}
	return 0, fmt.Errorf("name %q: %w", name, types.ErrNotFound)
}

// Visitor is called once per live entry during ForEach. hasName
// distinguishes an absent name from an empty one (always false under
// FlagNoNames). The value is the stored payload: a read-only view of the
// owned buffer in copy storage, the borrowed reference otherwise.
type Visitor func(key int32, name string, hasName bool, v Value)

// ForEach invokes fn once per live entry in bucket-then-chain order: a
// deterministic order derived from hashing, not insertion order. There is
// no early-termination protocol. The visitor must not mutate the map;
// with a real locker installed via SetLocker, doing so deadlocks.
func (m *Map) ForEach(fn Visitor) {
	m.lk.Lock()
	defer m.lk.Unlock()
	m.forEach(fn)
}

// forEach is ForEach without the lock seam.
func (m *Map) forEach(fn Visitor) {
	for _, head := range m.buckets {
		for e := head; e != nil; e = e.next {
			fn(e.key, e.name, e.hasName, e.value(m.valueSize))
		}
	}
}

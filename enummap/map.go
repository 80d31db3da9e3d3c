package enummap

import (
	"fmt"
	"sync"

	"github.com/joshuapare/enumkit/pkg/types"
)

const (
	// defaultBuckets is the minimum bucket count for any map.
	defaultBuckets = 16

	// Load factor threshold: an insert that would push count/buckets above
	// 3/4 doubles the table first. Expressed as a ratio to keep the check
	// in integer math.
	loadFactorNum = 3
	loadFactorDen = 4
)

// Map is a chained hash table keyed by integer enumerant. Create one with
// New; the zero Map is not usable.
type Map struct {
	count     int
	valueSize int
	flags     types.Flags
	buckets   []*entry

	// lk is the synchronization seam around every operation. It defaults
	// to a no-op; see SetLocker.
	lk sync.Locker

	// names is the optional inverse index, nil unless EnableNameIndex
	// has been called.
	names *nameIndex
}

// nopLocker is the default lock seam: single-owner use, zero cost.
type nopLocker struct{}

func (nopLocker) Lock()   {}
func (nopLocker) Unlock() {}

// New creates a map sized for capacityHint entries.
//
// valueSize selects the storage mode: a positive width means every value is
// a map-owned copy of exactly that many bytes; zero means values are
// borrowed references. The hint only sizes the initial bucket array; the
// map grows past it transparently.
func New(capacityHint, valueSize int, flags types.Flags) (*Map, error) {
	if capacityHint <= 0 || capacityHint > types.MaxCapacityHint {
		return nil, fmt.Errorf("capacity hint %d: %w", capacityHint, types.ErrInvalidArg)
	}
	if valueSize < 0 || valueSize > types.MaxValueWidth {
		return nil, fmt.Errorf("value size %d: %w", valueSize, types.ErrInvalidArg)
	}
	if !flags.Valid() {
		return nil, fmt.Errorf("flags %#x: %w", uint32(flags), types.ErrInvalidArg)
	}

	n := defaultBuckets
	if capacityHint*loadFactorDen > n*loadFactorNum {
		n = capacityHint*loadFactorDen/loadFactorNum + 1
	}

	return &Map{
		valueSize: valueSize,
		flags:     flags,
		buckets:   make([]*entry, n),
		lk:        nopLocker{},
	}, nil
}

// SetLocker installs lk around every subsequent operation. Passing nil
// restores the default no-op seam. The locker must not be reentrant-hostile:
// operations never nest lock acquisitions on the same map.
func (m *Map) SetLocker(lk sync.Locker) {
	if lk == nil {
		lk = nopLocker{}
	}
	m.lk = lk
}

// Count returns the number of live entries.
func (m *Map) Count() int {
	m.lk.Lock()
	defer m.lk.Unlock()
	return m.count
}

// ValueSize returns the fixed value width in bytes, 0 for reference storage.
func (m *Map) ValueSize() int { return m.valueSize }

// Flags returns the configuration flags the map was created with.
func (m *Map) Flags() types.Flags { return m.flags }

// Associate inserts a value, and optionally a name, under key.
//
// The insert is strict: if key is already present the call fails with
// ErrExists and nothing changes. In copy storage v must carry exactly
// ValueSize bytes, which are copied into map-owned storage; in reference
// storage v must carry a reference, which is borrowed. An empty name means
// no name; names are discarded entirely under FlagNoNames.
func (m *Map) Associate(key int32, v Value, name string) error {
	m.lk.Lock()
	defer m.lk.Unlock()
	return m.associate(key, v, name)
}

// associate is Associate without the lock seam, shared with the codec and
// derivation paths.
func (m *Map) associate(key int32, v Value, name string) error {
	if m.flags.Has(types.FlagReadOnly) {
		return types.ErrReadOnly
	}
	if m.findEntry(key) != nil {
		return fmt.Errorf("key %d: %w", key, types.ErrExists)
	}
	if m.valueSize > 0 {
		if v.isRef {
			return fmt.Errorf("key %d: reference value in copy-storage map: %w", key, types.ErrInvalidArg)
		}
		if len(v.b) != m.valueSize {
			return fmt.Errorf("key %d: value is %d bytes, map stores %d: %w",
				key, len(v.b), m.valueSize, types.ErrInvalidArg)
		}
	} else if !v.isRef {
		return fmt.Errorf("key %d: byte value in reference-storage map: %w", key, types.ErrInvalidArg)
	}
	if len(name) > types.MaxNameLen {
		return fmt.Errorf("key %d: name is %d bytes, limit %d: %w",
			key, len(name), types.MaxNameLen, types.ErrInvalidArg)
	}

	// Grow before linking so the chain walk above stays consistent.
	if (m.count+1)*loadFactorDen > len(m.buckets)*loadFactorNum {
		m.resize(len(m.buckets) * 2)
	}

	e := &entry{key: key}
	if m.valueSize > 0 {
		e.val = make([]byte, m.valueSize)
		copy(e.val, v.b)
	} else {
		e.ref = v.ref
	}
	if name != "" && !m.flags.Has(types.FlagNoNames) {
		e.name = name
		e.hasName = true
	}

	idx := hashKey(key) % uint32(len(m.buckets))
	e.next = m.buckets[idx]
	m.buckets[idx] = e
	m.count++

	if m.names != nil && e.hasName {
		m.names.add(e.name, e.key)
	}
	return nil
}

// Freeze marks the map read-only: subsequent Associate and Clear calls
// fail with ErrReadOnly, lookups are unaffected. There is no unfreeze.
// This is the practical way to build a read-only map, since a map created
// with FlagReadOnly rejects its own population.
func (m *Map) Freeze() {
	m.lk.Lock()
	defer m.lk.Unlock()
	m.flags |= types.FlagReadOnly
}

// Clear removes every entry while retaining the bucket array, so the map
// keeps its capacity. Fails with ErrReadOnly on read-only maps.
func (m *Map) Clear() error {
	m.lk.Lock()
	defer m.lk.Unlock()
	if m.flags.Has(types.FlagReadOnly) {
		return types.ErrReadOnly
	}
	for i := range m.buckets {
		m.buckets[i] = nil
	}
	m.count = 0
	if m.names != nil {
		m.names.reset()
	}
	return nil
}

// findEntry walks the target bucket chain for an exact key match.
func (m *Map) findEntry(key int32) *entry {
	idx := hashKey(key) % uint32(len(m.buckets))
	for e := m.buckets[idx]; e != nil; e = e.next {
		if e.key == key {
			return e
		}
	}
	return nil
}

// resize rehashes every entry into a table of newSize buckets. Relinking
// prepends, so chain order reverses relative to the old traversal; chain
// order carries no semantic meaning.
func (m *Map) resize(newSize int) {
	next := make([]*entry, newSize)
	for _, head := range m.buckets {
		for e := head; e != nil; {
			n := e.next
			idx := hashKey(e.key) % uint32(newSize)
			e.next = next[idx]
			next[idx] = e
			e = n
		}
	}
	m.buckets = next
}

// Package typedmap is a type-safe façade over the enummap engine.
//
// Map[T] stores values of one Go type against enumerant keys, boxing each
// value so the underlying reference-storage map owns nothing it cannot.
// The façade adds no invariants of its own: every semantic (strict
// insert-only keys, optional names, flag behavior) is the engine's.
package typedmap

import (
	"fmt"

	"github.com/joshuapare/enumkit/enummap"
	"github.com/joshuapare/enumkit/pkg/types"
)

// Map wraps an enummap.Map in reference-storage mode with values of type T.
type Map[T any] struct {
	m *enummap.Map
}

// Pair is one (key, name, value) triple for FromPairs construction.
type Pair[T any] struct {
	Key  int32
	Name string
	Val  T
}

// New creates an empty typed map sized for capacityHint entries.
func New[T any](capacityHint int, flags types.Flags) (*Map[T], error) {
	m, err := enummap.New(capacityHint, 0, flags)
	if err != nil {
		return nil, err
	}
	return &Map[T]{m: m}, nil
}

// FromPairs builds a typed map from a literal pair list, the Go analogue of
// initializer-list construction. Duplicate keys in pairs fail with
// ErrExists.
func FromPairs[T any](pairs []Pair[T], flags types.Flags) (*Map[T], error) {
	hint := len(pairs)
	if hint == 0 {
		hint = 1
	}
	tm, err := New[T](hint, flags)
	if err != nil {
		return nil, err
	}
	for _, p := range pairs {
		if err := tm.Associate(p.Key, p.Val, p.Name); err != nil {
			return nil, err
		}
	}
	return tm, nil
}

// Associate inserts val, and optionally a name, under key. The value is
// copied into a box owned by the typed map.
func (tm *Map[T]) Associate(key int32, val T, name string) error {
	boxed := val
	return tm.m.Associate(key, enummap.RefValue(&boxed), name)
}

// Get returns the value stored under key.
func (tm *Map[T]) Get(key int32) (T, error) {
	var zero T
	v, err := tm.m.Value(key)
	if err != nil {
		return zero, err
	}
	p, ok := v.Ref().(*T)
	if !ok || p == nil {
		return zero, fmt.Errorf("key %d: stored value is not %T: %w", key, zero, types.ErrInvalidArg)
	}
	return *p, nil
}

// GetOr returns the value stored under key, or def when absent.
func (tm *Map[T]) GetOr(key int32, def T) T {
	v, err := tm.Get(key)
	if err != nil {
		return def
	}
	return v
}

// Contains reports whether key is present.
func (tm *Map[T]) Contains(key int32) bool { return tm.m.Exists(key) }

// Name returns the name stored under key.
func (tm *Map[T]) Name(key int32) (string, error) { return tm.m.Name(key) }

// Find returns the key associated with name.
func (tm *Map[T]) Find(name string) (int32, error) { return tm.m.FindByName(name) }

// Len returns the number of entries.
func (tm *Map[T]) Len() int { return tm.m.Count() }

// Clear removes every entry.
func (tm *Map[T]) Clear() error { return tm.m.Clear() }

// Keys collects every key in iteration order.
func (tm *Map[T]) Keys() []int32 {
	out := make([]int32, 0, tm.m.Count())
	tm.m.ForEach(func(key int32, _ string, _ bool, _ enummap.Value) {
		out = append(out, key)
	})
	return out
}

// Names collects every stored name in iteration order, skipping unnamed
// entries.
func (tm *Map[T]) Names() []string {
	var out []string
	tm.m.ForEach(func(_ int32, name string, hasName bool, _ enummap.Value) {
		if hasName {
			out = append(out, name)
		}
	})
	return out
}

// ForEach invokes fn per entry in the engine's iteration order. Entries
// whose box is not a *T (impossible through this façade) are skipped.
func (tm *Map[T]) ForEach(fn func(key int32, name string, val T)) {
	tm.m.ForEach(func(key int32, name string, _ bool, v enummap.Value) {
		if p, ok := v.Ref().(*T); ok && p != nil {
			fn(key, name, *p)
		}
	})
}

// Underlying exposes the wrapped engine map for interop with the stream
// codec and CLI tooling.
func (tm *Map[T]) Underlying() *enummap.Map { return tm.m }

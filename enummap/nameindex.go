package enummap

import "github.com/cespare/xxhash/v2"

// nameIndex is the opt-in inverse index from entry names to keys. It maps
// 64-bit name hashes to candidate key lists; hits verify against the live
// entry, so a hash collision can never return a wrong key.
type nameIndex struct {
	byHash map[uint64][]int32
}

// EnableNameIndex builds and maintains a secondary name-to-key index,
// turning FindByName from a linear scan into a hash lookup. The index is
// kept consistent by every subsequent mutation and costs one map slot per
// named entry. Enabling is sticky and idempotent.
func (m *Map) EnableNameIndex() {
	m.lk.Lock()
	defer m.lk.Unlock()
	if m.names != nil {
		return
	}
	ix := &nameIndex{byHash: make(map[uint64][]int32, m.count)}
	for _, head := range m.buckets {
		for e := head; e != nil; e = e.next {
			if e.hasName {
				ix.add(e.name, e.key)
			}
		}
	}
	m.names = ix
}

func (ix *nameIndex) add(name string, key int32) {
	h := xxhash.Sum64String(name)
	ix.byHash[h] = append(ix.byHash[h], key)
}

func (ix *nameIndex) drop(name string, key int32) {
	h := xxhash.Sum64String(name)
	keys := ix.byHash[h]
	for i, k := range keys {
		if k == key {
			keys[i] = keys[len(keys)-1]
			keys = keys[:len(keys)-1]
			break
		}
	}
	if len(keys) == 0 {
		delete(ix.byHash, h)
		return
	}
	ix.byHash[h] = keys
}

func (ix *nameIndex) reset() {
	ix.byHash = make(map[uint64][]int32)
}

// lookup resolves name to a key, verifying each candidate against the live
// entry. Caller holds the map's lock seam.
func (ix *nameIndex) lookup(m *Map, name string) (int32, bool) {
	for _, key := range ix.byHash[xxhash.Sum64String(name)] {
		if e := m.findEntry(key); e != nil && e.hasName && e.name == name {
			return key, true
		}
	}
	return 0, false
}

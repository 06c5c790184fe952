package collection

import "hhvm/value"

// Map is a generic-keyed (int or string, after canonicalization) ordered
// collection — the role HHVM's c_Map plays — grounded on the teacher's
// goMap (types/map.go) hashing strategy, generalized from copy-on-write
// to refcounted in-place mutation.
type Map struct {
	entries []mapEntry
	index   map[value.ArrayKey]int
}

type mapEntry struct {
	key value.ArrayKey
	val value.Cell
	live bool
}

func NewMap() *Map {
	return &Map{index: make(map[value.ArrayKey]int)}
}

func (m *Map) Len() int {
	n := 0
	for _, e := range m.entries {
		if e.live {
			n++
		}
	}
	return n
}

func keyOf(k value.Cell) (value.ArrayKey, bool) {
	switch k.Kind {
	case value.KindInt:
		return value.IntKey(k.IntVal()), true
	case value.KindString, value.KindStaticString:
		return value.StringKey(k.Str_().Data()), true
	default:
		return value.ArrayKey{}, false
	}
}

func (m *Map) At(k value.Cell) (value.Cell, bool) {
	ak, ok := keyOf(k)
	if !ok {
		return value.Uninit(), false
	}
	pos, ok := m.index[ak]
	if !ok || !m.entries[pos].live {
		return value.Uninit(), false
	}
	return m.entries[pos].val, true
}

// AtLval implements c_Map::at's lval form: like Vector, a Map never
// auto-vivifies a missing key on read-for-write either — only Set
// (c_Map::set) introduces a new key, matching the original's distinction
// between "at" (throws/errors if absent) and "set" (upserts).
func (m *Map) AtLval(k value.Cell) *value.Cell {
	ak, ok := keyOf(k)
	if !ok {
		return nil
	}
	pos, ok := m.index[ak]
	if !ok || !m.entries[pos].live {
		return nil
	}
	return &m.entries[pos].val
}

func (m *Map) Set(k value.Cell, val value.Cell) {
	ak, ok := keyOf(k)
	if !ok {
		return
	}
	if pos, ok := m.index[ak]; ok && m.entries[pos].live {
		value.Release(m.entries[pos].val)
		m.entries[pos].val = val
		return
	}
	m.entries = append(m.entries, mapEntry{key: ak, val: val, live: true})
	m.index[ak] = len(m.entries) - 1
}

// Append is a no-op-by-rejection: Map has no "push_back" protocol, a
// Map requires an explicit key on every write (c_Map has no offsetSet
// with a null key, unlike a plain array's `$a[] = x`).
func (m *Map) Append(value.Cell) {}

func (m *Map) Isset(k value.Cell) bool {
	c, ok := m.At(k)
	return ok && !c.IsNull()
}

func (m *Map) Unset(k value.Cell) bool {
	ak, ok := keyOf(k)
	if !ok {
		return false
	}
	pos, ok := m.index[ak]
	if !ok || !m.entries[pos].live {
		return false
	}
	value.Release(m.entries[pos].val)
	m.entries[pos] = mapEntry{}
	delete(m.index, ak)
	return true
}

func (m *Map) CanAppend() bool { return false }
func (m *Map) CanUnset() bool  { return true }

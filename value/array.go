package value

// ArrayKey is the canonicalized key of an array entry: after
// IsStrictlyIntegerKey is applied, every key is either an int64 or a
// string, never both — mirrors the original's KindOfInt64/KindOfString
// split inside ArrayData.
type ArrayKey struct {
	IsInt bool
	Int   int64
	Str   string
}

func IntKey(i int64) ArrayKey    { return ArrayKey{IsInt: true, Int: i} }
func StringKey(s string) ArrayKey {
	if n, ok := IsStrictlyIntegerKey(s); ok {
		return ArrayKey{IsInt: true, Int: n}
	}
	return ArrayKey{Str: s}
}

// arrayEntry is one slot of the array, kept in insertion order.
type arrayEntry struct {
	key  ArrayKey
	val  Cell
	live bool // false once Remove has tombstoned this slot
}

// ArrayData is a refcounted, insertion-ordered, int-or-string-keyed
// container — the generic PHP-array analogue the pack has no direct
// teacher for (MOO's lists and maps are always one or the other, never
// combined); built fresh against the interface spec.md §6 names
// (get/lval/lval_ref/lval_append/set/append/remove/exists/
// has_multiple_refs), using the teacher's list/map COW technique
// (types/list.go, types/map.go) for the entry-table shape.
type ArrayData struct {
	entries  []arrayEntry
	index    map[ArrayKey]int // key -> position in entries
	nextInt  int64
	refs     int32
}

func NewArray() *ArrayData {
	return &ArrayData{index: make(map[ArrayKey]int), refs: 1}
}

func (a *ArrayData) IncRef() {
	if a == nil {
		return
	}
	a.refs++
}

func (a *ArrayData) DecRef() {
	if a == nil {
		return
	}
	a.refs--
}

// HasMultipleRefs mirrors hasMultipleRefs(): a COW write must copy first
// whenever another live reference could observe an in-place mutation.
func (a *ArrayData) HasMultipleRefs() bool {
	if a == nil {
		return false
	}
	return a.refs > 1
}

func (a *ArrayData) Len() int {
	if a == nil {
		return 0
	}
	n := 0
	for _, e := range a.entries {
		if e.live {
			n++
		}
	}
	return n
}

// Copy returns a deep-enough single-owner duplicate: entries are copied,
// and any refcounted element value has its count bumped (Duplicate),
// exactly as the original's copy-on-write array clone bumps its children.
func (a *ArrayData) Copy() *ArrayData {
	n := &ArrayData{
		entries: make([]arrayEntry, len(a.entries)),
		index:   make(map[ArrayKey]int, len(a.index)),
		nextInt: a.nextInt,
		refs:    1,
	}
	copy(n.entries, a.entries)
	for i := range n.entries {
		n.entries[i].val = Duplicate(n.entries[i].val)
	}
	for k, v := range a.index {
		n.index[k] = v
	}
	return n
}

// Get implements ArrayData::get: returns the value at key, or Uninit with
// ok=false when absent.
func (a *ArrayData) Get(k ArrayKey) (Cell, bool) {
	if a == nil {
		return Uninit(), false
	}
	pos, ok := a.index[k]
	if !ok || !a.entries[pos].live {
		return Uninit(), false
	}
	return a.entries[pos].val, true
}

func (a *ArrayData) Exists(k ArrayKey) bool {
	_, ok := a.Get(k)
	return ok
}

// Lval implements ArrayData::lval: returns a pointer to the slot at key,
// creating it as Null if absent. The pointer is only stable until the
// next Set/Append/Remove on this same ArrayData (those may reallocate
// a.entries); member package callers use it immediately and do not retain
// it across another mutation.
func (a *ArrayData) Lval(k ArrayKey) *Cell {
	if pos, ok := a.index[k]; ok && a.entries[pos].live {
		return &a.entries[pos].val
	}
	return a.insert(k, Null())
}

// LvalRef implements ArrayData::lval_ref: like Lval, but the returned slot
// is expected to become a KindRef cell (the caller installs the RefData);
// Lval and LvalRef differ in the original only in how the engine treats
// the slot afterward, not in how it's found/created, so they share code.
func (a *ArrayData) LvalRef(k ArrayKey) *Cell {
	return a.Lval(k)
}

// LvalAppend implements ArrayData::lval_append: allocate a new trailing
// int-keyed slot (NewElem's target) and return a pointer to it.
func (a *ArrayData) LvalAppend() *Cell {
	k := IntKey(a.nextInt)
	return a.insert(k, Null())
}

// Set implements ArrayData::set: overwrite (or create) the slot at key.
func (a *ArrayData) Set(k ArrayKey, v Cell) {
	if pos, ok := a.index[k]; ok && a.entries[pos].live {
		Release(a.entries[pos].val)
		a.entries[pos].val = v
		return
	}
	*a.insert(k, v) = v
}

// Append implements ArrayData::append: set at the next available int key.
func (a *ArrayData) Append(v Cell) ArrayKey {
	k := IntKey(a.nextInt)
	a.Set(k, v)
	return k
}

// Remove implements ArrayData::remove: tombstone the slot at key, if any.
func (a *ArrayData) Remove(k ArrayKey) {
	pos, ok := a.index[k]
	if !ok || !a.entries[pos].live {
		return
	}
	Release(a.entries[pos].val)
	a.entries[pos] = arrayEntry{}
	delete(a.index, k)
}

// Keys returns the live keys in insertion order.
func (a *ArrayData) Keys() []ArrayKey {
	keys := make([]ArrayKey, 0, len(a.entries))
	for _, e := range a.entries {
		if e.live {
			keys = append(keys, e.key)
		}
	}
	return keys
}

func (a *ArrayData) insert(k ArrayKey, v Cell) *Cell {
	a.entries = append(a.entries, arrayEntry{key: k, val: v, live: true})
	pos := len(a.entries) - 1
	a.index[k] = pos
	if k.IsInt && k.Int >= a.nextInt {
		a.nextInt = k.Int + 1
	}
	return &a.entries[pos].val
}

package value

import "fmt"

// Cell is a tagged-value slot: a base cell, a scratch cell, or an element
// inside an Array/Object. Exactly one of the payload fields is meaningful
// for a given Kind. Cell is deliberately a value type (not a pointer) —
// callers hold a *Cell when they need the "slot" semantics spec.md §3
// describes; copying a Cell by value never itself adjusts refcounts, that
// is the job of Duplicate/Release below, exactly like tvCopy vs cellDup in
// the original.
type Cell struct {
	Kind Kind

	b   bool
	i   int64
	d   float64
	str *StringData
	arr *ArrayData
	obj *ObjectData
	res *ResourceData
	ref *RefData
	cls *ClassData
}

// Uninit, Null are the two canonical emptyish cells. They're returned by
// value, so callers can't accidentally alias the "one true null sentinel"
// the original keeps around (init_null_variant) — a plain Cell copy is
// cheap and carries no refcount.
func Uninit() Cell { return Cell{Kind: KindUninit} }
func Null() Cell   { return Cell{Kind: KindNull} }
func Bool(b bool) Cell {
	return Cell{Kind: KindBool, b: b}
}
func Int(i int64) Cell {
	return Cell{Kind: KindInt, i: i}
}
func Double(d float64) Cell {
	return Cell{Kind: KindDouble, d: d}
}

// Str wraps a StringData. If sd.static is true the resulting Cell's Kind is
// KindStaticString, otherwise KindString; both interpret identically in
// member ops, only Refcounted() differs.
func Str(sd *StringData) Cell {
	k := KindString
	if sd.static {
		k = KindStaticString
	}
	return Cell{Kind: k, str: sd}
}

func Arr(a *ArrayData) Cell {
	return Cell{Kind: KindArray, arr: a}
}

func Obj(o *ObjectData) Cell {
	return Cell{Kind: KindObject, obj: o}
}

func Resource(r *ResourceData) Cell {
	return Cell{Kind: KindResource, res: r}
}

func Ref(r *RefData) Cell {
	return Cell{Kind: KindRef, ref: r}
}

func Class(c *ClassData) Cell {
	return Cell{Kind: KindClass, cls: c}
}

func (c Cell) IsNull() bool   { return c.Kind == KindUninit || c.Kind == KindNull }
func (c Cell) BoolVal() bool  { return c.b }
func (c Cell) IntVal() int64  { return c.i }
func (c Cell) FloatVal() float64 { return c.d }
func (c Cell) Str_() *StringData { return c.str }
func (c Cell) Arr_() *ArrayData  { return c.arr }
func (c Cell) Obj_() *ObjectData { return c.obj }
func (c Cell) Res_() *ResourceData { return c.res }
func (c Cell) RefData_() *RefData  { return c.ref }

// Truthy implements the language's truthiness rules: false/0/0.0/""/"0"/
// empty-array are falsy, everything else (including any object) is truthy.
// Null resolution via Unbox must happen before calling this for Ref cells.
func (c Cell) Truthy() bool {
	switch c.Kind {
	case KindUninit, KindNull:
		return false
	case KindBool:
		return c.b
	case KindInt:
		return c.i != 0
	case KindDouble:
		return c.d != 0
	case KindStaticString, KindString:
		s := c.str.Data()
		return s != "" && s != "0"
	case KindArray:
		return c.arr.Len() > 0
	case KindObject:
		return true
	case KindResource:
		return true
	default:
		return false
	}
}

func (c Cell) String() string {
	switch c.Kind {
	case KindUninit:
		return "<uninit>"
	case KindNull:
		return "null"
	case KindBool:
		if c.b {
			return "true"
		}
		return "false"
	case KindInt:
		return fmt.Sprintf("%d", c.i)
	case KindDouble:
		return fmt.Sprintf("%g", c.d)
	case KindStaticString, KindString:
		return c.str.Data()
	case KindArray:
		return "Array"
	case KindObject:
		return fmt.Sprintf("Object(%s)", c.obj.Class)
	case KindResource:
		return "Resource"
	case KindRef:
		return "&" + c.ref.Inner.String()
	case KindClass:
		return fmt.Sprintf("Class(%s)", c.cls.Name)
	default:
		return "<?>"
	}
}

// Refcounted reports whether c's Kind carries a refcounted heap payload.
// Static strings, despite sharing KindString's shape, are immortal and thus
// not refcounted — mirrors isRefcountedType's exclusion of KindStaticString.
func (c Cell) Refcounted() bool {
	switch c.Kind {
	case KindString, KindArray, KindObject, KindResource, KindRef:
		return true
	default:
		return false
	}
}

// Duplicate returns a Cell that is a correct copy of c from a refcounting
// standpoint: refcounted payloads get their count bumped, everything else
// is copied by value. Call this whenever a Cell escapes into a second slot
// (e.g. when materializing a read result into a scratch cell that aliases
// a container element).
func Duplicate(c Cell) Cell {
	if c.Refcounted() {
		switch c.Kind {
		case KindString:
			c.str.IncRef()
		case KindArray:
			c.arr.IncRef()
		case KindObject:
			c.obj.IncRef()
		case KindResource:
			c.res.IncRef()
		case KindRef:
			c.ref.IncRef()
		}
	}
	return c
}

// Release decrements the refcount of c's payload (if any), freeing it on
// the transition to zero. Every acquired reference in package member must
// be balanced by exactly one Release, on every path including warning and
// fatal-error paths (spec.md §3 invariants, §7).
func Release(c Cell) {
	if !c.Refcounted() {
		return
	}
	switch c.Kind {
	case KindString:
		c.str.DecRef()
	case KindArray:
		c.arr.DecRef()
	case KindObject:
		c.obj.DecRef()
	case KindResource:
		c.res.DecRef()
	case KindRef:
		c.ref.DecRef()
	}
}

// WriteNull overwrites *slot with Null, releasing whatever was there.
func WriteNull(slot *Cell) {
	Release(*slot)
	*slot = Null()
}

// WriteUninit overwrites *slot with Uninit, releasing whatever was there.
func WriteUninit(slot *Cell) {
	Release(*slot)
	*slot = Uninit()
}

// Assign overwrites *slot with v, releasing the old payload and taking
// ownership of v's (already-held) reference. Callers that still need v
// afterwards must Duplicate first.
func Assign(slot *Cell, v Cell) {
	old := *slot
	*slot = v
	Release(old)
}

// Unbox resolves a single level of Ref indirection. Every member-op entry
// point calls this on its base slot before dispatching, per spec.md §3's
// "Ref and Class" remarks: a Ref is transparently unwrapped, a Class is a
// programming error.
func Unbox(c *Cell) *Cell {
	if c.Kind == KindRef {
		return &c.ref.Inner
	}
	return c
}

// Plausible runs a handful of invariant checks useful in tests and in the
// abort path; it never runs on a release fast path. Mirrors cellIsPlausible
// in the original, which is assert-only.
func Plausible(c Cell) bool {
	switch c.Kind {
	case KindStaticString, KindString:
		return c.str != nil
	case KindArray:
		return c.arr != nil
	case KindObject:
		return c.obj != nil
	case KindResource:
		return c.res != nil
	case KindRef:
		return c.ref != nil
	case KindClass:
		return c.cls != nil
	default:
		return true
	}
}

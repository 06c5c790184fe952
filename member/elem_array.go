package member

import (
	"hhvm/diag"
	"hhvm/value"
)

// cowArray returns the ArrayData a write should mutate: base.arr itself
// if it's exclusively owned, or a fresh Copy() otherwise (spec.md §5's
// copy-on-write invariant); the caller installs a copy into base with
// installArray. Returns the array to
// mutate and whether a copy was made, so callers that need arrayRefShuffle
// semantics can tell the two cases apart.
func cowArray(base *value.Cell) (*value.ArrayData, bool) {
	arr := base.Arr_()
	if !arr.HasMultipleRefs() {
		return arr, false
	}
	n := arr.Copy()
	return n, true
}

// installArray writes arr back into base, releasing whatever was there
// (the prior, shared ArrayData). Only called when cowArray actually made
// a copy. It is also the path for a base reached through a Ref: the
// dispatchers unbox the Ref and pass its inner cell here. arrayRefShuffle
// below handles the case where a re-entrant write already changed what
// the Ref points at, but no function in this package calls it.
func installArray(base *value.Cell, arr *value.ArrayData) {
	value.Assign(base, value.Arr(arr))
}

// arrayRefShuffle implements the SUPPLEMENTED FEATURES ref-aliasing
// shuffle: base was reached through a RefData, and a COW copy of its
// array was just made. If, by the time the copy is ready to install, a
// re-entrant member-op call (triggered by an offsetGet/__get overload
// invoked earlier in this same chain) has already replaced ref.Inner with
// some other array, the freshly made copy is discarded — the re-entrant
// write wins — and the ref's current array is what gets mutated/returned
// instead. original is observed by pointer identity of the pre-copy
// ArrayData.
func arrayRefShuffle(ref *value.RefData, preCopy *value.ArrayData, newArr *value.ArrayData) *value.ArrayData {
	if ref.Inner.Kind == value.KindArray && ref.Inner.Arr_() != preCopy {
		// Someone already swapped the ref's contents out from under us;
		// drop our copy and defer to whatever's there now.
		return ref.Inner.Arr_()
	}
	value.Assign(&ref.Inner, value.Arr(newArr))
	return newArr
}

// ElemArray implements read-mode element access on an array base
// (Elem/ElemU). warnOnMiss distinguishes Elem (true: raises "Undefined
// index" on a miss) from ElemU (false: silent, used by isset/unset/
// ElemD-chaining callers that tolerate absence).
func ElemArray(ctx Ctx, base value.Cell, key value.Cell, warnOnMiss bool) value.Cell {
	ak, ok := arrayKeyFromCell(key)
	if !ok {
		ctx.warn(diag.CodeIllegalOffsetType)
		return value.Null()
	}
	v, found := base.Arr_().Get(ak)
	if !found {
		if warnOnMiss {
			ctx.notice(diag.CodeUndefinedIndex, keyDisplay(ak))
		}
		return value.Null()
	}
	return v
}

// ElemDArray implements define-mode element access (ElemD): copy the
// array if shared, create-or-find the slot for key, and return a pointer
// into the (possibly new) array, which is reinstalled into base. warn
// mirrors spec.md §6's elem_d warn flag: when set, a key that didn't
// already exist raises "Undefined index" before the slot is created,
// same as the original's ElemDArray<warn>.
func ElemDArray(ctx Ctx, base *value.Cell, key value.Cell, warn bool) *value.Cell {
	ak, ok := arrayKeyFromCell(key)
	arr, copied := cowArray(base)
	if copied {
		installArray(base, arr)
	}
	if !ok {
		scratch := new(value.Cell)
		*scratch = value.Null()
		return scratch
	}
	if warn {
		if _, found := arr.Get(ak); !found {
			ctx.notice(diag.CodeUndefinedIndex, keyDisplay(ak))
		}
	}
	return arr.Lval(ak)
}

// NewElemArray implements append-mode (NewElem, `base[]`) on an array
// base: copy-on-write, then hand back a pointer to a freshly appended
// null slot.
func NewElemArray(base *value.Cell) *value.Cell {
	arr, copied := cowArray(base)
	slot := arr.LvalAppend()
	if copied {
		installArray(base, arr)
	}
	return slot
}

// SetElemArray implements write-mode (SetElem, `base[key] = val`) on an
// array base: copy-on-write, canonicalize key, set, return val.
func SetElemArray(ctx Ctx, base *value.Cell, key value.Cell, val value.Cell) value.Cell {
	ak, ok := arrayKeyFromCell(key)
	if !ok {
		ctx.warn(diag.CodeIllegalOffsetType)
		return val
	}
	arr, copied := cowArray(base)
	arr.Set(ak, value.Duplicate(val))
	if copied {
		installArray(base, arr)
	}
	return val
}

// SetNewElemArray implements append-write (SetNewElem, `base[] = val`)
// on an array base.
func SetNewElemArray(base *value.Cell, val value.Cell) {
	arr, copied := cowArray(base)
	arr.Append(value.Duplicate(val))
	if copied {
		installArray(base, arr)
	}
}

// UnsetElemArray implements UnsetElem on an array base.
func UnsetElemArray(base *value.Cell, key value.Cell) {
	ak, ok := arrayKeyFromCell(key)
	if !ok {
		return
	}
	arr, copied := cowArray(base)
	arr.Remove(ak)
	if copied {
		installArray(base, arr)
	}
}

// IssetEmptyElemArray implements isset/empty on an array base. isset is
// true iff the key exists and its value isn't null; empty additionally
// treats a falsy existing value as empty.
func IssetEmptyElemArray(base value.Cell, key value.Cell, wantEmpty bool) bool {
	ak, ok := arrayKeyFromCell(key)
	if !ok {
		return wantEmpty
	}
	v, found := base.Arr_().Get(ak)
	if !found || v.IsNull() {
		return wantEmpty
	}
	if !wantEmpty {
		return true
	}
	return !v.Truthy()
}

func keyDisplay(k value.ArrayKey) any {
	if k.IsInt {
		return k.Int
	}
	return k.Str
}

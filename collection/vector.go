// Package collection implements the typed collection library
// (Vector, Map) that an ObjectData with IsCollection set delegates element
// access to, instead of the generic property+subscript-protocol path
// package member otherwise uses. Grounded on the teacher's types.ListValue
// / types.MapValue (MOO's built-in list and map, the closest analogue in
// the pack to HHVM's Vector/Map collection classes), but refcounted and
// mutated in place like the rest of this port rather than copy-on-every-
// write — a Vector is a reference type in the original, same as any other
// object.
package collection

import "hhvm/value"

// Vector is an integer-indexed, 0-based, dense, append-friendly
// collection — the role HHVM's c_Vector plays. Index semantics mirror
// the teacher's sliceList (types/list.go) with the 1-based-ness removed,
// since this domain's collections are 0-based like their PHP/HHVM
// counterparts rather than MOO's 1-based lists.
type Vector struct {
	elements []value.Cell
}

func NewVector() *Vector { return &Vector{} }

func (v *Vector) Len() int { return len(v.elements) }

// At implements the read side of Vector's offsetGet: in-range only, no
// auto-vivification — out-of-range is always an error, never creates a
// hole, matching the original's c_Vector::offsetGet bounds check.
func (v *Vector) At(k value.Cell) (value.Cell, bool) {
	i, ok := indexOf(k, len(v.elements))
	if !ok {
		return value.Uninit(), false
	}
	return v.elements[i], true
}

// AtLval implements c_Vector::offsetGet's lval variant: in-range only,
// same as At — Vector never grows through element-write the way a plain
// array does, it only grows through Append (push_back in the original).
func (v *Vector) AtLval(k value.Cell) *value.Cell {
	i, ok := indexOf(k, len(v.elements))
	if !ok {
		return nil
	}
	return &v.elements[i]
}

func (v *Vector) Set(k value.Cell, val value.Cell) {
	i, ok := indexOf(k, len(v.elements))
	if !ok {
		return
	}
	value.Release(v.elements[i])
	v.elements[i] = val
}

func (v *Vector) Append(val value.Cell) {
	v.elements = append(v.elements, val)
}

func (v *Vector) Isset(k value.Cell) bool {
	c, ok := v.At(k)
	return ok && !c.IsNull()
}

// Unset always fails for a Vector: removing a middle element would shift
// every subsequent index, which the original's c_Vector refuses to do
// implicitly (diag.CodeCannotUnsetStringOffsets's sibling case for
// collections — spec.md's "Collection elements cannot be taken by
// reference" note extends to unset too).
func (v *Vector) Unset(value.Cell) bool { return false }

func (v *Vector) CanAppend() bool { return true }
func (v *Vector) CanUnset() bool  { return false }

func indexOf(k value.Cell, n int) (int, bool) {
	if k.Kind != value.KindInt {
		return 0, false
	}
	i := k.IntVal()
	if i < 0 || i >= int64(n) {
		return 0, false
	}
	return int(i), true
}

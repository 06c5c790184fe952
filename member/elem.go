package member

import "hhvm/value"

// Elem implements read-mode element access, spec.md §6's `Elem`: resolves
// one level of Ref indirection, then dispatches on the base's kind. This
// is the "just read it, tolerate absence" mode used for plain
// `base[key]` expressions in value (non-lval) context.
func Elem(ctx Ctx, base *value.Cell, key value.Cell) value.Cell {
	b := value.Unbox(base)
	switch {
	case b.Kind == value.KindArray:
		return ElemArray(ctx, *b, key, true)
	case b.Kind.IsString():
		return ElemString(ctx, *b, key)
	case b.Kind == value.KindObject:
		return ElemObject(ctx, *b, key, true)
	case isEmptyish(*b):
		return ElemEmptyish()
	default:
		return ElemScalar(ctx)
	}
}

// ElemD implements define-mode element access, spec.md §6's `ElemD`:
// returns an addressable slot inside base for key, auto-vivifying base
// (and the slot) as needed for further chained writes. warn is spec.md
// §6's elem_d warn flag: it only has an observable effect on an array
// base, where it raises "Undefined index" on a genuine miss before the
// slot is created; a non-empty string base returns a fatal error instead
// of a slot, since no lvalue can be taken through a character.
func ElemD(ctx Ctx, base *value.Cell, key value.Cell, warn bool) (*value.Cell, error) {
	b := value.Unbox(base)
	switch {
	case b.Kind == value.KindArray:
		return ElemDArray(ctx, b, key, warn), nil
	case b.Kind.IsString():
		return ElemDString(ctx, b, key)
	case b.Kind == value.KindObject:
		return ElemDObject(b, key), nil
	case isEmptyish(*b):
		return ElemDEmptyish(b, key), nil
	default:
		return ElemDScalar(ctx), nil
	}
}

// ElemU implements unset-aware read-mode access, spec.md §6's `ElemU`:
// like Elem but silent on an array, object or scalar miss and never
// vivifies — the mode used when evaluating a base for isset()/unset()/
// empty() chaining. A string base is read by ElemString, which still
// warns on an out-of-range offset.
func ElemU(ctx Ctx, base *value.Cell, key value.Cell) value.Cell {
	b := value.Unbox(base)
	switch {
	case b.Kind == value.KindArray:
		return ElemArray(ctx, *b, key, false)
	case b.Kind.IsString():
		return ElemString(ctx, *b, key)
	case b.Kind == value.KindObject:
		return ElemObject(ctx, *b, key, false)
	case isEmptyish(*b):
		return ElemEmptyish()
	default:
		return value.Null()
	}
}

// NewElem implements append-mode, spec.md §6's `NewElem`
// (`base[]`, read-for-append position): returns an addressable slot for
// the newly appended element. A non-empty string base or a collection
// object base can't yield an appendable lvalue and returns a fatal error
// instead (spec.md §7: "using newelem as an lvalue read on a
// collection").
func NewElem(ctx Ctx, base *value.Cell) (*value.Cell, error) {
	b := value.Unbox(base)
	switch {
	case b.Kind == value.KindArray:
		return NewElemArray(b), nil
	case b.Kind.IsString():
		return NewElemString(ctx, b)
	case b.Kind == value.KindObject:
		return NewElemObject(ctx, b)
	case isEmptyish(*b):
		return NewElemEmptyish(b), nil
	default:
		return NewElemInvalid(ctx), nil
	}
}

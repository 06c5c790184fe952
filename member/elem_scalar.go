package member

import (
	"hhvm/diag"
	"hhvm/value"
)

// isEmptyish reports whether base falls into the emptyish bucket spec.md
// §4.5 groups together for auto-vivification purposes: Uninit, Null, the
// bool false, and the empty string. Define-mode writes promote any of
// these to a fresh container; read-mode ops on Uninit, Null or false just
// yield null without complaint. The read dispatchers check for a string
// base before this bucket, so an empty string is read by ElemString and an
// out-of-range offset warns "Out of bounds".
func isEmptyish(base value.Cell) bool {
	switch base.Kind {
	case value.KindUninit, value.KindNull:
		return true
	case value.KindBool:
		return !base.BoolVal()
	case value.KindStaticString, value.KindString:
		return base.Str_().Size() == 0
	default:
		return false
	}
}

// isOtherScalar reports whether base is a scalar that is NOT emptyish and
// NOT a string/array/object — i.e. true, any int/double (zero included),
// or a resource. These always reject element access with
// "Cannot use a scalar value as an array".
func isOtherScalar(base value.Cell) bool {
	switch base.Kind {
	case value.KindBool:
		return base.BoolVal()
	case value.KindInt, value.KindDouble, value.KindResource:
		return true
	default:
		return false
	}
}

// ElemEmptyish implements the read-mode (Elem/ElemU) case for an emptyish
// base: always null, never diagnoses (the original's ElemEmptyish is
// silent — any "Undefined index"-style notice belongs to the array/object
// cases, not this one).
func ElemEmptyish() value.Cell {
	return value.Null()
}

// ElemScalar implements the read-mode case for a non-emptyish scalar
// base: warn and yield null.
func ElemScalar(ctx Ctx) value.Cell {
	ctx.warn(diag.CodeCannotUseScalarAsArray)
	return value.Null()
}

// ElemDEmptyish implements the define-mode (ElemD) case: vivify base to
// a fresh, empty array, then return an lval slot created in it for key.
func ElemDEmptyish(base *value.Cell, key value.Cell) *value.Cell {
	arr := value.NewArray()
	ak, ok := arrayKeyFromCell(key)
	if !ok {
		value.Assign(base, value.Arr(arr))
		scratch := new(value.Cell)
		*scratch = value.Null()
		return scratch
	}
	slot := arr.Lval(ak)
	value.Assign(base, value.Arr(arr))
	return slot
}

// ElemDScalar implements the define-mode case for a non-emptyish scalar:
// warn and return a throwaway slot (the original returns a pointer to a
// static null that writes silently vanish into).
func ElemDScalar(ctx Ctx) *value.Cell {
	ctx.warn(diag.CodeCannotUseScalarAsArray)
	scratch := new(value.Cell)
	*scratch = value.Null()
	return scratch
}

// NewElemEmptyish implements the append-mode (NewElem, `base[] `) case
// for an emptyish base: vivify to array, append a null slot, return it.
func NewElemEmptyish(base *value.Cell) *value.Cell {
	arr := value.NewArray()
	slot := arr.LvalAppend()
	value.Assign(base, value.Arr(arr))
	return slot
}

// NewElemInvalid implements the append-mode case for any base that can't
// sensibly support `[]`-append (a non-emptyish scalar, or — per
// SUPPLEMENTED FEATURES — a string, which gets its own, more specific
// diagnostic in elem_string.go): warn and return a scratch slot.
func NewElemInvalid(ctx Ctx) *value.Cell {
	ctx.warn(diag.CodeCannotUseScalarAsArray)
	scratch := new(value.Cell)
	*scratch = value.Uninit()
	return scratch
}

// SetElemEmptyish implements the write-mode (SetElem) case for an
// emptyish base: vivify to array, set key, return val unchanged (per
// spec.md §6, SetElem echoes back the assigned value to its caller).
func SetElemEmptyish(base *value.Cell, key value.Cell, val value.Cell) value.Cell {
	arr := value.NewArray()
	ak, ok := arrayKeyFromCell(key)
	if ok {
		arr.Set(ak, value.Duplicate(val))
	}
	value.Assign(base, value.Arr(arr))
	return val
}

// SetElemScalar implements the write-mode case for a non-emptyish
// scalar base: warn, and — depending on setResult — either return val
// unchanged (setResult=true: caller tolerates the no-op) or raise
// InvalidSetM carrying val (setResult=false: caller must see the failure).
func SetElemScalar(ctx Ctx, val value.Cell, setResult bool) (value.Cell, error) {
	ctx.warn(diag.CodeCannotUseScalarAsArray)
	if !setResult {
		return value.Cell{}, diag.NewInvalidSetM(val)
	}
	return val, nil
}

// SetNewElemEmptyish implements the append-write (SetNewElem,
// `base[] = val`) case for an emptyish base.
func SetNewElemEmptyish(base *value.Cell, val value.Cell) {
	arr := value.NewArray()
	arr.Append(value.Duplicate(val))
	value.Assign(base, value.Arr(arr))
}

// SetNewElemScalar implements the append-write case for a non-emptyish
// scalar base: always fatal-adjacent via warn, the write is simply
// dropped (SetNewElem has no setResult=false variant in the original —
// it's only ever called from contexts that tolerate a silent no-op).
func SetNewElemScalar(ctx Ctx) {
	ctx.warn(diag.CodeCannotUseScalarAsArray)
}

// UnsetElemScalar implements UnsetElem for any scalar base: a no-op,
// there is nothing to unset.
func UnsetElemScalar() {}

// IssetEmptyElemScalar implements IssetEmptyElem for any scalar base
// (including emptyish ones): isset is always false, empty is always
// true, matching "indexing a scalar never finds anything".
func IssetEmptyElemScalar(isEmpty bool) bool {
	return isEmpty
}

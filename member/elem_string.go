package member

import (
	"hhvm/diag"
	"hhvm/value"
)

// stringOffset resolves a member-op key against a string base: int keys
// are used directly, string keys are parsed as a strict integer if
// possible and otherwise fall back to StringOffsetFromKey's lenient
// base-10 parse (SUPPLEMENTED FEATURES — ElemStringPre's exact cast
// behavior). Any other key kind is not a legal string offset at all.
func stringOffset(ctx Ctx, key value.Cell) (int64, bool) {
	switch key.Kind {
	case value.KindInt:
		return key.IntVal(), true
	case value.KindString, value.KindStaticString:
		s := key.Str_().Data()
		if n, ok := value.IsStrictlyIntegerKey(s); ok {
			return n, true
		}
		n, ok, notice := value.StringOffsetFromKey(s, false)
		if notice != "" {
			ctx.warn(diag.CodeStringOffsetCastOccurred)
		}
		return n, ok
	case value.KindDouble:
		return int64(key.FloatVal()), true
	case value.KindBool:
		if key.BoolVal() {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// ElemString implements read-mode element access on a string base
// (Elem/ElemU with a KindString/KindStaticString base). Mirrors
// ElemStringPre + ElemString: negative or out-of-range offsets warn and
// yield an empty string, not null — PHP string-offset reads never yield
// null, even when nothing is there.
func ElemString(ctx Ctx, base value.Cell, key value.Cell) value.Cell {
	off, ok := stringOffset(ctx, key)
	if !ok {
		ctx.warn(diag.CodeIllegalOffsetType)
		return value.Str(value.NewString(""))
	}
	if off < 0 {
		ctx.warn(diag.CodeIllegalStringOffset, off)
		return value.Str(value.NewString(""))
	}
	ch, inBounds := base.Str_().GetChar(off)
	if !inBounds {
		ctx.warn(diag.CodeOutOfBounds)
		return value.Str(value.NewString(""))
	}
	return value.Str(value.NewString(ch))
}

// ElemDString implements the define-mode case. Per the original's
// ElemDString: an empty string base is indistinguishable from an empty
// container and auto-vivifies to an array, retrying the define there; a
// non-empty base can never yield a real lvalue through a character, so
// it raises a fatal error ("Operator not supported for strings").
func ElemDString(ctx Ctx, base *value.Cell, key value.Cell) (*value.Cell, error) {
	if base.Str_().Size() == 0 {
		value.Assign(base, value.Arr(value.NewArray()))
		return ElemDArray(ctx, base, key, false), nil
	}
	return nil, diag.NewFatal(diag.CodeOperatorNotSupportedForStrings)
}

// NewElemString implements the append-mode case. An empty string base
// vivifies to an array and appends a null slot into it, same as any
// other emptyish base; a non-empty base has no `[]`-append protocol at
// all and raises fatally.
func NewElemString(ctx Ctx, base *value.Cell) (*value.Cell, error) {
	if base.Str_().Size() == 0 {
		return NewElemEmptyish(base), nil
	}
	return nil, diag.NewFatal(diag.CodeAppendNotSupportedForStrings)
}

// SetElemString implements write-mode on a string base
// (`$s[$i] = $val`). An empty base auto-vivifies to an array and falls
// through to array set — a legacy quirk the original preserves and this
// port carries forward unchanged. A non-empty base carries SUPPLEMENTED
// FEATURES' exact in-place-vs-copy decision from the original's
// SetElemString: a single-owner StringData is mutated via
// ModifyCharInPlace, a shared one is copied first via WithCharSet, both
// growing and space-padding the buffer when offset is past the current
// end.
func SetElemString(ctx Ctx, base *value.Cell, key value.Cell, val value.Cell, setResult bool) (value.Cell, error) {
	if base.Str_().Size() == 0 {
		value.Assign(base, value.Arr(value.NewArray()))
		return SetElemArray(ctx, base, key, val), nil
	}
	off, ok := stringOffset(ctx, key)
	if !ok {
		ctx.warn(diag.CodeIllegalOffsetType)
		if !setResult {
			return value.Cell{}, diag.NewInvalidSetM(val)
		}
		return val, nil
	}
	if off < 0 {
		ctx.warn(diag.CodeIllegalStringOffset, off)
		if !setResult {
			return value.Cell{}, diag.NewInvalidSetM(val)
		}
		return val, nil
	}

	valStr := val.String()
	var c byte = ' '
	if len(valStr) > 0 {
		c = valStr[0]
	}

	sd := base.Str_()
	if sd.HasMultipleRefs() {
		nsd := sd.WithCharSet(off, c)
		value.Assign(base, value.Str(nsd))
	} else {
		sd.ModifyCharInPlace(off, c)
	}
	return value.Str(value.NewString(string(c))), nil
}

// SetNewElemString implements append-write on a string base
// (`$s[] = val`): an empty base vivifies to an array and appends val
// into it; a non-empty base has no `[]`-append protocol and is fatal.
func SetNewElemString(ctx Ctx, base *value.Cell, val value.Cell) error {
	if base.Str_().Size() == 0 {
		SetNewElemEmptyish(base, val)
		return nil
	}
	return diag.NewFatal(diag.CodeAppendNotSupportedForStrings)
}

// IncDecElemString implements IncDecElem on a string base, following the
// same empty/non-empty split as the rest of the string family: an empty
// base auto-vivifies to an array and the increment applies to the fresh
// entry; a non-empty base can't have a character offset incremented and
// is fatal.
func IncDecElemString(ctx Ctx, base *value.Cell, key value.Cell, op IncDecOp) (value.Cell, error) {
	if base.Str_().Size() == 0 {
		value.Assign(base, value.Arr(value.NewArray()))
		slot := ElemDArray(ctx, base, key, false)
		result := IncDecBody(op, *slot)
		value.Assign(slot, result)
		return result, nil
	}
	return value.Cell{}, diag.NewFatal(diag.CodeCannotIncDecOverloadedOrStringOffset)
}

// UnsetElemString implements UnsetElem on a string base: always
// rejected — string offsets can't be unset, empty or not.
func UnsetElemString() error {
	return diag.NewFatal(diag.CodeCannotUnsetStringOffsets)
}

// IssetEmptyElemString implements isset($s[$i])/empty($s[$i]): isset is
// true exactly when the offset is in bounds; empty additionally treats
// the single-character "0" as falsy, matching the language's general
// empty-string-or-"0" truthiness rule applied to a one-char string.
func IssetEmptyElemString(ctx Ctx, base value.Cell, key value.Cell, wantEmpty bool) bool {
	off, ok := stringOffset(ctx, key)
	if !ok || off < 0 {
		return wantEmpty
	}
	ch, inBounds := base.Str_().GetChar(off)
	if !inBounds {
		return wantEmpty
	}
	if !wantEmpty {
		return true
	}
	return ch == "0"
}

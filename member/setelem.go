package member

import "hhvm/value"

// SetElem implements spec.md §6's `SetElem` (`base[key] = val`).
// setResult selects whether a scalar-base failure is tolerated (true,
// the common case: the assignment expression's own value is val
// regardless) or must propagate as InvalidSetM (false, the mode used
// when the caller specifically needs to know the write didn't land).
func SetElem(ctx Ctx, base *value.Cell, key value.Cell, val value.Cell, setResult bool) (value.Cell, error) {
	b := value.Unbox(base)
	switch {
	case b.Kind == value.KindArray:
		return SetElemArray(ctx, b, key, val), nil
	case b.Kind.IsString():
		return SetElemString(ctx, b, key, val, setResult)
	case b.Kind == value.KindObject:
		return SetElemObject(ctx, *b, key, val), nil
	case isEmptyish(*b):
		return SetElemEmptyish(b, key, val), nil
	default:
		return SetElemScalar(ctx, val, setResult)
	}
}

// SetNewElem implements spec.md §6's `SetNewElem` (`base[] = val`).
func SetNewElem(ctx Ctx, base *value.Cell, val value.Cell) error {
	b := value.Unbox(base)
	switch {
	case b.Kind == value.KindArray:
		SetNewElemArray(b, val)
	case b.Kind.IsString():
		return SetNewElemString(ctx, b, val)
	case b.Kind == value.KindObject:
		SetNewElemObject(ctx, *b, val)
	case isEmptyish(*b):
		SetNewElemEmptyish(b, val)
	default:
		SetNewElemScalar(ctx)
	}
	return nil
}

package member

import "hhvm/value"

// UnsetElem implements spec.md §6's `UnsetElem` (`unset(base[key])`).
func UnsetElem(ctx Ctx, base *value.Cell, key value.Cell) error {
	b := value.Unbox(base)
	switch {
	case b.Kind == value.KindArray:
		UnsetElemArray(b, key)
	case b.Kind.IsString():
		return UnsetElemString()
	case b.Kind == value.KindObject:
		UnsetElemObject(ctx, *b, key)
	default:
		UnsetElemScalar()
	}
	return nil
}

package member

import "hhvm/value"

// arrayKeyFromCell canonicalizes a member-op key cell into an ArrayKey,
// applying the strictly-integer-string rule to string keys (spec.md §3's
// key-canonicalization invariant) and rejecting kinds that can never be
// an array key.
func arrayKeyFromCell(key value.Cell) (value.ArrayKey, bool) {
	switch key.Kind {
	case value.KindInt:
		return value.IntKey(key.IntVal()), true
	case value.KindString, value.KindStaticString:
		return value.StringKey(key.Str_().Data()), true
	case value.KindBool:
		if key.BoolVal() {
			return value.IntKey(1), true
		}
		return value.IntKey(0), true
	case value.KindDouble:
		return value.IntKey(int64(key.FloatVal())), true
	case value.KindUninit, value.KindNull:
		return value.StringKey(""), true
	default:
		return value.ArrayKey{}, false
	}
}

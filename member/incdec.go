package member

import "hhvm/value"

// IncDecBody implements the original's IncDecBody fast path: integer
// increment/decrement wraps on overflow (Go int64 arithmetic). There is
// no overflow-to-double variant; an int at the int64 limit wraps and is
// never promoted to a double.
func IncDecBody(op IncDecOp, cur value.Cell) value.Cell {
	switch cur.Kind {
	case value.KindInt:
		if op == OpInc {
			return value.Int(cur.IntVal() + 1)
		}
		return value.Int(cur.IntVal() - 1)
	case value.KindDouble:
		if op == OpInc {
			return value.Double(cur.FloatVal() + 1)
		}
		return value.Double(cur.FloatVal() - 1)
	case value.KindUninit, value.KindNull:
		if op == OpInc {
			return value.Int(1)
		}
		return value.Null()
	case value.KindBool:
		// Bools are immune to inc/dec, same as the original.
		return cur
	case value.KindString, value.KindStaticString:
		return incDecString(op, cur.Str_().Data())
	default:
		return cur
	}
}

// incDecString implements string increment: a strictly-integer string
// (IsStrictlyIntegerKey) falls back to int arithmetic, and any other
// string — including other numeric forms such as "1.5" — takes the
// Perl-style alphanumeric "carry" increment ("az" -> "ba"); decrement of
// a string that is not strictly-integer is always a no-op.
func incDecString(op IncDecOp, s string) value.Cell {
	if s == "" {
		if op == OpInc {
			return value.Str(value.NewString("1"))
		}
		return value.Str(value.NewString(""))
	}
	if n, ok := value.IsStrictlyIntegerKey(s); ok {
		if op == OpInc {
			return value.Int(n + 1)
		}
		return value.Int(n - 1)
	}
	if op == OpDec {
		return value.Str(value.NewString(s))
	}
	b := []byte(s)
	i := len(b) - 1
	for i >= 0 {
		c := b[i]
		switch {
		case c >= '0' && c < '9', c >= 'a' && c < 'z', c >= 'A' && c < 'Z':
			b[i]++
			return value.Str(value.NewString(string(b)))
		case c == '9':
			b[i] = '0'
			i--
		case c == 'z':
			b[i] = 'a'
			i--
		case c == 'Z':
			b[i] = 'A'
			i--
		default:
			return value.Str(value.NewString(string(b)))
		}
	}
	// Carried out of the most significant character: prepend.
	var lead byte
	switch {
	case b[0] == '0':
		lead = '1'
	case b[0] == 'a':
		lead = 'a'
	default:
		lead = 'A'
	}
	return value.Str(value.NewString(string(lead) + string(b)))
}

// IncDecElem implements spec.md §6's `IncDecElem` (`base[key]++`/`--`).
// The array-base path's ElemD call threads ctx.Flags.MoreWarnings as its
// warn flag, mirroring the original's ElemDArray<MoreWarnings>.
func IncDecElem(ctx Ctx, base *value.Cell, key value.Cell, op IncDecOp) (value.Cell, error) {
	b := value.Unbox(base)
	if b.Kind.IsString() {
		return IncDecElemString(ctx, b, key, op)
	}
	slot, err := ElemD(ctx, b, key, ctx.Flags.MoreWarnings)
	if err != nil {
		return value.Cell{}, err
	}
	result := IncDecBody(op, *slot)
	value.Assign(slot, result)
	return result, nil
}

// IncDecNewElem implements spec.md §6's `IncDecNewElem`
// (`base[]++`/`--` — a rare but legal form, the freshly appended slot
// starts Null so the result is always IncDecBody(op, Null)).
func IncDecNewElem(base *value.Cell, op IncDecOp) (value.Cell, error) {
	b := value.Unbox(base)
	slot, err := NewElem(Ctx{}, b)
	if err != nil {
		return value.Cell{}, err
	}
	result := IncDecBody(op, *slot)
	value.Assign(slot, result)
	return result, nil
}

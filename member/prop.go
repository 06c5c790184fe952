package member

import (
	"hhvm/diag"
	"hhvm/value"
)

// propGet implements the read side of property access on an already-
// resolved object: a declared/dynamic slot wins if present, otherwise an
// object with a Magic override gets a shot via __get, otherwise the
// property simply doesn't exist.
func propGet(obj *value.ObjectData, name string) (value.Cell, bool) {
	if c, ok := obj.GetProp(name); ok {
		return c, true
	}
	if obj.Magic != nil {
		return obj.Magic.Get(name)
	}
	return value.Uninit(), false
}

// Prop implements spec.md §6's `Prop` (`base->name`, read-mode).
// Mirrors propPre + Prop: any non-object base warns
// "Attempt to access property on non-object" and yields null, matching
// the original's refusal to distinguish emptyish from other scalars on
// the read side (only the define/write side auto-vivifies).
func Prop(ctx Ctx, base *value.Cell, name string) value.Cell {
	b := value.Unbox(base)
	if b.Kind != value.KindObject {
		ctx.warn(diag.CodeCannotAccessPropertyOnNonObject)
		return value.Null()
	}
	return PropBaseObj(ctx, b.Obj_(), name)
}

// PropBaseObj is the `baseIsObj` fast-path variant of Prop: the caller
// already knows base is an object (spec.md §6), so the non-object branch
// is skipped entirely.
func PropBaseObj(ctx Ctx, obj *value.ObjectData, name string) value.Cell {
	v, ok := propGet(obj, name)
	if !ok {
		ctx.notice(diag.CodeUndefinedProperty, name)
		return value.Null()
	}
	return v
}

// PropU implements spec.md §6's `PropU`: like Prop but silent on a
// non-object base or a missing property, the mode used when resolving a
// base for isset()/unset()/empty() chaining.
func PropU(base *value.Cell, name string) value.Cell {
	b := value.Unbox(base)
	if b.Kind != value.KindObject {
		return value.Null()
	}
	v, ok := propGet(b.Obj_(), name)
	if !ok {
		return value.Null()
	}
	return v
}

// PropD implements spec.md §6's `PropD` (`base->name`, define-mode):
// returns an addressable slot, auto-vivifying base to a stdClass when
// it's emptyish (mirrors propPreStdclass/propPreNull's vivification) and
// warning-and-returning a scratch slot for any other non-object base.
func PropD(ctx Ctx, base *value.Cell, name string) *value.Cell {
	b := value.Unbox(base)
	switch {
	case b.Kind == value.KindObject:
		return PropDBaseObj(b.Obj_(), name)
	case isEmptyish(*b):
		ctx.warn(diag.CodeCreatingDefaultObjectFromEmptyValue)
		obj := value.NewStdclass()
		slot := obj.LvalProp(name)
		value.Assign(b, value.Obj(obj))
		return slot
	default:
		ctx.warn(diag.CodeAttemptToAssignPropertyOfNonObject)
		scratch := new(value.Cell)
		*scratch = value.Null()
		return scratch
	}
}

// PropDBaseObj is the `baseIsObj` fast-path variant of PropD.
func PropDBaseObj(obj *value.ObjectData, name string) *value.Cell {
	return obj.LvalProp(name)
}

// NullSafeProp implements the null-safe property-access operator
// (`base?->name`): if base resolves to Uninit/Null, the whole access
// short-circuits to Null without any diagnostic at all — not even the
// ones a plain Prop would raise on a non-object base — and the second
// result reports that the caller should stop evaluating the rest of the
// chain.
func NullSafeProp(ctx Ctx, base *value.Cell, name string) (value.Cell, bool) {
	b := value.Unbox(base)
	if b.Kind.IsNullish() {
		return value.Null(), true
	}
	return Prop(ctx, base, name), false
}

// SetProp implements spec.md §6's `SetProp` (`base->name = val`).
func SetProp(ctx Ctx, base *value.Cell, name string, val value.Cell) value.Cell {
	b := value.Unbox(base)
	switch {
	case b.Kind == value.KindObject:
		SetPropBaseObj(b.Obj_(), name, val)
	case isEmptyish(*b):
		ctx.warn(diag.CodeCreatingDefaultObjectFromEmptyValue)
		obj := value.NewStdclass()
		obj.SetProp(name, value.Duplicate(val))
		value.Assign(b, value.Obj(obj))
	default:
		ctx.warn(diag.CodeAttemptToAssignPropertyOfNonObject)
	}
	return val
}

// SetPropBaseObj is the `baseIsObj` fast-path variant of SetProp.
func SetPropBaseObj(obj *value.ObjectData, name string, val value.Cell) {
	if obj.Magic != nil && !obj.HasProp(name) {
		obj.Magic.Set(name, value.Duplicate(val))
		return
	}
	obj.SetProp(name, value.Duplicate(val))
}

// SetOpProp implements spec.md §6's `SetOpProp`
// (`base->name op= rhs`).
func SetOpProp(base *value.Cell, name string, op SetOpKind, rhs value.Cell) value.Cell {
	slot := PropD(Ctx{}, base, name)
	result := ApplyBinOp(op, *slot, rhs)
	value.Assign(slot, result)
	return result
}

// IncDecProp implements spec.md §6's `IncDecProp`
// (`base->name++`/`--`).
func IncDecProp(ctx Ctx, base *value.Cell, name string, op IncDecOp) value.Cell {
	b := value.Unbox(base)
	if b.Kind != value.KindObject && !isEmptyish(*b) {
		ctx.warn(diag.CodeAttemptToIncDecPropertyOfNonObject)
		return value.Null()
	}
	slot := PropD(ctx, base, name)
	result := IncDecBody(op, *slot)
	value.Assign(slot, result)
	return result
}

// UnsetProp implements spec.md §6's `UnsetProp` (`unset(base->name)`).
func UnsetProp(base *value.Cell, name string) {
	b := value.Unbox(base)
	if b.Kind != value.KindObject {
		return
	}
	obj := b.Obj_()
	if obj.Magic != nil && !obj.HasProp(name) {
		obj.Magic.Unset(name)
		return
	}
	obj.UnsetProp(name)
}

// IssetEmptyProp implements spec.md §6's `IssetEmptyProp`, covering both
// isset(base->name) (wantEmpty=false) and empty(base->name)
// (wantEmpty=true).
func IssetEmptyProp(base *value.Cell, name string, wantEmpty bool) bool {
	b := value.Unbox(base)
	if b.Kind != value.KindObject {
		return wantEmpty
	}
	obj := b.Obj_()
	var v value.Cell
	var ok bool
	if obj.Magic != nil && !obj.HasProp(name) {
		if !obj.Magic.Isset(name) {
			return wantEmpty
		}
		v, ok = obj.Magic.Get(name)
	} else {
		v, ok = obj.GetProp(name)
	}
	if !ok || v.IsNull() {
		return wantEmpty
	}
	if !wantEmpty {
		return true
	}
	return !v.Truthy()
}

// Package member implements the dispatch functions spec.md §4 and §6
// name: read (Elem/Prop), define (ElemD/PropD), unset-aware read
// (ElemU), append (NewElem), write (SetElem/SetProp), compound-assign
// (SetOpElem/SetOpProp), increment/decrement (IncDecElem/IncDecProp),
// unset (UnsetElem/UnsetProp) and isset/empty (IssetEmptyElem/
// IssetEmptyProp) — each parameterized by base kind, key kind, and the
// flavor flags below, over the value package's Cell/ArrayData/StringData/
// ObjectData. Grounded on the teacher's eval/indexing.go and
// eval/properties.go for the Go shape of "evaluate an index/property
// expression", and on original_source/hphp/runtime/vm/member-operations.h
// for exact dispatch-table semantics.
package member

import "hhvm/diag"

// SetOpKind enumerates the compound-assignment operators SetOpElem/
// SetOpProp support — the binary half of `+=`, `-=`, etc.
type SetOpKind int

const (
	SetOpPlus SetOpKind = iota
	SetOpMinus
	SetOpMul
	SetOpDiv
	SetOpMod
	SetOpConcat
	SetOpAnd
	SetOpOr
	SetOpXor
	SetOpShl
	SetOpShr
)

// IncDecOp selects increment vs decrement for IncDecElem/IncDecProp/
// IncDecBody.
type IncDecOp int

const (
	OpInc IncDecOp = iota
	OpDec
)

// Ctx bundles the ambient dependencies every member function needs:
// where to send non-fatal diagnostics, and the runtime flags that tweak
// a handful of cases. Threaded explicitly (spec.md §5), never global.
type Ctx struct {
	Sink  diag.Sink
	Flags diag.Flags
}

func (c Ctx) notice(code diag.Code, args ...any) {
	if c.Sink != nil {
		c.Sink.Notice(code, args...)
	}
}

func (c Ctx) warn(code diag.Code, args ...any) {
	if c.Sink != nil {
		c.Sink.Warning(code, args...)
	}
}

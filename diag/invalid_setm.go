package diag

import "hhvm/value"

// InvalidSetM mirrors InvalidSetMException: raised instead of Fatal when a
// Define-mode write hits a condition it can't auto-vivify past (spec.md
// §7's "setResult=false" mode), carrying the value the caller's SetM op
// should still yield to its consumer rather than truly aborting execution.
type InvalidSetM struct {
	Payload value.Cell
}

func (e *InvalidSetM) Error() string {
	return "invalid SetM target"
}

func NewInvalidSetM(payload value.Cell) *InvalidSetM {
	return &InvalidSetM{Payload: payload}
}

// Flags carries the small set of runtime toggles member ops consult,
// playing the role the teacher's TaskContext ambient fields play (e.g.
// ctx.IsWizard) and the original's RuntimeOption:: globals — threaded
// explicitly through calls rather than read from a package-level global.
type Flags struct {
	// MoreWarnings mirrors RuntimeOption::EnableMoreWarnings: IncDecElem
	// and SetOpElem pass it as ElemD's warn flag, so a key missing from an
	// array base raises "Undefined index" before its slot is created.
	MoreWarnings bool

	// HipHopSyntax is the strict-syntax mode toggle. No member operation
	// reads it; setting it changes no behaviour.
	HipHopSyntax bool
}

package conformance

import (
	"fmt"

	"hhvm/collection"
	"hhvm/diag"
	"hhvm/member"
	"hhvm/value"
)

// Runner executes member-op conformance scenarios. Kept as a struct,
// mirroring the teacher's Runner shape (conformance/runner.go), even
// though this port's Runner carries no state of its own — each scenario
// builds its own base value from scratch, there's no persistent store to
// set up the way the teacher's Runner loads a MOO database.
type Runner struct{}

func NewRunner() *Runner { return &Runner{} }

// TestResult represents the outcome of running a single scenario.
type TestResult struct {
	Test       LoadedTest
	Passed     bool
	Skipped    bool
	SkipReason string
	Error      error
}

// opOutcome is what running a scenario's Op produced, collected into one
// shape so checkExpectation has a single thing to compare against
// regardless of which Op ran.
type opOutcome struct {
	value   value.Cell
	boolean *bool
	err     error
	sink    *diag.CollectSink
	base    value.Cell
}

func buildCell(spec *ValueSpec) value.Cell {
	if spec == nil {
		return value.Null()
	}
	switch spec.Kind {
	case "", "null":
		return value.Null()
	case "uninit":
		return value.Uninit()
	case "bool":
		return value.Bool(spec.Bool)
	case "int":
		return value.Int(spec.Int)
	case "double":
		return value.Double(spec.Double)
	case "string":
		var sd *value.StringData
		if spec.Static {
			sd = value.NewStaticString(spec.Str)
		} else {
			sd = value.NewString(spec.Str)
		}
		if spec.Shared {
			sd.IncRef()
		}
		return value.Str(sd)
	case "array":
		arr := value.NewArray()
		for _, e := range spec.Entries {
			arr.Set(arrayKeyFromEntry(e.Key), buildCell(&e.Value))
		}
		if spec.Shared {
			arr.IncRef()
		}
		return value.Arr(arr)
	case "object":
		obj := value.NewObject(spec.Class)
		switch spec.Collection {
		case "vector":
			vec := collection.NewVector()
			for _, e := range spec.Entries {
				vec.Append(buildCell(&e.Value))
			}
			obj.IsCollection = true
			obj.Collection = vec
		case "map":
			m := collection.NewMap()
			for _, e := range spec.Entries {
				m.Set(cellKeyFromEntry(e.Key), buildCell(&e.Value))
			}
			obj.IsCollection = true
			obj.Collection = m
		}
		for _, p := range spec.Props {
			obj.SetProp(p.Name, buildCell(&p.Value))
		}
		if spec.Shared {
			obj.IncRef()
		}
		return value.Obj(obj)
	default:
		return value.Null()
	}
}

// cellKeyFromEntry converts an EntrySpec.Key (int or string, from YAML)
// into a Cell suitable for a CollectionHandle's key-taking methods.
func cellKeyFromEntry(key interface{}) value.Cell {
	switch k := key.(type) {
	case int:
		return value.Int(int64(k))
	case int64:
		return value.Int(k)
	case string:
		return value.Str(value.NewString(k))
	default:
		return value.Str(value.NewString(fmt.Sprintf("%v", k)))
	}
}

func arrayKeyFromEntry(key interface{}) value.ArrayKey {
	switch k := key.(type) {
	case int:
		return value.IntKey(int64(k))
	case int64:
		return value.IntKey(k)
	case string:
		return value.StringKey(k)
	default:
		return value.StringKey(fmt.Sprintf("%v", k))
	}
}

func setOpKindFromName(name string) member.SetOpKind {
	switch name {
	case "minus":
		return member.SetOpMinus
	case "mul":
		return member.SetOpMul
	case "div":
		return member.SetOpDiv
	case "mod":
		return member.SetOpMod
	case "concat":
		return member.SetOpConcat
	case "and":
		return member.SetOpAnd
	case "or":
		return member.SetOpOr
	case "xor":
		return member.SetOpXor
	case "shl":
		return member.SetOpShl
	case "shr":
		return member.SetOpShr
	default:
		return member.SetOpPlus
	}
}

func incDecOpFromName(name string) member.IncDecOp {
	if name == "dec" {
		return member.OpDec
	}
	return member.OpInc
}

// runOp dispatches a single scenario's Op and records everything
// checkExpectation might need.
func runOp(tc TestCase) opOutcome {
	sink := &diag.CollectSink{}
	ctx := member.Ctx{Sink: sink}

	base := buildCell(&tc.Base)
	key := buildCell(tc.Key)
	val := buildCell(tc.Val)
	setResult := true
	if tc.SetResult != nil {
		setResult = *tc.SetResult
	}

	out := opOutcome{sink: sink}

	switch tc.Op {
	case "elem":
		out.value = member.Elem(ctx, &base, key)
	case "elemu":
		out.value = member.ElemU(ctx, &base, key)
	case "elemd":
		warn := false
		if tc.Warn != nil {
			warn = *tc.Warn
		}
		var slot *value.Cell
		slot, out.err = member.ElemD(ctx, &base, key, warn)
		if out.err == nil {
			if tc.Val != nil {
				*slot = val
			}
			out.value = *slot
		}
	case "newelem":
		var slot *value.Cell
		slot, out.err = member.NewElem(ctx, &base)
		if out.err == nil {
			if tc.Val != nil {
				*slot = val
			}
			out.value = *slot
		}
	case "setelem":
		out.value, out.err = member.SetElem(ctx, &base, key, val, setResult)
	case "setnewelem":
		out.err = member.SetNewElem(ctx, &base, val)
		out.value = val
	case "setopelem":
		out.value, out.err = member.SetOpElem(ctx, &base, key, setOpKindFromName(tc.SetOp), val)
	case "setopnewelem":
		out.value, out.err = member.SetOpNewElem(&base, setOpKindFromName(tc.SetOp), val)
	case "incdecelem":
		out.value, out.err = member.IncDecElem(ctx, &base, key, incDecOpFromName(tc.IncDec))
	case "incdecnewelem":
		out.value, out.err = member.IncDecNewElem(&base, incDecOpFromName(tc.IncDec))
	case "unsetelem":
		out.err = member.UnsetElem(ctx, &base, key)
	case "issetemptyelem":
		b := member.IssetEmptyElem(ctx, &base, key, tc.WantEmpty)
		out.boolean = &b
	case "prop":
		out.value = member.Prop(ctx, &base, tc.Prop)
	case "nullsafeprop":
		out.value, _ = member.NullSafeProp(ctx, &base, tc.Prop)
	case "propd":
		slot := member.PropD(ctx, &base, tc.Prop)
		out.value = *slot
	case "setprop":
		out.value = member.SetProp(ctx, &base, tc.Prop, val)
	case "setopprop":
		out.value = member.SetOpProp(&base, tc.Prop, setOpKindFromName(tc.SetOp), val)
	case "incdecprop":
		out.value = member.IncDecProp(ctx, &base, tc.Prop, incDecOpFromName(tc.IncDec))
	case "unsetprop":
		member.UnsetProp(&base, tc.Prop)
	case "issetemptyprop":
		b := member.IssetEmptyProp(&base, tc.Prop, tc.WantEmpty)
		out.boolean = &b
	default:
		out.err = fmt.Errorf("unknown op %q", tc.Op)
	}
	out.base = base
	return out
}

// Run executes a single test case.
func (r *Runner) Run(test LoadedTest) TestResult {
	if skipped, reason := test.Test.IsSkipped(); skipped {
		return TestResult{Test: test, Skipped: true, SkipReason: reason}
	}

	out := runOp(test.Test)
	passed, err := checkExpectation(test.Test.Expect, out)
	return TestResult{Test: test, Passed: passed, Error: err}
}

// RunAll executes all loaded tests.
func (r *Runner) RunAll(tests []LoadedTest) []TestResult {
	results := make([]TestResult, len(tests))
	for i, test := range tests {
		results[i] = r.Run(test)
	}
	return results
}

// SummaryStats computes statistics from test results.
type SummaryStats struct {
	Total   int
	Passed  int
	Failed  int
	Skipped int
}

func ComputeStats(results []TestResult) SummaryStats {
	stats := SummaryStats{Total: len(results)}
	for _, r := range results {
		switch {
		case r.Skipped:
			stats.Skipped++
		case r.Passed:
			stats.Passed++
		default:
			stats.Failed++
		}
	}
	return stats
}

func FormatStats(stats SummaryStats) string {
	return fmt.Sprintf("%d passed, %d failed, %d skipped (%d total)",
		stats.Passed, stats.Failed, stats.Skipped, stats.Total)
}

func checkExpectation(expect Expectation, out opOutcome) (bool, error) {
	if expect.InvalidSetM {
		if _, ok := out.err.(*diag.InvalidSetM); !ok {
			return false, fmt.Errorf("expected InvalidSetM, got err=%v", out.err)
		}
		return true, nil
	}
	if expect.Fatal != "" {
		fatal, ok := out.err.(*diag.Fatal)
		if !ok {
			return false, fmt.Errorf("expected Fatal(%s), got err=%v", expect.Fatal, out.err)
		}
		if fatal.Code.String() != expect.Fatal {
			return false, fmt.Errorf("expected Fatal(%s), got Fatal(%s)", expect.Fatal, fatal.Code)
		}
		return true, nil
	}
	if out.err != nil {
		return false, fmt.Errorf("unexpected error: %w", out.err)
	}

	if expect.Bool != nil {
		if out.boolean == nil {
			return false, fmt.Errorf("expected a bool result, op produced a value")
		}
		if *out.boolean != *expect.Bool {
			return false, fmt.Errorf("expected %v, got %v", *expect.Bool, *out.boolean)
		}
	}

	if expect.Value != nil {
		want := buildCell(expect.Value)
		if !cellsEqual(want, out.value) {
			return false, fmt.Errorf("expected %v, got %v", want, out.value)
		}
	}

	if expect.BaseKind != "" {
		if out.base.Kind.String() != expect.BaseKind {
			return false, fmt.Errorf("expected base kind %s, got %s", expect.BaseKind, out.base.Kind)
		}
	}

	if expect.Diagnostics != nil {
		if len(out.sink.Records) != len(expect.Diagnostics) {
			return false, fmt.Errorf("expected %d diagnostics, got %d: %+v", len(expect.Diagnostics), len(out.sink.Records), out.sink.Records)
		}
		for i, name := range expect.Diagnostics {
			if out.sink.Records[i].Code.String() != name {
				return false, fmt.Errorf("diagnostic %d: expected %s, got %s", i, name, out.sink.Records[i].Code)
			}
		}
	}

	return true, nil
}

func cellsEqual(a, b value.Cell) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case value.KindBool:
		return a.BoolVal() == b.BoolVal()
	case value.KindInt:
		return a.IntVal() == b.IntVal()
	case value.KindDouble:
		return a.FloatVal() == b.FloatVal()
	case value.KindString, value.KindStaticString:
		return a.Str_().Data() == b.Str_().Data()
	case value.KindArray:
		return arraysEqual(a.Arr_(), b.Arr_())
	default:
		return true
	}
}

func arraysEqual(a, b *value.ArrayData) bool {
	if a.Len() != b.Len() {
		return false
	}
	for _, k := range a.Keys() {
		av, _ := a.Get(k)
		bv, ok := b.Get(k)
		if !ok || !cellsEqual(av, bv) {
			return false
		}
	}
	return true
}

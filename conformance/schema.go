package conformance

// TestSuite represents a complete YAML scenario file, one member
// operation per TestCase. Shape adapted from the teacher's
// conformance/schema.go (TestSuite/TestCase/Expectation), retargeted from
// "a MOO program's expected result" to "a member op's expected resulting
// cell plus its diagnostic trail".
type TestSuite struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Tests       []TestCase `yaml:"tests"`
}

// ValueSpec describes a Cell to construct for a scenario. Kind selects
// which other field is meaningful.
type ValueSpec struct {
	Kind    string      `yaml:"kind"` // null, uninit, bool, int, double, string, array, object
	Bool    bool        `yaml:"bool,omitempty"`
	Int     int64       `yaml:"int,omitempty"`
	Double  float64     `yaml:"double,omitempty"`
	Str     string      `yaml:"str,omitempty"`
	Static  bool        `yaml:"static,omitempty"`  // kind: string
	Entries []EntrySpec `yaml:"entries,omitempty"` // kind: array; also kind: object + collection
	Class   string      `yaml:"class,omitempty"`   // kind: object
	Props   []EntrySpec `yaml:"props,omitempty"`   // kind: object
	Shared  bool        `yaml:"shared,omitempty"`  // simulate a second live reference

	// Collection selects a typed-collection backing (spec.md §4.4) for a
	// kind: object base instead of the plain dynamic-property table:
	// "vector" or "map". Entries seeds the collection's initial contents
	// (Key ignored for vector, used as the map key for map).
	Collection string `yaml:"collection,omitempty"`
}

// EntrySpec is one array element or object property in a ValueSpec.
type EntrySpec struct {
	Key   interface{} `yaml:"key,omitempty"`  // int or string, array entries only
	Name  string      `yaml:"name,omitempty"` // object property name
	Value ValueSpec   `yaml:"value"`
}

// TestCase is one member-op scenario: build a base, run Op against it
// with the given Key/Prop/Val, compare the result and diagnostic trail.
type TestCase struct {
	Name      string     `yaml:"name"`
	Skip      string     `yaml:"skip,omitempty"`
	Op        string     `yaml:"op"`
	Base      ValueSpec  `yaml:"base"`
	Key       *ValueSpec `yaml:"key,omitempty"`
	Prop      string     `yaml:"prop,omitempty"`
	Val       *ValueSpec `yaml:"val,omitempty"`
	SetOp     string     `yaml:"setop,omitempty"`
	IncDec    string     `yaml:"incdec,omitempty"`
	WantEmpty bool       `yaml:"want_empty,omitempty"`
	SetResult *bool      `yaml:"set_result,omitempty"`
	Warn      *bool      `yaml:"warn,omitempty"` // elemd only: spec.md §6's elem_d warn flag
	Expect    Expectation `yaml:"expect"`
}

// Expectation is what a TestCase's run should produce.
type Expectation struct {
	Value       *ValueSpec `yaml:"value,omitempty"`
	Bool        *bool      `yaml:"bool,omitempty"` // isset/empty results
	Diagnostics []string   `yaml:"diagnostics,omitempty"`
	InvalidSetM bool       `yaml:"invalid_setm,omitempty"`
	Fatal       string     `yaml:"fatal,omitempty"` // expected diag.Code name carried by a *diag.Fatal
	BaseKind    string     `yaml:"base_kind,omitempty"` // assert base's kind post-op (vivification checks)
}

// IsSkipped mirrors the teacher's TestCase.IsSkipped, simplified to the
// single string form this port's scenarios use.
func (tc *TestCase) IsSkipped() (bool, string) {
	if tc.Skip == "" {
		return false, ""
	}
	return true, tc.Skip
}

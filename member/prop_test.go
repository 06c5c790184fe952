package member

import (
	"testing"

	"hhvm/diag"
	"hhvm/value"
)

func TestPropReadFromObject(t *testing.T) {
	obj := value.NewObject("Point")
	obj.SetProp("x", value.Int(3))
	base := value.Obj(obj)

	v := Prop(Ctx{Sink: diag.DiscardSink{}}, &base, "x")
	if v.IntVal() != 3 {
		t.Errorf("Prop(x) = %v, want 3", v)
	}
}

func TestPropOnNonObjectWarns(t *testing.T) {
	sink := &diag.CollectSink{}
	base := value.Int(5)
	v := Prop(Ctx{Sink: sink}, &base, "x")
	if !v.IsNull() {
		t.Errorf("expected null, got %v", v)
	}
	if len(sink.Records) != 1 || sink.Records[0].Code != diag.CodeCannotAccessPropertyOnNonObject {
		t.Errorf("expected non-object warning, got %+v", sink.Records)
	}
}

func TestSetPropVivifiesStdclassFromNull(t *testing.T) {
	sink := &diag.CollectSink{}
	base := value.Null()
	SetProp(Ctx{Sink: sink}, &base, "y", value.Int(7))

	if base.Kind != value.KindObject {
		t.Fatalf("base not vivified to object, kind=%v", base.Kind)
	}
	v, ok := base.Obj_().GetProp("y")
	if !ok || v.IntVal() != 7 {
		t.Errorf("property not set, got %v, %v", v, ok)
	}
	if len(sink.Records) != 1 || sink.Records[0].Code != diag.CodeCreatingDefaultObjectFromEmptyValue {
		t.Errorf("expected vivification warning, got %+v", sink.Records)
	}
}

func TestUnsetPropRemovesSlot(t *testing.T) {
	obj := value.NewObject("X")
	obj.SetProp("z", value.Int(1))
	base := value.Obj(obj)
	UnsetProp(&base, "z")
	if obj.HasProp("z") {
		t.Errorf("property still present after UnsetProp")
	}
}

func TestIssetEmptyProp(t *testing.T) {
	obj := value.NewObject("X")
	obj.SetProp("a", value.Int(0))
	base := value.Obj(obj)

	if !IssetEmptyProp(&base, "a", false) {
		t.Errorf("isset should be true for an existing falsy property")
	}
	if !IssetEmptyProp(&base, "a", true) {
		t.Errorf("empty should be true for a 0-valued property")
	}
	if IssetEmptyProp(&base, "missing", false) {
		t.Errorf("isset should be false for a missing property")
	}
}

type fakeMagic struct {
	vals map[string]value.Cell
}

func (m *fakeMagic) Get(name string) (value.Cell, bool) {
	v, ok := m.vals[name]
	return v, ok
}
func (m *fakeMagic) Set(name string, val value.Cell) { m.vals[name] = val }
func (m *fakeMagic) Isset(name string) bool          { _, ok := m.vals[name]; return ok }
func (m *fakeMagic) Unset(name string) bool          { delete(m.vals, name); return true }

func TestMagicPropFallback(t *testing.T) {
	obj := value.NewObject("Proxy")
	obj.Magic = &fakeMagic{vals: map[string]value.Cell{}}
	base := value.Obj(obj)

	SetProp(Ctx{Sink: diag.DiscardSink{}}, &base, "dyn", value.Int(42))
	v := Prop(Ctx{Sink: diag.DiscardSink{}}, &base, "dyn")
	if v.IntVal() != 42 {
		t.Errorf("magic __get/__set round trip failed, got %v", v)
	}
}

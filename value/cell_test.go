package value

import "testing"

func TestTruthy(t *testing.T) {
	tests := []struct {
		name string
		cell Cell
		want bool
	}{
		{"null", Null(), false},
		{"uninit", Uninit(), false},
		{"false", Bool(false), false},
		{"true", Bool(true), true},
		{"zero int", Int(0), false},
		{"nonzero int", Int(1), true},
		{"empty string", Str(NewString("")), false},
		{"zero string", Str(NewString("0")), false},
		{"other string", Str(NewString("0.0")), true},
		{"empty array", Arr(NewArray()), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cell.Truthy(); got != tt.want {
				t.Errorf("Truthy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRefcountedExcludesStaticString(t *testing.T) {
	if Str(NewStaticString("x")).Refcounted() {
		t.Errorf("static string reported as refcounted")
	}
	if !Str(NewString("x")).Refcounted() {
		t.Errorf("heap string not reported as refcounted")
	}
}

func TestDuplicateBumpsRefcount(t *testing.T) {
	sd := NewString("hello")
	c := Str(sd)
	d := Duplicate(c)
	if !sd.HasMultipleRefs() {
		t.Fatalf("expected multiple refs after Duplicate")
	}
	Release(c)
	Release(d)
}

func TestUnboxFollowsRef(t *testing.T) {
	inner := Int(7)
	r := NewRef(inner)
	cell := Ref(r)
	unboxed := Unbox(&cell)
	if unboxed.Kind != KindInt || unboxed.IntVal() != 7 {
		t.Errorf("Unbox did not resolve to inner int, got %v", unboxed)
	}
}

func TestAssignReleasesOld(t *testing.T) {
	sd := NewString("a")
	slot := Str(sd)
	Assign(&slot, Int(5))
	if slot.Kind != KindInt {
		t.Errorf("Assign did not overwrite slot")
	}
	if sd.refs != 0 {
		t.Errorf("Assign did not release the old payload, refs = %d", sd.refs)
	}
}

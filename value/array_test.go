package value

import "testing"

func TestIsStrictlyIntegerKey(t *testing.T) {
	tests := []struct {
		s    string
		n    int64
		want bool
	}{
		{"10", 10, true},
		{"0", 0, true},
		{"-5", -5, true},
		{"010", 0, false},
		{" 10", 0, false},
		{"10 ", 0, false},
		{"10a", 0, false},
		{"-0", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			n, ok := IsStrictlyIntegerKey(tt.s)
			if ok != tt.want {
				t.Fatalf("IsStrictlyIntegerKey(%q) ok = %v, want %v", tt.s, ok, tt.want)
			}
			if ok && n != tt.n {
				t.Errorf("IsStrictlyIntegerKey(%q) = %d, want %d", tt.s, n, tt.n)
			}
		})
	}
}

func TestArraySetGetRemove(t *testing.T) {
	a := NewArray()
	a.Set(IntKey(0), Int(42))
	a.Set(StringKey("name"), Str(NewString("gus")))

	v, ok := a.Get(IntKey(0))
	if !ok || v.IntVal() != 42 {
		t.Fatalf("Get(0) = %v, %v", v, ok)
	}

	a.Remove(IntKey(0))
	if _, ok := a.Get(IntKey(0)); ok {
		t.Errorf("entry still present after Remove")
	}
	if a.Len() != 1 {
		t.Errorf("Len() = %d, want 1", a.Len())
	}
}

func TestArrayAppendUsesNextInt(t *testing.T) {
	a := NewArray()
	a.Set(IntKey(5), Int(1))
	k := a.Append(Int(2))
	if !k.IsInt || k.Int != 6 {
		t.Errorf("Append key = %+v, want int 6", k)
	}
}

func TestArrayCopyDuplicatesRefcountedElements(t *testing.T) {
	a := NewArray()
	sd := NewString("shared")
	a.Set(StringKey("s"), Str(sd))

	b := a.Copy()
	if !sd.HasMultipleRefs() {
		t.Errorf("Copy did not bump refcount of shared string element")
	}
	v, _ := b.Get(StringKey("s"))
	if v.Str_().Data() != "shared" {
		t.Errorf("copied array has wrong element value")
	}
}

func TestHasMultipleRefs(t *testing.T) {
	a := NewArray()
	if a.HasMultipleRefs() {
		t.Errorf("fresh array reports multiple refs")
	}
	a.IncRef()
	if !a.HasMultipleRefs() {
		t.Errorf("array with bumped refcount does not report multiple refs")
	}
}

package value

import "testing"

func TestModifyCharInPlaceGrowsAndPads(t *testing.T) {
	s := NewString("ab")
	s.ModifyCharInPlace(4, 'x')
	if s.Data() != "ab  x" {
		t.Errorf("ModifyCharInPlace grew to %q, want %q", s.Data(), "ab  x")
	}
}

func TestWithCharSetDoesNotMutateOriginal(t *testing.T) {
	s := NewString("ab")
	s.IncRef() // simulate a second reference
	n := s.WithCharSet(0, 'z')
	if s.Data() != "ab" {
		t.Errorf("original mutated: %q", s.Data())
	}
	if n.Data() != "zb" {
		t.Errorf("copy = %q, want %q", n.Data(), "zb")
	}
}

func TestGetChar(t *testing.T) {
	s := NewString("hello")
	if c, ok := s.GetChar(0); !ok || c != "h" {
		t.Errorf("GetChar(0) = %q, %v", c, ok)
	}
	if _, ok := s.GetChar(5); ok {
		t.Errorf("GetChar(5) should be out of bounds")
	}
	if _, ok := s.GetChar(-1); ok {
		t.Errorf("GetChar(-1) should be out of bounds")
	}
}

func TestStaticStringAlwaysReportsShared(t *testing.T) {
	s := NewStaticString("lit")
	if !s.HasMultipleRefs() {
		t.Errorf("static string should always report shared, got false")
	}
}

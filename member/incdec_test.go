package member

import (
	"testing"

	"hhvm/value"
)

func TestIncDecBodyInt(t *testing.T) {
	if v := IncDecBody(OpInc, value.Int(5)); v.IntVal() != 6 {
		t.Errorf("inc = %v", v)
	}
	if v := IncDecBody(OpDec, value.Int(5)); v.IntVal() != 4 {
		t.Errorf("dec = %v", v)
	}
}

func TestIncDecBodyNullIncBecomesOne(t *testing.T) {
	v := IncDecBody(OpInc, value.Null())
	if v.Kind != value.KindInt || v.IntVal() != 1 {
		t.Errorf("inc(null) = %v, want int 1", v)
	}
}

func TestIncDecBodyBoolUnaffected(t *testing.T) {
	v := IncDecBody(OpInc, value.Bool(true))
	if v.Kind != value.KindBool || !v.BoolVal() {
		t.Errorf("bools must be immune to inc/dec, got %v", v)
	}
}

func TestIncDecStringAlphaCarry(t *testing.T) {
	v := IncDecBody(OpInc, value.Str(value.NewString("az")))
	if v.String() != "ba" {
		t.Errorf("\"az\"++ = %q, want %q", v.String(), "ba")
	}
}

func TestIncDecStringNumericFallsBackToArithmetic(t *testing.T) {
	v := IncDecBody(OpInc, value.Str(value.NewString("9")))
	if v.Kind != value.KindInt || v.IntVal() != 10 {
		t.Errorf("\"9\"++ = %v, want int 10", v)
	}
}

func TestIncDecElemArray(t *testing.T) {
	arr := value.NewArray()
	arr.Set(value.IntKey(0), value.Int(1))
	base := value.Arr(arr)
	result, err := IncDecElem(Ctx{}, &base, value.Int(0), OpInc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IntVal() != 2 {
		t.Errorf("IncDecElem result = %v, want 2", result)
	}
	v, _ := base.Arr_().Get(value.IntKey(0))
	if v.IntVal() != 2 {
		t.Errorf("array not updated, got %v", v)
	}
}

package member

import (
	"testing"

	"hhvm/diag"
	"hhvm/value"
)

func TestElemArrayUndefinedIndexWarns(t *testing.T) {
	sink := &diag.CollectSink{}
	ctx := Ctx{Sink: sink}
	base := value.Arr(value.NewArray())

	v := Elem(ctx, &base, value.Int(0))
	if !v.IsNull() {
		t.Errorf("expected null for missing key, got %v", v)
	}
	if len(sink.Records) != 1 || sink.Records[0].Code != diag.CodeUndefinedIndex {
		t.Errorf("expected one Undefined index notice, got %+v", sink.Records)
	}
}

func TestElemDEmptyishVivifiesArray(t *testing.T) {
	base := value.Null()
	ctx := Ctx{Sink: diag.DiscardSink{}}
	slot, err := ElemD(ctx, &base, value.Int(0), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	*slot = value.Int(99)

	if base.Kind != value.KindArray {
		t.Fatalf("base not vivified to array, kind=%v", base.Kind)
	}
	v, ok := base.Arr_().Get(value.IntKey(0))
	if !ok || v.IntVal() != 99 {
		t.Errorf("write through ElemD slot not observed, got %v, %v", v, ok)
	}
}

func TestSetElemArrayCOWOnSharedArray(t *testing.T) {
	arr := value.NewArray()
	arr.Set(value.IntKey(0), value.Int(1))
	arr.IncRef() // simulate a second owner

	base := value.Arr(arr)
	ctx := Ctx{Sink: diag.DiscardSink{}}
	SetElemArray(ctx, &base, value.Int(0), value.Int(2))

	if base.Arr_() == arr {
		t.Errorf("SetElemArray mutated a shared array in place")
	}
	v, _ := base.Arr_().Get(value.IntKey(0))
	if v.IntVal() != 2 {
		t.Errorf("new array missing the write, got %v", v)
	}
	orig, _ := arr.Get(value.IntKey(0))
	if orig.IntVal() != 1 {
		t.Errorf("original shared array was mutated, got %v", orig)
	}
}

func TestElemScalarWarns(t *testing.T) {
	sink := &diag.CollectSink{}
	ctx := Ctx{Sink: sink}
	base := value.Int(5)

	v := Elem(ctx, &base, value.Int(0))
	if !v.IsNull() {
		t.Errorf("expected null reading into a scalar, got %v", v)
	}
	if len(sink.Records) != 1 || sink.Records[0].Code != diag.CodeCannotUseScalarAsArray {
		t.Errorf("expected CannotUseScalarAsArray warning, got %+v", sink.Records)
	}
}

func TestElemStringInBoundsAndOutOfBounds(t *testing.T) {
	ctx := Ctx{Sink: diag.DiscardSink{}}
	base := value.Str(value.NewString("hello"))

	c := Elem(ctx, &base, value.Int(1))
	if c.String() != "e" {
		t.Errorf("ElemString(1) = %q, want %q", c.String(), "e")
	}

	sink := &diag.CollectSink{}
	ctx2 := Ctx{Sink: sink}
	oob := Elem(ctx2, &base, value.Int(99))
	if oob.String() != "" {
		t.Errorf("out-of-range string offset should be empty string, got %q", oob.String())
	}
	if len(sink.Records) != 1 || sink.Records[0].Code != diag.CodeOutOfBounds {
		t.Errorf("expected OutOfBounds warning, got %+v", sink.Records)
	}
}

func TestSetElemStringInPlaceVsCopy(t *testing.T) {
	sd := value.NewString("abc")
	base := value.Str(sd)
	ctx := Ctx{Sink: diag.DiscardSink{}}

	if _, err := SetElemString(ctx, &base, value.Int(1), value.Str(value.NewString("X")), true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if base.Str_().Data() != "aXc" {
		t.Errorf("in-place mutation failed, got %q", base.Str_().Data())
	}

	sd2 := value.NewString("abc")
	sd2.IncRef()
	base2 := value.Str(sd2)
	SetElemString(ctx, &base2, value.Int(1), value.Str(value.NewString("X")), true)
	if base2.Str_() == sd2 {
		t.Errorf("expected COW copy for shared string")
	}
	if base2.Str_().Data() != "aXc" {
		t.Errorf("copy missing the write, got %q", base2.Str_().Data())
	}
	if sd2.Data() != "abc" {
		t.Errorf("shared original mutated, got %q", sd2.Data())
	}
}

func TestAppendGrowsWithSpacePadding(t *testing.T) {
	sd := value.NewString("ab")
	base := value.Str(sd)
	ctx := Ctx{Sink: diag.DiscardSink{}}
	SetElemString(ctx, &base, value.Int(5), value.Str(value.NewString("Z")), true)
	if base.Str_().Data() != "ab   Z" {
		t.Errorf("got %q, want %q", base.Str_().Data(), "ab   Z")
	}
}

func TestUnsetElemArray(t *testing.T) {
	arr := value.NewArray()
	arr.Set(value.IntKey(0), value.Int(1))
	base := value.Arr(arr)
	UnsetElem(Ctx{Sink: diag.DiscardSink{}}, &base, value.Int(0))
	if base.Arr_().Exists(value.IntKey(0)) {
		t.Errorf("key still present after UnsetElem")
	}
}

func TestIssetEmptyElemArray(t *testing.T) {
	arr := value.NewArray()
	arr.Set(value.IntKey(0), value.Int(0))
	base := value.Arr(arr)
	ctx := Ctx{Sink: diag.DiscardSink{}}

	if !IssetEmptyElem(ctx, &base, value.Int(0), false) {
		t.Errorf("isset should be true for existing falsy element")
	}
	if !IssetEmptyElem(ctx, &base, value.Int(0), true) {
		t.Errorf("empty should be true for a 0 element")
	}
	if IssetEmptyElem(ctx, &base, value.Int(9), false) {
		t.Errorf("isset should be false for a missing key")
	}
}

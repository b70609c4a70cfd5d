package bemu_test

import (
	"errors"
	"math"
	"testing"
	"time"

	bemu "github.com/reoring/bemu"
)

func TestObject_SetNameAndValue(t *testing.T) {
	o := bemu.MustObject("tmp", 1.5)
	if o.Datatype() != bemu.DatatypeFloat64 {
		t.Fatalf("datatype = %s", o.Datatype())
	}
	o.SetName("PX_LAST")
	if o.Name().String() != "PX_LAST" {
		t.Fatalf("name = %s", o.Name())
	}
	if err := o.SetValue(int32(7)); err != nil {
		t.Fatal(err)
	}
	if v, err := o.ValueAsInt32(0); err != nil || v != 7 || o.Datatype() != bemu.DatatypeInt32 {
		t.Fatalf("after SetValue: %d %v %s", v, err, o.Datatype())
	}
	if got := o.String(); got != "PX_LAST = 7\n" {
		t.Fatalf("print = %q", got)
	}
}

func TestObject_SetValueKinds(t *testing.T) {
	cases := []struct {
		v    any
		want bemu.Datatype
	}{
		{nil, bemu.DatatypeNull},
		{true, bemu.DatatypeBool},
		{int16(3), bemu.DatatypeInt32},
		{uint8(3), bemu.DatatypeInt32},
		{42, bemu.DatatypeInt64},
		{uint32(3), bemu.DatatypeInt64},
		{float32(1.25), bemu.DatatypeFloat32},
		{"x", bemu.DatatypeString},
		{[]byte("x"), bemu.DatatypeString},
		{time.Now(), bemu.DatatypeDatetime},
		{time.Second, bemu.DatatypeString},
	}
	for _, tc := range cases {
		o, err := bemu.NewObject("v", tc.v)
		if err != nil {
			t.Fatalf("%T: %v", tc.v, err)
		}
		if o.Datatype() != tc.want {
			t.Fatalf("%T: datatype = %s, want %s", tc.v, o.Datatype(), tc.want)
		}
	}
	o, _ := bemu.NewObject("d", time.Second)
	if s, _ := o.ValueAsString(0); s != "1s" {
		t.Fatalf("stringer value = %q", s)
	}
}

func TestObject_SetValueErrorsLeaveValue(t *testing.T) {
	o := bemu.MustObject("v", "keep")
	err := o.SetValue(struct{}{})
	if !bemu.HasCode(err, bemu.CodeInvalidValue) {
		t.Fatalf("expected invalid_value, got %v", err)
	}
	if err := o.SetValue(uint64(math.MaxUint64)); !errors.Is(err, bemu.ErrOverflow) {
		t.Fatalf("expected overflow, got %v", err)
	}
	if s, _ := o.ValueAsString(0); s != "keep" {
		t.Fatalf("value changed to %q", s)
	}
	if _, err := bemu.NewObject("v", []int{1}); err == nil {
		t.Fatalf("expected error for unsupported value")
	}
}

package bemu_test

import (
	"errors"
	"math"
	"testing"
	"time"

	bemu "github.com/reoring/bemu"
)

func TestScalar_Shape(t *testing.T) {
	s := bemu.NewInt32("code", 9)
	if s.Name().String() != "code" || s.Datatype() != bemu.DatatypeInt32 {
		t.Fatalf("unexpected identity: %s %s", s.Name(), s.Datatype())
	}
	if s.NumValues() != 1 || s.NumElements() != 0 {
		t.Fatalf("scalar counts: values=%d elements=%d", s.NumValues(), s.NumElements())
	}
	if s.IsArray() || s.IsComplexType() || s.IsNull() {
		t.Fatalf("scalar flags wrong")
	}
	if s.Elements() != nil || s.HasElement("code", false) {
		t.Fatalf("scalar must have no children")
	}
	if _, err := s.Element("code"); !errors.Is(err, bemu.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := s.ElementAt(0); !errors.Is(err, bemu.ErrOutOfRange) {
		t.Fatalf("expected out of range, got %v", err)
	}
}

func TestScalar_StringRoundTrip(t *testing.T) {
	for _, v := range []string{"", "IBM US Equity", "quote \"x\"", "日本語"} {
		got, err := bemu.NewString("s", v).ValueAsString(0)
		if err != nil || got != v {
			t.Fatalf("round trip %q: got %q, %v", v, got, err)
		}
	}
	b, err := bemu.NewString("s", "abc").ValueAsBytes(0)
	if err != nil || string(b) != "abc" {
		t.Fatalf("bytes: %q %v", b, err)
	}
}

func TestScalar_IndexCheckedBeforeType(t *testing.T) {
	s := bemu.NewString("s", "x")
	_, err := s.ValueAsInt32(5)
	if !errors.Is(err, bemu.ErrOutOfRange) {
		t.Fatalf("expected out of range, got %v", err)
	}
	iss, _ := bemu.AsIssues(err)
	if iss[0].Path != "/s" || iss[0].Params["index"] != 5 || iss[0].Params["len"] != 1 {
		t.Fatalf("unexpected issue: %+v", iss[0])
	}
	if _, err := s.ValueAsString(-1); !errors.Is(err, bemu.ErrOutOfRange) {
		t.Fatalf("negative index: %v", err)
	}
}

func TestScalar_ConversionPolicy(t *testing.T) {
	i := bemu.NewInt32("i", -42)
	if v, err := i.ValueAsInt64(0); err != nil || v != -42 {
		t.Fatalf("int32->int64: %d %v", v, err)
	}
	if v, err := i.ValueAsFloat64(0); err != nil || v != -42 {
		t.Fatalf("int32->float64: %v %v", v, err)
	}
	if v, err := i.ValueAsString(0); err != nil || v != "-42" {
		t.Fatalf("int32->string: %q %v", v, err)
	}
	if _, err := i.ValueAsBool(0); !errors.Is(err, bemu.ErrTypeMismatch) {
		t.Fatalf("int32->bool: %v", err)
	}

	big := bemu.NewInt64("big", 1<<40)
	if _, err := big.ValueAsInt32(0); !errors.Is(err, bemu.ErrOverflow) {
		t.Fatalf("int64->int32 overflow: %v", err)
	}
	small := bemu.NewInt64("small", 7)
	if v, err := small.ValueAsInt32(0); err != nil || v != 7 {
		t.Fatalf("int64->int32: %d %v", v, err)
	}

	f := bemu.NewFloat64("f", 2.5)
	if _, err := f.ValueAsInt64(0); !errors.Is(err, bemu.ErrTypeMismatch) {
		t.Fatalf("float->int64: %v", err)
	}
	if v, err := f.ValueAsFloat32(0); err != nil || v != 2.5 {
		t.Fatalf("float64->float32: %v %v", v, err)
	}
	if _, err := bemu.NewFloat64("huge", 1e300).ValueAsFloat32(0); !errors.Is(err, bemu.ErrOverflow) {
		t.Fatalf("float32 overflow: %v", err)
	}
	if v, err := bemu.NewFloat64("inf", math.Inf(1)).ValueAsFloat32(0); err != nil || !math.IsInf(float64(v), 1) {
		t.Fatalf("infinity is representable: %v %v", v, err)
	}

	if _, err := bemu.NewString("n", "1").ValueAsInt32(0); !errors.Is(err, bemu.ErrTypeMismatch) {
		t.Fatalf("string->int32: %v", err)
	}
	if v, err := bemu.NewBool("b", true).ValueAsString(0); err != nil || v != "true" {
		t.Fatalf("bool->string: %q %v", v, err)
	}
	if _, err := bemu.NewBool("b", true).ValueAsElement(0); !errors.Is(err, bemu.ErrTypeMismatch) {
		t.Fatalf("bool->element: %v", err)
	}
}

func TestScalar_Datetime(t *testing.T) {
	ts := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	d := bemu.NewDatetime("time", ts)
	got, err := d.ValueAsDatetime(0)
	if err != nil || !got.Equal(ts) {
		t.Fatalf("datetime: %v %v", got, err)
	}
	if s, _ := d.ValueAsString(0); s != "2024-03-01T09:30:00.000+00:00" {
		t.Fatalf("datetime text = %q", s)
	}

	day := bemu.NewDate("date", time.Date(2024, 3, 1, 15, 4, 5, 0, time.UTC))
	if !day.IsDateOnly() || d.IsDateOnly() {
		t.Fatalf("date-only flags wrong")
	}
	if s, _ := day.ValueAsString(0); s != "2024-03-01" {
		t.Fatalf("date text = %q", s)
	}
	if _, err := bemu.NewString("s", "2024-03-01").ValueAsDatetime(0); !errors.Is(err, bemu.ErrTypeMismatch) {
		t.Fatalf("string->datetime: %v", err)
	}
}

func TestScalar_Null(t *testing.T) {
	n := bemu.NewNull("px")
	if !n.IsNull() || n.Datatype() != bemu.DatatypeNull {
		t.Fatalf("null flags wrong")
	}
	_, err := n.ValueAsString(0)
	if !errors.Is(err, bemu.ErrTypeMismatch) {
		t.Fatalf("null read: %v", err)
	}
	iss, _ := bemu.AsIssues(err)
	if iss[0].Params["null"] != true {
		t.Fatalf("null issue params: %+v", iss[0].Params)
	}
	if _, err := n.ValueAsFloat64(3); !errors.Is(err, bemu.ErrOutOfRange) {
		t.Fatalf("index is checked first: %v", err)
	}
	if got := n.String(); got != "px = null\n" {
		t.Fatalf("null print = %q", got)
	}
}

package codec_test

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	bemu "github.com/reoring/bemu"
	"github.com/reoring/bemu/codec"
)

func childNames(e bemu.Element) []string {
	var out []string
	for _, c := range e.Elements() {
		out = append(out, c.Name().String())
	}
	return out
}

func TestDecodeJSON_PreservesOrder(t *testing.T) {
	e, err := codec.DecodeJSON("securityData", []byte(`{"z":1,"a":"x","m":{"y":true,"b":null},"arr":[1,2]}`))
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if diff := cmp.Diff([]string{"z", "a", "m", "arr"}, childNames(e)); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
	m, _ := e.Element("m")
	if diff := cmp.Diff([]string{"y", "b"}, childNames(m)); diff != "" {
		t.Fatalf("nested order mismatch (-want +got):\n%s", diff)
	}
	if !m.HasElement("b", false) || m.HasElement("b", true) {
		t.Fatalf("null child handling")
	}
	arr, _ := e.Element("arr")
	if !arr.IsArray() || arr.NumValues() != 2 {
		t.Fatalf("arr = %v", arr)
	}
	it, _ := arr.ValueAsElement(1)
	if it.Name().String() != "arr" {
		t.Fatalf("array items are named after the array, got %q", it.Name())
	}
}

func TestDecodeJSON_NumberTypes(t *testing.T) {
	e, err := codec.DecodeJSON("n", []byte(`{"small":7,"big":8589934592,"frac":1.25,"exp":1e3,"neg":-2147483648}`))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]bemu.Datatype{
		"small": bemu.DatatypeInt32,
		"big":   bemu.DatatypeInt64,
		"frac":  bemu.DatatypeFloat64,
		"exp":   bemu.DatatypeFloat64,
		"neg":   bemu.DatatypeInt32,
	}
	for name, dt := range want {
		c, err := e.Element(name)
		if err != nil {
			t.Fatal(err)
		}
		if c.Datatype() != dt {
			t.Fatalf("%s: datatype %s, want %s", name, c.Datatype(), dt)
		}
	}
	if v, _ := e.ElementAsInt64("big"); v != 8589934592 {
		t.Fatalf("big = %d", v)
	}
}

func TestDecodeJSON_Datetimes(t *testing.T) {
	data := []byte(`{"time":"2024-03-01T09:30:00Z","date":"2024-03-01","text":"2024-03-01 is a Friday"}`)
	plain, err := codec.DecodeJSON("bar", data)
	if err != nil {
		t.Fatal(err)
	}
	if c, _ := plain.Element("time"); c.Datatype() != bemu.DatatypeString {
		t.Fatalf("datetimes are strings unless requested")
	}

	e, err := codec.DecodeJSON("bar", data, codec.DecodeOpt{ParseDatetimes: true})
	if err != nil {
		t.Fatal(err)
	}
	ts, err := e.ElementAsDatetime("time")
	if err != nil || !ts.Equal(time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)) {
		t.Fatalf("time = %v, %v", ts, err)
	}
	d, _ := e.Element("date")
	if s, _ := d.ValueAsString(0); s != "2024-03-01" {
		t.Fatalf("date = %q", s)
	}
	if c, _ := e.Element("text"); c.Datatype() != bemu.DatatypeString {
		t.Fatalf("text must stay a string")
	}
}

func TestDecodeJSON_ScalarRoot(t *testing.T) {
	e, err := codec.DecodeJSON("px", []byte(` 101.5 `))
	if err != nil {
		t.Fatal(err)
	}
	if v, err := e.ValueAsFloat64(0); err != nil || v != 101.5 || e.Name().String() != "px" {
		t.Fatalf("scalar root: %v %v", v, err)
	}
}

func TestDecodeJSON_Errors(t *testing.T) {
	cases := []struct {
		name string
		data string
		opt  codec.DecodeOpt
		code string
		path string
	}{
		{"empty", ``, codec.DecodeOpt{}, bemu.CodeParseError, "/"},
		{"depth", `{"a":{"b":{"c":1}}}`, codec.DecodeOpt{MaxDepth: 2}, bemu.CodeParseError, "/a/b"},
		{"duplicate", `{"a":1,"a":2}`, codec.DecodeOpt{OnDuplicate: codec.DuplicateReject}, bemu.CodeDuplicateKey, "/a"},
		{"bytes", `{"a":"` + strings.Repeat("x", 256) + `"}`, codec.DecodeOpt{MaxBytes: 16}, bemu.CodeTruncated, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := codec.DecodeJSON("doc", []byte(tc.data), tc.opt)
			iss, ok := bemu.AsIssues(err)
			if !ok {
				t.Fatalf("expected Issues, got %v", err)
			}
			if iss[0].Code != tc.code {
				t.Fatalf("code = %s, want %s (%v)", iss[0].Code, tc.code, err)
			}
			if tc.path != "" && iss[0].Path != tc.path {
				t.Fatalf("path = %s, want %s", iss[0].Path, tc.path)
			}
		})
	}
	if _, err := codec.DecodeJSON("doc", []byte(`{"a":`)); !bemu.HasCode(err, bemu.CodeParseError) {
		t.Fatalf("truncated document: %v", err)
	}
}

func TestDecodeJSON_DuplicateKeys(t *testing.T) {
	data := []byte(`{"a":1,"a":2}`)
	e, err := codec.DecodeJSON("doc", data)
	if err != nil {
		t.Fatal(err)
	}
	if e.NumElements() != 2 {
		t.Fatalf("duplicates are kept, got %d children", e.NumElements())
	}
	if v, _ := e.ElementAsInt32("a"); v != 1 {
		t.Fatalf("lookup returns the first occurrence, got %d", v)
	}

	var warned []bemu.Issue
	_, err = codec.DecodeJSON("doc", data, codec.DecodeOpt{
		OnDuplicate: codec.DuplicateWarn,
		OnWarning:   func(is bemu.Issue) { warned = append(warned, is) },
	})
	if err != nil || len(warned) != 1 || warned[0].Code != bemu.CodeDuplicateKey {
		t.Fatalf("warnings = %v, err = %v", warned, err)
	}
}

func TestDecodeJSONReader_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := codec.DecodeJSONReader(ctx, "doc", strings.NewReader(`{"a":1}`))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestMarshalJSON_RoundTrip(t *testing.T) {
	in := `{"security":"IBM US Equity","sequenceNumber":0,"fieldData":{"PX_LAST":101.5,"VOLUME":8589934592,"ok":true,"none":null},"tags":["a","b"]}`
	e, err := codec.DecodeJSON("securityData", []byte(in))
	if err != nil {
		t.Fatal(err)
	}
	out, err := codec.MarshalJSON(e)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(`{"securityData":`+in+`}`, string(out)); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestMarshalJSON_Scalars(t *testing.T) {
	ts := time.Date(2024, 3, 1, 9, 30, 0, 0, time.FixedZone("JST", 9*3600))
	tree := bemu.NewComplex("bar",
		bemu.NewDatetime("time", ts),
		bemu.NewDate("date", ts),
		bemu.NewFloat32("f32", 1.1),
		bemu.NewString("q", `say "hi"`),
	)
	out, err := codec.MarshalJSON(tree)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"bar":{"time":"2024-03-01T00:30:00Z","date":"2024-03-01","f32":1.1,"q":"say \"hi\""}}`
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestMarshalJSON_NaNUnsupported(t *testing.T) {
	_, err := codec.MarshalJSON(bemu.NewComplex("c", bemu.NewFloat64("x", math.NaN())))
	iss, ok := bemu.AsIssues(err)
	if !ok || iss[0].Code != bemu.CodeUnsupported || iss[0].Path != "/c/x" {
		t.Fatalf("unexpected error: %v", err)
	}
}

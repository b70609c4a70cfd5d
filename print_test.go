package bemu_test

import (
	"errors"
	"strings"
	"testing"

	bemu "github.com/reoring/bemu"
)

func sampleTree() *bemu.Complex {
	return bemu.NewComplex("quote",
		bemu.NewString("ticker", "IBM"),
		bemu.NewFloat64("px", 101.5),
		bemu.NewStringArray("tags", "a", "b"),
		bemu.NewComplex("inner", bemu.NewBool("ok", true)),
	)
}

func TestPrint_Indented(t *testing.T) {
	want := `quote = {
    ticker = "IBM"
    px = 101.5
    tags[] = {
        "a"
        "b"
    }
    inner = {
        ok = true
    }
}
`
	if got := sampleTree().String(); got != want {
		t.Fatalf("print mismatch:\n%s", got)
	}
}

func TestPrint_LevelOffset(t *testing.T) {
	var b strings.Builder
	if err := bemu.NewComplex("c", bemu.NewInt64("n", 3)).Print(&b, 1, 2); err != nil {
		t.Fatal(err)
	}
	if want := "  c = {\n    n = 3\n  }\n"; b.String() != want {
		t.Fatalf("got %q, want %q", b.String(), want)
	}
	b.Reset()
	_ = bemu.NewInt64("n", 3).Print(&b, -4, 2)
	if b.String() != "n = 3\n" {
		t.Fatalf("negative level must clamp: %q", b.String())
	}
}

func TestPrint_SingleLine(t *testing.T) {
	var b strings.Builder
	if err := sampleTree().Print(&b, 0, -1); err != nil {
		t.Fatal(err)
	}
	want := `quote = { ticker = "IBM" px = 101.5 tags[] = { "a" "b" } inner = { ok = true } }`
	if b.String() != want {
		t.Fatalf("got %q", b.String())
	}
}

func TestPrint_Deterministic(t *testing.T) {
	tree := sampleTree()
	first := tree.String()
	for i := 0; i < 5; i++ {
		if tree.String() != first {
			t.Fatalf("print output changed between calls")
		}
	}
}

type failWriter struct{ n int }

var errWrite = errors.New("write failed")

func (w *failWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, errWrite
	}
	w.n--
	return len(p), nil
}

func TestPrint_WriteError(t *testing.T) {
	w := &failWriter{n: 2}
	if err := sampleTree().Print(w, 0, 4); !errors.Is(err, errWrite) {
		t.Fatalf("expected write error, got %v", err)
	}
}

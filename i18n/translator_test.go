package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("not_found", map[string]string{"name": "fieldData"}); msg != "element fieldData not found" {
		t.Fatalf("unexpected english message, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("not_found", map[string]string{"name": "fieldData"}); msg == "element fieldData not found" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_UnknownCodeFallsBackToCode(t *testing.T) {
	if msg := T("no_such_code", nil); msg != "no_such_code" {
		t.Fatalf("expected code echo, got %q", msg)
	}
}

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return "X:" + code }

func TestSetTranslator_CustomAndReset(t *testing.T) {
	SetTranslator(upper{})
	if msg := T("out_of_range", nil); msg != "X:out_of_range" {
		t.Fatalf("custom translator not used, got %q", msg)
	}
	SetTranslator(nil)
	if msg := T("out_of_range", map[string]string{"index": "5", "len": "1"}); msg != "index 5 out of range [0, 1)" {
		t.Fatalf("unexpected message after reset, got %q", msg)
	}
}

package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("invalid_number", nil); msg != "not a number" {
		t.Fatalf("expected the english message, got %q", msg)
	}
	if msg := T("no_such_code", nil); msg != "no_such_code" {
		t.Fatalf("unknown codes should echo themselves, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("invalid_date", nil); msg == "not a valid date" || msg == "" {
		t.Fatalf("expected a japanese message, got %q", msg)
	}

	// anything but "ja" falls back to en
	SetLanguage("fr")
	if msg := T("invalid_bool", nil); msg != "not a boolean" {
		t.Fatalf("expected the english fallback, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

type echoTranslator struct{}

func (echoTranslator) Message(code string, data map[string]string) string { return "!" + code }

func TestTranslator_Replace(t *testing.T) {
	SetTranslator(echoTranslator{})
	if msg := T("decode_failed", nil); msg != "!decode_failed" {
		t.Fatalf("custom translator not used, got %q", msg)
	}

	// nil restores the built-in dictionary
	SetTranslator(nil)
	if msg := T("decode_failed", nil); msg != "custom decode failed" {
		t.Fatalf("expected the dictionary message, got %q", msg)
	}
}

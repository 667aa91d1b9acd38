package gotabular_test

import (
	"errors"
	"testing"

	gotabular "github.com/reoring/gotabular"
	"github.com/reoring/gotabular/i18n"
)

func TestErrorList_SummaryShowsFirstThree(t *testing.T) {
	fe := func(row int, col, code string) gotabular.FieldError {
		return gotabular.FieldError{Column: col, Row: row, Code: code}
	}
	el := gotabular.ErrorList{
		{Row: 0, Fields: map[string]gotabular.FieldError{
			"b": fe(0, "b", gotabular.CodeInvalidBool),
			"a": fe(0, "a", gotabular.CodeInvalidNumber),
		}},
		{Row: 1, Fields: map[string]gotabular.FieldError{
			"c": fe(1, "c", gotabular.CodeInvalidDate),
		}},
		{Row: 2, Fields: map[string]gotabular.FieldError{
			"d": fe(2, "d", gotabular.CodeInvalidNumber),
			"e": fe(2, "e", gotabular.CodeInvalidNumber),
		}},
	}

	want := `invalid_number at row 0 column "a"; invalid_bool at row 0 column "b"; invalid_date at row 1 column "c"; ... (total 5)`
	if got := el.Error(); got != want {
		t.Fatalf("summary = %q, want %q", got, want)
	}
}

func TestErrorList_EmptySummary(t *testing.T) {
	if got := (gotabular.ErrorList{}).Error(); got != "" {
		t.Fatalf("empty summary = %q, want empty", got)
	}
}

func TestFieldError_Unwrap(t *testing.T) {
	cause := errors.New("underlying")
	fe := gotabular.FieldError{Column: "n", Row: 3, Code: gotabular.CodeInvalidNumber, Message: "not a number", Cause: cause}
	if !errors.Is(fe, cause) {
		t.Fatalf("field error should unwrap to its cause")
	}
	want := `invalid_number at row 3 column "n": not a number`
	if got := fe.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestAppendFieldError_InitializesMap(t *testing.T) {
	fe := gotabular.FieldError{Column: "n", Row: 0, Code: gotabular.CodeInvalidNumber}
	m := gotabular.AppendFieldError(nil, fe)
	if len(m) != 1 || m["n"].Code != gotabular.CodeInvalidNumber {
		t.Fatalf("m = %#v", m)
	}
}

func TestAsErrorList_NilAndForeign(t *testing.T) {
	if _, ok := gotabular.AsErrorList(nil); ok {
		t.Fatalf("nil error should not match")
	}
	if _, ok := gotabular.AsErrorList(errors.New("boom")); ok {
		t.Fatalf("foreign error should not match")
	}
}

func TestParseDataset_MessagesFollowLanguage(t *testing.T) {
	i18n.SetLanguage("ja")
	defer i18n.SetLanguage("en")

	res := gotabular.ParseDataset(gotabular.Dataset{{"n": "bad"}}, gotabular.TypeMap{"n": gotabular.Number()})
	fe := res.Errors[0].Fields["n"]
	if fe.Message != "数値として解釈できません" {
		t.Fatalf("message = %q, want the Japanese dictionary entry", fe.Message)
	}
}

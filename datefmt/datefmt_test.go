package datefmt_test

import (
	"testing"
	"time"

	"github.com/reoring/gotabular/datefmt"
)

func TestLayout(t *testing.T) {
	cases := []struct{ pattern, want string }{
		{"YYYY-MM-DD", "2006-01-02"},
		{"YYYY/MM/DD HH:mm:ss", "2006/01/02 15:04:05"},
		{"DD.MM.YY", "02.01.06"},
		{"M/D/YYYY", "1/2/2006"},
		{"HH:mm:ss.SSS", "15:04:05.000"},
		{"", ""},
	}
	for _, c := range cases {
		if got := datefmt.Layout(c.pattern); got != c.want {
			t.Fatalf("Layout(%q) = %q, want %q", c.pattern, got, c.want)
		}
	}
}

func TestParse(t *testing.T) {
	tm, err := datefmt.Parse("YYYY-MM-DD", "2020-01-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)
	if !tm.Equal(want) {
		t.Fatalf("got %v, want %v", tm, want)
	}
	if tm.Location() != time.UTC {
		t.Fatalf("expected UTC, got %v", tm.Location())
	}
}

func TestParseRejectsNonCanonical(t *testing.T) {
	bad := []string{
		"2020-1-2",
		"2020-02-30",
		"20200102",
		"2020-01-02T00:00:00Z",
		"not a date",
		"",
	}
	for _, v := range bad {
		if _, err := datefmt.Parse("YYYY-MM-DD", v); err == nil {
			t.Fatalf("expected error for %q", v)
		}
	}
	// zero-padded input against a non-padded pattern is not canonical either
	if _, err := datefmt.Parse("M/D/YYYY", "01/02/2020"); err == nil {
		t.Fatalf("expected error for zero-padded value")
	}
	if _, err := datefmt.Parse("M/D/YYYY", "1/2/2020"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFormatNormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	tm := time.Date(2021, 3, 14, 1, 2, 3, 0, loc)
	if got := datefmt.Format("YYYY-MM-DD", tm); got != "2021-03-13" {
		t.Fatalf("Format = %q, want 2021-03-13", got)
	}
	if got := datefmt.Format("YYYY/MM/DD HH:mm:ss", tm); got != "2021/03/13 16:02:03" {
		t.Fatalf("Format = %q", got)
	}
}

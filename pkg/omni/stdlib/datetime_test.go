package stdlib

import (
	"testing"
	"time"

	"github.com/omni-lang/omni/pkg/omni/evaluator"
)

func TestDateNow(t *testing.T) {
	l, _ := testLib()
	before := time.Now().Unix()
	got := call(t, l, "Date.now").(*evaluator.Int).Value
	after := time.Now().Unix()
	if got < before || got > after {
		t.Errorf("Date.now out of range: %d", got)
	}
}

func TestDateFormat(t *testing.T) {
	l, _ := testLib()
	ts := time.Date(2024, time.December, 25, 14, 30, 5, 0, time.Local).Unix()

	tests := []struct {
		pattern  string
		expected string
	}{
		{"dd/MM/yyyy", "25/12/2024"},
		{"yyyy-MM-dd", "2024-12-25"},
		{"dd/MM/yyyy HH:mm:ss", "25/12/2024 14:30:05"},
	}
	for _, tc := range tests {
		got := call(t, l, "Date.format", num(ts), str(tc.pattern))
		if got.(*evaluator.String).Value != tc.expected {
			t.Errorf("pattern %q: expected %q, got %q", tc.pattern, tc.expected, got.(*evaluator.String).Value)
		}
	}

	// Default pattern is dd/MM/yyyy
	if got := call(t, l, "Date.format", num(ts)); got.(*evaluator.String).Value != "25/12/2024" {
		t.Errorf("default pattern: %q", got.(*evaluator.String).Value)
	}
}

func TestDateFormatLocalizedMonthNames(t *testing.T) {
	l, _ := testLib()
	ts := time.Date(2024, time.December, 25, 0, 0, 0, 0, time.Local).Unix()

	en := call(t, l, "Date.format", num(ts), str("dd MMMM yyyy"), str("en_US"))
	if en.(*evaluator.String).Value != "25 December 2024" {
		t.Errorf("en_US: %q", en.(*evaluator.String).Value)
	}

	fr := call(t, l, "Date.format", num(ts), str("dd MMMM yyyy"), str("fr_FR"))
	if fr.(*evaluator.String).Value != "25 décembre 2024" {
		t.Errorf("fr_FR: %q", fr.(*evaluator.String).Value)
	}
}

func TestDateParseDefaultPattern(t *testing.T) {
	l, _ := testLib()

	got := call(t, l, "Date.parse", str("25/12/2024")).(*evaluator.Int).Value
	expected := time.Date(2024, time.December, 25, 0, 0, 0, 0, time.Local).Unix()
	if got != expected {
		t.Errorf("expected %d, got %d", expected, got)
	}
}

func TestDateParseLenientFallback(t *testing.T) {
	l, _ := testLib()

	got := call(t, l, "Date.parse", str("2024-12-25T10:00:00Z"), str("yyyy-MM-dd'T'HH:mm:ss")).(*evaluator.Int).Value
	if got == 0 {
		t.Error("lenient fallback did not parse an ISO timestamp")
	}
}

func TestDateParseGarbage(t *testing.T) {
	l, _ := testLib()
	if got := call(t, l, "Date.parse", str("not a date")).(*evaluator.Int).Value; got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}

func TestDateComparisonsAndParts(t *testing.T) {
	l, _ := testLib()
	earlier := time.Date(2020, time.March, 2, 0, 0, 0, 0, time.Local).Unix()
	later := time.Date(2024, time.July, 9, 0, 0, 0, 0, time.Local).Unix()

	if got := call(t, l, "Date.before", num(earlier), num(later)); got != evaluator.TRUE {
		t.Errorf("before: %s", got.Inspect())
	}
	if got := call(t, l, "Date.after", num(earlier), num(later)); got != evaluator.FALSE {
		t.Errorf("after: %s", got.Inspect())
	}
	if got := call(t, l, "Date.year", num(later)); got.Inspect() != "2024" {
		t.Errorf("year: %s", got.Inspect())
	}
	if got := call(t, l, "Date.month", num(later)); got.Inspect() != "7" {
		t.Errorf("month: %s", got.Inspect())
	}
	if got := call(t, l, "Date.day", num(later)); got.Inspect() != "9" {
		t.Errorf("day: %s", got.Inspect())
	}
}

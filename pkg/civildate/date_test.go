package civildate

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseValid(t *testing.T) {
	d, err := Parse("2025-04-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Year() != 2025 || d.Month() != time.April || d.Day() != 1 {
		t.Errorf("got %v", d)
	}
	if d.String() != "2025-04-01" {
		t.Errorf("String() = %q", d.String())
	}
}

func TestParseMalformed(t *testing.T) {
	for _, s := range []string{"", "2025/04/01", "01-04-2025", "2025-4-1", "2025-13-01", "yesterday"} {
		if _, err := Parse(s); err == nil {
			t.Errorf("Parse(%q): expected error", s)
		}
	}
}

func TestOrdering(t *testing.T) {
	a := MustParse("2025-04-01")
	b := MustParse("2025-04-02")
	if !a.Before(b) || !b.After(a) || a.Equal(b) {
		t.Error("ordering broken")
	}
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Error("Compare broken")
	}
}

func TestAddDaysAcrossMonthEnd(t *testing.T) {
	d := MustParse("2025-04-30").AddDays(1)
	if d.String() != "2025-05-01" {
		t.Errorf("got %s", d)
	}
	if d.AddDays(-1).String() != "2025-04-30" {
		t.Error("negative AddDays broken")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := MustParse("2025-04-15")
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"2025-04-15"` {
		t.Errorf("marshal = %s", b)
	}
	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if !back.Equal(d) {
		t.Errorf("round trip: %v != %v", back, d)
	}
}

func TestScanTime(t *testing.T) {
	var d Date
	if err := d.Scan(time.Date(2025, 4, 3, 10, 30, 0, 0, time.FixedZone("JST", 9*3600))); err != nil {
		t.Fatal(err)
	}
	if d.String() != "2025-04-03" {
		t.Errorf("scan dropped the calendar day: %s", d)
	}
}

func TestMonthDays(t *testing.T) {
	days, err := MonthDays("2025-02")
	if err != nil {
		t.Fatal(err)
	}
	if len(days) != 28 {
		t.Fatalf("2025-02 has %d days", len(days))
	}
	if days[0].String() != "2025-02-01" || days[27].String() != "2025-02-28" {
		t.Errorf("bounds: %s .. %s", days[0], days[27])
	}
	if _, err := MonthDays("202502"); err == nil {
		t.Error("expected error for malformed month")
	}
}

package schedule

import (
	"testing"
	"time"
)

func TestDayKey(t *testing.T) {
	d := NewDay(2024, time.June, 1)
	if d.Key() != "2024-06-01" {
		t.Fatalf("expected 2024-06-01, got %s", d.Key())
	}
}

func TestParseDayRoundTrip(t *testing.T) {
	d, err := ParseDay("2024-02-29")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Key() != "2024-02-29" {
		t.Fatalf("expected 2024-02-29, got %s", d.Key())
	}
}

func TestParseDayRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "2024-13-01", "01/06/2024", "2023-02-29"} {
		if _, err := ParseDay(s); err == nil {
			t.Fatalf("expected error for %q", s)
		}
	}
}

func TestNextPrevRoundTrip(t *testing.T) {
	days := []Day{
		NewDay(2024, time.March, 1),
		NewDay(2024, time.January, 1),
		NewDay(2023, time.December, 31),
		NewDay(2024, time.February, 29),
	}
	for _, d := range days {
		if got := d.Prev().Next(); got != d {
			t.Fatalf("round trip failed for %s: got %s", d.Key(), got.Key())
		}
		if got := d.Next().Prev(); got != d {
			t.Fatalf("round trip failed for %s: got %s", d.Key(), got.Key())
		}
	}
}

func TestLeapYearBoundaries(t *testing.T) {
	if got := NewDay(2024, time.March, 1).Prev().Key(); got != "2024-02-29" {
		t.Fatalf("expected 2024-02-29, got %s", got)
	}
	if got := NewDay(2024, time.February, 29).Next().Key(); got != "2024-03-01" {
		t.Fatalf("expected 2024-03-01, got %s", got)
	}
	// Non-leap year skips the 29th entirely.
	if got := NewDay(2023, time.February, 28).Next().Key(); got != "2023-03-01" {
		t.Fatalf("expected 2023-03-01, got %s", got)
	}
}

func TestYearRollover(t *testing.T) {
	if got := NewDay(2023, time.December, 31).Next().Key(); got != "2024-01-01" {
		t.Fatalf("expected 2024-01-01, got %s", got)
	}
	if got := NewDay(2024, time.January, 1).Prev().Key(); got != "2023-12-31" {
		t.Fatalf("expected 2023-12-31, got %s", got)
	}
}

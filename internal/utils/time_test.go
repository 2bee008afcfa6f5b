package utils

import (
	"testing"
	"time"
)

func TestDayKey_FormatsLocalCalendarDay(t *testing.T) {
	loc := time.FixedZone("plus2", 2*3600)
	// 23:30 local on Jan 5 is already Jan 6 in UTC; the key follows the
	// instant's own location
	instant := time.Date(2025, 1, 5, 23, 30, 0, 0, loc)

	if got := DayKey(instant); got != "2025-01-05" {
		t.Errorf("DayKey = %q, want 2025-01-05", got)
	}
}

func TestDayKey_SortsChronologically(t *testing.T) {
	earlier := DayKey(time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC))
	later := DayKey(time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC))

	if !(earlier < later) {
		t.Errorf("expected %q < %q lexically", earlier, later)
	}
}

func TestParseDayKey_RoundTrips(t *testing.T) {
	parsed, err := ParseDayKey("2025-03-09", time.UTC)
	if err != nil {
		t.Fatalf("ParseDayKey failed: %v", err)
	}
	if got := DayKey(parsed); got != "2025-03-09" {
		t.Errorf("round trip = %q, want 2025-03-09", got)
	}
}

func TestParseDayKey_RejectsGarbage(t *testing.T) {
	if _, err := ParseDayKey("not-a-date", time.UTC); err == nil {
		t.Error("expected error for malformed day key")
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{
			name: "same day",
			from: time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC),
			to:   time.Date(2025, 6, 10, 23, 0, 0, 0, time.UTC),
			want: 0,
		},
		{
			name: "consecutive days ignore time of day",
			from: time.Date(2025, 6, 10, 23, 59, 0, 0, time.UTC),
			to:   time.Date(2025, 6, 11, 0, 1, 0, 0, time.UTC),
			want: 1,
		},
		{
			name: "across month boundary",
			from: time.Date(2025, 1, 31, 12, 0, 0, 0, time.UTC),
			to:   time.Date(2025, 2, 2, 12, 0, 0, 0, time.UTC),
			want: 2,
		},
		{
			name: "reversed order is negative",
			from: time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
			to:   time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
			want: -2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.from, tt.to); got != tt.want {
				t.Errorf("DaysBetween = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDaysBetween_DSTTransitionCountsWholeDays(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tz database unavailable: %v", err)
	}

	// The spring-forward day is only 23 hours long; the count must still be 1
	before := time.Date(2025, 3, 8, 12, 0, 0, 0, loc)
	after := time.Date(2025, 3, 9, 12, 0, 0, 0, loc)

	if got := DaysBetween(before, after); got != 1 {
		t.Errorf("DaysBetween across DST = %d, want 1", got)
	}
}

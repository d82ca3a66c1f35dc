package daykey

import (
	"testing"
	"time"
)

func TestKeyUsesFixedOffset(t *testing.T) {
	// 23:30 UTC is already the next day in UTC+2.
	instant := time.Date(2025, 4, 12, 23, 30, 0, 0, time.UTC)
	if got := Key(instant); got != "2025-04-13" {
		t.Errorf("expected key 2025-04-13, got %s", got)
	}

	// The caller's zone must not matter.
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	if got := Key(instant.In(ny)); got != "2025-04-13" {
		t.Errorf("expected key 2025-04-13 regardless of caller zone, got %s", got)
	}
}

func TestIndexEpochDayIsOne(t *testing.T) {
	noon := time.Date(2025, 4, 12, 12, 0, 0, 0, EET)
	got, err := Index("2025-04-12", noon)
	if err != nil {
		t.Fatalf("index: %v", err)
	}
	if got != 1 {
		t.Errorf("expected day index 1 on the epoch date, got %d", got)
	}
}

func TestIndexCountsWholeDays(t *testing.T) {
	tests := []struct {
		instant time.Time
		want    int
	}{
		{time.Date(2025, 4, 13, 0, 0, 1, 0, EET), 2},
		{time.Date(2025, 4, 13, 23, 59, 59, 0, EET), 2},
		{time.Date(2025, 5, 12, 9, 0, 0, 0, EET), 31},
		{time.Date(2026, 4, 12, 9, 0, 0, 0, EET), 366},
	}
	for _, tt := range tests {
		got, err := Index("2025-04-12", tt.instant)
		if err != nil {
			t.Fatalf("index(%v): %v", tt.instant, err)
		}
		if got != tt.want {
			t.Errorf("index(%v) = %d, want %d", tt.instant, got, tt.want)
		}
	}
}

func TestIndexMonotonicAndStableWithinDay(t *testing.T) {
	prev := 0
	byKey := make(map[string]int)

	instant := time.Date(2025, 4, 12, 0, 30, 0, 0, EET)
	for i := 0; i < 40; i++ {
		idx, err := Index("2025-04-12", instant)
		if err != nil {
			t.Fatalf("index: %v", err)
		}
		if idx < prev {
			t.Fatalf("index went backwards: %d after %d at %v", idx, prev, instant)
		}
		key := Key(instant)
		if seen, ok := byKey[key]; ok && seen != idx {
			t.Fatalf("key %s mapped to both index %d and %d", key, seen, idx)
		}
		byKey[key] = idx
		prev = idx
		instant = instant.Add(6 * time.Hour)
	}
}

func TestIndexRejectsBadEpoch(t *testing.T) {
	if _, err := Index("12-04-2025", time.Now()); err == nil {
		t.Error("expected an error for a malformed epoch date")
	}
}

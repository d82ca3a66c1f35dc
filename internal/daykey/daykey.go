// Package daykey derives the calendar-day key and day ordinal that drive
// the movie-of-the-day selection. All dates are anchored to a fixed UTC+2
// offset so every player sees the same day roll over at the same instant,
// regardless of their local clock.
package daykey

import (
	"fmt"
	"time"
)

// EET is the fixed UTC+2 anchor for all day boundaries. Deliberately not a
// tzdata zone: the game day must not shift with daylight saving.
var EET = time.FixedZone("EET", 2*60*60)

// Layout is the wire format of a day key.
const Layout = "2006-01-02"

// Key returns the calendar date of t in EET as "YYYY-MM-DD".
func Key(t time.Time) string {
	return t.In(EET).Format(Layout)
}

// Index returns the 1-based day ordinal of t relative to the epoch date:
// the epoch day itself is day 1. Both dates are normalized to midnight in
// EET before differencing.
func Index(epoch string, t time.Time) (int, error) {
	epochMidnight, err := time.ParseInLocation(Layout, epoch, EET)
	if err != nil {
		return 0, fmt.Errorf("parsing epoch date %q: %w", epoch, err)
	}
	days := int(midnight(t).Sub(epochMidnight).Hours() / 24)
	return days + 1, nil
}

func midnight(t time.Time) time.Time {
	year, month, day := t.In(EET).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, EET)
}

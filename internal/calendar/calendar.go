// Package calendar implements the month arithmetic behind the report
// windows: non-overlapping monthly intervals anchored to a configurable
// day-of-month.
package calendar

import (
	"iter"
	"time"
)

// Window is a half-open monthly reporting interval (Start, End]. End is
// a window boundary on the anchor day; Start is the previous boundary.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether a transaction date falls inside the window.
// The left edge is exclusive and the right edge inclusive, so a date on
// a boundary belongs to exactly one of two adjacent windows.
func (w Window) Contains(date time.Time) bool {
	return date.After(w.Start) && !date.After(w.End)
}

// Normalize moves d onto the anchor day of its own month, clamped to
// the last valid day, discarding any time of day.
func Normalize(d time.Time, anchor int) time.Time {
	return onAnchor(d.Year(), d.Month(), anchor)
}

// AddMonth moves d one calendar month forward onto the anchor day.
// When the anchor exceeds the target month's length the day is clamped
// to the month's last day (anchor 31 in February yields Feb 28 or 29).
func AddMonth(d time.Time, anchor int) time.Time {
	year, month := d.Year(), d.Month()
	if month == time.December {
		return onAnchor(year+1, time.January, anchor)
	}
	return onAnchor(year, month+1, anchor)
}

// SubtractMonth moves d one calendar month back onto the anchor day,
// with the same clamping rule as AddMonth.
func SubtractMonth(d time.Time, anchor int) time.Time {
	year, month := d.Year(), d.Month()
	if month == time.January {
		return onAnchor(year-1, time.December, anchor)
	}
	return onAnchor(year, month-1, anchor)
}

// Boundaries yields the window boundaries between start and end: a
// strictly increasing sequence of anchor dates one calendar month
// apart, excluding start's own boundary and ending at the last
// boundary not after end's. The sequence is empty when start and end
// normalize to the same anchor date. The returned sequence can be
// ranged over any number of times.
func Boundaries(start, end time.Time, anchor int) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		last := Normalize(end, anchor)
		for d := AddMonth(start, anchor); !d.After(last); d = AddMonth(d, anchor) {
			if !yield(d) {
				return
			}
		}
	}
}

// WindowEnding returns the monthly window whose boundary is end.
func WindowEnding(end time.Time, anchor int) Window {
	return Window{Start: SubtractMonth(end, anchor), End: end}
}

func onAnchor(year int, month time.Month, anchor int) time.Time {
	day := anchor
	if last := daysIn(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// daysIn exploits time.Date's normalization: day zero of the following
// month is the last day of this one.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

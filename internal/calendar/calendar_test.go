package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSubtractMonth(t *testing.T) {
	tests := []struct {
		name   string
		in     time.Time
		anchor int
		want   time.Time
	}{
		{"mid year", day(2014, 3, 6), 6, day(2014, 2, 6)},
		{"year rollover", day(2014, 1, 6), 6, day(2013, 12, 6)},
		{"normalizes onto anchor", day(2014, 3, 20), 6, day(2014, 2, 6)},
		{"clamps to short month", day(2024, 3, 31), 31, day(2024, 2, 29)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SubtractMonth(tt.in, tt.anchor))
		})
	}
}

func TestAddMonth(t *testing.T) {
	tests := []struct {
		name   string
		in     time.Time
		anchor int
		want   time.Time
	}{
		{"mid year", day(2014, 2, 6), 6, day(2014, 3, 6)},
		{"year rollover", day(2013, 12, 6), 6, day(2014, 1, 6)},
		{"clamp into leap february", day(2024, 1, 31), 31, day(2024, 2, 29)},
		{"clamp into non-leap february", day(2023, 1, 31), 31, day(2023, 2, 28)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddMonth(tt.in, tt.anchor))
		})
	}
}

func TestMonthRoundTrip(t *testing.T) {
	// Without clamping the round trip is exact.
	for _, d := range []time.Time{
		day(2014, 3, 6), day(2014, 1, 6), day(2013, 12, 6), day(2020, 7, 28),
	} {
		anchor := d.Day()
		assert.Equal(t, d, AddMonth(SubtractMonth(d, anchor), anchor), "round trip from %s", d)
		assert.Equal(t, d, SubtractMonth(AddMonth(d, anchor), anchor), "round trip from %s", d)
	}

	// With clamping the round trip lands on the last valid day of the
	// original month.
	got := AddMonth(SubtractMonth(day(2024, 3, 31), 31), 31)
	assert.Equal(t, day(2024, 3, 31), got)
}

func TestBoundaries(t *testing.T) {
	var got []time.Time
	for b := range Boundaries(day(2014, 1, 10), day(2014, 4, 10), 6) {
		got = append(got, b)
	}
	require.Equal(t, []time.Time{day(2014, 2, 6), day(2014, 3, 6), day(2014, 4, 6)}, got)

	// Strictly increasing, exactly one month apart.
	for i := 1; i < len(got); i++ {
		assert.True(t, got[i].After(got[i-1]))
		assert.Equal(t, AddMonth(got[i-1], 6), got[i])
	}
}

func TestBoundariesExcludesStartIncludesEnd(t *testing.T) {
	var got []time.Time
	for b := range Boundaries(day(2014, 2, 6), day(2014, 4, 6), 6) {
		got = append(got, b)
	}
	assert.Equal(t, []time.Time{day(2014, 3, 6), day(2014, 4, 6)}, got)
}

func TestBoundariesEmptyWhenSpanWithinOneWindow(t *testing.T) {
	// start and end normalize to the same anchor date.
	for b := range Boundaries(day(2014, 1, 10), day(2014, 1, 20), 6) {
		t.Fatalf("unexpected boundary %s", b)
	}
}

func TestBoundariesRestartable(t *testing.T) {
	seq := Boundaries(day(2014, 1, 10), day(2014, 6, 10), 6)
	count := func() int {
		n := 0
		for range seq {
			n++
		}
		return n
	}
	first := count()
	require.Equal(t, 5, first)
	assert.Equal(t, first, count(), "second pass over the sequence differs")
}

func TestWindowContains(t *testing.T) {
	w := WindowEnding(day(2014, 3, 6), 6)
	require.Equal(t, day(2014, 2, 6), w.Start)

	assert.False(t, w.Contains(day(2014, 2, 6)), "left edge is exclusive")
	assert.True(t, w.Contains(day(2014, 2, 7)))
	assert.True(t, w.Contains(day(2014, 3, 6)), "right edge is inclusive")
	assert.False(t, w.Contains(day(2014, 3, 7)))

	// A boundary date belongs to exactly one of two adjacent windows.
	next := WindowEnding(day(2014, 4, 6), 6)
	assert.True(t, w.Contains(day(2014, 3, 6)))
	assert.False(t, next.Contains(day(2014, 3, 6)))
}

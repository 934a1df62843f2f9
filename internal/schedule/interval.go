// Package schedule models time-bound claims on a screening room: validated
// intervals, typed bookings and an immutable per-room schedule that never
// accepts overlapping bookings.
package schedule

import (
	"time"

	"github.com/iliyamo/cinema-booking-core/internal/outcome"
)

// Interval is an immutable start/end pair.  An Interval can only be obtained
// through NewInterval (or trusted hydration), so any Interval in circulation
// satisfies start < end.
type Interval struct {
	start time.Time
	end   time.Time
}

// NewInterval validates the bounds and returns an Interval.  Both bounds are
// required and the start must be strictly before the end.
func NewInterval(start, end time.Time) outcome.Outcome[Interval] {
	if start.IsZero() || end.IsZero() {
		return outcome.Failure[Interval](outcome.NewFailure(outcome.MissingRequiredData,
			"start", start, "end", end))
	}
	if !start.Before(end) {
		return outcome.Failure[Interval](outcome.NewFailure(outcome.InvalidSequence,
			"start", start, "end", end))
	}
	return outcome.Success(Interval{start: start, end: end})
}

// HydrateInterval rebuilds an Interval from a trusted persisted booking.
// It panics when the stored bounds violate the ordering invariant, since a
// persisted booking with end <= start means the write path is broken.
func HydrateInterval(start, end time.Time) Interval {
	if start.IsZero() || end.IsZero() || !start.Before(end) {
		panic("schedule: hydrated interval violates start < end")
	}
	return Interval{start: start, end: end}
}

// Start returns the inclusive lower bound.
func (iv Interval) Start() time.Time { return iv.start }

// End returns the exclusive upper bound for overlap purposes.
func (iv Interval) End() time.Time { return iv.end }

// Overlaps applies the half-open rule: two intervals overlap iff each starts
// before the other ends.  Intervals that merely touch at a boundary (one ends
// exactly when the other starts) do not overlap, so back-to-back screenings
// are allowed.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.start.Before(other.end) && other.start.Before(iv.end)
}

// Contains reports whether t falls inside the interval, inclusive of both
// bounds.
func (iv Interval) Contains(t time.Time) bool {
	return !t.Before(iv.start) && !t.After(iv.end)
}

// Equal compares intervals by their instants.
func (iv Interval) Equal(other Interval) bool {
	return iv.start.Equal(other.start) && iv.end.Equal(other.end)
}

// Package display models the public visibility windows of screenings and
// movies: date-range value objects whose lifecycle status is derived from a
// caller-supplied "now", never from the system clock.
package display

import (
	"time"

	"github.com/iliyamo/cinema-booking-core/internal/outcome"
)

// PastTolerance is how far in the past a screening window may start and
// still be accepted.  It absorbs clock skew and request latency between
// submission and validation; it does not permit scheduling into the past.
const PastTolerance = 5 * time.Minute

// ScreeningStatus is the derived lifecycle state of a screening window.
// Transitions are monotonic and purely time-driven; no status is ever
// stored, which rules out stale cached states.
type ScreeningStatus string

const (
	StatusPresale ScreeningStatus = "PRESALE"
	StatusShowing ScreeningStatus = "SHOWING"
	StatusEnded   ScreeningStatus = "ENDED"
)

// ScreeningDisplayPeriod is the sale/showing window of one screening.
type ScreeningDisplayPeriod struct {
	start time.Time
	end   time.Time
}

// NewScreeningDisplayPeriod validates a screening window against the given
// instant.  All violations are reported together: missing bounds, start not
// before end, and a start further in the past than the tolerance allows.
func NewScreeningDisplayPeriod(start, end, now time.Time) outcome.Outcome[ScreeningDisplayPeriod] {
	var records []outcome.FailureRecord
	if start.IsZero() {
		records = append(records, outcome.NewFailure(outcome.MissingRequiredData, "field", "start"))
	}
	if end.IsZero() {
		records = append(records, outcome.NewFailure(outcome.MissingRequiredData, "field", "end"))
	}
	if !start.IsZero() && !end.IsZero() && !start.Before(end) {
		records = append(records, outcome.NewFailure(outcome.InvalidSequence, "start", start, "end", end))
	}
	if !start.IsZero() && start.Before(now.Add(-PastTolerance)) {
		records = append(records, outcome.NewFailure(outcome.DateCannotBePast, "start", start, "now", now))
	}
	if len(records) > 0 {
		return outcome.Failure[ScreeningDisplayPeriod](records...)
	}
	return outcome.Success(ScreeningDisplayPeriod{start: start, end: end})
}

// Start returns the window's opening instant.
func (p ScreeningDisplayPeriod) Start() time.Time { return p.start }

// End returns the window's closing instant.
func (p ScreeningDisplayPeriod) End() time.Time { return p.end }

// Status derives the lifecycle state at the given instant: Presale before
// the window opens, Showing from start through end inclusive, Ended after.
func (p ScreeningDisplayPeriod) Status(now time.Time) ScreeningStatus {
	switch {
	case now.Before(p.start):
		return StatusPresale
	case now.After(p.end):
		return StatusEnded
	default:
		return StatusShowing
	}
}

// IsAvailableForBooking reports whether seats can still be booked.  Bookings
// close the moment the screening window opens.
func (p ScreeningDisplayPeriod) IsAvailableForBooking(now time.Time) bool {
	return p.Status(now) == StatusPresale
}

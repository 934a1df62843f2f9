package display

import (
	"time"

	"github.com/iliyamo/cinema-booking-core/internal/outcome"
)

// Policy bounds for movie listing query filters.
const (
	// MaxFilterStartAheadDays is how far in the future a filter may start.
	MaxFilterStartAheadDays = 30
	// MaxFilterRangeDays is the widest span a filter may cover.
	MaxFilterRangeDays = 14
	// DefaultFilterRangeDays is the span of the trusted default filter.
	DefaultFilterRangeDays = 7
)

// MovieFilterDateRange shapes the date filter of a movie listing query.
type MovieFilterDateRange struct {
	start time.Time
	end   time.Time
}

// NewMovieFilterDateRange validates a user-supplied filter range against the
// given instant: bounds are required and ordered, the start may lie at most
// MaxFilterStartAheadDays in the future, and the span may not exceed
// MaxFilterRangeDays.
func NewMovieFilterDateRange(start, end, now time.Time) outcome.Outcome[MovieFilterDateRange] {
	var records []outcome.FailureRecord
	if start.IsZero() {
		records = append(records, outcome.NewFailure(outcome.MissingRequiredData, "field", "start"))
	}
	if end.IsZero() {
		records = append(records, outcome.NewFailure(outcome.MissingRequiredData, "field", "end"))
	}
	if !start.IsZero() && start.After(now.AddDate(0, 0, MaxFilterStartAheadDays)) {
		records = append(records, outcome.NewFailure(outcome.DateNotAfterLimit,
			"start", start, "maximum_days_ahead", MaxFilterStartAheadDays))
	}
	if !start.IsZero() && !end.IsZero() {
		switch {
		case end.Before(start):
			records = append(records, outcome.NewFailure(outcome.InvalidSequence, "start", start, "end", end))
		case end.Sub(start) > MaxFilterRangeDays*24*time.Hour:
			records = append(records, outcome.NewFailure(outcome.DateRangeTooLarge,
				"start", start, "end", end, "maximum_days", MaxFilterRangeDays))
		}
	}
	if len(records) > 0 {
		return outcome.Failure[MovieFilterDateRange](records...)
	}
	return outcome.Success(MovieFilterDateRange{start: start, end: end})
}

// DefaultMovieFilterDateRange returns the trusted default filter: today
// through today plus DefaultFilterRangeDays, anchored to midnight in now's
// location.  It is not user input and skips validation.
func DefaultMovieFilterDateRange(now time.Time) MovieFilterDateRange {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return MovieFilterDateRange{start: today, end: today.AddDate(0, 0, DefaultFilterRangeDays)}
}

// Start returns the filter's lower bound.
func (r MovieFilterDateRange) Start() time.Time { return r.start }

// End returns the filter's upper bound.
func (r MovieFilterDateRange) End() time.Time { return r.end }

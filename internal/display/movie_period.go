package display

import (
	"time"

	"github.com/iliyamo/cinema-booking-core/internal/outcome"
)

// Policy bounds for a movie's public-listing window.
const (
	// MinShowingDays is the shortest run a movie may be listed for.
	MinShowingDays = 14
	// MaxShowingDays is the longest run a movie may be listed for.
	MaxShowingDays = 30
)

// MovieDisplayPeriod is the window during which a movie is publicly listed.
type MovieDisplayPeriod struct {
	start time.Time
	end   time.Time
}

// NewMovieDisplayPeriod validates a listing window against the given
// instant.  The start may not be in the past, the bounds must be ordered,
// and the span must run at least MinShowingDays and at most MaxShowingDays;
// both limits are inclusive, so exactly 14 or 30 days is accepted.
func NewMovieDisplayPeriod(start, end, now time.Time) outcome.Outcome[MovieDisplayPeriod] {
	var records []outcome.FailureRecord
	if start.IsZero() {
		records = append(records, outcome.NewFailure(outcome.MissingRequiredData, "field", "start"))
	}
	if end.IsZero() {
		records = append(records, outcome.NewFailure(outcome.MissingRequiredData, "field", "end"))
	}
	if !start.IsZero() && start.Before(now) {
		records = append(records, outcome.NewFailure(outcome.DateCannotBePast, "start", start, "now", now))
	}
	if !start.IsZero() && !end.IsZero() {
		span := end.Sub(start)
		switch {
		case span <= 0:
			records = append(records, outcome.NewFailure(outcome.InvalidSequence, "start", start, "end", end))
		case span < MinShowingDays*24*time.Hour:
			records = append(records, outcome.NewFailure(outcome.InvalidSequence,
				"start", start, "end", end, "minimum_days", MinShowingDays))
		case span > MaxShowingDays*24*time.Hour:
			records = append(records, outcome.NewFailure(outcome.DateNotBeforeLimit,
				"start", start, "end", end, "maximum_days", MaxShowingDays))
		}
	}
	if len(records) > 0 {
		return outcome.Failure[MovieDisplayPeriod](records...)
	}
	return outcome.Success(MovieDisplayPeriod{start: start, end: end})
}

// Start returns the first listed instant.
func (p MovieDisplayPeriod) Start() time.Time { return p.start }

// End returns the last listed instant.
func (p MovieDisplayPeriod) End() time.Time { return p.end }

// IsActive reports whether the movie is listed at the given instant,
// inclusive of both bounds.
func (p MovieDisplayPeriod) IsActive(now time.Time) bool {
	return !now.Before(p.start) && !now.After(p.end)
}

// HasEnded reports whether the listing window has passed.
func (p MovieDisplayPeriod) HasEnded(now time.Time) bool {
	return now.After(p.end)
}

// HasNotStarted reports whether the listing window is still ahead.
func (p MovieDisplayPeriod) HasNotStarted(now time.Time) bool {
	return now.Before(p.start)
}

// IsAvailableInRange reports whether the listing window intersects the
// queried range at all, inclusive of exact boundary touches and of either
// range containing the other.  An unspecified (zero) bound means "no match"
// rather than an error: this is a predicate, and predicates answer false
// instead of failing.
func (p MovieDisplayPeriod) IsAvailableInRange(rangeStart, rangeEnd time.Time) bool {
	if rangeStart.IsZero() || rangeEnd.IsZero() {
		return false
	}
	return !rangeStart.After(p.end) && !p.start.After(rangeEnd)
}

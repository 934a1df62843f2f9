// Package seating models the addressable seat grid of a screening room: seat
// coordinates, per-row column limits and preferential-seat marking.
package seating

import (
	"fmt"
	"math"
	"strings"

	"github.com/iliyamo/cinema-booking-core/internal/outcome"
)

// MaxRowNumber is the hard ceiling on row numbers.  No real room comes close;
// anything above it is garbage input rather than an unusually large hall.
const MaxRowNumber = 250

// Seat addresses one seat by column letter and row number.  The preferential
// flag marks seats reserved for priority allocation (accessibility and the
// like).  Seats are equal when column, row and preferential flag all match.
type Seat struct {
	column       string
	row          int
	preferential bool
}

// NewSeat validates and normalizes a seat coordinate.  The column is trimmed
// and upper-cased before validation, so " b " becomes "B".  The row arrives
// as a float64 because upstream JSON decoding hands numbers to Go as floats;
// a fractional row is rejected with its own code, distinct from non-positive
// and out-of-range, so callers can render the exact problem.
func NewSeat(column string, row float64, preferential bool) outcome.Outcome[Seat] {
	col := strings.ToUpper(strings.TrimSpace(column))

	var records []outcome.FailureRecord
	switch {
	case col == "":
		records = append(records, outcome.NewFailure(outcome.MissingRequiredData, "field", "column"))
	case len(col) != 1 || col[0] < 'A' || col[0] > 'Z':
		records = append(records, outcome.NewFailure(outcome.InvalidColumnFormat, "column", col))
	}

	switch {
	case math.Trunc(row) != row || math.IsNaN(row) || math.IsInf(row, 0):
		records = append(records, outcome.NewFailure(outcome.ValueNotInteger, "row", row))
	case row < 1:
		records = append(records, outcome.NewFailure(outcome.ValueNotPositive, "row", row))
	case row > MaxRowNumber:
		records = append(records, outcome.NewFailure(outcome.ValueOutOfRange,
			"row", row, "maximum", MaxRowNumber))
	}

	if len(records) > 0 {
		return outcome.Failure[Seat](records...)
	}
	return outcome.Success(Seat{column: col, row: int(row), preferential: preferential})
}

// Column returns the normalized column letter.
func (s Seat) Column() string { return s.column }

// Row returns the row number.
func (s Seat) Row() int { return s.row }

// Preferential reports whether the seat is flagged for priority allocation.
func (s Seat) Preferential() bool { return s.preferential }

// Identifier is the seat's natural key, column letter followed by row
// number, e.g. "C12".  It is what external systems reference.
func (s Seat) Identifier() string {
	return fmt.Sprintf("%s%d", s.column, s.row)
}

// Equal compares column, row and preferential flag.
func (s Seat) Equal(other Seat) bool {
	return s.column == other.column && s.row == other.row && s.preferential == other.preferential
}

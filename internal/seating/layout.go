package seating

import (
	"sort"
	"strings"

	"github.com/iliyamo/cinema-booking-core/internal/outcome"
)

// SeatRow describes one row of a layout: the last usable column letter and
// which column letters are preferential in that row.
type SeatRow struct {
	lastColumn   string
	preferential map[string]bool
}

// NewSeatRow validates a row definition.  The last column must be a single
// A-Z letter; preferential letters are normalized the same way seats are and
// must fall inside the row ("A" through the last column).
func NewSeatRow(lastColumn string, preferentialColumns ...string) outcome.Outcome[SeatRow] {
	last := strings.ToUpper(strings.TrimSpace(lastColumn))

	var records []outcome.FailureRecord
	switch {
	case last == "":
		records = append(records, outcome.NewFailure(outcome.MissingRequiredData, "field", "last_column"))
	case len(last) != 1 || last[0] < 'A' || last[0] > 'Z':
		records = append(records, outcome.NewFailure(outcome.InvalidColumnFormat, "last_column", last))
	}

	marks := make(map[string]bool, len(preferentialColumns))
	for _, raw := range preferentialColumns {
		col := strings.ToUpper(strings.TrimSpace(raw))
		if len(col) != 1 || col[0] < 'A' || col[0] > 'Z' {
			records = append(records, outcome.NewFailure(outcome.InvalidColumnFormat, "preferential_column", col))
			continue
		}
		if last != "" && len(last) == 1 && col > last {
			records = append(records, outcome.NewFailure(outcome.ValueOutOfRange,
				"preferential_column", col, "last_column", last))
			continue
		}
		marks[col] = true
	}

	if len(records) > 0 {
		return outcome.Failure[SeatRow](records...)
	}
	return outcome.Success(SeatRow{lastColumn: last, preferential: marks})
}

// LastColumn returns the last usable column letter of the row.
func (r SeatRow) LastColumn() string { return r.lastColumn }

// PreferentialColumns lists the row's preferential letters in order.
func (r SeatRow) PreferentialColumns() []string {
	cols := make([]string, 0, len(r.preferential))
	for c := range r.preferential {
		cols = append(cols, c)
	}
	sort.Strings(cols)
	return cols
}

// hasColumn reports whether the column letter exists in this row.  Columns
// run from "A" through the row's last letter inclusive.
func (r SeatRow) hasColumn(column string) bool {
	return len(column) == 1 && column >= "A" && column <= r.lastColumn
}

// Layout maps row numbers to row definitions for one room.
type Layout struct {
	rows map[int]SeatRow
}

// NewLayout builds a layout from row definitions keyed by row number.
func NewLayout(rows map[int]SeatRow) Layout {
	copied := make(map[int]SeatRow, len(rows))
	for n, r := range rows {
		copied[n] = r
	}
	return Layout{rows: copied}
}

// Rows returns the configured row numbers in ascending order.
func (l Layout) Rows() []int {
	nums := make([]int, 0, len(l.rows))
	for n := range l.rows {
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return nums
}

// IsValidSeat reports whether the seat addresses a position that exists in
// the layout: its row must be configured and its column must fall between
// "A" and that row's last column inclusive.
func (l Layout) IsValidSeat(seat Seat) bool {
	row, ok := l.rows[seat.Row()]
	if !ok {
		return false
	}
	return row.hasColumn(seat.Column())
}

// IsPreferential reports whether the layout marks the seat's position as
// preferential.  Positions outside the layout are never preferential.
func (l Layout) IsPreferential(seat Seat) bool {
	row, ok := l.rows[seat.Row()]
	if !ok {
		return false
	}
	return row.preferential[seat.Column()]
}

// SeatAt builds a validated seat at the given position with the
// preferential flag derived from the layout, failing with ValueOutOfRange
// when the position does not exist in this layout.
func (l Layout) SeatAt(column string, rowNumber float64) outcome.Outcome[Seat] {
	return outcome.FlatMap(NewSeat(column, rowNumber, false), func(s Seat) outcome.Outcome[Seat] {
		if !l.IsValidSeat(s) {
			return outcome.Failure[Seat](outcome.NewFailure(outcome.ValueOutOfRange,
				"column", s.Column(), "row", s.Row()))
		}
		if l.IsPreferential(s) {
			return NewSeat(s.Column(), float64(s.Row()), true)
		}
		return outcome.Success(s)
	})
}

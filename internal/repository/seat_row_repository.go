package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iliyamo/cinema-booking-core/internal/seating"
)

// SeatRowRepo provides data access to the seat_rows table, which stores one
// row per (room, row_number) with the last usable column letter and a
// comma-separated list of preferential column letters.
type SeatRowRepo struct {
	db *sql.DB
}

// NewSeatRowRepo returns a new SeatRowRepo bound to the provided database.
func NewSeatRowRepo(db *sql.DB) *SeatRowRepo { return &SeatRowRepo{db: db} }

// LayoutForRoom loads a room's seat rows into a seating.Layout.  It returns
// ErrRoomNotFound when the room has no rows configured at all, which lets
// handlers distinguish "unknown room" from "seat outside the layout".
// Row definitions are re-validated through seating.NewSeatRow on the way in;
// a row that fails to validate means the write path is broken, so the error
// is surfaced rather than the row silently skipped.
func (r *SeatRowRepo) LayoutForRoom(ctx context.Context, roomID string) (seating.Layout, error) {
	const q = `SELECT row_number, last_column, preferential_columns
	           FROM seat_rows
	           WHERE room_id = ?
	           ORDER BY row_number`
	rows, err := r.db.QueryContext(ctx, q, roomID)
	if err != nil {
		return seating.Layout{}, err
	}
	defer rows.Close()

	defs := make(map[int]seating.SeatRow)
	for rows.Next() {
		var (
			rowNumber    int
			lastColumn   string
			preferential sql.NullString
		)
		if err := rows.Scan(&rowNumber, &lastColumn, &preferential); err != nil {
			return seating.Layout{}, err
		}
		var marks []string
		if preferential.Valid && preferential.String != "" {
			marks = strings.Split(preferential.String, ",")
		}
		row := seating.NewSeatRow(lastColumn, marks...)
		def, ok := row.Value()
		if !ok {
			return seating.Layout{}, ErrCorruptSeatRow
		}
		defs[rowNumber] = def
	}
	if err := rows.Err(); err != nil {
		return seating.Layout{}, err
	}
	if len(defs) == 0 {
		return seating.Layout{}, ErrRoomNotFound
	}
	return seating.NewLayout(defs), nil
}

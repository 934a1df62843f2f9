package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/iliyamo/cinema-booking-core/internal/schedule"
)

// BookingRecord represents the persistence model for a room booking.  The
// schedule.Booking value type should be used for business logic; records
// exist only at the database boundary.
type BookingRecord struct {
	ID        string    // room_bookings.id
	RoomID    string    // room_bookings.room_id
	SubjectID string    // room_bookings.subject_id
	Type      string    // room_bookings.booking_type (SCREENING or MAINTENANCE)
	StartsAt  time.Time // room_bookings.starts_at
	EndsAt    time.Time // room_bookings.ends_at
}

// BookingRepo provides data access to the room_bookings table.  Timestamps
// are stored in UTC; the connection is opened with loc=UTC so scanned values
// compare correctly against caller-supplied instants.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the provided database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// DB exposes the underlying handle so handlers can open transactions that
// span multiple repositories.
func (r *BookingRepo) DB() *sql.DB { return r.db }

// ScheduleForRoom loads every booking of a room and hydrates a
// schedule.RoomSchedule from it.  The persisted set is treated as
// known-good: rows were written through WithBooking, so the overlap
// invariant is trusted rather than re-checked on every read.
func (r *BookingRepo) ScheduleForRoom(ctx context.Context, roomID string) (schedule.RoomSchedule, error) {
	const q = `SELECT id, subject_id, booking_type, starts_at, ends_at
	           FROM room_bookings
	           WHERE room_id = ?
	           ORDER BY starts_at`
	rows, err := r.db.QueryContext(ctx, q, roomID)
	if err != nil {
		return schedule.RoomSchedule{}, err
	}
	defer rows.Close()

	var bookings []schedule.Booking
	for rows.Next() {
		var rec BookingRecord
		if err := rows.Scan(&rec.ID, &rec.SubjectID, &rec.Type, &rec.StartsAt, &rec.EndsAt); err != nil {
			return schedule.RoomSchedule{}, err
		}
		bookings = append(bookings, schedule.Booking{
			ID:        rec.ID,
			SubjectID: rec.SubjectID,
			Type:      schedule.BookingType(rec.Type),
			Interval:  schedule.HydrateInterval(rec.StartsAt.UTC(), rec.EndsAt.UTC()),
		})
	}
	if err := rows.Err(); err != nil {
		return schedule.RoomSchedule{}, err
	}
	return schedule.Hydrate(roomID, bookings), nil
}

// InsertBooking persists a booking that already passed conflict validation.
// The caller is expected to have obtained the booking from
// RoomSchedule.WithBooking on a schedule hydrated in the same request.
func (r *BookingRepo) InsertBooking(ctx context.Context, roomID string, b schedule.Booking) error {
	const q = `INSERT INTO room_bookings (id, room_id, subject_id, booking_type, starts_at, ends_at)
	           VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q,
		b.ID, roomID, b.SubjectID, string(b.Type),
		b.Interval.Start().UTC().Format("2006-01-02 15:04:05"),
		b.Interval.End().UTC().Format("2006-01-02 15:04:05"),
	)
	return err
}

// DeleteBooking removes a booking by id.  Deleting an id that does not
// exist is a no-op so that removal stays idempotent end to end.
func (r *BookingRepo) DeleteBooking(ctx context.Context, roomID, bookingID string) error {
	const q = `DELETE FROM room_bookings WHERE room_id = ? AND id = ?`
	_, err := r.db.ExecContext(ctx, q, roomID, bookingID)
	return err
}

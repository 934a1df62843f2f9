package schedule

import (
	"github.com/iliyamo/cinema-booking-core/internal/outcome"
)

// BookingType distinguishes what a booking claims the room for.
type BookingType string

const (
	BookingTypeScreening   BookingType = "SCREENING"
	BookingTypeMaintenance BookingType = "MAINTENANCE"
)

// Booking is a time-interval claim on a room.  SubjectID references the
// screening or maintenance order the claim belongs to; the schedule itself
// only cares about the interval.
type Booking struct {
	ID        string
	SubjectID string
	Type      BookingType
	Interval  Interval
}

// RoomSchedule is the set of bookings for one room.  It is a persistent
// value: WithBooking and RemoveBooking return a new schedule and leave the
// receiver untouched, which keeps concurrent readers safe as long as writers
// coordinate publication of the next version at the persistence boundary.
//
// Overlap detection scans every existing booking per insertion.  That is
// O(n) per call, fine for a single room's booking count; an interval index
// would be the upgrade path if rooms ever carry thousands of bookings.
type RoomSchedule struct {
	roomID   string
	bookings []Booking
}

// NewRoomSchedule returns an empty schedule for the room.
func NewRoomSchedule(roomID string) RoomSchedule {
	return RoomSchedule{roomID: roomID}
}

// Hydrate rebuilds a schedule from a known-good persisted booking set.  The
// overlap invariant is trusted, not re-checked; call Validate when the source
// is suspect.
func Hydrate(roomID string, bookings []Booking) RoomSchedule {
	copied := make([]Booking, len(bookings))
	copy(copied, bookings)
	return RoomSchedule{roomID: roomID, bookings: copied}
}

// RoomID returns the room this schedule belongs to.
func (s RoomSchedule) RoomID() string { return s.roomID }

// Bookings returns a copy of the booking set in insertion order.
func (s RoomSchedule) Bookings() []Booking {
	out := make([]Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

// Len returns the number of bookings held.
func (s RoomSchedule) Len() int { return len(s.bookings) }

// WithBooking returns a new schedule containing the candidate, or a
// BookingConflict failure naming the colliding booking.  The receiver is
// never modified: on failure the original schedule stands untouched.
func (s RoomSchedule) WithBooking(candidate Booking) outcome.Outcome[RoomSchedule] {
	for _, existing := range s.bookings {
		if existing.Interval.Overlaps(candidate.Interval) {
			return outcome.Failure[RoomSchedule](outcome.NewFailure(outcome.BookingConflict,
				"room_id", s.roomID,
				"booking_id", candidate.ID,
				"conflicting_booking_id", existing.ID))
		}
	}
	next := make([]Booking, len(s.bookings), len(s.bookings)+1)
	copy(next, s.bookings)
	next = append(next, candidate)
	return outcome.Success(RoomSchedule{roomID: s.roomID, bookings: next})
}

// RemoveBooking returns a new schedule without the identified booking.
// Removing an unknown id is an idempotent no-op.
func (s RoomSchedule) RemoveBooking(id string) RoomSchedule {
	next := make([]Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		if b.ID == id {
			continue
		}
		next = append(next, b)
	}
	return RoomSchedule{roomID: s.roomID, bookings: next}
}

// FindAvailability reports whether the candidate interval is free, the same
// check WithBooking performs, usable before committing to an insert.
func (s RoomSchedule) FindAvailability(candidate Interval) bool {
	for _, existing := range s.bookings {
		if existing.Interval.Overlaps(candidate) {
			return false
		}
	}
	return true
}

// Validate re-checks the no-overlap invariant over the whole set, reporting
// every conflicting pair.  Intended after Hydrate when the persisted source
// cannot be fully trusted.
func (s RoomSchedule) Validate() outcome.Outcome[RoomSchedule] {
	var records []outcome.FailureRecord
	for i := 0; i < len(s.bookings); i++ {
		for j := i + 1; j < len(s.bookings); j++ {
			if s.bookings[i].Interval.Overlaps(s.bookings[j].Interval) {
				records = append(records, outcome.NewFailure(outcome.BookingConflict,
					"room_id", s.roomID,
					"booking_id", s.bookings[j].ID,
					"conflicting_booking_id", s.bookings[i].ID))
			}
		}
	}
	if len(records) > 0 {
		return outcome.Failure[RoomSchedule](records...)
	}
	return outcome.Success(s)
}

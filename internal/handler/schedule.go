package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cinema-booking-core/internal/display"
	"github.com/iliyamo/cinema-booking-core/internal/outcome"
	"github.com/iliyamo/cinema-booking-core/internal/queue"
	"github.com/iliyamo/cinema-booking-core/internal/schedule"
)

// ScheduleStore is the persistence surface the schedule endpoints need.
// *repository.BookingRepo satisfies it; tests supply an in-memory fake.
type ScheduleStore interface {
	ScheduleForRoom(ctx context.Context, roomID string) (schedule.RoomSchedule, error)
	InsertBooking(ctx context.Context, roomID string, b schedule.Booking) error
	DeleteBooking(ctx context.Context, roomID, bookingID string) error
}

// EventPublisher pushes domain events to the broker.  Publishing is best
// effort: a broker outage must not fail a booking that already persisted.
type EventPublisher interface {
	PublishRoomBooked(ctx context.Context, event queue.RoomBookedEvent) error
	PublishSeatHeld(ctx context.Context, event queue.SeatHeldEvent) error
}

// ScheduleHandler serves the room booking endpoints: conflict-checked
// creation, idempotent removal and the availability probe.  The handler is
// the upstream layer the validation core expects: it parses primitives,
// supplies "now", and maps failure codes onto HTTP responses.
type ScheduleHandler struct {
	Bookings ScheduleStore
	Events   EventPublisher
	Now      func() time.Time
}

// NewScheduleHandler constructs a ScheduleHandler.  The store must be
// non-nil; the publisher may be nil when the broker is disabled.
func NewScheduleHandler(bookings ScheduleStore, events EventPublisher) *ScheduleHandler {
	if bookings == nil {
		panic("nil booking store passed to NewScheduleHandler")
	}
	return &ScheduleHandler{Bookings: bookings, Events: events, Now: func() time.Time { return time.Now().UTC() }}
}

type createBookingRequest struct {
	SubjectID string `json:"subject_id"`
	Type      string `json:"type"`
	StartsAt  string `json:"starts_at"`
	EndsAt    string `json:"ends_at"`
}

// CreateBooking handles POST /v1/rooms/:id/bookings.  The candidate interval
// is validated (screenings additionally pass the display window policy),
// checked for conflicts against the room's hydrated schedule, persisted and
// announced on the broker.  A conflicting booking yields 409 carrying the
// colliding booking id; validation problems yield 422 with every violated
// rule.
func (h *ScheduleHandler) CreateBooking(c echo.Context) error {
	roomID := c.Param("id")
	if roomID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}
	var body createBookingRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	startsAt, ok := parseInstant(body.StartsAt)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "starts_at must be RFC3339"})
	}
	endsAt, ok := parseInstant(body.EndsAt)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "ends_at must be RFC3339"})
	}

	now := h.Now()
	var intervalOutcome outcome.Outcome[schedule.Interval]
	switch schedule.BookingType(body.Type) {
	case schedule.BookingTypeScreening:
		// The screening window policy subsumes the plain interval rules
		// and additionally rejects starts in the past, so a validated
		// period can be lowered to an interval directly.
		intervalOutcome = outcome.Map(
			display.NewScreeningDisplayPeriod(startsAt, endsAt, now),
			func(p display.ScreeningDisplayPeriod) schedule.Interval {
				return schedule.HydrateInterval(p.Start(), p.End())
			},
		)
	case schedule.BookingTypeMaintenance:
		intervalOutcome = schedule.NewInterval(startsAt, endsAt)
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "type must be SCREENING or MAINTENANCE"})
	}
	interval, ok := intervalOutcome.Value()
	if !ok {
		return writeFailure(c, intervalOutcome.Errors())
	}

	ctx := c.Request().Context()
	current, err := h.Bookings.ScheduleForRoom(ctx, roomID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load schedule"})
	}

	id, err := newID()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to generate booking id"})
	}
	candidate := schedule.Booking{
		ID:        id,
		SubjectID: body.SubjectID,
		Type:      schedule.BookingType(body.Type),
		Interval:  interval,
	}

	next := current.WithBooking(candidate)
	if next.IsFailure() {
		return writeFailure(c, next.Errors())
	}
	if err := h.Bookings.InsertBooking(ctx, roomID, candidate); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to persist booking"})
	}

	if h.Events != nil {
		// Best effort: the booking is already durable.
		_ = h.Events.PublishRoomBooked(ctx, queue.RoomBookedEvent{
			BookingID:   candidate.ID,
			RoomID:      roomID,
			SubjectID:   candidate.SubjectID,
			BookingType: string(candidate.Type),
			StartsAt:    interval.Start().Format(time.RFC3339),
			EndsAt:      interval.End().Format(time.RFC3339),
			BookedAt:    now.Format(time.RFC3339),
		})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"booking_id": candidate.ID,
		"room_id":    roomID,
		"starts_at":  interval.Start().Format(time.RFC3339),
		"ends_at":    interval.End().Format(time.RFC3339),
	})
}

// RemoveBooking handles DELETE /v1/rooms/:id/bookings/:bookingID.  Removal
// is idempotent end to end: deleting an unknown booking still returns 204.
func (h *ScheduleHandler) RemoveBooking(c echo.Context) error {
	roomID := c.Param("id")
	bookingID := c.Param("bookingID")
	if roomID == "" || bookingID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid identifiers"})
	}
	if err := h.Bookings.DeleteBooking(c.Request().Context(), roomID, bookingID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to remove booking"})
	}
	return c.NoContent(http.StatusNoContent)
}

// GetAvailability handles GET /v1/rooms/:id/availability?start=&end=.  It
// runs the same overlap check CreateBooking uses, without committing
// anything, so clients can probe a slot before checkout.
func (h *ScheduleHandler) GetAvailability(c echo.Context) error {
	roomID := c.Param("id")
	if roomID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}
	start, ok := parseInstant(c.QueryParam("start"))
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start must be RFC3339"})
	}
	end, ok := parseInstant(c.QueryParam("end"))
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "end must be RFC3339"})
	}

	intervalOutcome := schedule.NewInterval(start, end)
	interval, ok := intervalOutcome.Value()
	if !ok {
		return writeFailure(c, intervalOutcome.Errors())
	}

	current, err := h.Bookings.ScheduleForRoom(c.Request().Context(), roomID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load schedule"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"room_id":   roomID,
		"available": current.FindAvailability(interval),
	})
}

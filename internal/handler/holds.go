package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cinema-booking-core/internal/cache"
	"github.com/iliyamo/cinema-booking-core/internal/hold"
	"github.com/iliyamo/cinema-booking-core/internal/outcome"
	"github.com/iliyamo/cinema-booking-core/internal/queue"
	"github.com/iliyamo/cinema-booking-core/internal/repository"
	"github.com/iliyamo/cinema-booking-core/internal/seating"
)

// LayoutStore loads a room's seat layout.  *repository.SeatRowRepo
// satisfies it.
type LayoutStore interface {
	LayoutForRoom(ctx context.Context, roomID string) (seating.Layout, error)
}

// SeatHoldStore keeps live holds.  *cache.HoldStore satisfies it.
type SeatHoldStore interface {
	Put(ctx context.Context, screeningID, seatID string, h hold.SeatHold, now time.Time) (bool, error)
	Get(ctx context.Context, screeningID, seatID string) (hold.SeatHold, error)
	Release(ctx context.Context, screeningID, seatID string) error
}

// HoldHandler serves the seat hold endpoints used during checkout.  A hold
// protects one seat of one screening for the core's fixed TTL; the store's
// own expiry mirrors it, but the authoritative expiry check is always the
// hold value compared against "now" supplied here.
type HoldHandler struct {
	Layouts LayoutStore
	Holds   SeatHoldStore
	Events  EventPublisher
	Now     func() time.Time
}

// NewHoldHandler constructs a HoldHandler.  Layout and hold stores must be
// non-nil; the publisher may be nil when the broker is disabled.
func NewHoldHandler(layouts LayoutStore, holds SeatHoldStore, events EventPublisher) *HoldHandler {
	if layouts == nil || holds == nil {
		panic("nil store passed to NewHoldHandler")
	}
	return &HoldHandler{Layouts: layouts, Holds: holds, Events: events, Now: func() time.Time { return time.Now().UTC() }}
}

type holdSeatRequest struct {
	RoomID     string  `json:"room_id"`
	CustomerID string  `json:"customer_id"`
	Column     string  `json:"column"`
	Row        float64 `json:"row"`
}

// HoldSeat handles POST /v1/screenings/:id/holds.  The seat coordinate is
// validated against the room's layout and the hold against the customer id;
// both run regardless so the response carries every problem at once.  The
// claim itself is atomic in the store: a seat already held answers 409.
func (h *HoldHandler) HoldSeat(c echo.Context) error {
	screeningID := c.Param("id")
	if screeningID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid screening id"})
	}
	var body holdSeatRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	ctx := c.Request().Context()
	layout, err := h.Layouts.LayoutForRoom(ctx, body.RoomID)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load seat layout"})
	}

	now := h.Now()
	type seatHold struct {
		seat seating.Seat
		hold hold.SeatHold
	}
	combined := outcome.Combine2(
		layout.SeatAt(body.Column, body.Row),
		hold.NewSeatHold(body.CustomerID, now),
		func(s seating.Seat, sh hold.SeatHold) seatHold { return seatHold{seat: s, hold: sh} },
	)
	validated, ok := combined.Value()
	if !ok {
		return writeFailure(c, combined.Errors())
	}

	taken, err := h.Holds.Put(ctx, screeningID, validated.seat.Identifier(), validated.hold, now)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to store hold"})
	}
	if !taken {
		return c.JSON(http.StatusConflict, echo.Map{"error": "seat already held"})
	}

	if h.Events != nil {
		_ = h.Events.PublishSeatHeld(ctx, queue.SeatHeldEvent{
			ScreeningID: screeningID,
			SeatID:      validated.seat.Identifier(),
			CustomerID:  validated.hold.CustomerID(),
			ReservedAt:  validated.hold.ReservedAt().Format(time.RFC3339),
			ExpiresAt:   validated.hold.ExpiresAt().Format(time.RFC3339),
		})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"seat":         validated.seat.Identifier(),
		"preferential": validated.seat.Preferential(),
		"expires_at":   validated.hold.ExpiresAt().Format(time.RFC3339),
	})
}

// GetHold handles GET /v1/screenings/:id/holds/:seat.  It reports whether a
// live hold protects the seat right now.
func (h *HoldHandler) GetHold(c echo.Context) error {
	screeningID := c.Param("id")
	seatID := c.Param("seat")
	if screeningID == "" || seatID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid identifiers"})
	}

	sh, err := h.Holds.Get(c.Request().Context(), screeningID, seatID)
	if errors.Is(err, cache.ErrHoldNotFound) {
		return c.JSON(http.StatusOK, echo.Map{"held": false})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load hold"})
	}
	if sh.HasExpired(h.Now()) {
		return c.JSON(http.StatusOK, echo.Map{"held": false})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"held":        true,
		"customer_id": sh.CustomerID(),
		"expires_at":  sh.ExpiresAt().Format(time.RFC3339),
	})
}

// ReleaseHold handles DELETE /v1/screenings/:id/holds/:seat.  Releasing a
// seat nobody holds is a no-op 204.
func (h *HoldHandler) ReleaseHold(c echo.Context) error {
	screeningID := c.Param("id")
	seatID := c.Param("seat")
	if screeningID == "" || seatID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid identifiers"})
	}
	if err := h.Holds.Release(c.Request().Context(), screeningID, seatID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to release hold"})
	}
	return c.NoContent(http.StatusNoContent)
}

package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cinema-booking-core/internal/display"
)

// DisplayHandler serves stateless validation endpoints for display windows
// and listing filters.  Nothing here touches storage: the upstream caller
// supplies the bounds and receives either the derived lifecycle facts or
// the full set of violated rules.
type DisplayHandler struct {
	Now func() time.Time
}

// NewDisplayHandler constructs a DisplayHandler using the system clock.
func NewDisplayHandler() *DisplayHandler {
	return &DisplayHandler{Now: func() time.Time { return time.Now().UTC() }}
}

type periodRequest struct {
	StartsAt string `json:"starts_at"`
	EndsAt   string `json:"ends_at"`
}

// ValidateScreeningPeriod handles POST /v1/screenings/display-period.  On
// success it reports the window's current status and whether bookings are
// still open.
func (h *DisplayHandler) ValidateScreeningPeriod(c echo.Context) error {
	var body periodRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	start, ok := parseInstant(body.StartsAt)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "starts_at must be RFC3339"})
	}
	end, ok := parseInstant(body.EndsAt)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "ends_at must be RFC3339"})
	}

	now := h.Now()
	o := display.NewScreeningDisplayPeriod(start, end, now)
	period, ok := o.Value()
	if !ok {
		return writeFailure(c, o.Errors())
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":                string(period.Status(now)),
		"available_for_booking": period.IsAvailableForBooking(now),
	})
}

// ValidateMoviePeriod handles POST /v1/movies/display-period.  Optional
// range_start/range_end query parameters additionally answer whether the
// listing window intersects the queried range; unspecified range bounds
// simply answer false, matching the predicate semantics of the core.
func (h *DisplayHandler) ValidateMoviePeriod(c echo.Context) error {
	var body periodRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	start, ok := parseInstant(body.StartsAt)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "starts_at must be RFC3339"})
	}
	end, ok := parseInstant(body.EndsAt)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "ends_at must be RFC3339"})
	}
	rangeStart, ok := parseInstant(c.QueryParam("range_start"))
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "range_start must be RFC3339"})
	}
	rangeEnd, ok := parseInstant(c.QueryParam("range_end"))
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "range_end must be RFC3339"})
	}

	now := h.Now()
	o := display.NewMovieDisplayPeriod(start, end, now)
	period, ok := o.Value()
	if !ok {
		return writeFailure(c, o.Errors())
	}
	return c.JSON(http.StatusOK, echo.Map{
		"active":             period.IsActive(now),
		"has_ended":          period.HasEnded(now),
		"has_not_started":    period.HasNotStarted(now),
		"available_in_range": period.IsAvailableInRange(rangeStart, rangeEnd),
	})
}

// GetFilterRange handles GET /v1/movies/filter-range?start=&end=.  With no
// parameters it returns the trusted default window (today through next
// week); with parameters it validates them against the filter policy and
// echoes the normalized range back.
func (h *DisplayHandler) GetFilterRange(c echo.Context) error {
	startParam := c.QueryParam("start")
	endParam := c.QueryParam("end")
	now := h.Now()

	if startParam == "" && endParam == "" {
		r := display.DefaultMovieFilterDateRange(now)
		return c.JSON(http.StatusOK, echo.Map{
			"start": r.Start().Format(time.RFC3339),
			"end":   r.End().Format(time.RFC3339),
		})
	}

	start, ok := parseInstant(startParam)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start must be RFC3339"})
	}
	end, ok := parseInstant(endParam)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "end must be RFC3339"})
	}

	o := display.NewMovieFilterDateRange(start, end, now)
	r, ok := o.Value()
	if !ok {
		return writeFailure(c, o.Errors())
	}
	return c.JSON(http.StatusOK, echo.Map{
		"start": r.Start().Format(time.RFC3339),
		"end":   r.End().Format(time.RFC3339),
	})
}

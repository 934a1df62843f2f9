package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/cinema-booking-core/internal/handler" // handlers implementing the endpoints
)

// RegisterRoutes registers routes that carry no handler state on the
// provided Echo instance.  Currently it exposes only a health check, used
// by load balancers and monitoring systems.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterSchedule registers the room booking endpoints.  Creation runs the
// conflict check against the room's hydrated schedule; removal is
// idempotent; availability is a read-only probe of the same overlap rule.
func RegisterSchedule(e *echo.Echo, h *handler.ScheduleHandler) {
	g := e.Group("/v1/rooms")
	g.POST("/:id/bookings", h.CreateBooking)
	g.DELETE("/:id/bookings/:bookingID", h.RemoveBooking)
	g.GET("/:id/availability", h.GetAvailability)
}

// RegisterHolds registers the checkout seat hold endpoints.
func RegisterHolds(e *echo.Echo, h *handler.HoldHandler) {
	g := e.Group("/v1/screenings")
	g.POST("/:id/holds", h.HoldSeat)
	g.GET("/:id/holds/:seat", h.GetHold)
	g.DELETE("/:id/holds/:seat", h.ReleaseHold)
}

// RegisterDisplay registers the stateless display window and filter range
// validation endpoints.
func RegisterDisplay(e *echo.Echo, h *handler.DisplayHandler) {
	e.POST("/v1/screenings/display-period", h.ValidateScreeningPeriod)
	e.POST("/v1/movies/display-period", h.ValidateMoviePeriod)
	e.GET("/v1/movies/filter-range", h.GetFilterRange)
}

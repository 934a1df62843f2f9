package handler

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cinema-booking-core/internal/outcome"
)

// failureBody is the JSON shape of a rejected validation.  Every violated
// rule is reported; the upstream consumer maps codes to localized messages.
type failureBody struct {
	Errors []failureEntry `json:"errors"`
}

type failureEntry struct {
	Code    string         `json:"code"`
	Details map[string]any `json:"details,omitempty"`
}

// writeFailure translates core failure records into an HTTP response.  A
// booking conflict is a 409 since the resource state, not the input, caused
// the rejection; every other code is a 422 validation problem.
func writeFailure(c echo.Context, records []outcome.FailureRecord) error {
	status := http.StatusUnprocessableEntity
	body := failureBody{Errors: make([]failureEntry, 0, len(records))}
	for _, rec := range records {
		if rec.Code == outcome.BookingConflict {
			status = http.StatusConflict
		}
		body.Errors = append(body.Errors, failureEntry{Code: string(rec.Code), Details: rec.Details})
	}
	return c.JSON(status, body)
}

// parseInstant parses an optional RFC3339 timestamp.  An empty input maps to
// the zero instant so the core can report MissingRequiredData itself; a
// malformed input is a transport-level problem and reported as such.
func parseInstant(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, true
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

// newID generates a random hexadecimal identifier for persisted bookings.
// crypto/rand never fails on supported platforms; if it does, the request
// cannot proceed safely.
func newID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

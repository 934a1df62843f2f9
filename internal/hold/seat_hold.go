// Package hold models the short-lived seat hold a customer takes during
// checkout.  A hold is a pure value: expiry is decided by comparing its
// stored expiration against a caller-supplied instant, never by reading the
// system clock, so tests can move time freely.
package hold

import (
	"strings"
	"time"

	"github.com/iliyamo/cinema-booking-core/internal/outcome"
)

// TTL is how long a hold protects a seat once checkout begins.
const TTL = 15 * time.Minute

// SeatHold is a customer's temporary claim on a seat.  Immutable; callers
// discard or replace it once it expires or checkout completes.
type SeatHold struct {
	customerID string
	reservedAt time.Time
	expiresAt  time.Time
}

// NewSeatHold stamps a hold for the customer at the given instant.  The
// expiration is always reservedAt + TTL.  The only rejection is a blank
// customer id.
func NewSeatHold(customerID string, now time.Time) outcome.Outcome[SeatHold] {
	id := strings.TrimSpace(customerID)
	if id == "" {
		return outcome.Failure[SeatHold](outcome.NewFailure(outcome.ReservationDataMissing,
			"field", "customer_id"))
	}
	return outcome.Success(SeatHold{
		customerID: id,
		reservedAt: now,
		expiresAt:  now.Add(TTL),
	})
}

// HydrateSeatHold rebuilds a hold from a trusted store.  A blank customer id
// or zero instants coming out of the store mean the write path is broken, so
// it panics rather than laundering the bug through the Outcome channel.
func HydrateSeatHold(customerID string, reservedAt, expiresAt time.Time) SeatHold {
	if strings.TrimSpace(customerID) == "" {
		panic("hold: hydrated seat hold has no customer id")
	}
	if reservedAt.IsZero() || expiresAt.IsZero() {
		panic("hold: hydrated seat hold has zero instants")
	}
	return SeatHold{customerID: customerID, reservedAt: reservedAt, expiresAt: expiresAt}
}

// CustomerID returns the holding customer.
func (h SeatHold) CustomerID() string { return h.customerID }

// ReservedAt returns when the hold was taken.
func (h SeatHold) ReservedAt() time.Time { return h.reservedAt }

// ExpiresAt returns the instant after which the hold no longer protects the
// seat.
func (h SeatHold) ExpiresAt() time.Time { return h.expiresAt }

// HasExpired reports whether the hold is dead at the given instant.  The
// boundary is inclusive of the expiry instant itself: at exactly ExpiresAt
// the hold still stands.
func (h SeatHold) HasExpired(now time.Time) bool {
	return now.After(h.expiresAt)
}

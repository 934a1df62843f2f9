// Package cache implements the Redis-backed seat hold store.  A hold is
// written under hold:{screeningID}:{seatID} with a Redis TTL derived from
// its expiration, so abandoned checkouts disappear on their own.  Redis
// expiry is an optimization only: the hold value's HasExpired check against
// a caller-supplied instant remains the authority, which keeps the business
// rule testable without a running Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/cinema-booking-core/internal/hold"
)

// ErrHoldNotFound is returned when no hold exists for the seat, either
// because none was taken or because Redis already expired it.
var ErrHoldNotFound = errors.New("seat hold not found")

// holdRecord is the wire form of a hold in Redis.
type holdRecord struct {
	CustomerID string    `json:"customer_id"`
	ReservedAt time.Time `json:"reserved_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// HoldStore persists seat holds in Redis.
type HoldStore struct {
	client *redis.Client
}

// NewHoldStore returns a HoldStore bound to the provided client.  It panics
// on a nil client: callers that could not reach Redis must not construct a
// store at all.
func NewHoldStore(client *redis.Client) *HoldStore {
	if client == nil {
		panic("nil redis client passed to NewHoldStore")
	}
	return &HoldStore{client: client}
}

func holdKey(screeningID, seatID string) string {
	return fmt.Sprintf("hold:%s:%s", screeningID, seatID)
}

// Put stores a hold for the seat unless one is already present, returning
// whether the hold was taken.  SET NX makes the claim atomic across
// concurrent checkouts; the entry's TTL is the remaining life of the hold
// relative to now.
func (s *HoldStore) Put(ctx context.Context, screeningID, seatID string, h hold.SeatHold, now time.Time) (bool, error) {
	ttl := h.ExpiresAt().Sub(now)
	if ttl <= 0 {
		return false, nil
	}
	body, err := json.Marshal(holdRecord{
		CustomerID: h.CustomerID(),
		ReservedAt: h.ReservedAt().UTC(),
		ExpiresAt:  h.ExpiresAt().UTC(),
	})
	if err != nil {
		return false, err
	}
	return s.client.SetNX(ctx, holdKey(screeningID, seatID), body, ttl).Result()
}

// Get loads the hold for a seat, reconstructing it through trusted
// hydration.  Returns ErrHoldNotFound when no entry exists.
func (s *HoldStore) Get(ctx context.Context, screeningID, seatID string) (hold.SeatHold, error) {
	body, err := s.client.Get(ctx, holdKey(screeningID, seatID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return hold.SeatHold{}, ErrHoldNotFound
	}
	if err != nil {
		return hold.SeatHold{}, err
	}
	var rec holdRecord
	if err := json.Unmarshal(body, &rec); err != nil {
		return hold.SeatHold{}, err
	}
	return hold.HydrateSeatHold(rec.CustomerID, rec.ReservedAt, rec.ExpiresAt), nil
}

// Release deletes the hold for a seat.  Releasing a seat that holds nothing
// is a no-op, mirroring the idempotent removal semantics of the schedule.
func (s *HoldStore) Release(ctx context.Context, screeningID, seatID string) error {
	return s.client.Del(ctx, holdKey(screeningID, seatID)).Err()
}

// Package queue defines message payloads exchanged over the message broker.
package queue

// RoomBookedEvent is published when a booking survives conflict validation
// and is persisted.  It contains enough information for downstream consumers
// to log, notify, or trigger analytics without querying the primary
// database.
type RoomBookedEvent struct {
	BookingID   string `json:"booking_id"`
	RoomID      string `json:"room_id"`
	SubjectID   string `json:"subject_id"`
	BookingType string `json:"booking_type"`
	StartsAt    string `json:"starts_at"`
	EndsAt      string `json:"ends_at"`
	BookedAt    string `json:"booked_at"`
}

// SeatHeldEvent is published when a customer takes a seat hold during
// checkout.  Consumers use it for metrics on hold churn and abandonment.
type SeatHeldEvent struct {
	ScreeningID string `json:"screening_id"`
	SeatID      string `json:"seat"`
	CustomerID  string `json:"customer_id"`
	ReservedAt  string `json:"reserved_at"`
	ExpiresAt   string `json:"expires_at"`
}

// Package repository provides data access for rooms, their bookings and
// their seat layouts.  It also defines error values that are reused across
// repositories.  These sentinel values allow higher layers such as handlers
// to distinguish between different failure scenarios without inspecting
// driver-specific errors.
package repository

import "errors"

// ErrRoomNotFound is returned when a room has no configuration at all, for
// example when loading the seat layout of an unknown room.  Handlers should
// translate this into an HTTP 404 response.
var ErrRoomNotFound = errors.New("room not found")

// ErrCorruptSeatRow is returned when a persisted seat row fails the same
// validation the write path enforces.  It indicates a bug or manual edit on
// the storage side, never bad user input.
var ErrCorruptSeatRow = errors.New("corrupt seat row definition")

package reservation

import "errors"

var (
	ErrGuestNotFound   = errors.New("guest not found")
	ErrRoomNotFound    = errors.New("room not found")
	ErrBookingNotFound = errors.New("booking not found")

	// ErrRoomUnavailable: an overlapping non-cancelled booking already
	// holds the room for part of the requested range.
	ErrRoomUnavailable  = errors.New("room not available for the requested dates")
	ErrCapacityExceeded = errors.New("party size exceeds room capacity")

	// ErrOutstandingBalance blocks check-out until the folio is settled.
	ErrOutstandingBalance = errors.New("booking has an outstanding balance")

	// ErrNoShowTooEarly: the tolerance window past check-in time has not
	// elapsed; the caller must retry with force to proceed anyway.
	ErrNoShowTooEarly = errors.New("no-show tolerance window has not elapsed")
)

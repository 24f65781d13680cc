package reservation

import (
	"context"
	"time"
)

// AvailabilityIndex answers whether a room is free for a date range by
// scanning its non-cancelled bookings. Intervals are half-open, so a
// stay ending on a date does not clash with one starting that date.
type AvailabilityIndex struct {
	bookings BookingRepository
}

func NewAvailabilityIndex(bookings BookingRepository) *AvailabilityIndex {
	return &AvailabilityIndex{bookings: bookings}
}

func (ix *AvailabilityIndex) IsAvailable(ctx context.Context, roomNumber int, start, end time.Time) (bool, error) {
	rows, err := ix.bookings.ListByRoom(ctx, roomNumber)
	if err != nil {
		return false, err
	}
	for i := range rows {
		b := &rows[i]
		if !b.IsActive() {
			continue
		}
		if b.Overlaps(start, end) {
			return false, nil
		}
	}
	return true, nil
}

package domain

import "time"

type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingCheckedIn  BookingStatus = "checked_in"
	BookingCheckedOut BookingStatus = "checked_out"
	BookingCancelled  BookingStatus = "cancelled"
	BookingNoShow     BookingStatus = "no_show"
)

// Booking connects a guest and a room over a half-open date interval
// [CheckInDate, CheckOutDate). Guest and room are referenced by their
// natural keys; the object graph is one-directional, guest history is a
// derived repository query.
type Booking struct {
	ID            int64         `json:"id"`
	GuestDocument string        `json:"guest_document" validate:"required"`
	RoomNumber    int           `json:"room_number" validate:"required,gt=0"`
	CheckInDate   time.Time     `json:"check_in_date" validate:"required"`
	CheckOutDate  time.Time     `json:"check_out_date" validate:"required"`
	PartySize     int           `json:"party_size" validate:"required,gt=0"`
	Status        BookingStatus `json:"status"`
	Payments      []Payment     `json:"payments,omitempty"`
	Charges       []Charge      `json:"charges,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
	CancelledAt   *time.Time    `json:"cancelled_at,omitempty"`
}

// DateOnly drops the clock, keeping a calendar date at midnight UTC.
// All booking dates are stored in this form.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NewBooking builds a pending booking. Check-out must be strictly after
// check-in and the party has to fit the room, both checked here so an
// invalid booking can never be constructed.
func NewBooking(guestDocument string, roomNumber int, checkIn, checkOut time.Time, partySize, roomCapacity int) (*Booking, error) {
	if guestDocument == "" || roomNumber <= 0 {
		return nil, ErrValidation
	}
	checkIn = DateOnly(checkIn)
	checkOut = DateOnly(checkOut)
	if !checkOut.After(checkIn) {
		return nil, ErrValidation
	}
	if partySize <= 0 || partySize > roomCapacity {
		return nil, ErrValidation
	}
	return &Booking{
		GuestDocument: guestDocument,
		RoomNumber:    roomNumber,
		CheckInDate:   checkIn,
		CheckOutDate:  checkOut,
		PartySize:     partySize,
		Status:        BookingPending,
	}, nil
}

// Nights is the stay length in calendar nights, at least 1 by construction.
func (b *Booking) Nights() int {
	return int(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24)
}

// Overlaps reports whether the stay intersects [start, end) on the
// half-open interval rule: bookings sharing a boundary date do not clash.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.CheckInDate.Before(DateOnly(end)) && b.CheckOutDate.After(DateOnly(start))
}

// SameStay compares bookings by business key: same room and overlapping
// date range, regardless of identity.
func (b *Booking) SameStay(other *Booking) bool {
	if other == nil || b.RoomNumber != other.RoomNumber {
		return false
	}
	return b.Overlaps(other.CheckInDate, other.CheckOutDate)
}

// IsTerminal reports whether the booking reached a final state. No
// transition leaves checked_out, cancelled or no_show.
func (b *Booking) IsTerminal() bool {
	switch b.Status {
	case BookingCheckedOut, BookingCancelled, BookingNoShow:
		return true
	}
	return false
}

// IsActive is the availability view: everything except cancelled blocks
// the room for its dates.
func (b *Booking) IsActive() bool {
	return b.Status != BookingCancelled
}

// RevenueBearing marks the statuses that count toward financial reports.
func (b *Booking) RevenueBearing() bool {
	switch b.Status {
	case BookingConfirmed, BookingCheckedIn, BookingCheckedOut:
		return true
	}
	return false
}

func (b *Booking) Confirm() error {
	if b.Status != BookingPending {
		return ErrInvalidTransition
	}
	b.Status = BookingConfirmed
	return nil
}

// CheckIn moves a confirmed booking into the stay. today must fall
// within [CheckInDate, CheckOutDate] inclusive.
func (b *Booking) CheckIn(today time.Time) error {
	if b.Status != BookingConfirmed {
		return ErrInvalidTransition
	}
	day := DateOnly(today)
	if day.Before(b.CheckInDate) || day.After(b.CheckOutDate) {
		return ErrNotWithinStay
	}
	b.Status = BookingCheckedIn
	return nil
}

// CheckOut closes the stay. The settlement gate is the caller's job;
// this method only guards the state machine.
func (b *Booking) CheckOut() error {
	if b.Status != BookingCheckedIn {
		return ErrInvalidTransition
	}
	b.Status = BookingCheckedOut
	return nil
}

// Cancel is allowed while the booking has not started: pending or
// confirmed. Cancellation is a terminal state, not a deletion.
func (b *Booking) Cancel(now time.Time) error {
	if b.Status != BookingPending && b.Status != BookingConfirmed {
		return ErrInvalidTransition
	}
	b.Status = BookingCancelled
	b.CancelledAt = &now
	return nil
}

// MarkNoShow records that a confirmed guest never arrived.
func (b *Booking) MarkNoShow() error {
	if b.Status != BookingConfirmed {
		return ErrInvalidTransition
	}
	b.Status = BookingNoShow
	return nil
}

// AddPayment appends an already-validated payment line.
func (b *Booking) AddPayment(p Payment) {
	b.Payments = append(b.Payments, p)
}

// AddCharge appends an already-validated charge line.
func (b *Booking) AddCharge(c Charge) {
	b.Charges = append(b.Charges, c)
}

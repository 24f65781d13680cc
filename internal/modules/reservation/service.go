package reservation

import (
	"context"
	"sync"
	"time"

	"hotelreserve/internal/domain"
	"hotelreserve/internal/modules/billing"
)

const dateLayout = "2006-01-02"

// Service orchestrates the reservation lifecycle: it is the only
// component that touches the repositories for booking commands. A
// single mutex serializes every read-modify-write so concurrent HTTP
// callers cannot race a lifecycle check against a status mutation
// (e.g. two cancels both reading pending).
type Service struct {
	mu sync.Mutex

	bookings     BookingRepository
	rooms        RoomRepository
	guests       GuestRepository
	availability *AvailabilityIndex
	billing      *billing.Engine
	events       EventSink

	now func() time.Time
}

func NewService(bookings BookingRepository, rooms RoomRepository, guests GuestRepository, engine *billing.Engine, events EventSink) *Service {
	return &Service{
		bookings:     bookings,
		rooms:        rooms,
		guests:       guests,
		availability: NewAvailabilityIndex(bookings),
		billing:      engine,
		events:       events,
		now:          time.Now,
	}
}

func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start, err := time.Parse(dateLayout, req.CheckIn)
	if err != nil {
		return nil, domain.ErrValidation
	}
	end, err := time.Parse(dateLayout, req.CheckOut)
	if err != nil {
		return nil, domain.ErrValidation
	}

	guest, err := s.guests.GetByDocument(ctx, req.GuestDocument)
	if err != nil {
		return nil, err
	}
	if guest == nil {
		return nil, ErrGuestNotFound
	}

	room, err := s.rooms.GetByNumber(ctx, req.RoomNumber)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	if req.PartySize > room.Capacity {
		return nil, ErrCapacityExceeded
	}

	free, err := s.availability.IsAvailable(ctx, room.Number, start, end)
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, ErrRoomUnavailable
	}

	b, err := domain.NewBooking(guest.Document, room.Number, start, end, req.PartySize, room.Capacity)
	if err != nil {
		return nil, err
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	s.emit("booking_created", b)
	return b, nil
}

// locate finds the booking addressed by the desk: first match on the
// (guest document, room number) pair.
func (s *Service) locate(ctx context.Context, document string, roomNumber int) (*domain.Booking, error) {
	b, err := s.bookings.FirstByGuestRoom(ctx, document, roomNumber)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	return b, nil
}

func (s *Service) loadRoom(ctx context.Context, number int) (*domain.Room, error) {
	room, err := s.rooms.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

func (s *Service) Confirm(ctx context.Context, document string, roomNumber int) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.locate(ctx, document, roomNumber)
	if err != nil {
		return nil, err
	}
	if err := b.Confirm(); err != nil {
		return nil, err
	}
	if err := s.bookings.Save(ctx, b); err != nil {
		return nil, err
	}
	s.emit("booking_confirmed", b)
	return b, nil
}

func (s *Service) CheckIn(ctx context.Context, document string, roomNumber int) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.locate(ctx, document, roomNumber)
	if err != nil {
		return nil, err
	}
	room, err := s.loadRoom(ctx, roomNumber)
	if err != nil {
		return nil, err
	}

	if err := b.CheckIn(s.now()); err != nil {
		return nil, err
	}
	if err := s.bookings.Save(ctx, b); err != nil {
		return nil, err
	}
	if err := s.rooms.UpdateStatus(ctx, room.Number, domain.RoomOccupied); err != nil {
		return nil, err
	}
	s.emit("guest_checked_in", b)
	return b, nil
}

// CheckOut closes the stay. The folio must be settled first; the
// refusal carries no state change.
func (s *Service) CheckOut(ctx context.Context, document string, roomNumber int) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.locate(ctx, document, roomNumber)
	if err != nil {
		return nil, err
	}
	room, err := s.loadRoom(ctx, roomNumber)
	if err != nil {
		return nil, err
	}

	if b.Status == domain.BookingCheckedIn && !s.billing.IsSettled(b, room) {
		return nil, ErrOutstandingBalance
	}

	if err := b.CheckOut(); err != nil {
		return nil, err
	}
	if err := s.bookings.Save(ctx, b); err != nil {
		return nil, err
	}
	if err := s.rooms.UpdateStatus(ctx, room.Number, domain.RoomAvailable); err != nil {
		return nil, err
	}
	s.emit("guest_checked_out", b)
	return b, nil
}

// Cancel moves a pending/confirmed booking to cancelled and, when the
// notice is shorter than the policy threshold, appends the late
// cancellation penalty. The penalty is computed against the total as it
// stood before the penalty line itself.
func (s *Service) Cancel(ctx context.Context, document string, roomNumber int) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.locate(ctx, document, roomNumber)
	if err != nil {
		return nil, err
	}
	room, err := s.loadRoom(ctx, roomNumber)
	if err != nil {
		return nil, err
	}

	now := s.now()
	penalty, hasPenalty := s.billing.CancellationPenalty(b, room, now)

	if err := b.Cancel(now); err != nil {
		return nil, err
	}
	if hasPenalty {
		b.AddCharge(penalty)
	}

	if err := s.bookings.Save(ctx, b); err != nil {
		return nil, err
	}
	if err := s.rooms.UpdateStatus(ctx, room.Number, domain.RoomAvailable); err != nil {
		return nil, err
	}
	s.emit("booking_cancelled", b)
	return b, nil
}

// MarkNoShow records a confirmed guest who never arrived and charges
// the no-show penalty. Before the tolerance window past check-in time
// has elapsed the call is refused unless force is set — the explicit
// two-phase confirmation that used to be an interactive prompt.
func (s *Service) MarkNoShow(ctx context.Context, document string, roomNumber int, force bool) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.locate(ctx, document, roomNumber)
	if err != nil {
		return nil, err
	}
	room, err := s.loadRoom(ctx, roomNumber)
	if err != nil {
		return nil, err
	}

	if b.Status == domain.BookingConfirmed && !force && !s.billing.NoShowWindowElapsed(b, s.now()) {
		return nil, ErrNoShowTooEarly
	}

	penalty, hasPenalty := s.billing.NoShowPenalty(b, room)

	if err := b.MarkNoShow(); err != nil {
		return nil, err
	}
	if hasPenalty {
		b.AddCharge(penalty)
	}

	if err := s.bookings.Save(ctx, b); err != nil {
		return nil, err
	}
	if err := s.rooms.UpdateStatus(ctx, room.Number, domain.RoomAvailable); err != nil {
		return nil, err
	}
	s.emit("booking_no_show", b)
	return b, nil
}

func (s *Service) RecordPayment(ctx context.Context, req PaymentRequest) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.locate(ctx, req.GuestDocument, req.RoomNumber)
	if err != nil {
		return nil, err
	}

	p, err := domain.NewPayment(req.Amount, domain.PaymentMethod(req.Method), s.now())
	if err != nil {
		return nil, err
	}
	b.AddPayment(p)

	if err := s.bookings.Save(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) RecordCharge(ctx context.Context, req ChargeRequest) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.locate(ctx, req.GuestDocument, req.RoomNumber)
	if err != nil {
		return nil, err
	}

	ch, err := domain.NewCharge(req.Description, req.Amount)
	if err != nil {
		return nil, err
	}
	b.AddCharge(ch)

	if err := s.bookings.Save(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.List(ctx)
}

// GuestHistory is the derived per-guest booking index, never a
// bidirectional object graph.
func (s *Service) GuestHistory(ctx context.Context, document string) ([]domain.Booking, error) {
	guest, err := s.guests.GetByDocument(ctx, document)
	if err != nil {
		return nil, err
	}
	if guest == nil {
		return nil, ErrGuestNotFound
	}
	return s.bookings.ListByGuest(ctx, document)
}

// Invoice renders the guest folio PDF for the located booking.
func (s *Service) Invoice(ctx context.Context, document string, roomNumber int) ([]byte, string, error) {
	b, err := s.locate(ctx, document, roomNumber)
	if err != nil {
		return nil, "", err
	}
	room, err := s.loadRoom(ctx, roomNumber)
	if err != nil {
		return nil, "", err
	}
	guest, err := s.guests.GetByDocument(ctx, document)
	if err != nil {
		return nil, "", err
	}
	if guest == nil {
		return nil, "", ErrGuestNotFound
	}
	return s.billing.Invoice(b, room, guest)
}

func (s *Service) emit(event string, b *domain.Booking) {
	if s.events != nil {
		s.events.BookingEvent(event, b)
	}
}

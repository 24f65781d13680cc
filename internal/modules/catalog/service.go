package catalog

import (
	"context"

	"hotelreserve/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

type Service struct {
	rooms    RoomRepository
	guests   GuestRepository
	bookings BookingReader
}

func NewService(rooms RoomRepository, guests GuestRepository, bookings BookingReader) *Service {
	return &Service{rooms: rooms, guests: guests, bookings: bookings}
}

func (s *Service) RegisterRoom(ctx context.Context, req RegisterRoomRequest) (*domain.Room, error) {
	existing, err := s.rooms.GetByNumber(ctx, req.Number)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateRoom
	}

	room, err := domain.NewRoom(req.Number, domain.RoomCategory(req.Category), req.Capacity, req.BaseRate)
	if err != nil {
		return nil, err
	}

	if err := s.rooms.Create(ctx, room); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateRoom
		}
		return nil, err
	}
	return room, nil
}

func (s *Service) RegisterGuest(ctx context.Context, req RegisterGuestRequest) (*domain.Guest, error) {
	existing, err := s.guests.GetByDocument(ctx, req.Document)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateGuest
	}

	guest, err := domain.NewGuest(req.Name, req.Document, req.Email, req.Phone)
	if err != nil {
		return nil, err
	}

	if err := s.guests.Create(ctx, guest); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateGuest
		}
		return nil, err
	}
	return guest, nil
}

func (s *Service) ListRooms(ctx context.Context) ([]domain.Room, error) {
	return s.rooms.List(ctx)
}

func (s *Service) ListGuests(ctx context.Context) ([]domain.Guest, error) {
	return s.guests.List(ctx)
}

// BlockRoom puts a room into maintenance. Refused while a guest is
// checked in; future-dated bookings stay untouched, availability is a
// date question answered at booking time.
func (s *Service) BlockRoom(ctx context.Context, number int) (*domain.Room, error) {
	room, err := s.rooms.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}
	if room.Status == domain.RoomOccupied {
		return nil, ErrRoomInUse
	}

	rows, err := s.bookings.ListByRoom(ctx, number)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if rows[i].Status == domain.BookingCheckedIn {
			return nil, ErrRoomInUse
		}
	}

	if err := s.rooms.UpdateStatus(ctx, number, domain.RoomMaintenance); err != nil {
		return nil, err
	}
	room.Status = domain.RoomMaintenance
	return room, nil
}

// ReleaseRoom returns a maintenance room to service.
func (s *Service) ReleaseRoom(ctx context.Context, number int) (*domain.Room, error) {
	room, err := s.rooms.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}
	if room.Status == domain.RoomOccupied {
		return nil, ErrRoomInUse
	}

	if err := s.rooms.UpdateStatus(ctx, number, domain.RoomAvailable); err != nil {
		return nil, err
	}
	room.Status = domain.RoomAvailable
	return room, nil
}

// isUniqueViolation catches a duplicate-key insert racing past the
// lookup when running on postgres.
func isUniqueViolation(err error) bool {
	if pgErr, ok := err.(*pgconn.PgError); ok {
		return pgErr.Code == "23505"
	}
	return false
}

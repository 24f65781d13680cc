package reservation

import (
	"context"

	"hotelreserve/internal/domain"
)

// BookingRepository defines the booking storage operations the
// reservation service needs.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	Save(ctx context.Context, b *domain.Booking) error
	FirstByGuestRoom(ctx context.Context, document string, roomNumber int) (*domain.Booking, error)
	ListByRoom(ctx context.Context, roomNumber int) ([]domain.Booking, error)
	ListByGuest(ctx context.Context, document string) ([]domain.Booking, error)
	List(ctx context.Context) ([]domain.Booking, error)
}

type RoomRepository interface {
	GetByNumber(ctx context.Context, number int) (*domain.Room, error)
	UpdateStatus(ctx context.Context, number int, status domain.RoomStatus) error
}

type GuestRepository interface {
	GetByDocument(ctx context.Context, document string) (*domain.Guest, error)
}

// EventSink receives booking lifecycle events for the live dashboard
// feed. May be nil; delivery is best effort.
type EventSink interface {
	BookingEvent(event string, b *domain.Booking)
}

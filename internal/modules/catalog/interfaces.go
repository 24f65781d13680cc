package catalog

import (
	"context"

	"hotelreserve/internal/domain"
)

// RoomRepository is what the catalog needs from room storage.
type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	GetByNumber(ctx context.Context, number int) (*domain.Room, error)
	UpdateStatus(ctx context.Context, number int, status domain.RoomStatus) error
	List(ctx context.Context) ([]domain.Room, error)
}

// GuestRepository is what the catalog needs from guest storage.
type GuestRepository interface {
	Create(ctx context.Context, g *domain.Guest) error
	GetByDocument(ctx context.Context, document string) (*domain.Guest, error)
	List(ctx context.Context) ([]domain.Guest, error)
}

// BookingReader checks for guests currently in the room before a
// maintenance block.
type BookingReader interface {
	ListByRoom(ctx context.Context, roomNumber int) ([]domain.Booking, error)
}

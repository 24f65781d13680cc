package reporting

import (
	"context"

	"hotelreserve/internal/domain"
)

type RoomRepository interface {
	GetByNumber(ctx context.Context, number int) (*domain.Room, error)
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status domain.RoomStatus) (int64, error)
}

type BookingRepository interface {
	List(ctx context.Context) ([]domain.Booking, error)
}

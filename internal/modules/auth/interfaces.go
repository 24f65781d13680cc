package auth

import (
	"context"

	"hotelreserve/internal/domain"
)

type StaffRepository interface {
	Create(ctx context.Context, s *domain.Staff) error
	GetByUsername(ctx context.Context, username string) (*domain.Staff, error)
}

package repository

import (
	"context"
	"errors"
	"time"

	"hotelreserve/internal/domain"

	"gorm.io/gorm"
)

type GuestRepository struct {
	db *gorm.DB
}

func NewGuestRepository(db *gorm.DB) *GuestRepository {
	return &GuestRepository{db: db}
}

type guestModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	Document  string    `gorm:"column:document;uniqueIndex"`
	Email     string    `gorm:"column:email"`
	Phone     string    `gorm:"column:phone"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (guestModel) TableName() string { return "guests" }

func toDomainGuest(m guestModel) *domain.Guest {
	return &domain.Guest{
		ID:        m.ID,
		Name:      m.Name,
		Document:  m.Document,
		Email:     m.Email,
		Phone:     m.Phone,
		CreatedAt: m.CreatedAt,
	}
}

func (r *GuestRepository) Create(ctx context.Context, g *domain.Guest) error {
	m := guestModel{
		Name:     g.Name,
		Document: g.Document,
		Email:    g.Email,
		Phone:    g.Phone,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*g = *toDomainGuest(m)
	return nil
}

// GetByDocument returns (nil, nil) when the guest is unknown.
func (r *GuestRepository) GetByDocument(ctx context.Context, document string) (*domain.Guest, error) {
	var m guestModel
	tx := r.db.WithContext(ctx).Where("document = ?", document).First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainGuest(m), nil
}

func (r *GuestRepository) List(ctx context.Context) ([]domain.Guest, error) {
	var ms []guestModel
	tx := r.db.WithContext(ctx).Order("name").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Guest, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainGuest(m))
	}
	return out, nil
}

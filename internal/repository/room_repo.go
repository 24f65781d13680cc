package repository

import (
	"context"
	"errors"
	"time"

	"hotelreserve/internal/domain"

	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

type roomModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Number    int       `gorm:"column:number;uniqueIndex"`
	Category  string    `gorm:"column:category"`
	Capacity  int       `gorm:"column:capacity"`
	BaseRate  float64   `gorm:"column:base_rate"`
	Status    string    `gorm:"column:status"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (roomModel) TableName() string { return "rooms" }

func toDomainRoom(m roomModel) *domain.Room {
	return &domain.Room{
		ID:        m.ID,
		Number:    m.Number,
		Category:  domain.RoomCategory(m.Category),
		Capacity:  m.Capacity,
		BaseRate:  m.BaseRate,
		Status:    domain.RoomStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toRoomModel(r *domain.Room) roomModel {
	return roomModel{
		ID:        r.ID,
		Number:    r.Number,
		Category:  string(r.Category),
		Capacity:  r.Capacity,
		BaseRate:  r.BaseRate,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	m := toRoomModel(room)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*room = *toDomainRoom(m)
	return nil
}

// GetByNumber returns (nil, nil) when the room does not exist, so the
// modules never have to know about gorm.ErrRecordNotFound.
func (r *RoomRepository) GetByNumber(ctx context.Context, number int) (*domain.Room, error) {
	var m roomModel
	tx := r.db.WithContext(ctx).Where("number = ?", number).First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainRoom(m), nil
}

func (r *RoomRepository) UpdateStatus(ctx context.Context, number int, status domain.RoomStatus) error {
	tx := r.db.WithContext(ctx).
		Model(&roomModel{}).
		Where("number = ?", number).
		Update("status", string(status))
	return tx.Error
}

func (r *RoomRepository) List(ctx context.Context) ([]domain.Room, error) {
	var ms []roomModel
	tx := r.db.WithContext(ctx).Order("number").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Room, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainRoom(m))
	}
	return out, nil
}

func (r *RoomRepository) CountAll(ctx context.Context) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&roomModel{}).Count(&cnt)
	return cnt, tx.Error
}

func (r *RoomRepository) CountByStatus(ctx context.Context, status domain.RoomStatus) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&roomModel{}).
		Where("status = ?", string(status)).
		Count(&cnt)
	return cnt, tx.Error
}

package domain

import "time"

type RoomCategory string

const (
	RoomStandard RoomCategory = "standard"
	RoomDouble   RoomCategory = "double"
	RoomSuite    RoomCategory = "suite"
)

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
)

const (
	suiteRateMultiplier = 1.5
	suiteCapacity       = 4
)

type Room struct {
	ID        int64        `json:"id"`
	Number    int          `json:"number" validate:"required,gt=0"`
	Category  RoomCategory `json:"category" validate:"required"`
	Capacity  int          `json:"capacity" validate:"required,gt=0"`
	BaseRate  float64      `json:"base_rate" validate:"required,gt=0"`
	Status    RoomStatus   `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// NewRoom validates and builds a room. A suite overrides whatever the
// caller supplied: capacity is fixed at 4 and the base rate is 1.5x the
// rate given at registration.
func NewRoom(number int, category RoomCategory, capacity int, baseRate float64) (*Room, error) {
	if number <= 0 || capacity <= 0 || baseRate <= 0 {
		return nil, ErrValidation
	}
	switch category {
	case RoomStandard, RoomDouble, RoomSuite:
	default:
		return nil, ErrValidation
	}

	if category == RoomSuite {
		capacity = suiteCapacity
		baseRate = baseRate * suiteRateMultiplier
	}

	return &Room{
		Number:   number,
		Category: category,
		Capacity: capacity,
		BaseRate: baseRate,
		Status:   RoomAvailable,
	}, nil
}

package domain

import (
	"strings"
	"time"
)

// Charge is an ad-hoc consumption line item (minibar, parking, penalty)
// appended to exactly one booking.
type Charge struct {
	ID          int64     `json:"id"`
	BookingID   int64     `json:"booking_id"`
	Description string    `json:"description" validate:"required"`
	Amount      float64   `json:"amount" validate:"required,gt=0"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewCharge(description string, amount float64) (Charge, error) {
	description = strings.TrimSpace(description)
	if description == "" || amount <= 0 {
		return Charge{}, ErrValidation
	}
	return Charge{Description: description, Amount: amount}, nil
}

package domain

import "time"

type PaymentMethod string

const (
	PaymentPix    PaymentMethod = "pix"
	PaymentCash   PaymentMethod = "cash"
	PaymentDebit  PaymentMethod = "debit"
	PaymentCredit PaymentMethod = "credit"
)

// Payment is an immutable line appended to exactly one booking.
type Payment struct {
	ID        int64         `json:"id"`
	BookingID int64         `json:"booking_id"`
	Amount    float64       `json:"amount" validate:"required,gt=0"`
	Method    PaymentMethod `json:"method" validate:"required"`
	PaidAt    time.Time     `json:"paid_at"`
}

func NewPayment(amount float64, method PaymentMethod, paidAt time.Time) (Payment, error) {
	if amount <= 0 {
		return Payment{}, ErrValidation
	}
	switch method {
	case PaymentPix, PaymentCash, PaymentDebit, PaymentCredit:
	default:
		return Payment{}, ErrValidation
	}
	return Payment{Amount: amount, Method: method, PaidAt: paidAt}, nil
}

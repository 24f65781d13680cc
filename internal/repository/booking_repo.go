package repository

import (
	"context"
	"time"

	"hotelreserve/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Booking rows reference guest and room by their natural keys; payments
// and charges are ordered child rows keyed by position so the folio
// order survives a round trip.
type bookingModel struct {
	ID            int64      `gorm:"column:id;primaryKey"`
	GuestDocument string     `gorm:"column:guest_document;index"`
	RoomNumber    int        `gorm:"column:room_number;index"`
	CheckInDate   time.Time  `gorm:"column:check_in_date"`
	CheckOutDate  time.Time  `gorm:"column:check_out_date"`
	PartySize     int        `gorm:"column:party_size"`
	Status        string     `gorm:"column:status"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at"`
	CancelledAt   *time.Time `gorm:"column:cancelled_at"`
}

func (bookingModel) TableName() string { return "bookings" }

type paymentModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	BookingID int64     `gorm:"column:booking_id;index"`
	Position  int       `gorm:"column:position"`
	Amount    float64   `gorm:"column:amount"`
	Method    string    `gorm:"column:method"`
	PaidAt    time.Time `gorm:"column:paid_at"`
}

func (paymentModel) TableName() string { return "booking_payments" }

type chargeModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	BookingID   int64     `gorm:"column:booking_id;index"`
	Position    int       `gorm:"column:position"`
	Description string    `gorm:"column:description"`
	Amount      float64   `gorm:"column:amount"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (chargeModel) TableName() string { return "booking_charges" }

func toDomainBooking(m bookingModel, payments []paymentModel, charges []chargeModel) *domain.Booking {
	b := &domain.Booking{
		ID:            m.ID,
		GuestDocument: m.GuestDocument,
		RoomNumber:    m.RoomNumber,
		CheckInDate:   domain.DateOnly(m.CheckInDate),
		CheckOutDate:  domain.DateOnly(m.CheckOutDate),
		PartySize:     m.PartySize,
		Status:        domain.BookingStatus(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		CancelledAt:   m.CancelledAt,
	}
	for _, p := range payments {
		b.Payments = append(b.Payments, domain.Payment{
			ID:        p.ID,
			BookingID: p.BookingID,
			Amount:    p.Amount,
			Method:    domain.PaymentMethod(p.Method),
			PaidAt:    p.PaidAt,
		})
	}
	for _, c := range charges {
		b.Charges = append(b.Charges, domain.Charge{
			ID:          c.ID,
			BookingID:   c.BookingID,
			Description: c.Description,
			Amount:      c.Amount,
			CreatedAt:   c.CreatedAt,
		})
	}
	return b
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:            b.ID,
		GuestDocument: b.GuestDocument,
		RoomNumber:    b.RoomNumber,
		CheckInDate:   b.CheckInDate,
		CheckOutDate:  b.CheckOutDate,
		PartySize:     b.PartySize,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
		CancelledAt:   b.CancelledAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := toBookingModel(b)
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		b.ID = m.ID
		b.CreatedAt = m.CreatedAt
		b.UpdatedAt = m.UpdatedAt
		return r.saveLines(tx, b)
	})
}

// Save persists the booking row and rewrites its payment/charge lines,
// keeping their order. The whole read-modify-write of a service command
// commits or rolls back as one unit.
func (r *BookingRepository) Save(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := toBookingModel(b)
		if err := tx.Save(&m).Error; err != nil {
			return err
		}
		if err := tx.Where("booking_id = ?", b.ID).Delete(&paymentModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("booking_id = ?", b.ID).Delete(&chargeModel{}).Error; err != nil {
			return err
		}
		return r.saveLines(tx, b)
	})
}

func (r *BookingRepository) saveLines(tx *gorm.DB, b *domain.Booking) error {
	for i := range b.Payments {
		p := &b.Payments[i]
		pm := paymentModel{
			BookingID: b.ID,
			Position:  i,
			Amount:    p.Amount,
			Method:    string(p.Method),
			PaidAt:    p.PaidAt,
		}
		if err := tx.Create(&pm).Error; err != nil {
			return err
		}
		p.ID = pm.ID
		p.BookingID = b.ID
	}
	for i := range b.Charges {
		c := &b.Charges[i]
		cm := chargeModel{
			BookingID:   b.ID,
			Position:    i,
			Description: c.Description,
			Amount:      c.Amount,
			CreatedAt:   c.CreatedAt,
		}
		if err := tx.Create(&cm).Error; err != nil {
			return err
		}
		c.ID = cm.ID
		c.BookingID = b.ID
	}
	return nil
}

func (r *BookingRepository) loadLines(ctx context.Context, bookingID int64) ([]paymentModel, []chargeModel, error) {
	var payments []paymentModel
	if err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("position").
		Find(&payments).Error; err != nil {
		return nil, nil, err
	}
	var charges []chargeModel
	if err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("position").
		Find(&charges).Error; err != nil {
		return nil, nil, err
	}
	return payments, charges, nil
}

// FirstByGuestRoom takes the first booking registered for the pair.
// A guest holding two bookings for the same room cannot be addressed
// unambiguously; the desk flow accepts that.
func (r *BookingRepository) FirstByGuestRoom(ctx context.Context, document string, roomNumber int) (*domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).
		Where("guest_document = ? AND room_number = ?", document, roomNumber).
		Order("id").
		Limit(1).
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if len(ms) == 0 {
		return nil, nil
	}
	return r.hydrate(ctx, ms[0])
}

func (r *BookingRepository) hydrate(ctx context.Context, m bookingModel) (*domain.Booking, error) {
	payments, charges, err := r.loadLines(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	return toDomainBooking(m, payments, charges), nil
}

func (r *BookingRepository) hydrateAll(ctx context.Context, ms []bookingModel) ([]domain.Booking, error) {
	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		b, err := r.hydrate(ctx, m)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	return out, nil
}

func (r *BookingRepository) ListByRoom(ctx context.Context, roomNumber int) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).
		Where("room_number = ?", roomNumber).
		Order("id").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return r.hydrateAll(ctx, ms)
}

func (r *BookingRepository) ListByGuest(ctx context.Context, document string) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).
		Where("guest_document = ?", document).
		Order("id").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return r.hydrateAll(ctx, ms)
}

func (r *BookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).Order("id").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return r.hydrateAll(ctx, ms)
}

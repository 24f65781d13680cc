package repository

import (
	"context"
	"testing"
	"time"

	"hotelreserve/internal/database"
	"hotelreserve/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	return db
}

func newBooking(t *testing.T, document string, roomNumber int) *domain.Booking {
	t.Helper()
	start := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	b, err := domain.NewBooking(document, roomNumber, start, start.AddDate(0, 0, 3), 2, 2)
	require.NoError(t, err)
	return b
}

func TestBookingRepository_RoundTrip(t *testing.T) {
	db := testDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	b := newBooking(t, "12345", 101)
	p1, err := domain.NewPayment(100.0, domain.PaymentPix, time.Date(2025, 11, 1, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	p2, err := domain.NewPayment(50.0, domain.PaymentCash, time.Date(2025, 11, 2, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	b.AddPayment(p1)
	b.AddPayment(p2)
	c1, err := domain.NewCharge("minibar", 30.0)
	require.NoError(t, err)
	c2, err := domain.NewCharge("laundry", 20.0)
	require.NoError(t, err)
	b.AddCharge(c1)
	b.AddCharge(c2)

	require.NoError(t, repo.Create(ctx, b))
	require.NotZero(t, b.ID)

	got, err := repo.FirstByGuestRoom(ctx, "12345", 101)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, b.ID, got.ID)
	assert.Equal(t, "12345", got.GuestDocument)
	assert.Equal(t, 101, got.RoomNumber)
	assert.Equal(t, domain.BookingPending, got.Status)
	assert.True(t, got.CheckInDate.Equal(b.CheckInDate))
	assert.True(t, got.CheckOutDate.Equal(b.CheckOutDate))

	// line order survives the round trip
	require.Len(t, got.Payments, 2)
	assert.Equal(t, domain.PaymentPix, got.Payments[0].Method)
	assert.Equal(t, domain.PaymentCash, got.Payments[1].Method)
	require.Len(t, got.Charges, 2)
	assert.Equal(t, "minibar", got.Charges[0].Description)
	assert.Equal(t, "laundry", got.Charges[1].Description)
}

func TestBookingRepository_SaveRewritesLines(t *testing.T) {
	db := testDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	b := newBooking(t, "12345", 101)
	require.NoError(t, repo.Create(ctx, b))

	require.NoError(t, b.Confirm())
	ch, err := domain.NewCharge("room service", 45.0)
	require.NoError(t, err)
	b.AddCharge(ch)
	require.NoError(t, repo.Save(ctx, b))

	got, err := repo.FirstByGuestRoom(ctx, "12345", 101)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.BookingConfirmed, got.Status)
	require.Len(t, got.Charges, 1)
	assert.Equal(t, "room service", got.Charges[0].Description)

	// saving again must not duplicate lines
	require.NoError(t, repo.Save(ctx, b))
	got, err = repo.FirstByGuestRoom(ctx, "12345", 101)
	require.NoError(t, err)
	assert.Len(t, got.Charges, 1)
}

func TestBookingRepository_FirstByGuestRoom_PicksOldest(t *testing.T) {
	db := testDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	first := newBooking(t, "12345", 101)
	require.NoError(t, repo.Create(ctx, first))

	start := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	second, err := domain.NewBooking("12345", 101, start, start.AddDate(0, 0, 2), 1, 2)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, second))

	got, err := repo.FirstByGuestRoom(ctx, "12345", 101)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
}

func TestBookingRepository_NotFoundIsNil(t *testing.T) {
	db := testDB(t)
	repo := NewBookingRepository(db)

	got, err := repo.FirstByGuestRoom(context.Background(), "ghost", 999)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRoomRepository_Counts(t *testing.T) {
	db := testDB(t)
	repo := NewRoomRepository(db)
	ctx := context.Background()

	for _, n := range []int{101, 102, 103} {
		room, err := domain.NewRoom(n, domain.RoomStandard, 2, 100.0)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, room))
	}
	require.NoError(t, repo.UpdateStatus(ctx, 102, domain.RoomOccupied))

	total, err := repo.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	occupied, err := repo.CountByStatus(ctx, domain.RoomOccupied)
	require.NoError(t, err)
	assert.Equal(t, int64(1), occupied)
}

func TestGuestRepository_RoundTrip(t *testing.T) {
	db := testDB(t)
	repo := NewGuestRepository(db)
	ctx := context.Background()

	g, err := domain.NewGuest("Ana Souza", "12345", "ana@example.com", "+55 11 99999-0000")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, g))

	got, err := repo.GetByDocument(ctx, "12345")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Ana Souza", got.Name)

	missing, err := repo.GetByDocument(ctx, "99999")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

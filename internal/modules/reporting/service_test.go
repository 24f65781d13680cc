package reporting

import (
	"context"
	"testing"
	"time"

	"hotelreserve/internal/config"
	"hotelreserve/internal/domain"
	"hotelreserve/internal/modules/billing"
	"hotelreserve/internal/modules/tariff"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) GetByNumber(ctx context.Context, number int) (*domain.Room, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRoomRepository) CountByStatus(ctx context.Context, status domain.RoomStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func testEngine() *billing.Engine {
	cfg := &config.Config{
		CheckInHour:       14,
		NoShowTolerance:   2 * time.Hour,
		ServiceTaxRate:    0.10,
		WeekendMultiplier: 1.0,
		Cancellation: config.CancellationPolicy{
			StandardPenalty: 0.20,
			NoShowPenalty:   1.0,
			FreeCancelHours: 24,
		},
	}
	return billing.NewEngine(tariff.NewCalculator(cfg), cfg)
}

func booking(t *testing.T, roomNumber, nights int, status domain.BookingStatus) domain.Booking {
	t.Helper()
	start := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	b, err := domain.NewBooking("doc-1", roomNumber, start, start.AddDate(0, 0, nights), 1, 2)
	require.NoError(t, err)
	b.Status = status
	return *b
}

func TestService_Occupancy(t *testing.T) {
	mockRooms := new(MockRoomRepository)
	mockRooms.On("CountAll", mock.Anything).Return(int64(4), nil)
	mockRooms.On("CountByStatus", mock.Anything, domain.RoomOccupied).Return(int64(1), nil)

	service := NewService(mockRooms, new(MockBookingRepository), testEngine())

	report, err := service.Occupancy(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), report.TotalRooms)
	assert.Equal(t, int64(1), report.OccupiedRooms)
	assert.Equal(t, 25.0, report.OccupancyRate)
}

func TestService_Occupancy_EmptyHotel(t *testing.T) {
	mockRooms := new(MockRoomRepository)
	mockRooms.On("CountAll", mock.Anything).Return(int64(0), nil)
	mockRooms.On("CountByStatus", mock.Anything, domain.RoomOccupied).Return(int64(0), nil)

	service := NewService(mockRooms, new(MockBookingRepository), testEngine())

	report, err := service.Occupancy(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.0, report.OccupancyRate)
}

func TestService_Financial(t *testing.T) {
	mockRooms := new(MockRoomRepository)
	mockBookings := new(MockBookingRepository)

	room, err := domain.NewRoom(101, domain.RoomStandard, 2, 100.0)
	require.NoError(t, err)

	// one checked-out stay of 1 night (110.00 with tax), one cancelled,
	// one still pending. Only the first bears revenue.
	mockBookings.On("List", mock.Anything).Return([]domain.Booking{
		booking(t, 101, 1, domain.BookingCheckedOut),
		booking(t, 101, 3, domain.BookingCancelled),
		booking(t, 101, 2, domain.BookingPending),
	}, nil)
	mockRooms.On("CountAll", mock.Anything).Return(int64(2), nil)
	mockRooms.On("GetByNumber", mock.Anything, 101).Return(room, nil)

	service := NewService(mockRooms, mockBookings, testEngine())

	report, err := service.Financial(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, report.TotalBookings)
	assert.Equal(t, 1, report.RevenueBookings)
	assert.Equal(t, 1, report.CancelledBookings)
	assert.Equal(t, 110.0, report.TotalRevenue)
	assert.Equal(t, 110.0, report.AverageDailyRate)
	assert.Equal(t, 55.0, report.RevPAR)
	assert.InDelta(t, 33.33, report.CancellationRate, 0.01)
}

func TestService_Financial_NoBookings(t *testing.T) {
	mockRooms := new(MockRoomRepository)
	mockBookings := new(MockBookingRepository)

	mockBookings.On("List", mock.Anything).Return([]domain.Booking{}, nil)
	mockRooms.On("CountAll", mock.Anything).Return(int64(2), nil)

	service := NewService(mockRooms, mockBookings, testEngine())

	report, err := service.Financial(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.0, report.TotalRevenue)
	assert.Equal(t, 0.0, report.AverageDailyRate)
	assert.Equal(t, 0.0, report.RevPAR)
	assert.Equal(t, 0.0, report.CancellationRate)
}

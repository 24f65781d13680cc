package reporting

import (
	"context"
	"math"

	"hotelreserve/internal/domain"
	"hotelreserve/internal/modules/billing"
)

type Service struct {
	rooms    RoomRepository
	bookings BookingRepository
	billing  *billing.Engine
}

func NewService(rooms RoomRepository, bookings BookingRepository, engine *billing.Engine) *Service {
	return &Service{rooms: rooms, bookings: bookings, billing: engine}
}

// Occupancy reports the share of rooms currently in occupied status. An
// empty hotel yields 0, not a division error.
func (s *Service) Occupancy(ctx context.Context) (*OccupancyReport, error) {
	total, err := s.rooms.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	occupied, err := s.rooms.CountByStatus(ctx, domain.RoomOccupied)
	if err != nil {
		return nil, err
	}

	rate := 0.0
	if total > 0 {
		rate = round2(float64(occupied) / float64(total) * 100)
	}
	return &OccupancyReport{
		TotalRooms:    total,
		OccupiedRooms: occupied,
		OccupancyRate: rate,
	}, nil
}

// Financial computes revenue over the revenue-bearing bookings, the
// average daily rate per such booking, revenue per available room, and
// the cancellation rate over all bookings ever taken.
func (s *Service) Financial(ctx context.Context) (*FinancialReport, error) {
	rows, err := s.bookings.List(ctx)
	if err != nil {
		return nil, err
	}
	totalRooms, err := s.rooms.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	report := &FinancialReport{TotalBookings: len(rows)}
	roomCache := map[int]*domain.Room{}

	for i := range rows {
		b := &rows[i]
		if b.Status == domain.BookingCancelled {
			report.CancelledBookings++
		}
		if !b.RevenueBearing() {
			continue
		}

		room, ok := roomCache[b.RoomNumber]
		if !ok {
			room, err = s.rooms.GetByNumber(ctx, b.RoomNumber)
			if err != nil {
				return nil, err
			}
			if room == nil {
				// booking referencing a deleted room: skip rather than fail the report
				continue
			}
			roomCache[b.RoomNumber] = room
		}

		report.RevenueBookings++
		report.TotalRevenue += s.billing.TotalDue(b, room)
	}

	report.TotalRevenue = round2(report.TotalRevenue)
	if report.RevenueBookings > 0 {
		report.AverageDailyRate = round2(report.TotalRevenue / float64(report.RevenueBookings))
	}
	if totalRooms > 0 {
		report.RevPAR = round2(report.TotalRevenue / float64(totalRooms))
	}
	if report.TotalBookings > 0 {
		report.CancellationRate = round2(float64(report.CancelledBookings) / float64(report.TotalBookings) * 100)
	}
	return report, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

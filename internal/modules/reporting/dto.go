package reporting

type OccupancyReport struct {
	TotalRooms    int64   `json:"total_rooms"`
	OccupiedRooms int64   `json:"occupied_rooms"`
	OccupancyRate float64 `json:"occupancy_rate"`
}

// FinancialReport aggregates revenue-bearing bookings only: confirmed,
// checked-in and checked-out stays count; pending, cancelled and
// no-show do not (penalty charges live on excluded bookings on
// purpose).
type FinancialReport struct {
	TotalBookings     int     `json:"total_bookings"`
	RevenueBookings   int     `json:"revenue_bookings"`
	CancelledBookings int     `json:"cancelled_bookings"`
	TotalRevenue      float64 `json:"total_revenue"`
	AverageDailyRate  float64 `json:"average_daily_rate"`
	RevPAR            float64 `json:"revpar"`
	CancellationRate  float64 `json:"cancellation_rate"`
}

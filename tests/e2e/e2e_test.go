package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hotelreserve/internal/config"
	"hotelreserve/internal/database"
	"hotelreserve/internal/domain"
	"hotelreserve/internal/middleware"
	"hotelreserve/internal/modules/auth"
	"hotelreserve/internal/modules/billing"
	"hotelreserve/internal/modules/catalog"
	"hotelreserve/internal/modules/reporting"
	"hotelreserve/internal/modules/reservation"
	"hotelreserve/internal/modules/tariff"
	jwtsvc "hotelreserve/internal/pkg/jwt"
	"hotelreserve/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type E2ETestSuite struct {
	router *gin.Engine
	token  string
}

type TestResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *ErrorDetail           `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// fixed pricing so folio amounts in the assertions are exact:
// nightly = 100, no weekend or season uplift, 10% service tax
func testConfig() *config.Config {
	return &config.Config{
		HotelName:         "Test Hotel",
		CheckInHour:       14,
		CheckOutHour:      12,
		NoShowTolerance:   2 * time.Hour,
		ServiceTaxRate:    0.10,
		WeekendMultiplier: 1.0,
		Cancellation: config.CancellationPolicy{
			StandardPenalty: 0.20,
			NoShowPenalty:   1.0,
			FreeCancelHours: 24,
		},
	}
}

func setupTestSuite(t *testing.T) *E2ETestSuite {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, repository.AutoMigrate(db))

	roomRepo := repository.NewRoomRepository(db)
	guestRepo := repository.NewGuestRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	staffRepo := repository.NewStaffRepository(db)

	jwtService := jwtsvc.New("test_secret_key_32_characters_min", 24*time.Hour)

	cfg := testConfig()
	engine := billing.NewEngine(tariff.NewCalculator(cfg), cfg)

	authService := auth.NewService(staffRepo, jwtService)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(roomRepo, guestRepo, bookingRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	reservationService := reservation.NewService(bookingRepo, roomRepo, guestRepo, engine, nil)
	reservationHandler := reservation.NewHandler(reservationService)

	reportingService := reporting.NewService(roomRepo, bookingRepo, engine)
	reportingHandler := reporting.NewHandler(reportingService)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())

	v1 := r.Group("/api/v1")
	authHandler.RegisterRoutes(v1)

	protected := v1.Group("/")
	protected.Use(middleware.JWTAuth(jwtService))
	{
		catalogHandler.RegisterRoutes(protected)
		reservationHandler.RegisterRoutes(protected)
		reportingHandler.RegisterRoutes(protected)
	}

	// seed one receptionist and log in through the API
	hash, err := bcrypt.GenerateFromPassword([]byte("front-desk-pw"), bcrypt.MinCost)
	require.NoError(t, err)
	acct, err := domain.NewStaff("desk", string(hash), domain.StaffRoleReceptionist)
	require.NoError(t, err)
	require.NoError(t, staffRepo.Create(context.Background(), acct))

	suite := &E2ETestSuite{router: r}
	res := suite.request(t, "POST", "/api/v1/auth/login", map[string]any{
		"username": "desk",
		"password": "front-desk-pw",
	})
	require.True(t, res.body.Success)
	suite.token = res.body.Data["token"].(string)
	return suite
}

type apiResult struct {
	code int
	body TestResponse
}

func (s *E2ETestSuite) request(t *testing.T, method, path string, payload any) apiResult {
	t.Helper()

	var reader *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var body TestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "body: %s", w.Body.String())
	return apiResult{code: w.Code, body: body}
}

func (s *E2ETestSuite) registerRoomAndGuest(t *testing.T) {
	t.Helper()
	res := s.request(t, "POST", "/api/v1/rooms", map[string]any{
		"number": 101, "category": "standard", "capacity": 2, "base_rate": 100.0,
	})
	require.Equal(t, http.StatusCreated, res.code)

	res = s.request(t, "POST", "/api/v1/guests", map[string]any{
		"name": "Ana Souza", "document": "12345", "email": "ana@example.com",
	})
	require.Equal(t, http.StatusCreated, res.code)
}

func TestFullStayLifecycle(t *testing.T) {
	suite := setupTestSuite(t)
	suite.registerRoomAndGuest(t)

	today := time.Now().UTC().Format("2006-01-02")
	checkout := time.Now().UTC().AddDate(0, 0, 2).Format("2006-01-02")

	res := suite.request(t, "POST", "/api/v1/bookings", map[string]any{
		"guest_document": "12345",
		"room_number":    101,
		"check_in":       today,
		"check_out":      checkout,
		"party_size":     2,
	})
	require.Equal(t, http.StatusCreated, res.code)

	cmd := map[string]any{"guest_document": "12345", "room_number": 101}

	res = suite.request(t, "POST", "/api/v1/bookings/confirm", cmd)
	require.Equal(t, http.StatusOK, res.code)

	res = suite.request(t, "POST", "/api/v1/bookings/checkin", cmd)
	require.Equal(t, http.StatusOK, res.code)

	// checkout refused while the folio is open: 2 nights * 100 * 1.10 = 220
	res = suite.request(t, "POST", "/api/v1/bookings/checkout", cmd)
	assert.Equal(t, http.StatusUnprocessableEntity, res.code)
	assert.Equal(t, "OUTSTANDING_BALANCE", res.body.Error.Code)

	res = suite.request(t, "POST", "/api/v1/bookings/payments", map[string]any{
		"guest_document": "12345", "room_number": 101, "amount": 220.0, "method": "pix",
	})
	require.Equal(t, http.StatusCreated, res.code)

	res = suite.request(t, "POST", "/api/v1/bookings/checkout", cmd)
	require.Equal(t, http.StatusOK, res.code)
	booking := res.body.Data["booking"].(map[string]any)
	assert.Equal(t, "checked_out", booking["status"])

	// the room is back in the available pool
	res = suite.request(t, "GET", "/api/v1/reports/occupancy", nil)
	require.Equal(t, http.StatusOK, res.code)
	report := res.body.Data["report"].(map[string]any)
	assert.Equal(t, 0.0, report["occupancy_rate"])
}

func TestDoubleBookingRejected(t *testing.T) {
	suite := setupTestSuite(t)
	suite.registerRoomAndGuest(t)

	res := suite.request(t, "POST", "/api/v1/guests", map[string]any{
		"name": "Bruno Lima", "document": "67890",
	})
	require.Equal(t, http.StatusCreated, res.code)

	create := func(document, in, out string) apiResult {
		return suite.request(t, "POST", "/api/v1/bookings", map[string]any{
			"guest_document": document,
			"room_number":    101,
			"check_in":       in,
			"check_out":      out,
			"party_size":     1,
		})
	}

	res = create("12345", "2026-03-10", "2026-03-14")
	require.Equal(t, http.StatusCreated, res.code)

	// overlapping stay for the same room
	res = create("67890", "2026-03-12", "2026-03-16")
	assert.Equal(t, http.StatusConflict, res.code)
	assert.Equal(t, "ROOM_UNAVAILABLE", res.body.Error.Code)

	// back-to-back is fine: previous stay ends on the 14th
	res = create("67890", "2026-03-14", "2026-03-16")
	assert.Equal(t, http.StatusCreated, res.code)
}

func TestLateCancellationCharged(t *testing.T) {
	suite := setupTestSuite(t)
	suite.registerRoomAndGuest(t)

	// check-in today: always inside the 24h free-cancel threshold
	in := time.Now().UTC().Format("2006-01-02")
	out := time.Now().UTC().AddDate(0, 0, 2).Format("2006-01-02")

	res := suite.request(t, "POST", "/api/v1/bookings", map[string]any{
		"guest_document": "12345",
		"room_number":    101,
		"check_in":       in,
		"check_out":      out,
		"party_size":     1,
	})
	require.Equal(t, http.StatusCreated, res.code)

	res = suite.request(t, "POST", "/api/v1/bookings/cancel", map[string]any{
		"guest_document": "12345", "room_number": 101,
	})
	require.Equal(t, http.StatusOK, res.code)

	booking := res.body.Data["booking"].(map[string]any)
	assert.Equal(t, "cancelled", booking["status"])
	charges := booking["charges"].([]any)
	require.Len(t, charges, 1)
	penalty := charges[0].(map[string]any)
	assert.Equal(t, 44.0, penalty["amount"]) // 220 * 0.20
}

func TestRequestsWithoutTokenRejected(t *testing.T) {
	suite := setupTestSuite(t)
	suite.token = ""

	res := suite.request(t, "GET", "/api/v1/bookings", nil)
	assert.Equal(t, http.StatusUnauthorized, res.code)
}

func TestGuestHistory(t *testing.T) {
	suite := setupTestSuite(t)
	suite.registerRoomAndGuest(t)

	for i := 0; i < 2; i++ {
		in := fmt.Sprintf("2026-0%d-01", 4+i)
		out := fmt.Sprintf("2026-0%d-03", 4+i)
		res := suite.request(t, "POST", "/api/v1/bookings", map[string]any{
			"guest_document": "12345",
			"room_number":    101,
			"check_in":       in,
			"check_out":      out,
			"party_size":     1,
		})
		require.Equal(t, http.StatusCreated, res.code)
	}

	res := suite.request(t, "GET", "/api/v1/guests/12345/bookings", nil)
	require.Equal(t, http.StatusOK, res.code)
	bookings := res.body.Data["bookings"].([]any)
	assert.Len(t, bookings, 2)

	res = suite.request(t, "GET", "/api/v1/guests/ghost/bookings", nil)
	assert.Equal(t, http.StatusNotFound, res.code)
}

package reservation

import (
	"errors"
	"net/http"
	"strconv"

	"hotelreserve/internal/domain"
	"hotelreserve/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/bookings", h.ListBookings)
	rg.GET("/bookings/invoice", h.Invoice)
	rg.GET("/guests/:document/bookings", h.GuestHistory)

	rg.POST("/bookings/confirm", h.Confirm)
	rg.POST("/bookings/checkin", h.CheckIn)
	rg.POST("/bookings/checkout", h.CheckOut)
	rg.POST("/bookings/cancel", h.Cancel)
	rg.POST("/bookings/no-show", h.MarkNoShow)

	rg.POST("/bookings/payments", h.RecordPayment)
	rg.POST("/bookings/charges", h.RecordCharge)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err, "Failed to create booking")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) Confirm(c *gin.Context) {
	h.command(c, func(req CommandRequest) (*domain.Booking, error) {
		return h.service.Confirm(c.Request.Context(), req.GuestDocument, req.RoomNumber)
	})
}

func (h *Handler) CheckIn(c *gin.Context) {
	h.command(c, func(req CommandRequest) (*domain.Booking, error) {
		return h.service.CheckIn(c.Request.Context(), req.GuestDocument, req.RoomNumber)
	})
}

func (h *Handler) CheckOut(c *gin.Context) {
	h.command(c, func(req CommandRequest) (*domain.Booking, error) {
		return h.service.CheckOut(c.Request.Context(), req.GuestDocument, req.RoomNumber)
	})
}

func (h *Handler) Cancel(c *gin.Context) {
	h.command(c, func(req CommandRequest) (*domain.Booking, error) {
		return h.service.Cancel(c.Request.Context(), req.GuestDocument, req.RoomNumber)
	})
}

func (h *Handler) MarkNoShow(c *gin.Context) {
	var req NoShowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.MarkNoShow(c.Request.Context(), req.GuestDocument, req.RoomNumber, req.Force)
	if err != nil {
		h.writeError(c, err, "Failed to mark no-show")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) RecordPayment(c *gin.Context) {
	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.RecordPayment(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err, "Failed to record payment")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) RecordCharge(c *gin.Context) {
	var req ChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.RecordCharge(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err, "Failed to record charge")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) ListBookings(c *gin.Context) {
	rows, err := h.service.ListBookings(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": rows})
}

func (h *Handler) GuestHistory(c *gin.Context) {
	rows, err := h.service.GuestHistory(c.Request.Context(), c.Param("document"))
	if err != nil {
		h.writeError(c, err, "Failed to load guest history")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": rows})
}

func (h *Handler) Invoice(c *gin.Context) {
	document := c.Query("guest_document")
	number, err := strconv.Atoi(c.Query("room_number"))
	if document == "" || err != nil || number <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "guest_document and room_number are required")
		return
	}

	pdf, name, err := h.service.Invoice(c.Request.Context(), document, number)
	if err != nil {
		h.writeError(c, err, "Failed to build invoice")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (h *Handler) command(c *gin.Context, op func(req CommandRequest) (*domain.Booking, error)) {
	var req CommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := op(req)
	if err != nil {
		h.writeError(c, err, "Booking command failed")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input")
	case errors.Is(err, ErrGuestNotFound):
		response.Error(c, http.StatusNotFound, "GUEST_NOT_FOUND", "Guest not found")
	case errors.Is(err, ErrRoomNotFound):
		response.Error(c, http.StatusNotFound, "ROOM_NOT_FOUND", "Room not found")
	case errors.Is(err, ErrBookingNotFound):
		response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", "Booking not found for this guest/room")
	case errors.Is(err, ErrRoomUnavailable):
		response.Error(c, http.StatusConflict, "ROOM_UNAVAILABLE", "Room is not available for the selected dates")
	case errors.Is(err, ErrCapacityExceeded):
		response.Error(c, http.StatusConflict, "CAPACITY_EXCEEDED", "Party size exceeds room capacity")
	case errors.Is(err, ErrOutstandingBalance):
		response.Error(c, http.StatusUnprocessableEntity, "OUTSTANDING_BALANCE", "Booking has an outstanding balance")
	case errors.Is(err, ErrNoShowTooEarly):
		response.Error(c, http.StatusUnprocessableEntity, "NOSHOW_TOO_EARLY", "No-show tolerance window has not elapsed; repeat with force to proceed")
	case errors.Is(err, domain.ErrNotWithinStay):
		response.Error(c, http.StatusUnprocessableEntity, "OUTSIDE_STAY_WINDOW", "Today is outside the booked stay window")
	case errors.Is(err, domain.ErrInvalidTransition):
		response.Error(c, http.StatusUnprocessableEntity, "INVALID_TRANSITION", "Operation not allowed in the booking's current status")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}

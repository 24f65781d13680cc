package catalog

import (
	"context"
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
	rg.POST("/rooms", h.RegisterRoom)
	rg.GET("/rooms", h.ListRooms)
	rg.POST("/rooms/:number/maintenance", h.BlockRoom)
	rg.POST("/rooms/:number/release", h.ReleaseRoom)
	rg.POST("/guests", h.RegisterGuest)
	rg.GET("/guests", h.ListGuests)
}

func (h *Handler) RegisterRoom(c *gin.Context) {
	var req RegisterRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	room, err := h.service.RegisterRoom(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid room attributes")
		case errors.Is(err, ErrDuplicateRoom):
			response.Error(c, http.StatusConflict, "DUPLICATE_ROOM", "Room number already registered")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to register room")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"room": room})
}

func (h *Handler) RegisterGuest(c *gin.Context) {
	var req RegisterGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	guest, err := h.service.RegisterGuest(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid guest attributes")
		case errors.Is(err, ErrDuplicateGuest):
			response.Error(c, http.StatusConflict, "DUPLICATE_GUEST", "Guest document already registered")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to register guest")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"guest": guest})
}

func (h *Handler) ListRooms(c *gin.Context) {
	rooms, err := h.service.ListRooms(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list rooms")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rooms": rooms})
}

func (h *Handler) ListGuests(c *gin.Context) {
	guests, err := h.service.ListGuests(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list guests")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"guests": guests})
}

func (h *Handler) BlockRoom(c *gin.Context) {
	h.setRoomStatus(c, h.service.BlockRoom)
}

func (h *Handler) ReleaseRoom(c *gin.Context) {
	h.setRoomStatus(c, h.service.ReleaseRoom)
}

func (h *Handler) setRoomStatus(c *gin.Context, op func(ctx context.Context, number int) (*domain.Room, error)) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil || number <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid room number")
		return
	}

	room, err := op(c.Request.Context(), number)
	if err != nil {
		switch {
		case errors.Is(err, ErrRoomNotFound):
			response.Error(c, http.StatusNotFound, "ROOM_NOT_FOUND", "Room not found")
		case errors.Is(err, ErrRoomInUse):
			response.Error(c, http.StatusConflict, "ROOM_IN_USE", "Room has a guest checked in")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update room status")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"room": room})
}

package reporting

import (
	"net/http"

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
	rg.GET("/reports/occupancy", h.Occupancy)
	rg.GET("/reports/financial", h.Financial)
}

func (h *Handler) Occupancy(c *gin.Context) {
	report, err := h.service.Occupancy(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build occupancy report")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"report": report})
}

func (h *Handler) Financial(c *gin.Context) {
	report, err := h.service.Financial(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build financial report")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"report": report})
}

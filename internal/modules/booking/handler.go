package booking

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"photosite/internal/pkg/response"
	"photosite/internal/provider/zoom"
	"photosite/internal/schedule"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/slots", h.GetSlots)
	rg.POST("/bookings", h.AdmitBooking)
}

// GetSlots returns the slot grid for ?date=YYYY-MM-DD with availability.
func (h *Handler) GetSlots(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		response.Error(c, http.StatusBadRequest, "MISSING_DATE", "date query parameter is required")
		return
	}

	slots, err := h.service.GetSlots(c.Request.Context(), dateStr)
	if err != nil {
		if errors.Is(err, ErrInvalidTime) {
			response.Error(c, http.StatusBadRequest, "INVALID_DATE", "date must be formatted YYYY-MM-DD")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to resolve availability")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"date":            dateStr,
		"slots":           slots,
		"available_count": schedule.CountAvailable(slots),
	})
}

func (h *Handler) AdmitBooking(c *gin.Context) {
	var req AdmitBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.service.AdmitBooking(c.Request.Context(), req)
	if err != nil {
		WriteAdmissionError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, result)
}

// WriteAdmissionError maps admission failures onto the response envelope.
// The admin create-booking handler shares it so both surfaces return the
// same codes.
func WriteAdmissionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrMissingFields):
		response.Error(c, http.StatusBadRequest, "MISSING_FIELDS", err.Error())
	case errors.Is(err, ErrInvalidEmail):
		response.Error(c, http.StatusBadRequest, "INVALID_EMAIL", err.Error())
	case errors.Is(err, ErrInvalidTime):
		response.Error(c, http.StatusBadRequest, "INVALID_TIME", err.Error())
	case errors.Is(err, ErrPastTime):
		response.Error(c, http.StatusBadRequest, "PAST_TIME", err.Error())
	case errors.Is(err, ErrInvalidDay):
		response.Error(c, http.StatusBadRequest, "INVALID_DAY", err.Error())
	case errors.Is(err, ErrOutsideHours):
		response.Error(c, http.StatusBadRequest, "OUTSIDE_HOURS", err.Error())
	case errors.Is(err, ErrOffGrid):
		response.Error(c, http.StatusBadRequest, "OFF_GRID", err.Error())
	case errors.Is(err, ErrSlotTaken):
		response.Error(c, http.StatusConflict, "SLOT_TAKEN", "The slot is no longer available, please pick another time")
	case errors.Is(err, zoom.ErrNotConfigured):
		response.Error(c, http.StatusInternalServerError, "MEETING_PROVIDER_UNCONFIGURED", "Video meeting provider is not configured")
	case errors.Is(err, zoom.ErrUnavailable):
		response.Error(c, http.StatusBadGateway, "MEETING_PROVIDER_ERROR", "Video meeting provider is unavailable, please try again")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create booking")
	}
}

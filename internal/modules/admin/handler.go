package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"photosite/internal/domain"
	"photosite/internal/modules/admin/feed"
	"photosite/internal/modules/booking"
	"photosite/internal/modules/consultation"
	"photosite/internal/pkg/response"
)

// Handler serves the admin surface: login, booking management,
// availability windows, the dashboard summary and the live event feed.
// Admin-created bookings funnel through the same admission path as the
// public form, so the slot rules cannot be bypassed.
type Handler struct {
	auth          *AuthService
	windows       *WindowService
	bookings      *booking.Service
	consultations *consultation.Service
	hub           *feed.Hub
	log           *zap.Logger
}

func NewHandler(
	auth *AuthService,
	windows *WindowService,
	bookings *booking.Service,
	consultations *consultation.Service,
	hub *feed.Hub,
	log *zap.Logger,
) *Handler {
	return &Handler{
		auth:          auth,
		windows:       windows,
		bookings:      bookings,
		consultations: consultations,
		hub:           hub,
		log:           log,
	}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/login", h.Login)
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.Dashboard)
	rg.GET("/bookings", h.ListBookings)
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/windows", h.ListWindows)
	rg.POST("/windows", h.CreateWindow)
	rg.DELETE("/windows/:id", h.DeleteWindow)
	rg.GET("/feed", h.Feed)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	token, user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrBadCredentials) {
			response.Error(c, http.StatusUnauthorized, "BAD_CREDENTIALS", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Login failed")
		return
	}

	response.Success(c, http.StatusOK, LoginResponse{Token: token, Admin: user})
}

// Dashboard returns the counters the admin landing page shows.
func (h *Handler) Dashboard(c *gin.Context) {
	upcoming, err := h.bookings.ListBookings(c.Request.Context(), true)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load dashboard")
		return
	}

	requests, err := h.consultations.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load dashboard")
		return
	}
	pending := 0
	for _, r := range requests {
		if r.Status == domain.ConsultationPending {
			pending++
		}
	}

	response.Success(c, http.StatusOK, DashboardSummary{
		UpcomingBookings:     len(upcoming),
		PendingConsultations: pending,
	})
}

// ListBookings supports ?date=YYYY-MM-DD for a single day and
// ?future=true for the upcoming list; default is everything.
func (h *Handler) ListBookings(c *gin.Context) {
	ctx := c.Request.Context()

	if dateStr := c.Query("date"); dateStr != "" {
		bookings, err := h.bookings.ListBookingsForDate(ctx, dateStr)
		if err != nil {
			if errors.Is(err, booking.ErrInvalidTime) {
				response.Error(c, http.StatusBadRequest, "INVALID_DATE", "date must be formatted YYYY-MM-DD")
				return
			}
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list bookings")
			return
		}
		response.Success(c, http.StatusOK, bookings)
		return
	}

	futureOnly := c.Query("future") == "true"
	bookings, err := h.bookings.ListBookings(ctx, futureOnly)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list bookings")
		return
	}
	response.Success(c, http.StatusOK, bookings)
}

// CreateBooking lets an admin book on a client's behalf. It reuses the
// public admission flow end to end, external effects included.
func (h *Handler) CreateBooking(c *gin.Context) {
	var req booking.AdmitBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.bookings.AdmitBooking(c.Request.Context(), req)
	if err != nil {
		booking.WriteAdmissionError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, result)
}

func (h *Handler) ListWindows(c *gin.Context) {
	windows, err := h.windows.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list windows")
		return
	}
	response.Success(c, http.StatusOK, windows)
}

func (h *Handler) CreateWindow(c *gin.Context) {
	var req CreateWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	w, err := h.windows.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrWindowInvalid), errors.Is(err, ErrWindowWeekdays):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create window")
		}
		return
	}

	response.Success(c, http.StatusCreated, w)
}

func (h *Handler) DeleteWindow(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid window ID")
		return
	}

	if err := h.windows.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrWindowNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete window")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

// Feed upgrades to a WebSocket that streams booking and consultation
// events to the dashboard.
func (h *Handler) Feed(c *gin.Context) {
	if err := h.hub.ServeWS(c.Writer, c.Request); err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
	}
}

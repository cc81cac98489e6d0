package consultation

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"photosite/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/consultation-requests", h.Submit)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/consultation-requests", h.List)
	rg.GET("/consultation-requests/:id", h.Get)
	rg.PATCH("/consultation-requests/:id", h.SetStatus)
}

func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	cr, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			response.Error(c, http.StatusBadRequest, "MISSING_FIELDS", err.Error())
		case errors.Is(err, ErrInvalidEmail):
			response.Error(c, http.StatusBadRequest, "INVALID_EMAIL", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to submit consultation request")
		}
		return
	}

	response.Success(c, http.StatusCreated, cr)
}

func (h *Handler) List(c *gin.Context) {
	requests, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list consultation requests")
		return
	}
	response.Success(c, http.StatusOK, requests)
}

func (h *Handler) Get(c *gin.Context) {
	cr, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load consultation request")
		return
	}
	response.Success(c, http.StatusOK, cr)
}

func (h *Handler) SetStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	cr, err := h.service.SetStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrBadStatus):
			response.Error(c, http.StatusBadRequest, "INVALID_STATUS", err.Error())
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update consultation request")
		}
		return
	}

	response.Success(c, http.StatusOK, cr)
}

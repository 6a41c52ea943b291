package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fieldtrip/internal/service"
)

// FieldTripHandler handles HTTP requests for the field-trip catalog.
type FieldTripHandler struct {
	fieldTripService *service.FieldTripService
}

// NewFieldTripHandler creates a new FieldTripHandler.
func NewFieldTripHandler(fieldTripService *service.FieldTripService) *FieldTripHandler {
	return &FieldTripHandler{fieldTripService: fieldTripService}
}

// List handles GET /v1/fieldtrips
func (h *FieldTripHandler) List(c *gin.Context) {
	listings, err := h.fieldTripService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	if listings == nil {
		listings = []service.FieldTripListing{}
	}

	respondJSON(c, http.StatusOK, listings)
}

// CreateFieldTripRequest is the HTTP request body for creating a field trip.
type CreateFieldTripRequest struct {
	Location string    `json:"location"`
	Cost     float64   `json:"cost"`
	Date     time.Time `json:"date"`
}

// FieldTripResponse is the HTTP response for a single field trip.
type FieldTripResponse struct {
	ID       string    `json:"id"`
	Location string    `json:"location"`
	Cost     float64   `json:"cost"`
	Date     time.Time `json:"date"`
}

// Create handles POST /v1/fieldtrips
func (h *FieldTripHandler) Create(c *gin.Context) {
	var req CreateFieldTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	trip, err := h.fieldTripService.Create(c.Request.Context(), service.CreateFieldTripRequest{
		Location: req.Location,
		Cost:     req.Cost,
		Date:     req.Date,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, FieldTripResponse{
		ID:       trip.ID,
		Location: trip.Location,
		Cost:     trip.Cost,
		Date:     trip.Date,
	})
}

// Delete handles DELETE /v1/fieldtrips/:id
func (h *FieldTripHandler) Delete(c *gin.Context) {
	if err := h.fieldTripService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

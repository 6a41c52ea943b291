package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fieldtrip/internal/service"
)

// SchoolHandler handles HTTP requests for school administration.
type SchoolHandler struct {
	schoolService *service.SchoolService
}

// NewSchoolHandler creates a new SchoolHandler.
func NewSchoolHandler(schoolService *service.SchoolService) *SchoolHandler {
	return &SchoolHandler{schoolService: schoolService}
}

// CreateSchoolRequest is the HTTP request body for registering a school.
type CreateSchoolRequest struct {
	Name string `json:"name"`
}

// SchoolResponse is the HTTP response for school data.
type SchoolResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Create handles POST /v1/schools
func (h *SchoolHandler) Create(c *gin.Context) {
	var req CreateSchoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	school, err := h.schoolService.Create(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, SchoolResponse{ID: school.ID, Name: school.Name})
}

// GetAll handles GET /v1/schools
func (h *SchoolHandler) GetAll(c *gin.Context) {
	schools, err := h.schoolService.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]SchoolResponse, 0, len(schools))
	for _, school := range schools {
		response = append(response, SchoolResponse{ID: school.ID, Name: school.Name})
	}

	respondJSON(c, http.StatusOK, response)
}

// Delete handles DELETE /v1/schools/:id
func (h *SchoolHandler) Delete(c *gin.Context) {
	if err := h.schoolService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

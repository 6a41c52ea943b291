package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fieldtrip/internal/repository"
	"fieldtrip/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	var gatewayErr *service.GatewayError

	switch {
	// Gateway validation failures and declines - Bad Request, the
	// caller can fix and retry.
	case errors.As(err, &gatewayErr):
		return http.StatusBadRequest

	// Validation errors - Bad Request
	case errors.Is(err, service.ErrMissingField),
		errors.Is(err, service.ErrInvalidCardNumber),
		errors.Is(err, service.ErrInvalidCVV),
		errors.Is(err, service.ErrInvalidExpiryDate),
		errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrInvalidFieldTrip),
		errors.Is(err, service.ErrInvalidSchool):
		return http.StatusBadRequest

	// Unresolvable references in a payment submission are a client
	// problem, not a missing resource.
	case errors.Is(err, service.ErrSchoolNotFound),
		errors.Is(err, service.ErrFieldTripNotFound):
		return http.StatusBadRequest

	// Not found errors
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound

	// Referential protection blocks the delete.
	case errors.Is(err, repository.ErrProtected):
		return http.StatusConflict

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}

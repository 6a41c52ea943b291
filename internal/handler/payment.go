package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fieldtrip/internal/service"
)

// PaymentHandler handles HTTP requests for field-trip payments.
type PaymentHandler struct {
	paymentService *service.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// PaymentRequest is the HTTP request body for a payment submission.
type PaymentRequest struct {
	StudentFirstName string `json:"student_first_name"`
	StudentLastName  string `json:"student_last_name"`
	ParentFirstName  string `json:"parent_first_name"`
	ParentLastName   string `json:"parent_last_name"`
	FieldTripID      string `json:"field_trip_id"`
	CardNumber       string `json:"card_number"`
	ExpiryDate       string `json:"expiry_date"`
	CVV              string `json:"cvv"`
	Email            string `json:"email"`
	SchoolID         string `json:"school_id"`
}

// PaymentResponse is the HTTP response for a successful payment.
type PaymentResponse struct {
	TransactionID string    `json:"transaction_id"`
	Amount        float64   `json:"amount"`
	Date          time.Time `json:"date"`
	StudentID     string    `json:"student_id"`
	FieldTripID   string    `json:"field_trip_id"`
}

// ProcessPayment handles POST /v1/payments
func (h *PaymentHandler) ProcessPayment(c *gin.Context) {
	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.paymentService.ProcessPayment(c.Request.Context(), service.PaymentRequest{
		StudentFirstName: req.StudentFirstName,
		StudentLastName:  req.StudentLastName,
		ParentFirstName:  req.ParentFirstName,
		ParentLastName:   req.ParentLastName,
		FieldTripID:      req.FieldTripID,
		SchoolID:         req.SchoolID,
		CardNumber:       req.CardNumber,
		ExpiryDate:       req.ExpiryDate,
		CVV:              req.CVV,
		Email:            req.Email,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, PaymentResponse{
		TransactionID: result.Transaction.ID,
		Amount:        result.Transaction.Amount,
		Date:          result.Transaction.Date,
		StudentID:     result.Transaction.StudentID,
		FieldTripID:   result.Transaction.FieldTripID,
	})
}

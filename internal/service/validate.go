package service

import (
	"fmt"
	"regexp"
)

var (
	expiryDatePattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/([0-9]{2})$`)
	emailPattern      = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// PaymentRequest contains the raw fields of a payment submission.
type PaymentRequest struct {
	StudentFirstName string
	StudentLastName  string
	ParentFirstName  string
	ParentLastName   string
	FieldTripID      string
	SchoolID         string
	CardNumber       string
	ExpiryDate       string
	CVV              string
	Email            string
}

// validatePaymentRequest checks the syntax of every submitted field
// before anything touches storage. Card numbers must be exactly 16
// digits with no separators; the gateway is more lenient, and that
// asymmetry is intentional.
func validatePaymentRequest(req PaymentRequest) error {
	required := []struct {
		name  string
		value string
	}{
		{"student_first_name", req.StudentFirstName},
		{"student_last_name", req.StudentLastName},
		{"parent_first_name", req.ParentFirstName},
		{"parent_last_name", req.ParentLastName},
		{"field_trip_id", req.FieldTripID},
		{"school_id", req.SchoolID},
		{"card_number", req.CardNumber},
		{"expiry_date", req.ExpiryDate},
		{"cvv", req.CVV},
		{"email", req.Email},
	}
	for _, field := range required {
		if field.value == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, field.name)
		}
	}

	if len(req.CardNumber) != 16 || !isDigits(req.CardNumber) {
		return ErrInvalidCardNumber
	}

	if len(req.CVV) != 3 || !isDigits(req.CVV) {
		return ErrInvalidCVV
	}

	if !expiryDatePattern.MatchString(req.ExpiryDate) {
		return ErrInvalidExpiryDate
	}

	if !emailPattern.MatchString(req.Email) {
		return ErrInvalidEmail
	}

	return nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

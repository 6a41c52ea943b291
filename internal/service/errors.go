package service

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField is returned when a required payment field is absent.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidCardNumber is returned when the card number is not
	// exactly 16 digits.
	ErrInvalidCardNumber = errors.New("invalid card number")

	// ErrInvalidCVV is returned when the CVV is not exactly 3 digits.
	ErrInvalidCVV = errors.New("invalid CVV")

	// ErrInvalidExpiryDate is returned when the expiry date is not MM/YY.
	ErrInvalidExpiryDate = errors.New("invalid expiry date")

	// ErrInvalidEmail is returned when the email address is malformed.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrSchoolNotFound is returned when the submitted school id does
	// not resolve.
	ErrSchoolNotFound = errors.New("school does not exist")

	// ErrFieldTripNotFound is returned when the submitted field trip id
	// does not resolve.
	ErrFieldTripNotFound = errors.New("field trip does not exist")

	// ErrInvalidFieldTrip is returned when field trip admin input is
	// malformed.
	ErrInvalidFieldTrip = errors.New("invalid field trip")

	// ErrInvalidSchool is returned when school admin input is malformed.
	ErrInvalidSchool = errors.New("invalid school")
)

// GatewayError carries a failure reported by the payment processor,
// either its own validation or a decline. The message is shown to the
// caller as-is.
type GatewayError struct {
	Message string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("payment failed: %s", e.Message)
}

package gateway

import (
	"context"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// processingDelay simulates network and processor latency.
	processingDelay = 1500 * time.Millisecond

	// declineRate is the fraction of otherwise valid charges the
	// simulator declines.
	declineRate = 0.10
)

var expiryDatePattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/([0-9]{2})$`)

// Simulator is a simulated payment processor. It validates the charge
// independently of the caller, waits a fixed delay, and declines a
// fixed fraction of charges at random.
type Simulator struct {
	rand  func() float64
	sleep func(time.Duration)
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithRand overrides the random source used for decline draws.
func WithRand(fn func() float64) Option {
	return func(s *Simulator) { s.rand = fn }
}

// WithSleep overrides the sleep function used for the processing delay.
func WithSleep(fn func(time.Duration)) Option {
	return func(s *Simulator) { s.sleep = fn }
}

// NewSimulator creates a simulated gateway. By default it uses
// math/rand and a real sleep; tests inject both.
func NewSimulator(opts ...Option) *Simulator {
	s := &Simulator{
		rand:  rand.Float64,
		sleep: time.Sleep,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Charge validates the request, simulates processing latency, and
// returns either a fresh TX-prefixed transaction id or a failure
// message. It never touches storage.
func (s *Simulator) Charge(ctx context.Context, req ChargeRequest) ChargeResult {
	if msg := validateCharge(req); msg != "" {
		return failure(msg)
	}

	s.sleep(processingDelay)

	if s.rand() < declineRate {
		return failure("payment declined by issuer")
	}

	return ChargeResult{
		Success:       true,
		TransactionID: "TX-" + uuid.New().String(),
	}
}

// validateCharge runs the processor's own field checks. Returns an
// error message, or "" when the charge is acceptable.
func validateCharge(req ChargeRequest) string {
	required := []struct {
		name  string
		value string
	}{
		{"student_name", req.StudentName},
		{"parent_name", req.ParentName},
		{"card_number", req.CardNumber},
		{"expiry_date", req.ExpiryDate},
		{"cvv", req.CVV},
		{"school_id", req.SchoolID},
		{"activity_id", req.ActivityID},
	}
	for _, field := range required {
		if field.value == "" {
			return fmt.Sprintf("missing required field: %s", field.name)
		}
	}

	if req.Amount <= 0 {
		return "amount must be positive"
	}

	// Unlike the inbound validator, the processor tolerates spaces in
	// the card number.
	cardNumber := strings.ReplaceAll(req.CardNumber, " ", "")
	if len(cardNumber) != 16 || !allDigits(cardNumber) {
		return "invalid card number"
	}

	if !expiryDatePattern.MatchString(req.ExpiryDate) {
		return "invalid expiry date"
	}

	if len(req.CVV) != 3 || !allDigits(req.CVV) {
		return "invalid CVV"
	}

	return ""
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func failure(msg string) ChargeResult {
	return ChargeResult{Success: false, ErrorMessage: msg}
}

// Ensure Simulator implements Gateway.
var _ Gateway = (*Simulator)(nil)

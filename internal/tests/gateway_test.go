package tests

import (
	"context"
	"strings"
	"testing"
	"time"

	"fieldtrip/internal/gateway"
)

// ──────────────────────────────────────────────
// 1. SIMULATED PAYMENT GATEWAY
// ──────────────────────────────────────────────

func validChargeRequest() gateway.ChargeRequest {
	return gateway.ChargeRequest{
		StudentName: "Bart Simpson",
		ParentName:  "Homer Simpson",
		Amount:      25.50,
		CardNumber:  "1234567890123456",
		ExpiryDate:  "12/25",
		CVV:         "123",
		SchoolID:    "school-1",
		ActivityID:  "activity-1",
	}
}

// newDeterministicSimulator returns a simulator whose random draw and
// sleep are fixed. draw >= 0.10 approves, draw < 0.10 declines.
func newDeterministicSimulator(draw float64, slept *time.Duration) *gateway.Simulator {
	return gateway.NewSimulator(
		gateway.WithRand(func() float64 { return draw }),
		gateway.WithSleep(func(d time.Duration) {
			if slept != nil {
				*slept += d
			}
		}),
	)
}

func TestGateway_SuccessfulCharge(t *testing.T) {
	t.Parallel()

	sim := newDeterministicSimulator(0.5, nil)

	result := sim.Charge(context.Background(), validChargeRequest())

	if !result.Success {
		t.Fatalf("expected success, got failure: %s", result.ErrorMessage)
	}
	if !strings.HasPrefix(result.TransactionID, "TX-") {
		t.Errorf("expected TX- prefixed transaction id, got %q", result.TransactionID)
	}
	if result.ErrorMessage != "" {
		t.Errorf("success must not carry an error message, got %q", result.ErrorMessage)
	}
}

func TestGateway_FreshTransactionIDPerCharge(t *testing.T) {
	t.Parallel()

	sim := newDeterministicSimulator(0.5, nil)

	first := sim.Charge(context.Background(), validChargeRequest())
	second := sim.Charge(context.Background(), validChargeRequest())

	if first.TransactionID == second.TransactionID {
		t.Errorf("expected distinct transaction ids, both were %q", first.TransactionID)
	}
}

func TestGateway_SimulatedProcessingDelay(t *testing.T) {
	t.Parallel()

	var slept time.Duration
	sim := newDeterministicSimulator(0.5, &slept)

	sim.Charge(context.Background(), validChargeRequest())

	if slept != 1500*time.Millisecond {
		t.Errorf("expected 1.5s simulated delay, got %v", slept)
	}
}

func TestGateway_RandomDecline(t *testing.T) {
	t.Parallel()

	sim := newDeterministicSimulator(0.05, nil)

	result := sim.Charge(context.Background(), validChargeRequest())

	if result.Success {
		t.Fatal("expected decline")
	}
	if !strings.Contains(result.ErrorMessage, "declined") {
		t.Errorf("decline message should mention 'declined', got %q", result.ErrorMessage)
	}
	if result.TransactionID != "" {
		t.Errorf("failure must not carry a transaction id, got %q", result.TransactionID)
	}
}

func TestGateway_DrawAtThresholdApproves(t *testing.T) {
	t.Parallel()

	sim := newDeterministicSimulator(0.10, nil)

	result := sim.Charge(context.Background(), validChargeRequest())

	if !result.Success {
		t.Errorf("draw equal to the threshold should approve, got %q", result.ErrorMessage)
	}
}

func TestGateway_MissingRequiredFields(t *testing.T) {
	t.Parallel()

	cases := []struct {
		field string
		mut   func(*gateway.ChargeRequest)
	}{
		{"student_name", func(r *gateway.ChargeRequest) { r.StudentName = "" }},
		{"parent_name", func(r *gateway.ChargeRequest) { r.ParentName = "" }},
		{"card_number", func(r *gateway.ChargeRequest) { r.CardNumber = "" }},
		{"expiry_date", func(r *gateway.ChargeRequest) { r.ExpiryDate = "" }},
		{"cvv", func(r *gateway.ChargeRequest) { r.CVV = "" }},
		{"school_id", func(r *gateway.ChargeRequest) { r.SchoolID = "" }},
		{"activity_id", func(r *gateway.ChargeRequest) { r.ActivityID = "" }},
	}

	sim := newDeterministicSimulator(0.5, nil)

	for _, tc := range cases {
		req := validChargeRequest()
		tc.mut(&req)

		result := sim.Charge(context.Background(), req)

		if result.Success {
			t.Errorf("charge should fail when %s is missing", tc.field)
			continue
		}
		if !strings.Contains(result.ErrorMessage, tc.field) {
			t.Errorf("error should name %s, got %q", tc.field, result.ErrorMessage)
		}
	}
}

func TestGateway_NonPositiveAmount(t *testing.T) {
	t.Parallel()

	// Even a draw that would approve must not rescue a bad amount.
	sim := newDeterministicSimulator(0.99, nil)

	for _, amount := range []float64{0, -10} {
		req := validChargeRequest()
		req.Amount = amount

		result := sim.Charge(context.Background(), req)

		if result.Success {
			t.Errorf("amount %v should fail", amount)
			continue
		}
		if !strings.Contains(result.ErrorMessage, "positive") {
			t.Errorf("error should mention 'positive', got %q", result.ErrorMessage)
		}
	}
}

func TestGateway_CardNumberWithSpacesAccepted(t *testing.T) {
	t.Parallel()

	sim := newDeterministicSimulator(0.5, nil)

	req := validChargeRequest()
	req.CardNumber = "1234 5678 9012 3456"

	result := sim.Charge(context.Background(), req)

	if !result.Success {
		t.Errorf("gateway strips spaces from card numbers, got failure: %s", result.ErrorMessage)
	}
}

func TestGateway_InvalidCardNumber(t *testing.T) {
	t.Parallel()

	sim := newDeterministicSimulator(0.5, nil)

	for _, card := range []string{"12345", "12345678abcd3456", "12345678901234567"} {
		req := validChargeRequest()
		req.CardNumber = card

		result := sim.Charge(context.Background(), req)

		if result.Success {
			t.Errorf("card %q should fail", card)
			continue
		}
		if !strings.Contains(strings.ToLower(result.ErrorMessage), "card number") {
			t.Errorf("error should mention the card number, got %q", result.ErrorMessage)
		}
	}
}

func TestGateway_InvalidExpiryDate(t *testing.T) {
	t.Parallel()

	sim := newDeterministicSimulator(0.5, nil)

	for _, expiry := range []string{"1225", "00/25", "13/25", "12/2025", "1/25"} {
		req := validChargeRequest()
		req.ExpiryDate = expiry

		result := sim.Charge(context.Background(), req)

		if result.Success {
			t.Errorf("expiry %q should fail", expiry)
			continue
		}
		if !strings.Contains(strings.ToLower(result.ErrorMessage), "expiry") {
			t.Errorf("error should mention the expiry, got %q", result.ErrorMessage)
		}
	}
}

func TestGateway_InvalidCVV(t *testing.T) {
	t.Parallel()

	sim := newDeterministicSimulator(0.5, nil)

	for _, cvv := range []string{"12", "1234", "ab3"} {
		req := validChargeRequest()
		req.CVV = cvv

		result := sim.Charge(context.Background(), req)

		if result.Success {
			t.Errorf("cvv %q should fail", cvv)
			continue
		}
		if !strings.Contains(result.ErrorMessage, "CVV") {
			t.Errorf("error should mention the CVV, got %q", result.ErrorMessage)
		}
	}
}

func TestGateway_ValidationFailsBeforeDelay(t *testing.T) {
	t.Parallel()

	var slept time.Duration
	sim := newDeterministicSimulator(0.5, &slept)

	req := validChargeRequest()
	req.CVV = "12"
	sim.Charge(context.Background(), req)

	if slept != 0 {
		t.Errorf("validation failures should not sleep, slept %v", slept)
	}
}

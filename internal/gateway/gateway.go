// Package gateway models the external payment processor boundary.
// The orchestrator only sees the Gateway interface, so the simulated
// processor can be swapped for a real integration without touching the
// workflow.
package gateway

import "context"

// ChargeRequest carries the fields submitted to the processor.
type ChargeRequest struct {
	StudentName string
	ParentName  string
	Amount      float64
	CardNumber  string
	ExpiryDate  string
	CVV         string
	SchoolID    string
	ActivityID  string
}

// ChargeResult is the processor's outcome. TransactionID is set only on
// success, ErrorMessage only on failure; never both.
type ChargeResult struct {
	Success       bool
	TransactionID string
	ErrorMessage  string
}

// Gateway is the interface for a payment processor.
type Gateway interface {
	Charge(ctx context.Context, req ChargeRequest) ChargeResult
}

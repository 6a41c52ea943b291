package service

import (
	"context"
	"errors"
	"time"

	"fieldtrip/internal/domain"
	"fieldtrip/internal/gateway"
	"fieldtrip/internal/repository"
)

// PaymentService orchestrates a field-trip payment: input validation,
// school and trip resolution, enrollment, the gateway charge, and the
// transaction record.
type PaymentService struct {
	schoolRepo      repository.SchoolRepository
	fieldTripRepo   repository.FieldTripRepository
	transactionRepo repository.TransactionRepository
	enrollment      *EnrollmentService
	gateway         gateway.Gateway
	now             func() time.Time
}

// NewPaymentService creates a new PaymentService. now supplies
// transaction timestamps; pass time.Now in production.
func NewPaymentService(
	schoolRepo repository.SchoolRepository,
	fieldTripRepo repository.FieldTripRepository,
	transactionRepo repository.TransactionRepository,
	enrollment *EnrollmentService,
	gw gateway.Gateway,
	now func() time.Time,
) *PaymentService {
	return &PaymentService{
		schoolRepo:      schoolRepo,
		fieldTripRepo:   fieldTripRepo,
		transactionRepo: transactionRepo,
		enrollment:      enrollment,
		gateway:         gw,
		now:             now,
	}
}

// PaymentResult contains the outcome of a successful payment.
type PaymentResult struct {
	Transaction  *domain.Transaction
	Student      *domain.Student
	Registration *domain.Registration
}

// ProcessPayment runs the payment workflow end to end.
//
// Enrollment rows are created before the gateway is called and are kept
// even when the charge fails. The charged amount is the trip cost from
// the database, never a client-supplied figure. Submitting the same
// data twice reuses the enrollment rows but records a second
// transaction when both charges succeed.
//
// The gateway call and the transaction write are not one atomic unit: a
// crash between them loses the record of a successful charge. Accepted
// gap, see DESIGN.md.
func (s *PaymentService) ProcessPayment(ctx context.Context, req PaymentRequest) (*PaymentResult, error) {
	if err := validatePaymentRequest(req); err != nil {
		return nil, err
	}

	school, err := s.schoolRepo.GetByID(ctx, req.SchoolID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSchoolNotFound
		}
		return nil, err
	}

	trip, err := s.fieldTripRepo.GetByID(ctx, req.FieldTripID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrFieldTripNotFound
		}
		return nil, err
	}

	enrollment, err := s.enrollment.Resolve(ctx, req, school, trip)
	if err != nil {
		return nil, err
	}

	result := s.gateway.Charge(ctx, gateway.ChargeRequest{
		StudentName: enrollment.Student.FullName(),
		ParentName:  enrollment.Parent.FullName(),
		Amount:      trip.Cost,
		CardNumber:  req.CardNumber,
		ExpiryDate:  req.ExpiryDate,
		CVV:         req.CVV,
		SchoolID:    school.ID,
		ActivityID:  trip.ID,
	})
	if !result.Success {
		return nil, &GatewayError{Message: result.ErrorMessage}
	}

	transaction := &domain.Transaction{
		ID:          result.TransactionID,
		Date:        s.now(),
		Amount:      trip.Cost,
		StudentID:   enrollment.Student.ID,
		FieldTripID: trip.ID,
	}

	if err := s.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, err
	}

	return &PaymentResult{
		Transaction:  transaction,
		Student:      enrollment.Student,
		Registration: enrollment.Registration,
	}, nil
}

package service

import (
	"context"

	"github.com/google/uuid"

	"fieldtrip/internal/domain"
	"fieldtrip/internal/repository"
)

// EnrollmentService resolves the parent, student, and registration for
// a payment submission using get-or-create semantics on natural keys.
// Rows created here deliberately survive a later payment failure: a
// declined card still leaves an enrollment record, only the transaction
// is withheld.
type EnrollmentService struct {
	parentRepo       repository.ParentRepository
	studentRepo      repository.StudentRepository
	registrationRepo repository.RegistrationRepository
}

// NewEnrollmentService creates a new EnrollmentService.
func NewEnrollmentService(
	parentRepo repository.ParentRepository,
	studentRepo repository.StudentRepository,
	registrationRepo repository.RegistrationRepository,
) *EnrollmentService {
	return &EnrollmentService{
		parentRepo:       parentRepo,
		studentRepo:      studentRepo,
		registrationRepo: registrationRepo,
	}
}

// Enrollment holds the resolved records for one submission.
type Enrollment struct {
	Parent       *domain.Parent
	Student      *domain.Student
	Registration *domain.Registration
}

// Resolve returns the (possibly newly created) parent, student, and
// registration for the given submission and resolved school and trip.
// The stage has no rollback envelope: a failure partway through leaves
// the rows already created.
func (s *EnrollmentService) Resolve(ctx context.Context, req PaymentRequest, school *domain.School, trip *domain.FieldTrip) (*Enrollment, error) {
	parent, err := s.parentRepo.GetOrCreate(ctx, &domain.Parent{
		ID:        uuid.New().String(),
		FirstName: req.ParentFirstName,
		LastName:  req.ParentLastName,
		Email:     req.Email,
	})
	if err != nil {
		return nil, err
	}

	student, err := s.studentRepo.GetOrCreate(ctx, &domain.Student{
		ID:        uuid.New().String(),
		FirstName: req.StudentFirstName,
		LastName:  req.StudentLastName,
		ParentID:  parent.ID,
		SchoolID:  school.ID,
	})
	if err != nil {
		return nil, err
	}

	registration, err := s.registrationRepo.GetOrCreate(ctx, &domain.Registration{
		ID:          uuid.New().String(),
		StudentID:   student.ID,
		FieldTripID: trip.ID,
	})
	if err != nil {
		return nil, err
	}

	return &Enrollment{
		Parent:       parent,
		Student:      student,
		Registration: registration,
	}, nil
}

package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"fieldtrip/internal/domain"
	"fieldtrip/internal/service"
)

var errTestRegistration = errors.New("registration insert failed")

// ──────────────────────────────────────────────
// 3. ENROLLMENT RESOLUTION (GET-OR-CREATE)
// ──────────────────────────────────────────────

func enrollmentFixture() (*MockParentRepository, *MockStudentRepository, *MockRegistrationRepository, *service.EnrollmentService) {
	parentRepo := NewMockParentRepository()
	studentRepo := NewMockStudentRepository()
	registrationRepo := NewMockRegistrationRepository()
	svc := service.NewEnrollmentService(parentRepo, studentRepo, registrationRepo)
	return parentRepo, studentRepo, registrationRepo, svc
}

func enrollmentRequest() service.PaymentRequest {
	return service.PaymentRequest{
		StudentFirstName: "Lisa",
		StudentLastName:  "Simpson",
		ParentFirstName:  "Marge",
		ParentLastName:   "Simpson",
		Email:            "marge@example.com",
	}
}

var (
	enrollmentSchool = &domain.School{ID: "school-1", Name: "Springfield Elementary"}
	enrollmentTrip   = &domain.FieldTrip{ID: "trip-1", Location: "Zoo", Cost: 15, Date: time.Now().AddDate(0, 1, 0)}
)

func TestEnrollment_CreatesAllRecords(t *testing.T) {
	t.Parallel()

	parentRepo, studentRepo, registrationRepo, svc := enrollmentFixture()

	enrollment, err := svc.Resolve(context.Background(), enrollmentRequest(), enrollmentSchool, enrollmentTrip)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if enrollment.Parent.Email != "marge@example.com" {
		t.Errorf("parent email: got %q", enrollment.Parent.Email)
	}
	if enrollment.Student.ParentID != enrollment.Parent.ID {
		t.Error("student must reference the resolved parent")
	}
	if enrollment.Student.SchoolID != "school-1" {
		t.Errorf("student school: got %q", enrollment.Student.SchoolID)
	}
	if enrollment.Registration.StudentID != enrollment.Student.ID {
		t.Error("registration must reference the resolved student")
	}
	if enrollment.Registration.FieldTripID != "trip-1" {
		t.Errorf("registration trip: got %q", enrollment.Registration.FieldTripID)
	}

	if parentRepo.CountParents() != 1 || studentRepo.CountStudents() != 1 || registrationRepo.CountRegistrations() != 1 {
		t.Errorf("expected one of each record, got %d/%d/%d",
			parentRepo.CountParents(), studentRepo.CountStudents(), registrationRepo.CountRegistrations())
	}
}

func TestEnrollment_ExactMatchReusesRecords(t *testing.T) {
	t.Parallel()

	parentRepo, studentRepo, registrationRepo, svc := enrollmentFixture()

	ctx := context.Background()
	first, err := svc.Resolve(ctx, enrollmentRequest(), enrollmentSchool, enrollmentTrip)
	if err != nil {
		t.Fatalf("first resolve: %v", err)
	}
	second, err := svc.Resolve(ctx, enrollmentRequest(), enrollmentSchool, enrollmentTrip)
	if err != nil {
		t.Fatalf("second resolve: %v", err)
	}

	if first.Parent.ID != second.Parent.ID {
		t.Error("identical parent data must resolve to the same row")
	}
	if first.Student.ID != second.Student.ID {
		t.Error("identical student data must resolve to the same row")
	}
	if first.Registration.ID != second.Registration.ID {
		t.Error("identical registration data must resolve to the same row")
	}

	if parentRepo.CountParents() != 1 || studentRepo.CountStudents() != 1 || registrationRepo.CountRegistrations() != 1 {
		t.Errorf("expected no duplicates, got %d/%d/%d",
			parentRepo.CountParents(), studentRepo.CountStudents(), registrationRepo.CountRegistrations())
	}
}

func TestEnrollment_MatchIsCaseSensitive(t *testing.T) {
	t.Parallel()

	parentRepo, _, _, svc := enrollmentFixture()

	ctx := context.Background()
	if _, err := svc.Resolve(ctx, enrollmentRequest(), enrollmentSchool, enrollmentTrip); err != nil {
		t.Fatalf("first resolve: %v", err)
	}

	req := enrollmentRequest()
	req.ParentFirstName = "marge"
	if _, err := svc.Resolve(ctx, req, enrollmentSchool, enrollmentTrip); err != nil {
		t.Fatalf("second resolve: %v", err)
	}

	if parentRepo.CountParents() != 2 {
		t.Errorf("case-differing names are distinct parents, got %d rows", parentRepo.CountParents())
	}
}

func TestEnrollment_DifferentEmailCreatesNewParent(t *testing.T) {
	t.Parallel()

	parentRepo, studentRepo, _, svc := enrollmentFixture()

	ctx := context.Background()
	if _, err := svc.Resolve(ctx, enrollmentRequest(), enrollmentSchool, enrollmentTrip); err != nil {
		t.Fatalf("first resolve: %v", err)
	}

	req := enrollmentRequest()
	req.Email = "marge.simpson@example.com"
	if _, err := svc.Resolve(ctx, req, enrollmentSchool, enrollmentTrip); err != nil {
		t.Fatalf("second resolve: %v", err)
	}

	if parentRepo.CountParents() != 2 {
		t.Errorf("expected 2 parents, got %d", parentRepo.CountParents())
	}
	// The student key includes the parent, so a new parent means a new
	// student row too.
	if studentRepo.CountStudents() != 2 {
		t.Errorf("expected 2 students, got %d", studentRepo.CountStudents())
	}
}

func TestEnrollment_SameStudentDifferentTrip(t *testing.T) {
	t.Parallel()

	_, studentRepo, registrationRepo, svc := enrollmentFixture()

	ctx := context.Background()
	if _, err := svc.Resolve(ctx, enrollmentRequest(), enrollmentSchool, enrollmentTrip); err != nil {
		t.Fatalf("first resolve: %v", err)
	}

	otherTrip := &domain.FieldTrip{ID: "trip-2", Location: "Aquarium", Cost: 20, Date: time.Now().AddDate(0, 2, 0)}
	if _, err := svc.Resolve(ctx, enrollmentRequest(), enrollmentSchool, otherTrip); err != nil {
		t.Fatalf("second resolve: %v", err)
	}

	if studentRepo.CountStudents() != 1 {
		t.Errorf("expected 1 student, got %d", studentRepo.CountStudents())
	}
	if registrationRepo.CountRegistrations() != 2 {
		t.Errorf("expected 2 registrations, got %d", registrationRepo.CountRegistrations())
	}
}

func TestEnrollment_PartialFailureKeepsEarlierRows(t *testing.T) {
	t.Parallel()

	parentRepo, studentRepo, registrationRepo, svc := enrollmentFixture()
	registrationRepo.GetOrCreateError = errTestRegistration

	_, err := svc.Resolve(context.Background(), enrollmentRequest(), enrollmentSchool, enrollmentTrip)
	if err == nil {
		t.Fatal("expected registration failure")
	}

	// No rollback envelope: parent and student rows survive.
	if parentRepo.CountParents() != 1 {
		t.Errorf("expected parent row to remain, got %d", parentRepo.CountParents())
	}
	if studentRepo.CountStudents() != 1 {
		t.Errorf("expected student row to remain, got %d", studentRepo.CountStudents())
	}
}

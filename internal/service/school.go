package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	"fieldtrip/internal/domain"
	"fieldtrip/internal/redis"
	"fieldtrip/internal/repository"
)

// SchoolService handles school administration.
type SchoolService struct {
	schoolRepo repository.SchoolRepository
	cache      redis.CacheStoreInterface
}

// NewSchoolService creates a new SchoolService. cache may be nil.
func NewSchoolService(schoolRepo repository.SchoolRepository, cache redis.CacheStoreInterface) *SchoolService {
	return &SchoolService{schoolRepo: schoolRepo, cache: cache}
}

// Create registers a new school. The field-trip listing embeds the
// school roster, so the cached listing is invalidated.
func (s *SchoolService) Create(ctx context.Context, name string) (*domain.School, error) {
	if name == "" {
		return nil, ErrInvalidSchool
	}

	school := &domain.School{
		ID:   uuid.New().String(),
		Name: name,
	}

	if err := s.schoolRepo.Create(ctx, school); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return school, nil
}

// GetAll returns every registered school.
func (s *SchoolService) GetAll(ctx context.Context) ([]*domain.School, error) {
	return s.schoolRepo.GetAll(ctx)
}

// Delete removes a school and its students. A student with a recorded
// transaction blocks the delete.
func (s *SchoolService) Delete(ctx context.Context, id string) error {
	if err := s.schoolRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx)
	return nil
}

func (s *SchoolService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateFieldTripList(ctx); err != nil {
		log.Printf("fieldtrip list cache invalidation failed: %v", err)
	}
}

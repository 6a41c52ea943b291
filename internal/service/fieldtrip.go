package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"fieldtrip/internal/domain"
	"fieldtrip/internal/redis"
	"fieldtrip/internal/repository"
)

// FieldTripListing is the public shape of one field trip. Schools
// lists every school known to the system, not just schools attending
// the trip; callers depend on this.
type FieldTripListing struct {
	ID       string          `json:"id"`
	Location string          `json:"location"`
	Cost     float64         `json:"cost"`
	Date     time.Time       `json:"date"`
	Schools  []SchoolListing `json:"schools"`
}

// SchoolListing is the public shape of one school.
type SchoolListing struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FieldTripService handles the field-trip catalog.
type FieldTripService struct {
	fieldTripRepo repository.FieldTripRepository
	schoolRepo    repository.SchoolRepository
	cache         redis.CacheStoreInterface
}

// NewFieldTripService creates a new FieldTripService. cache may be nil,
// in which case every read hits the database.
func NewFieldTripService(
	fieldTripRepo repository.FieldTripRepository,
	schoolRepo repository.SchoolRepository,
	cache redis.CacheStoreInterface,
) *FieldTripService {
	return &FieldTripService{
		fieldTripRepo: fieldTripRepo,
		schoolRepo:    schoolRepo,
		cache:         cache,
	}
}

// List returns all field trips with the full school roster attached,
// cache-aside with a short TTL.
func (s *FieldTripService) List(ctx context.Context) ([]FieldTripListing, error) {
	if s.cache != nil {
		var cached []FieldTripListing
		hit, err := s.cache.GetFieldTripList(ctx, &cached)
		if err != nil {
			// Cache trouble is not fatal; fall through to the DB.
			log.Printf("fieldtrip list cache read failed: %v", err)
		} else if hit {
			return cached, nil
		}
	}

	trips, err := s.fieldTripRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	schools, err := s.schoolRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	schoolListings := make([]SchoolListing, 0, len(schools))
	for _, school := range schools {
		schoolListings = append(schoolListings, SchoolListing{ID: school.ID, Name: school.Name})
	}

	listings := make([]FieldTripListing, 0, len(trips))
	for _, trip := range trips {
		listings = append(listings, FieldTripListing{
			ID:       trip.ID,
			Location: trip.Location,
			Cost:     trip.Cost,
			Date:     trip.Date,
			Schools:  schoolListings,
		})
	}

	if s.cache != nil {
		if err := s.cache.SetFieldTripList(ctx, listings); err != nil {
			log.Printf("fieldtrip list cache write failed: %v", err)
		}
	}

	return listings, nil
}

// CreateFieldTripRequest contains the parameters for creating a field trip.
type CreateFieldTripRequest struct {
	Location string
	Cost     float64
	Date     time.Time
}

// Create adds a new field trip and invalidates the listing cache.
func (s *FieldTripService) Create(ctx context.Context, req CreateFieldTripRequest) (*domain.FieldTrip, error) {
	if req.Location == "" || req.Cost < 0 || req.Date.IsZero() {
		return nil, ErrInvalidFieldTrip
	}

	trip := &domain.FieldTrip{
		ID:       uuid.New().String(),
		Location: req.Location,
		Cost:     req.Cost,
		Date:     req.Date,
	}

	if err := s.fieldTripRepo.Create(ctx, trip); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return trip, nil
}

// Delete removes a field trip. Registrations go with it; a recorded
// transaction blocks the delete.
func (s *FieldTripService) Delete(ctx context.Context, id string) error {
	if err := s.fieldTripRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx)
	return nil
}

func (s *FieldTripService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateFieldTripList(ctx); err != nil {
		log.Printf("fieldtrip list cache invalidation failed: %v", err)
	}
}

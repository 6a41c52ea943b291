package tests

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"

	"fieldtrip/internal/domain"
	"fieldtrip/internal/gateway"
	"fieldtrip/internal/repository"
)

// ──────────────────────────────────────────────
// MOCK SCHOOL REPOSITORY
// ──────────────────────────────────────────────

// MockSchoolRepository is a mock implementation of SchoolRepository.
type MockSchoolRepository struct {
	mu      sync.RWMutex
	schools map[string]*domain.School

	// Counters for verification
	CreateCallCount int32
	DeleteCallCount int32

	// Error injection
	CreateError error
	DeleteError error
}

// NewMockSchoolRepository creates a new mock school repository.
func NewMockSchoolRepository() *MockSchoolRepository {
	return &MockSchoolRepository{
		schools: make(map[string]*domain.School),
	}
}

// AddSchool adds a school to the mock repository.
func (m *MockSchoolRepository) AddSchool(school *domain.School) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.schools[school.ID] = school
}

func (m *MockSchoolRepository) Create(ctx context.Context, school *domain.School) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.schools[school.ID] = school
	return nil
}

func (m *MockSchoolRepository) GetByID(ctx context.Context, id string) (*domain.School, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	school, ok := m.schools[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *school
	return &copy, nil
}

func (m *MockSchoolRepository) GetAll(ctx context.Context) ([]*domain.School, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.School, 0, len(m.schools))
	for _, s := range m.schools {
		copy := *s
		result = append(result, &copy)
	}
	return result, nil
}

func (m *MockSchoolRepository) Delete(ctx context.Context, id string) error {
	atomic.AddInt32(&m.DeleteCallCount, 1)
	if m.DeleteError != nil {
		return m.DeleteError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.schools[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.schools, id)
	return nil
}

// ──────────────────────────────────────────────
// MOCK PARENT REPOSITORY
// ──────────────────────────────────────────────

type parentKey struct {
	firstName string
	lastName  string
	email     string
}

// MockParentRepository is a mock implementation of ParentRepository with
// get-or-create semantics on the natural key.
type MockParentRepository struct {
	mu      sync.RWMutex
	parents map[parentKey]*domain.Parent

	// Counters for verification
	GetOrCreateCallCount int32

	// Error injection
	GetOrCreateError error
}

// NewMockParentRepository creates a new mock parent repository.
func NewMockParentRepository() *MockParentRepository {
	return &MockParentRepository{
		parents: make(map[parentKey]*domain.Parent),
	}
}

func (m *MockParentRepository) GetOrCreate(ctx context.Context, parent *domain.Parent) (*domain.Parent, error) {
	atomic.AddInt32(&m.GetOrCreateCallCount, 1)
	if m.GetOrCreateError != nil {
		return nil, m.GetOrCreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	key := parentKey{parent.FirstName, parent.LastName, parent.Email}
	if existing, ok := m.parents[key]; ok {
		copy := *existing
		return &copy, nil
	}
	stored := *parent
	m.parents[key] = &stored
	copy := stored
	return &copy, nil
}

func (m *MockParentRepository) GetByID(ctx context.Context, id string) (*domain.Parent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.parents {
		if p.ID == id {
			copy := *p
			return &copy, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *MockParentRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key, p := range m.parents {
		if p.ID == id {
			delete(m.parents, key)
			return nil
		}
	}
	return repository.ErrNotFound
}

// CountParents returns the number of stored parents (for assertions).
func (m *MockParentRepository) CountParents() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.parents)
}

// ──────────────────────────────────────────────
// MOCK STUDENT REPOSITORY
// ──────────────────────────────────────────────

type studentKey struct {
	firstName string
	lastName  string
	parentID  string
	schoolID  string
}

// MockStudentRepository is a mock implementation of StudentRepository
// with get-or-create semantics on the natural key.
type MockStudentRepository struct {
	mu       sync.RWMutex
	students map[studentKey]*domain.Student

	// Counters for verification
	GetOrCreateCallCount int32

	// Error injection
	GetOrCreateError error
}

// NewMockStudentRepository creates a new mock student repository.
func NewMockStudentRepository() *MockStudentRepository {
	return &MockStudentRepository{
		students: make(map[studentKey]*domain.Student),
	}
}

func (m *MockStudentRepository) GetOrCreate(ctx context.Context, student *domain.Student) (*domain.Student, error) {
	atomic.AddInt32(&m.GetOrCreateCallCount, 1)
	if m.GetOrCreateError != nil {
		return nil, m.GetOrCreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	key := studentKey{student.FirstName, student.LastName, student.ParentID, student.SchoolID}
	if existing, ok := m.students[key]; ok {
		copy := *existing
		return &copy, nil
	}
	stored := *student
	m.students[key] = &stored
	copy := stored
	return &copy, nil
}

func (m *MockStudentRepository) GetByID(ctx context.Context, id string) (*domain.Student, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range m.students {
		if s.ID == id {
			copy := *s
			return &copy, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *MockStudentRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key, s := range m.students {
		if s.ID == id {
			delete(m.students, key)
			return nil
		}
	}
	return repository.ErrNotFound
}

// CountStudents returns the number of stored students (for assertions).
func (m *MockStudentRepository) CountStudents() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.students)
}

// ──────────────────────────────────────────────
// MOCK FIELD TRIP REPOSITORY
// ──────────────────────────────────────────────

// MockFieldTripRepository is a mock implementation of FieldTripRepository.
type MockFieldTripRepository struct {
	mu    sync.RWMutex
	trips map[string]*domain.FieldTrip

	// Counters for verification
	CreateCallCount int32
	DeleteCallCount int32

	// Error injection
	CreateError error
	DeleteError error
}

// NewMockFieldTripRepository creates a new mock field trip repository.
func NewMockFieldTripRepository() *MockFieldTripRepository {
	return &MockFieldTripRepository{
		trips: make(map[string]*domain.FieldTrip),
	}
}

// AddFieldTrip adds a field trip to the mock repository.
func (m *MockFieldTripRepository) AddFieldTrip(trip *domain.FieldTrip) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trips[trip.ID] = trip
}

func (m *MockFieldTripRepository) Create(ctx context.Context, trip *domain.FieldTrip) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trips[trip.ID] = trip
	return nil
}

func (m *MockFieldTripRepository) GetByID(ctx context.Context, id string) (*domain.FieldTrip, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	trip, ok := m.trips[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *trip
	return &copy, nil
}

func (m *MockFieldTripRepository) GetAll(ctx context.Context) ([]*domain.FieldTrip, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.FieldTrip, 0, len(m.trips))
	for _, t := range m.trips {
		copy := *t
		result = append(result, &copy)
	}
	return result, nil
}

func (m *MockFieldTripRepository) Delete(ctx context.Context, id string) error {
	atomic.AddInt32(&m.DeleteCallCount, 1)
	if m.DeleteError != nil {
		return m.DeleteError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.trips[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.trips, id)
	return nil
}

// ──────────────────────────────────────────────
// MOCK REGISTRATION REPOSITORY
// ──────────────────────────────────────────────

type registrationKey struct {
	studentID   string
	fieldTripID string
}

// MockRegistrationRepository is a mock implementation of
// RegistrationRepository with get-or-create semantics.
type MockRegistrationRepository struct {
	mu            sync.RWMutex
	registrations map[registrationKey]*domain.Registration

	// Counters for verification
	GetOrCreateCallCount int32

	// Error injection
	GetOrCreateError error
}

// NewMockRegistrationRepository creates a new mock registration repository.
func NewMockRegistrationRepository() *MockRegistrationRepository {
	return &MockRegistrationRepository{
		registrations: make(map[registrationKey]*domain.Registration),
	}
}

func (m *MockRegistrationRepository) GetOrCreate(ctx context.Context, reg *domain.Registration) (*domain.Registration, error) {
	atomic.AddInt32(&m.GetOrCreateCallCount, 1)
	if m.GetOrCreateError != nil {
		return nil, m.GetOrCreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	key := registrationKey{reg.StudentID, reg.FieldTripID}
	if existing, ok := m.registrations[key]; ok {
		copy := *existing
		return &copy, nil
	}
	stored := *reg
	m.registrations[key] = &stored
	copy := stored
	return &copy, nil
}

func (m *MockRegistrationRepository) GetByStudentAndTrip(ctx context.Context, studentID, fieldTripID string) (*domain.Registration, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	reg, ok := m.registrations[registrationKey{studentID, fieldTripID}]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *reg
	return &copy, nil
}

// CountRegistrations returns the number of stored registrations.
func (m *MockRegistrationRepository) CountRegistrations() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.registrations)
}

// ──────────────────────────────────────────────
// MOCK TRANSACTION REPOSITORY
// ──────────────────────────────────────────────

// MockTransactionRepository is a mock implementation of TransactionRepository.
type MockTransactionRepository struct {
	mu           sync.RWMutex
	transactions map[string]*domain.Transaction

	// Counters for verification
	CreateCallCount int32

	// Error injection
	CreateError error
}

// NewMockTransactionRepository creates a new mock transaction repository.
func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{
		transactions: make(map[string]*domain.Transaction),
	}
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transactions[tx.ID] = tx
	return nil
}

func (m *MockTransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	tx, ok := m.transactions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *tx
	return &copy, nil
}

func (m *MockTransactionRepository) GetByStudentID(ctx context.Context, studentID string) ([]*domain.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.Transaction
	for _, tx := range m.transactions {
		if tx.StudentID == studentID {
			copy := *tx
			result = append(result, &copy)
		}
	}
	return result, nil
}

// CountTransactions returns the number of stored transactions.
func (m *MockTransactionRepository) CountTransactions() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.transactions)
}

// GetTransaction returns a transaction by ID (for assertions).
func (m *MockTransactionRepository) GetTransaction(id string) *domain.Transaction {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.transactions[id]
}

// ──────────────────────────────────────────────
// MOCK PAYMENT GATEWAY
// ──────────────────────────────────────────────

// MockGateway is a scripted implementation of gateway.Gateway. Results
// are returned in order; the last one repeats when the script runs out.
type MockGateway struct {
	mu      sync.Mutex
	results []gateway.ChargeResult

	// Requests records every charge for verification.
	Requests []gateway.ChargeRequest
}

// NewMockGateway creates a mock gateway that returns the given results.
func NewMockGateway(results ...gateway.ChargeResult) *MockGateway {
	return &MockGateway{results: results}
}

func (m *MockGateway) Charge(ctx context.Context, req gateway.ChargeRequest) gateway.ChargeResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests = append(m.Requests, req)
	if len(m.results) == 0 {
		return gateway.ChargeResult{Success: false, ErrorMessage: "no scripted result"}
	}
	result := m.results[0]
	if len(m.results) > 1 {
		m.results = m.results[1:]
	}
	return result
}

// CallCount returns the number of charges attempted.
func (m *MockGateway) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Requests)
}

// ──────────────────────────────────────────────
// MOCK CACHE STORE
// ──────────────────────────────────────────────

// MockCacheStore is an in-memory implementation of the listing cache.
type MockCacheStore struct {
	mu   sync.Mutex
	data []byte

	// Counters for verification
	GetCallCount        int32
	SetCallCount        int32
	InvalidateCallCount int32
}

// NewMockCacheStore creates a new mock cache store.
func NewMockCacheStore() *MockCacheStore {
	return &MockCacheStore{}
}

func (m *MockCacheStore) GetFieldTripList(ctx context.Context, dest any) (bool, error) {
	atomic.AddInt32(&m.GetCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return false, nil
	}
	if err := json.Unmarshal(m.data, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (m *MockCacheStore) SetFieldTripList(ctx context.Context, listing any) error {
	atomic.AddInt32(&m.SetCallCount, 1)
	data, err := json.Marshal(listing)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = data
	return nil
}

func (m *MockCacheStore) InvalidateFieldTripList(ctx context.Context) error {
	atomic.AddInt32(&m.InvalidateCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = nil
	return nil
}

package mocks

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"docreview/internal/domain"
	"docreview/internal/review"
)

// MockReviewService is a mock implementation of service.ReviewService.
type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) CreateSession(payload []byte) (*review.Session, error) {
	args := m.Called(payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*review.Session), args.Error(1)
}

func (m *MockReviewService) GetSession(id uuid.UUID) (*review.Session, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*review.Session), args.Error(1)
}

func (m *MockReviewService) FieldValue(sessionID uuid.UUID, filename string, page int, field string) (domain.Field, error) {
	args := m.Called(sessionID, filename, page, field)
	return args.Get(0).(domain.Field), args.Error(1)
}

func (m *MockReviewService) PageError(sessionID uuid.UUID, filename string, page int) (string, bool, error) {
	args := m.Called(sessionID, filename, page)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockReviewService) ApplyEdits(sessionID uuid.UUID, edits []review.Edit) (int, error) {
	args := m.Called(sessionID, edits)
	return args.Int(0), args.Error(1)
}

func (m *MockReviewService) DeleteSession(id uuid.UUID) {
	m.Called(id)
}

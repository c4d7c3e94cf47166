package service

import (
	"log"

	"github.com/google/uuid"

	"docreview/internal/domain"
	"docreview/internal/ingest"
	"docreview/internal/review"
)

// ReviewService defines the extraction review contract: session lifecycle,
// field lookups against the current state, and edit reconciliation.
type ReviewService interface {
	CreateSession(payload []byte) (*review.Session, error)
	GetSession(id uuid.UUID) (*review.Session, error)
	FieldValue(sessionID uuid.UUID, filename string, page int, field string) (domain.Field, error)
	PageError(sessionID uuid.UUID, filename string, page int) (string, bool, error)
	ApplyEdits(sessionID uuid.UUID, edits []review.Edit) (int, error)
	DeleteSession(id uuid.UUID)
}

type reviewService struct {
	sessions *review.Manager
}

// NewReviewService creates a new ReviewService implementation.
func NewReviewService(sessions *review.Manager) ReviewService {
	return &reviewService{sessions: sessions}
}

func (s *reviewService) CreateSession(payload []byte) (*review.Session, error) {
	batch, err := ingest.ParseBatch(payload)
	if err != nil {
		log.Printf("reviewService.CreateSession: rejecting batch: %v", err)
		return nil, err
	}

	sess := s.sessions.Create(batch)
	log.Printf("reviewService.CreateSession: session %s created with %d documents, %d pages",
		sess.ID, len(batch.Documents), batch.PageCount())
	return sess, nil
}

func (s *reviewService) GetSession(id uuid.UUID) (*review.Session, error) {
	return s.sessions.Get(id)
}

func (s *reviewService) FieldValue(sessionID uuid.UUID, filename string, page int, field string) (domain.Field, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return domain.Field{}, err
	}
	return sess.Store.Field(filename, page, field), nil
}

func (s *reviewService) PageError(sessionID uuid.UUID, filename string, page int) (string, bool, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return "", false, err
	}
	return sess.Store.PageError(filename, page)
}

func (s *reviewService) ApplyEdits(sessionID uuid.UUID, edits []review.Edit) (int, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return 0, err
	}

	if err := sess.Store.ApplyEdits(edits); err != nil {
		log.Printf("reviewService.ApplyEdits: session %s rejected %d edits: %v", sessionID, len(edits), err)
		return 0, err
	}

	applied := sess.Store.EditCount()
	log.Printf("reviewService.ApplyEdits: session %s now carries %d edited fields", sessionID, applied)
	return applied, nil
}

func (s *reviewService) DeleteSession(id uuid.UUID) {
	s.sessions.Reset(id)
}

// Package review owns the session-scoped edited view of an extraction batch
// and the reconciliation rules for applying user overrides to it.
package review

import (
	"fmt"
	"sync"

	"docreview/internal/domain"
)

// Store holds the authoritative current view of a batch for one editing
// session. The original batch is retained untouched for confidence
// provenance and audit; all mutation targets the edited copy.
type Store struct {
	mu       sync.RWMutex
	original *domain.Batch
	state    *domain.Batch
}

// NewStore creates a store over a defensive copy of the batch.
func NewStore(batch *domain.Batch) *Store {
	return &Store{original: batch.Clone()}
}

// Initialize creates the edited state as a deep structural copy of the
// original batch. Calling it again is a no-op once state exists.
func (s *Store) Initialize() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		s.state = s.original.Clone()
	}
}

// current returns the mutation target, falling back to the original batch
// when Initialize has not run yet. Callers must hold the lock.
func (s *Store) current() *domain.Batch {
	if s.state != nil {
		return s.state
	}
	return s.original
}

// Field returns the current (possibly edited) field. Anything never present
// in the source data reads as the zero-value Field; lookups never fail.
func (s *Store) Field(filename string, page int, name string) domain.Field {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.current().DocumentByName(filename)
	if !ok {
		return domain.Field{}
	}
	p, ok := doc.PageByNumber(page)
	if !ok || p.Failed() {
		return domain.Field{}
	}
	return p.Fields[name]
}

// PageError returns the error marker for a page, and whether the page is an
// error page. An unknown document or page is an out-of-range failure.
func (s *Store) PageError(filename string, page int) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.current().DocumentByName(filename)
	if !ok {
		return "", false, fmt.Errorf("%w: document %q", domain.ErrOutOfRange, filename)
	}
	p, ok := doc.PageByNumber(page)
	if !ok {
		return "", false, fmt.Errorf("%w: page %d of %q", domain.ErrOutOfRange, page, filename)
	}
	return p.Error, p.Failed(), nil
}

// ApplyEdits applies a batch of edits atomically: the edits are staged on a
// copy of the state and swapped in only if every edit succeeds, so readers
// observe either the pre-batch or the fully applied state.
func (s *Store) ApplyEdits(edits []Edit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		s.state = s.original.Clone()
	}
	staged := s.state.Clone()
	for _, e := range edits {
		if err := applyEdit(staged, s.original, e); err != nil {
			return err
		}
	}
	s.state = staged
	return nil
}

// Snapshot returns a deep copy of the current state for serialization.
// Rendering from a copy keeps exports byte-stable while edits proceed.
func (s *Store) Snapshot() *domain.Batch {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current().Clone()
}

// EditCount returns the number of manually edited fields.
func (s *Store) EditCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current().EditCount()
}

// HasEdits reports whether the session carries any manual edit.
func (s *Store) HasEdits() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current().HasEdits()
}

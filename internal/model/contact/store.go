package contact

import (
	"context"
	"errors"
	"sync"
)

// ErrSubmissionNotFound is returned by Store.Get for unknown ids.
var ErrSubmissionNotFound = errors.New("submission not found")

// Store persists accepted submissions.
type Store interface {
	Save(ctx context.Context, sub Submission) error
	Get(ctx context.Context, id string) (Submission, error)
	List(ctx context.Context) ([]Submission, error)
}

// MemoryStore implements Store with an in-memory slice, newest last.
type MemoryStore struct {
	mu    sync.RWMutex
	items []Submission
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save appends a submission.
func (s *MemoryStore) Save(_ context.Context, sub Submission) error {
	s.mu.Lock()
	s.items = append(s.items, sub)
	s.mu.Unlock()
	return nil
}

// Get looks up a submission by identifier.
func (s *MemoryStore) Get(_ context.Context, id string) (Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.ID == id {
			return item, nil
		}
	}
	return Submission{}, ErrSubmissionNotFound
}

// List returns every submission in insertion order.
func (s *MemoryStore) List(_ context.Context) ([]Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Submission(nil), s.items...), nil
}

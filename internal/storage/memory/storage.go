package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/mcoot/mtarp-portal/internal/model"
	"github.com/mcoot/mtarp-portal/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Records are kept encoded so callers never share state with the store.
type Storage struct {
	mu         sync.RWMutex
	viewStates map[string][]byte
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		viewStates: make(map[string][]byte),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveViewState(ctx context.Context, id string, state *model.ViewState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewStates[id] = data
	return nil
}

func (s *Storage) GetViewState(ctx context.Context, id string) (*model.ViewState, error) {
	s.mu.RLock()
	data, ok := s.viewStates[id]
	s.mu.RUnlock()
	if !ok {
		return nil, model.ErrViewStateNotFound
	}

	var state model.ViewState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *Storage) DeleteViewState(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.viewStates, id)
	return nil
}

// Len returns the number of stored records
func (s *Storage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.viewStates)
}

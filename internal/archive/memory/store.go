package memory

import (
	"context"
	"sync"

	"github.com/MinoUni/who-am-i-team-3/internal/archive"
	"github.com/MinoUni/who-am-i-team-3/internal/model"
)

// Store is an in-memory implementation of the archive
type Store struct {
	mu        sync.RWMutex
	summaries map[model.GameID]*model.GameSummary
}

// New creates a new in-memory archive
func New() *Store {
	return &Store{
		summaries: make(map[model.GameID]*model.GameSummary),
	}
}

// Ensure Store implements the interface
var _ archive.Store = (*Store)(nil)

func (s *Store) SaveSummary(ctx context.Context, summary *model.GameSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.summaries[summary.ID] = summary
	return nil
}

func (s *Store) GetSummary(ctx context.Context, id model.GameID) (*model.GameSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	summary, ok := s.summaries[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return summary, nil
}

func (s *Store) ListSummaries(ctx context.Context) ([]*model.GameSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.GameSummary, 0, len(s.summaries))
	for _, summary := range s.summaries {
		out = append(out, summary)
	}
	return out, nil
}

func (s *Store) DeleteSummary(ctx context.Context, id model.GameID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.summaries, id)
	return nil
}

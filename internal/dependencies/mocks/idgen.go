package mocks

import (
	"fmt"

	"github.com/MinoUni/who-am-i-team-3/internal/dependencies/idgen"
)

// MockIDGen is a mock implementation of Generator for testing
type MockIDGen struct {
	// IDs is a queue of identifiers to return from NewID
	IDs []string
	idx int
	seq int
}

// Ensure MockIDGen implements Generator
var _ idgen.Generator = (*MockIDGen)(nil)

// NewMockIDGen creates a new MockIDGen
func NewMockIDGen() *MockIDGen {
	return &MockIDGen{}
}

// NewID returns the next queued identifier, or a sequential fallback
func (g *MockIDGen) NewID() string {
	if g.idx < len(g.IDs) {
		id := g.IDs[g.idx]
		g.idx++
		return id
	}
	g.seq++
	return fmt.Sprintf("game-%d", g.seq)
}

// QueueIDs adds identifiers to the result queue
func (g *MockIDGen) QueueIDs(ids ...string) {
	g.IDs = append(g.IDs, ids...)
}

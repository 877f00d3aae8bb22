package registry

import (
	"sync"

	"github.com/MinoUni/who-am-i-team-3/internal/game"
	"github.com/MinoUni/who-am-i-team-3/internal/model"
)

// Registry holds every live session and the process-wide player index.
// The maps are guarded by a single RWMutex held only for map access, never
// across a session operation, so work against different sessions proceeds
// in parallel.
type Registry struct {
	mu sync.RWMutex

	sessions map[model.GameID]*game.Session
	players  map[model.PlayerID]model.GameID
}

// New creates an empty registry
func New() *Registry {
	return &Registry{
		sessions: make(map[model.GameID]*game.Session),
		players:  make(map[model.PlayerID]model.GameID),
	}
}

// Save registers a session
func (r *Registry) Save(s *game.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID()] = s
}

// Find returns the session with the given id
func (r *Registry) Find(id model.GameID) (*game.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return s, nil
}

// Remove drops a session. The caller is expected to have closed the session
// first so enrollment attempts racing this removal are rejected.
func (r *Registry) Remove(id model.GameID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// FindAvailable returns the first open session of the requested capacity
func (r *Registry) FindAvailable(capacity int) (*game.Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.sessions {
		if s.Capacity() == capacity && s.Available() {
			return s, true
		}
	}
	return nil, false
}

// List returns listing records for all live sessions
func (r *Registry) List() []model.GameInfo {
	r.mu.RLock()
	sessions := make([]*game.Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		sessions = append(sessions, s)
	}
	r.mu.RUnlock()

	infos := make([]model.GameInfo, 0, len(sessions))
	for _, s := range sessions {
		infos = append(infos, s.Info())
	}
	return infos
}

// BindPlayer records that a player is enrolled in a session. A player may be
// in at most one session at a time.
func (r *Registry) BindPlayer(player model.PlayerID, gameID model.GameID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.players[player]; ok {
		return model.ErrAlreadyInGame
	}
	r.players[player] = gameID
	return nil
}

// ReleasePlayer removes a player's index entry
func (r *Registry) ReleasePlayer(player model.PlayerID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.players, player)
}

// PlayerGame returns the session id a player is enrolled in
func (r *Registry) PlayerGame(player model.PlayerID) (model.GameID, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.players[player]
	return id, ok
}

// PlayerCount returns the number of players enrolled across all sessions
func (r *Registry) PlayerCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.players)
}

package game

import (
	"github.com/MinoUni/who-am-i-team-3/internal/dependencies/random"
	"github.com/MinoUni/who-am-i-team-3/internal/model"
)

// waitingForPlayers is the enrollment phase. Players join until the session
// reaches capacity, at which point it advances to character suggestion.
type waitingForPlayers struct {
	capacity int
	order    []model.PlayerID
	byID     map[model.PlayerID]*model.PlayerStanding
	rnd      random.Random
}

func newWaitingForPlayers(capacity int, rnd random.Random) *waitingForPlayers {
	return &waitingForPlayers{
		capacity: capacity,
		byID:     make(map[model.PlayerID]*model.PlayerStanding, capacity),
		rnd:      rnd,
	}
}

func (w *waitingForPlayers) phase() model.GamePhase {
	return model.PhaseWaitingForPlayers
}

func (w *waitingForPlayers) standings() []model.PlayerStanding {
	return standingsSnapshot(w.order, w.byID)
}

func (w *waitingForPlayers) findPlayer(id model.PlayerID) (*model.Player, bool) {
	st, ok := w.byID[id]
	if !ok {
		return nil, false
	}
	return st.Player, true
}

// enroll adds a player with a NOT_READY standing
func (w *waitingForPlayers) enroll(id model.PlayerID) (*model.Player, error) {
	if _, ok := w.byID[id]; ok {
		return nil, model.ErrAlreadyInGame
	}
	if len(w.order) >= w.capacity {
		return nil, model.ErrCapacityExceeded
	}

	player := &model.Player{ID: id, DisplayName: string(id)}
	w.byID[id] = &model.PlayerStanding{
		Player: player,
		State:  model.PlayerStateNotReady,
	}
	w.order = append(w.order, id)
	return player, nil
}

func (w *waitingForPlayers) leave(id model.PlayerID) (*model.Player, error) {
	st, ok := w.byID[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	delete(w.byID, id)
	w.order = removeID(w.order, id)
	return st.Player, nil
}

func (w *waitingForPlayers) readyToAdvance() bool {
	return len(w.order) == w.capacity
}

func (w *waitingForPlayers) next() (state, error) {
	if !w.readyToAdvance() {
		return nil, model.ErrIllegalTransition
	}
	return newSuggestingCharacters(w.order, w.byID, w.rnd), nil
}

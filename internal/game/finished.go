package game

import (
	"github.com/MinoUni/who-am-i-team-3/internal/model"
)

// gameFinished is the terminal phase. It keeps the final standings and the
// complete history for read access; the only mutation left is leaving.
type gameFinished struct {
	order   []model.PlayerID
	byID    map[model.PlayerID]*model.PlayerStanding
	history *model.GameHistory
}

func newGameFinished(order []model.PlayerID, byID map[model.PlayerID]*model.PlayerStanding, history *model.GameHistory) *gameFinished {
	finalOrder := make([]model.PlayerID, len(order))
	copy(finalOrder, order)
	return &gameFinished{
		order:   finalOrder,
		byID:    byID,
		history: history,
	}
}

func (g *gameFinished) phase() model.GamePhase {
	return model.PhaseGameFinished
}

func (g *gameFinished) standings() []model.PlayerStanding {
	return standingsSnapshot(g.order, g.byID)
}

func (g *gameFinished) findPlayer(id model.PlayerID) (*model.Player, bool) {
	st, ok := g.byID[id]
	if !ok {
		return nil, false
	}
	return st.Player, true
}

func (g *gameFinished) leave(id model.PlayerID) (*model.Player, error) {
	st, ok := g.byID[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	delete(g.byID, id)
	g.order = removeID(g.order, id)
	return st.Player, nil
}

func (g *gameFinished) records() []model.QuestionRecord {
	return g.history.Records()
}

// winners returns the players that guessed their character, in enrollment order
func (g *gameFinished) winners() []model.PlayerID {
	var out []model.PlayerID
	for _, id := range g.order {
		if g.byID[id].State == model.PlayerStateFinished {
			out = append(out, id)
		}
	}
	return out
}

// loser returns the last player standing, if they are still enrolled
func (g *gameFinished) loser() model.PlayerID {
	for _, id := range g.order {
		if g.byID[id].State == model.PlayerStateLost {
			return id
		}
	}
	return ""
}

func (g *gameFinished) readyToAdvance() bool {
	return false
}

func (g *gameFinished) next() (state, error) {
	return nil, model.ErrIllegalTransition
}

package game

import (
	"github.com/MinoUni/who-am-i-team-3/internal/model"
)

// state is one phase of the session state machine. A session owns exactly
// one live state at a time; mutations happen only through the session's
// lock, so states themselves are not synchronized.
type state interface {
	// phase identifies the state for dispatch and reporting
	phase() model.GamePhase

	// standings returns a snapshot of all player standings in enrollment order
	standings() []model.PlayerStanding

	// findPlayer looks up a player by id
	findPlayer(id model.PlayerID) (*model.Player, bool)

	// leave removes the player and returns them
	leave(id model.PlayerID) (*model.Player, error)

	// readyToAdvance reports whether the session should transition
	readyToAdvance() bool

	// next constructs the following state, threading the standings forward
	next() (state, error)
}

// standingsSnapshot copies standings in the given order. Player structs are
// copied so callers never observe later mutations.
func standingsSnapshot(order []model.PlayerID, byID map[model.PlayerID]*model.PlayerStanding) []model.PlayerStanding {
	out := make([]model.PlayerStanding, 0, len(order))
	for _, id := range order {
		st, ok := byID[id]
		if !ok {
			continue
		}
		player := *st.Player
		out = append(out, model.PlayerStanding{
			Player:     &player,
			State:      st.State,
			LastAnswer: st.LastAnswer,
		})
	}
	return out
}

// removeID deletes id from an ordered slice, preserving order
func removeID(order []model.PlayerID, id model.PlayerID) []model.PlayerID {
	for i, v := range order {
		if v == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}

package game

import (
	"github.com/MinoUni/who-am-i-team-3/internal/dependencies/random"
	"github.com/MinoUni/who-am-i-team-3/internal/model"
)

// suggestingCharacters is the phase where each player privately submits a
// display name and one character. Once everyone is READY the characters are
// assigned and the session advances to the question phase.
type suggestingCharacters struct {
	order []model.PlayerID
	byID  map[model.PlayerID]*model.PlayerStanding

	// suggestions maps author to the character they proposed
	suggestions map[model.PlayerID]string

	rnd random.Random
}

func newSuggestingCharacters(order []model.PlayerID, byID map[model.PlayerID]*model.PlayerStanding, rnd random.Random) *suggestingCharacters {
	next := make([]model.PlayerID, len(order))
	copy(next, order)
	return &suggestingCharacters{
		order:       next,
		byID:        byID,
		suggestions: make(map[model.PlayerID]string, len(order)),
		rnd:         rnd,
	}
}

func (s *suggestingCharacters) phase() model.GamePhase {
	return model.PhaseSuggestingCharacters
}

func (s *suggestingCharacters) standings() []model.PlayerStanding {
	return standingsSnapshot(s.order, s.byID)
}

func (s *suggestingCharacters) findPlayer(id model.PlayerID) (*model.Player, bool) {
	st, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	return st.Player, true
}

// suggest records the player's display name and character proposal.
// A player may suggest exactly once.
func (s *suggestingCharacters) suggest(id model.PlayerID, name, character string) error {
	st, ok := s.byID[id]
	if !ok {
		return model.ErrPlayerNotFound
	}
	if st.State != model.PlayerStateNotReady {
		return model.ErrDuplicateSuggestion
	}

	st.Player.DisplayName = name
	st.Player.SuggestedCharacter = character
	s.suggestions[id] = character
	st.State = model.PlayerStateReady
	return nil
}

func (s *suggestingCharacters) leave(id model.PlayerID) (*model.Player, error) {
	st, ok := s.byID[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	delete(s.byID, id)
	delete(s.suggestions, id)
	s.order = removeID(s.order, id)
	return st.Player, nil
}

func (s *suggestingCharacters) readyToAdvance() bool {
	if len(s.order) == 0 {
		return false
	}
	for _, id := range s.order {
		if s.byID[id].State != model.PlayerStateReady {
			return false
		}
	}
	return true
}

func (s *suggestingCharacters) next() (state, error) {
	if !s.readyToAdvance() {
		return nil, model.ErrIllegalTransition
	}

	if err := s.assignCharacters(); err != nil {
		return nil, err
	}

	return newProcessingQuestion(s.order, s.byID), nil
}

// assignCharacters maps the suggested characters onto the players:
//
//  1. Arrange the authors in a random cyclic order.
//  2. Assign to each author the character suggested by the next author in
//     the cycle, so no author ever receives their own suggestion.
//  3. Hand out any still-untaken characters at random to players that did
//     not author one (only reachable in partially-populated sessions).
//
// The postcondition that every player holds a character is verified rather
// than assumed; a violation is a defect in this algorithm, not user input.
func (s *suggestingCharacters) assignCharacters() error {
	authors := make([]model.PlayerID, 0, len(s.suggestions))
	for _, id := range s.order {
		if _, ok := s.suggestions[id]; ok {
			authors = append(authors, id)
		}
	}

	s.rnd.Shuffle(len(authors), func(i, j int) {
		authors[i], authors[j] = authors[j], authors[i]
	})

	taken := make(map[model.PlayerID]bool, len(authors))
	for i, author := range authors {
		giver := authors[(i+1)%len(authors)]
		s.byID[author].Player.AssignedCharacter = s.suggestions[giver]
		taken[giver] = true
	}

	// Leftover characters go to players without one, without replacement
	var pool []string
	for _, author := range authors {
		if !taken[author] {
			pool = append(pool, s.suggestions[author])
		}
	}
	for _, id := range s.order {
		st := s.byID[id]
		if st.Player.AssignedCharacter != "" {
			continue
		}
		if len(pool) == 0 {
			break
		}
		pick := s.rnd.Intn(len(pool))
		st.Player.AssignedCharacter = pool[pick]
		pool = append(pool[:pick], pool[pick+1:]...)
	}

	for _, id := range s.order {
		if s.byID[id].Player.AssignedCharacter == "" {
			return model.ErrAssignmentIncomplete
		}
	}
	return nil
}

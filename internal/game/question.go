package game

import (
	"github.com/MinoUni/who-am-i-team-3/internal/model"
)

// processingQuestion is the turn-based play phase. Exactly one active player
// is the current asker; the others answer. Rounds close when every active
// non-asker has answered, at which point the answers are tallied and the
// turn either stays or passes.
type processingQuestion struct {
	// enrollOrder preserves enrollment order for standings snapshots;
	// it still contains FINISHED and LOST players.
	enrollOrder []model.PlayerID
	byID        map[model.PlayerID]*model.PlayerStanding

	// askOrder is the cyclic rotation of active players only
	askOrder []model.PlayerID
	askerIdx int

	history *model.GameHistory
	done    bool
}

func newProcessingQuestion(order []model.PlayerID, byID map[model.PlayerID]*model.PlayerStanding) *processingQuestion {
	enrollOrder := make([]model.PlayerID, len(order))
	copy(enrollOrder, order)
	askOrder := make([]model.PlayerID, len(order))
	copy(askOrder, order)

	pq := &processingQuestion{
		enrollOrder: enrollOrder,
		byID:        byID,
		askOrder:    askOrder,
		askerIdx:    0,
		history:     model.NewGameHistory(),
	}
	pq.reset()
	return pq
}

func (pq *processingQuestion) phase() model.GamePhase {
	return model.PhaseProcessingQuestion
}

func (pq *processingQuestion) standings() []model.PlayerStanding {
	return standingsSnapshot(pq.enrollOrder, pq.byID)
}

func (pq *processingQuestion) findPlayer(id model.PlayerID) (*model.Player, bool) {
	st, ok := pq.byID[id]
	if !ok {
		return nil, false
	}
	return st.Player, true
}

// currentAsker returns the id of the player whose turn it is
func (pq *processingQuestion) currentAsker() model.PlayerID {
	if len(pq.askOrder) == 0 {
		return ""
	}
	return pq.askOrder[pq.askerIdx]
}

// turnInfo returns the current asker and the full standings snapshot
func (pq *processingQuestion) turnInfo() model.TurnSnapshot {
	var asker *model.Player
	if id := pq.currentAsker(); id != "" {
		if st, ok := pq.byID[id]; ok {
			player := *st.Player
			asker = &player
		}
	}
	return model.TurnSnapshot{
		Asker:   asker,
		Players: pq.standings(),
	}
}

func (pq *processingQuestion) records() []model.QuestionRecord {
	return pq.history.Records()
}

// askQuestion opens a question round for the current asker
func (pq *processingQuestion) askQuestion(id model.PlayerID, text string) error {
	return pq.openRound(id, model.RecordQuestion, text)
}

// submitGuess opens a guess round for the current asker
func (pq *processingQuestion) submitGuess(id model.PlayerID, text string) error {
	return pq.openRound(id, model.RecordGuess, text)
}

func (pq *processingQuestion) openRound(id model.PlayerID, kind model.RecordKind, text string) error {
	st, ok := pq.byID[id]
	if !ok {
		return model.ErrPlayerNotFound
	}
	if id != pq.currentAsker() || st.State != model.PlayerStateAsking {
		return model.ErrIllegalState
	}

	pq.history.Open(id, kind, text)
	st.State = model.PlayerStateAsked
	return nil
}

// answerQuestion records an answer to the open question round
func (pq *processingQuestion) answerQuestion(id model.PlayerID, answer model.Answer) error {
	if !model.ValidQuestionAnswer(answer) {
		return model.ErrInvalidAnswer
	}
	if err := pq.recordAnswer(id, model.RecordQuestion, answer); err != nil {
		return err
	}
	if pq.roundComplete() {
		pq.tallyQuestion()
	}
	return nil
}

// answerGuess records an answer to the open guess round
func (pq *processingQuestion) answerGuess(id model.PlayerID, answer model.Answer) error {
	if !model.ValidGuessAnswer(answer) {
		return model.ErrInvalidAnswer
	}
	if err := pq.recordAnswer(id, model.RecordGuess, answer); err != nil {
		return err
	}
	if pq.roundComplete() {
		pq.tallyGuess()
	}
	return nil
}

func (pq *processingQuestion) recordAnswer(id model.PlayerID, kind model.RecordKind, answer model.Answer) error {
	st, ok := pq.byID[id]
	if !ok {
		return model.ErrPlayerNotFound
	}
	rec := pq.history.Current()
	if rec == nil || rec.Kind != kind {
		return model.ErrNoOpenQuestion
	}
	if st.State != model.PlayerStateAnswering {
		return model.ErrIllegalState
	}

	pq.history.AddAnswer(id, answer)
	st.LastAnswer = answer
	st.State = model.PlayerStateAnswered
	return nil
}

// roundComplete reports whether every active non-asker has answered
func (pq *processingQuestion) roundComplete() bool {
	if len(pq.askOrder) < 2 {
		return false
	}
	answered := 0
	for _, id := range pq.askOrder {
		if pq.byID[id].State == model.PlayerStateAnswered {
			answered++
		}
	}
	return answered == len(pq.askOrder)-1
}

// tallyQuestion closes a question round. NOT_SURE counts towards yes, and
// the turn passes only on a strict no-majority: ties favor the asker.
func (pq *processingQuestion) tallyQuestion() {
	yes, no := 0, 0
	for _, id := range pq.askOrder {
		if id == pq.currentAsker() {
			continue
		}
		switch pq.byID[id].LastAnswer {
		case model.AnswerYes, model.AnswerNotSure:
			yes++
		case model.AnswerNo:
			no++
		}
	}

	pq.history.Close()
	if no > yes {
		pq.askerIdx = (pq.askerIdx + 1) % len(pq.askOrder)
	}
	pq.reset()
}

// tallyGuess closes a guess round. On a strict yes-majority the asker has
// guessed their character and finishes; either way the turn advances.
func (pq *processingQuestion) tallyGuess() {
	yes, no := 0, 0
	for _, id := range pq.askOrder {
		if id == pq.currentAsker() {
			continue
		}
		switch pq.byID[id].LastAnswer {
		case model.AnswerYes:
			yes++
		case model.AnswerNo:
			no++
		}
	}

	pq.history.Close()
	if yes > no {
		asker := pq.byID[pq.currentAsker()]
		asker.State = model.PlayerStateFinished
		asker.LastAnswer = ""
		pq.askOrder = append(pq.askOrder[:pq.askerIdx], pq.askOrder[pq.askerIdx+1:]...)
		pq.afterAskerRemoved()
		return
	}

	pq.askerIdx = (pq.askerIdx + 1) % len(pq.askOrder)
	pq.reset()
}

// afterAskerRemoved restores the rotation invariant once the current asker
// has left it. The slot at askerIdx already points at the next player.
func (pq *processingQuestion) afterAskerRemoved() {
	if len(pq.askOrder) == 0 {
		pq.done = true
		return
	}
	pq.askerIdx %= len(pq.askOrder)

	if len(pq.askOrder) == 1 {
		// Last player standing never got to guess their character
		last := pq.byID[pq.askOrder[0]]
		last.State = model.PlayerStateLost
		last.LastAnswer = ""
		pq.askOrder = nil
		pq.done = true
		return
	}

	pq.reset()
}

// reset starts a fresh round: the current asker goes to ASKING, every other
// active player to ANSWERING, and recorded answers are cleared.
func (pq *processingQuestion) reset() {
	asker := pq.currentAsker()
	for _, id := range pq.askOrder {
		st := pq.byID[id]
		if id == asker {
			st.State = model.PlayerStateAsking
		} else {
			st.State = model.PlayerStateAnswering
		}
		st.LastAnswer = ""
	}
}

func (pq *processingQuestion) leave(id model.PlayerID) (*model.Player, error) {
	st, ok := pq.byID[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}

	delete(pq.byID, id)
	pq.enrollOrder = removeID(pq.enrollOrder, id)

	if !st.State.Active() {
		return st.Player, nil
	}

	wasAsker := id == pq.currentAsker()
	for i, v := range pq.askOrder {
		if v == id {
			pq.askOrder = append(pq.askOrder[:i], pq.askOrder[i+1:]...)
			if i < pq.askerIdx {
				pq.askerIdx--
			}
			break
		}
	}

	if wasAsker {
		// Abandon any round the leaver had open and pass the turn
		pq.history.Close()
		pq.afterAskerRemoved()
		return st.Player, nil
	}

	if len(pq.askOrder) < 2 {
		pq.history.Close()
		pq.afterAskerRemoved()
		return st.Player, nil
	}

	// The round may have been waiting only on the leaver
	if pq.roundComplete() {
		if rec := pq.history.Current(); rec != nil {
			if rec.Kind == model.RecordGuess {
				pq.tallyGuess()
			} else {
				pq.tallyQuestion()
			}
		}
	}
	return st.Player, nil
}

func (pq *processingQuestion) readyToAdvance() bool {
	return pq.done
}

func (pq *processingQuestion) next() (state, error) {
	if !pq.done {
		return nil, model.ErrIllegalTransition
	}
	return newGameFinished(pq.enrollOrder, pq.byID, pq.history), nil
}

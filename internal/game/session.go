package game

import (
	"sync"
	"time"

	"github.com/MinoUni/who-am-i-team-3/internal/dependencies/random"
	"github.com/MinoUni/who-am-i-team-3/internal/model"
)

// Session is one running game. It owns exactly one live state at a time and
// linearizes every operation under its own lock: calls against different
// sessions never contend, calls against the same session never interleave.
// Phase transitions happen inside the same critical section as the
// triggering operation.
type Session struct {
	mu sync.Mutex

	id        model.GameID
	capacity  int
	createdAt time.Time
	closed    bool

	current state
}

// NewSession creates a session in the WaitingForPlayers phase
func NewSession(id model.GameID, capacity int, rnd random.Random, createdAt time.Time) (*Session, error) {
	if capacity < model.MinCapacity {
		return nil, model.ErrInvalidCapacity
	}
	return &Session{
		id:        id,
		capacity:  capacity,
		createdAt: createdAt,
		current:   newWaitingForPlayers(capacity, rnd),
	}, nil
}

// ID returns the session identifier
func (s *Session) ID() model.GameID {
	return s.id
}

// Capacity returns the fixed player capacity
func (s *Session) Capacity() int {
	return s.capacity
}

// CreatedAt returns the creation time
func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

// Phase returns the current phase
func (s *Session) Phase() model.GamePhase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.phase()
}

// Available reports whether the session is still open for enrollment
func (s *Session) Available() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.closed && s.current.phase() == model.PhaseWaitingForPlayers
}

// Info returns a listing record for the session
func (s *Session) Info() model.GameInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.GameInfo{
		ID:          s.id,
		Phase:       s.current.phase(),
		PlayerCount: len(s.current.standings()),
		Capacity:    s.capacity,
	}
}

// Players returns a snapshot of all standings in enrollment order
func (s *Session) Players() []model.PlayerStanding {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.standings()
}

// FindPlayer looks up an enrolled player by id
func (s *Session) FindPlayer(id model.PlayerID) (*model.Player, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.current.findPlayer(id)
	if !ok {
		return nil, false
	}
	player := *p
	return &player, true
}

// Enroll adds a player during the waiting phase. Reaching capacity advances
// the session to SuggestingCharacters within the same critical section.
func (s *Session) Enroll(id model.PlayerID) (*model.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.current.(*waitingForPlayers)
	if s.closed || !ok {
		return nil, model.ErrGameNotFound
	}

	player, err := w.enroll(id)
	if err != nil {
		return nil, err
	}
	if err := s.advanceIfReady(); err != nil {
		return nil, err
	}
	result := *player
	return &result, nil
}

// Suggest records a player's display name and character suggestion. Once
// every player is ready the characters are assigned and the session
// advances to ProcessingQuestion.
func (s *Session) Suggest(id model.PlayerID, name, character string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sc, ok := s.current.(*suggestingCharacters)
	if !ok {
		return model.ErrWrongPhase
	}
	if err := sc.suggest(id, name, character); err != nil {
		return err
	}
	return s.advanceIfReady()
}

// AskQuestion opens a question round for the current asker
func (s *Session) AskQuestion(id model.PlayerID, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pq, ok := s.current.(*processingQuestion)
	if !ok {
		return model.ErrWrongPhase
	}
	if err := pq.askQuestion(id, text); err != nil {
		return err
	}
	return s.advanceIfReady()
}

// SubmitGuess opens a guess round for the current asker
func (s *Session) SubmitGuess(id model.PlayerID, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pq, ok := s.current.(*processingQuestion)
	if !ok {
		return model.ErrWrongPhase
	}
	if err := pq.submitGuess(id, text); err != nil {
		return err
	}
	return s.advanceIfReady()
}

// AnswerQuestion records a player's answer to the open question
func (s *Session) AnswerQuestion(id model.PlayerID, answer model.Answer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pq, ok := s.current.(*processingQuestion)
	if !ok {
		return model.ErrWrongPhase
	}
	if err := pq.answerQuestion(id, answer); err != nil {
		return err
	}
	return s.advanceIfReady()
}

// AnswerGuess records a player's answer to the open guess
func (s *Session) AnswerGuess(id model.PlayerID, answer model.Answer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pq, ok := s.current.(*processingQuestion)
	if !ok {
		return model.ErrWrongPhase
	}
	if err := pq.answerGuess(id, answer); err != nil {
		return err
	}
	return s.advanceIfReady()
}

// TurnInfo returns the current asker and standings snapshot
func (s *Session) TurnInfo(id model.PlayerID) (*model.TurnSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pq, ok := s.current.(*processingQuestion)
	if !ok {
		return nil, model.ErrWrongPhase
	}
	if _, found := pq.findPlayer(id); !found {
		return nil, model.ErrPlayerNotFound
	}
	info := pq.turnInfo()
	return &info, nil
}

// History returns the turn log. It is readable during play and after the
// game finishes.
func (s *Session) History() ([]model.QuestionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch st := s.current.(type) {
	case *processingQuestion:
		return st.records(), nil
	case *gameFinished:
		return st.records(), nil
	default:
		return nil, model.ErrWrongPhase
	}
}

// Leave removes a player from the session. The second return value reports
// whether the session is now empty; an empty session is closed and rejects
// further enrollment.
func (s *Session) Leave(id model.PlayerID) (*model.Player, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	player, err := s.current.leave(id)
	if err != nil {
		return nil, false, err
	}
	if err := s.advanceIfReady(); err != nil {
		return nil, false, err
	}

	empty := len(s.current.standings()) == 0
	if empty {
		s.closed = true
	}
	result := *player
	return &result, empty, nil
}

// Summary builds the terminal record of a finished session
func (s *Session) Summary(finishedAt time.Time) (*model.GameSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.current.(*gameFinished)
	if !ok {
		return nil, model.ErrWrongPhase
	}
	return &model.GameSummary{
		ID:         s.id,
		Capacity:   s.capacity,
		Standings:  g.standings(),
		Winners:    g.winners(),
		Loser:      g.loser(),
		History:    g.records(),
		FinishedAt: finishedAt,
	}, nil
}

// advanceIfReady replaces the current state with its successor when the
// state reports readiness. Called with the session lock held.
func (s *Session) advanceIfReady() error {
	if !s.current.readyToAdvance() {
		return nil
	}
	next, err := s.current.next()
	if err != nil {
		return err
	}
	s.current = next
	return nil
}

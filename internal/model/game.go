package model

import "time"

// GameID uniquely identifies a game session
type GameID string

// GamePhase represents the current phase of a game session
type GamePhase string

const (
	PhaseWaitingForPlayers    GamePhase = "waiting_for_players"
	PhaseSuggestingCharacters GamePhase = "suggesting_characters"
	PhaseProcessingQuestion   GamePhase = "processing_question"
	PhaseGameFinished         GamePhase = "game_finished"
)

// MinCapacity is the smallest legal session size. The assignment algorithm
// needs at least two authors to guarantee no self-assignment.
const MinCapacity = 2

// TurnSnapshot is a point-in-time view of the question phase: who is asking
// and the full standings of every player in the session.
type TurnSnapshot struct {
	Asker   *Player          `json:"asker"`
	Players []PlayerStanding `json:"players"`
}

// GameInfo is a lightweight listing record for a session
type GameInfo struct {
	ID          GameID    `json:"id"`
	Phase       GamePhase `json:"phase"`
	PlayerCount int       `json:"player_count"`
	Capacity    int       `json:"capacity"`
}

// GameDetails is the full view of a session: identity, phase, and standings
type GameDetails struct {
	ID       GameID           `json:"id"`
	Phase    GamePhase        `json:"phase"`
	Capacity int              `json:"capacity"`
	Players  []PlayerStanding `json:"players"`
}

// GameSummary is the terminal record of a finished or disbanded session,
// kept for history queries after the in-memory session is gone.
type GameSummary struct {
	ID         GameID           `json:"id"`
	Capacity   int              `json:"capacity"`
	Standings  []PlayerStanding `json:"standings"`
	Winners    []PlayerID       `json:"winners,omitempty"`
	Loser      PlayerID         `json:"loser,omitempty"`
	History    []QuestionRecord `json:"history"`
	FinishedAt time.Time        `json:"finished_at"`
}

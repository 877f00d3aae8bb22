package model

// PlayerID uniquely identifies a player across the system.
// Players supply their own opaque identifier via the transport layer.
type PlayerID string

// Player represents a game participant. The display name is mutable until
// the player submits their character suggestion; the suggested and assigned
// characters are filled in during the suggestion phase.
type Player struct {
	ID                 PlayerID `json:"id"`
	DisplayName        string   `json:"display_name"`
	SuggestedCharacter string   `json:"suggested_character,omitempty"`
	AssignedCharacter  string   `json:"assigned_character,omitempty"`
}

// PlayerState is a player's position in the per-phase protocol
type PlayerState string

const (
	PlayerStateNotReady  PlayerState = "NOT_READY"
	PlayerStateReady     PlayerState = "READY"
	PlayerStateAsking    PlayerState = "ASKING"
	PlayerStateAsked     PlayerState = "ASKED"
	PlayerStateAnswering PlayerState = "ANSWERING"
	PlayerStateAnswered  PlayerState = "ANSWERED"
	PlayerStateFinished  PlayerState = "FINISHED"
	PlayerStateLost      PlayerState = "LOST"
)

// Active reports whether the player is still in the ask rotation
func (s PlayerState) Active() bool {
	return s != PlayerStateFinished && s != PlayerStateLost
}

// Answer is a player's reply to an open question or guess
type Answer string

const (
	AnswerYes     Answer = "YES"
	AnswerNo      Answer = "NO"
	AnswerNotSure Answer = "NOT_SURE"
)

// ValidQuestionAnswer reports whether a is a legal reply to a question
func ValidQuestionAnswer(a Answer) bool {
	return a == AnswerYes || a == AnswerNo || a == AnswerNotSure
}

// ValidGuessAnswer reports whether a is a legal reply to a guess
func ValidGuessAnswer(a Answer) bool {
	return a == AnswerYes || a == AnswerNo
}

// PlayerStanding wraps a player with their current protocol state and the
// last answer they recorded in the open round. One exists per enrolled
// player; it is mutated only by the session that owns it.
type PlayerStanding struct {
	Player     *Player     `json:"player"`
	State      PlayerState `json:"state"`
	LastAnswer Answer      `json:"last_answer,omitempty"`
}

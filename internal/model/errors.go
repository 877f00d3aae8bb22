package model

import "errors"

// Common errors used across the application
var (
	// Lookup errors
	ErrGameNotFound   = errors.New("game not found")
	ErrPlayerNotFound = errors.New("player not found")

	// Enrollment errors
	ErrInvalidCapacity  = errors.New("capacity must be at least two players")
	ErrCapacityExceeded = errors.New("game is already at capacity")
	ErrAlreadyInGame    = errors.New("player is already in a game")

	// Phase and protocol errors
	ErrWrongPhase          = errors.New("operation not supported in the current phase")
	ErrIllegalState        = errors.New("operation not legal in the player's current state")
	ErrIllegalTransition   = errors.New("phase is not ready to advance")
	ErrDuplicateSuggestion = errors.New("player already submitted a suggestion")
	ErrNoOpenQuestion      = errors.New("no open question to answer")
	ErrInvalidAnswer       = errors.New("invalid answer value")

	// ErrAssignmentIncomplete indicates the character assignment left a
	// player without a character. Always a defect, never user-triggered.
	ErrAssignmentIncomplete = errors.New("character assignment incomplete")
)

package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MinoUni/who-am-i-team-3/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeGameNotFound        = "GAME_NOT_FOUND"
	CodePlayerNotFound      = "PLAYER_NOT_FOUND"
	CodeInvalidCapacity     = "INVALID_CAPACITY"
	CodeCapacityExceeded    = "CAPACITY_EXCEEDED"
	CodeAlreadyInGame       = "ALREADY_IN_GAME"
	CodeWrongPhase          = "WRONG_PHASE"
	CodeIllegalState        = "ILLEGAL_STATE"
	CodeDuplicateSuggestion = "DUPLICATE_SUGGESTION"
	CodeNoOpenQuestion      = "NO_OPEN_QUESTION"
	CodeInvalidAnswer       = "INVALID_ANSWER"
	CodeInternalError       = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrInvalidCapacity):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidCapacity, "Capacity must be at least two"}}
	case errors.Is(err, model.ErrCapacityExceeded):
		return &httpError{http.StatusConflict, APIError{CodeCapacityExceeded, "Game is already full"}}
	case errors.Is(err, model.ErrAlreadyInGame):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyInGame, "Player is already in a game"}}
	case errors.Is(err, model.ErrWrongPhase):
		return &httpError{http.StatusConflict, APIError{CodeWrongPhase, "Operation not supported in the current phase"}}
	case errors.Is(err, model.ErrIllegalState):
		return &httpError{http.StatusForbidden, APIError{CodeIllegalState, "Operation not legal for this player right now"}}
	case errors.Is(err, model.ErrDuplicateSuggestion):
		return &httpError{http.StatusConflict, APIError{CodeDuplicateSuggestion, "Suggestion already submitted"}}
	case errors.Is(err, model.ErrNoOpenQuestion):
		return &httpError{http.StatusConflict, APIError{CodeNoOpenQuestion, "No open question or guess to answer"}}
	case errors.Is(err, model.ErrInvalidAnswer):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidAnswer, "Invalid answer value"}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an error for requests missing the player header
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "X-Player header required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}

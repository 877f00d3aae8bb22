package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/MinoUni/who-am-i-team-3/internal/api/apierr"
	"github.com/MinoUni/who-am-i-team-3/internal/api/middleware"
	"github.com/MinoUni/who-am-i-team-3/internal/api/request"
	"github.com/MinoUni/who-am-i-team-3/internal/api/response"
	"github.com/MinoUni/who-am-i-team-3/internal/model"
	"github.com/MinoUni/who-am-i-team-3/internal/service"
)

// GameHandler serves the game endpoints.
type GameHandler struct {
	service *service.Service
}

// NewGameHandler creates a GameHandler.
func NewGameHandler(svc *service.Service) *GameHandler {
	return &GameHandler{service: svc}
}

func gameID(r *http.Request) model.GameID {
	return model.GameID(mux.Vars(r)["id"])
}

func player(r *http.Request) (model.PlayerID, error) {
	id, ok := middleware.PlayerFromContext(r.Context())
	if !ok {
		return "", apierr.NewUnauthorizedError()
	}
	return id, nil
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apierr.NewInvalidRequestError("Invalid request body")
	}
	return nil
}

// CreateGame handles POST /games. It joins an open game of the requested
// capacity when one exists, otherwise creates a new one.
func (h *GameHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	pid, err := player(r)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	var req request.CreateGame
	if err := decode(r, &req); err != nil {
		apierr.WriteError(w, err)
		return
	}

	details, err := h.service.CreateGame(r.Context(), pid, req.Capacity)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, response.GameDetailsFromModel(*details))
}

// AvailableGames handles GET /games.
func (h *GameHandler) AvailableGames(w http.ResponseWriter, r *http.Request) {
	infos := h.service.AvailableGames(r.Context())
	response.JSON(w, http.StatusOK, response.GamesFromInfo(infos))
}

// AllGamesInfo handles GET /games/info.
func (h *GameHandler) AllGamesInfo(w http.ResponseWriter, r *http.Request) {
	infos := h.service.AllGamesInfo(r.Context())
	response.JSON(w, http.StatusOK, response.GamesFromInfo(infos))
}

// AllPlayersCount handles GET /games/all-players-count.
func (h *GameHandler) AllPlayersCount(w http.ResponseWriter, r *http.Request) {
	count := h.service.AllPlayersCount(r.Context())
	response.JSON(w, http.StatusOK, response.PlayersCount{Count: count})
}

// FinishedGames handles GET /games/finished.
func (h *GameHandler) FinishedGames(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.service.FinishedGames(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	out := make([]response.GameSummary, len(summaries))
	for i, s := range summaries {
		out[i] = response.SummaryFromModel(*s)
	}
	response.JSON(w, http.StatusOK, out)
}

// FindGame handles GET /games/{id}.
func (h *GameHandler) FindGame(w http.ResponseWriter, r *http.Request) {
	pid, err := player(r)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	details, err := h.service.FindGame(r.Context(), gameID(r), pid)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.GameDetailsFromModel(*details))
}

// Enroll handles POST /games/{id}/players.
func (h *GameHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	pid, err := player(r)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	p, err := h.service.Enroll(r.Context(), gameID(r), pid)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	enrolled := response.PlayerFromModel(p)
	enrolled.State = model.PlayerStateNotReady
	response.JSON(w, http.StatusOK, enrolled)
}

// PlayersList handles GET /games/{id}/players.
func (h *GameHandler) PlayersList(w http.ResponseWriter, r *http.Request) {
	standings, err := h.service.PlayersList(r.Context(), gameID(r))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.PlayersFromStandings(standings))
}

// SuggestCharacter handles POST /games/{id}/characters.
func (h *GameHandler) SuggestCharacter(w http.ResponseWriter, r *http.Request) {
	pid, err := player(r)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	var req request.SuggestCharacter
	if err := decode(r, &req); err != nil {
		apierr.WriteError(w, err)
		return
	}
	if strings.TrimSpace(req.Character) == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Character must not be empty"))
		return
	}

	if err := h.service.SuggestCharacter(r.Context(), gameID(r), pid, req.DisplayName, req.Character); err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, nil)
}

// TurnInfo handles GET /games/{id}/turn.
func (h *GameHandler) TurnInfo(w http.ResponseWriter, r *http.Request) {
	pid, err := player(r)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	snap, err := h.service.TurnInfo(r.Context(), gameID(r), pid)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.TurnInfoFromSnapshot(*snap))
}

// AskQuestion handles POST /games/{id}/question.
func (h *GameHandler) AskQuestion(w http.ResponseWriter, r *http.Request) {
	pid, err := player(r)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	var req request.AskQuestion
	if err := decode(r, &req); err != nil {
		apierr.WriteError(w, err)
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Question must not be empty"))
		return
	}

	if err := h.service.AskQuestion(r.Context(), gameID(r), pid, req.Question); err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, nil)
}

// SubmitGuess handles POST /games/{id}/guess.
func (h *GameHandler) SubmitGuess(w http.ResponseWriter, r *http.Request) {
	pid, err := player(r)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	var req request.SubmitGuess
	if err := decode(r, &req); err != nil {
		apierr.WriteError(w, err)
		return
	}
	if strings.TrimSpace(req.Guess) == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Guess must not be empty"))
		return
	}

	if err := h.service.SubmitGuess(r.Context(), gameID(r), pid, req.Guess); err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, nil)
}

// AnswerQuestion handles POST /games/{id}/question/answer.
func (h *GameHandler) AnswerQuestion(w http.ResponseWriter, r *http.Request) {
	h.answer(w, r, h.service.AnswerQuestion)
}

// AnswerGuess handles POST /games/{id}/guess/answer.
func (h *GameHandler) AnswerGuess(w http.ResponseWriter, r *http.Request) {
	h.answer(w, r, h.service.AnswerGuess)
}

func (h *GameHandler) answer(
	w http.ResponseWriter,
	r *http.Request,
	submit func(ctx context.Context, id model.GameID, player model.PlayerID, answer model.Answer) error,
) {
	pid, err := player(r)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	var req request.SubmitAnswer
	if err := decode(r, &req); err != nil {
		apierr.WriteError(w, err)
		return
	}

	if err := submit(r.Context(), gameID(r), pid, model.Answer(req.Answer)); err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, nil)
}

// History handles GET /games/{id}/history.
func (h *GameHandler) History(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.History(r.Context(), gameID(r))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.HistoryFromRecords(records))
}

// Leave handles DELETE /games/{id}/leave.
func (h *GameHandler) Leave(w http.ResponseWriter, r *http.Request) {
	pid, err := player(r)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	p, err := h.service.Leave(r.Context(), gameID(r), pid)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.PlayerFromModel(p))
}

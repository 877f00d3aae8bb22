package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MinoUni/who-am-i-team-3/internal/api/handler"
	"github.com/MinoUni/who-am-i-team-3/internal/api/middleware"
	"github.com/MinoUni/who-am-i-team-3/internal/api/response"
	"github.com/MinoUni/who-am-i-team-3/internal/service"
)

// NewRouter builds the HTTP router for the game API.
func NewRouter(svc *service.Service, logger *slog.Logger) *mux.Router {
	games := handler.NewGameHandler(svc)

	r := mux.NewRouter()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	v1 := r.PathPrefix("/api/v1").Subrouter()
	v1.Use(middleware.RequirePlayer)

	v1.HandleFunc("/games", games.CreateGame).Methods(http.MethodPost)
	v1.HandleFunc("/games", games.AvailableGames).Methods(http.MethodGet)
	v1.HandleFunc("/games/info", games.AllGamesInfo).Methods(http.MethodGet)
	v1.HandleFunc("/games/finished", games.FinishedGames).Methods(http.MethodGet)
	v1.HandleFunc("/games/all-players-count", games.AllPlayersCount).Methods(http.MethodGet)
	v1.HandleFunc("/games/{id}", games.FindGame).Methods(http.MethodGet)
	v1.HandleFunc("/games/{id}/players", games.Enroll).Methods(http.MethodPost)
	v1.HandleFunc("/games/{id}/players", games.PlayersList).Methods(http.MethodGet)
	v1.HandleFunc("/games/{id}/characters", games.SuggestCharacter).Methods(http.MethodPost)
	v1.HandleFunc("/games/{id}/turn", games.TurnInfo).Methods(http.MethodGet)
	v1.HandleFunc("/games/{id}/question", games.AskQuestion).Methods(http.MethodPost)
	v1.HandleFunc("/games/{id}/question/answer", games.AnswerQuestion).Methods(http.MethodPost)
	v1.HandleFunc("/games/{id}/guess", games.SubmitGuess).Methods(http.MethodPost)
	v1.HandleFunc("/games/{id}/guess/answer", games.AnswerGuess).Methods(http.MethodPost)
	v1.HandleFunc("/games/{id}/history", games.History).Methods(http.MethodGet)
	v1.HandleFunc("/games/{id}/leave", games.Leave).Methods(http.MethodDelete)

	return r
}

package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MinoUni/who-am-i-team-3/internal/api"
	"github.com/MinoUni/who-am-i-team-3/internal/api/response"
	"github.com/MinoUni/who-am-i-team-3/internal/factory"
	"github.com/MinoUni/who-am-i-team-3/internal/testutil"
)

// testServer wires the router against the production factory
type testServer struct {
	handler http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	// API tests are integration tests - use production factory with real random/clock
	app, err := factory.New(factory.Config{})
	require.NoError(t, err)

	router := api.NewRouter(app.GameService, testutil.NopLogger())
	return &testServer{handler: router}
}

func (ts *testServer) request(method, path string, body any, player string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if player != "" {
		req.Header.Set("X-Player", player)
	}

	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body.Error.Code
}

// createGame joins or creates a game of the given capacity for the player
func (ts *testServer) createGame(t *testing.T, player string, capacity int) response.GameDetails {
	t.Helper()
	rec := ts.request(http.MethodPost, "/api/v1/games", map[string]int{"capacity": capacity}, player)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeBody[response.GameDetails](t, rec)
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(http.MethodGet, "/health", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestMissingPlayerHeader(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(http.MethodGet, "/api/v1/games", nil, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", errorCode(t, rec))
}

func TestCreateGame(t *testing.T) {
	ts := newTestServer(t)

	game := ts.createGame(t, "alice", 2)
	assert.Equal(t, "waiting_for_players", string(game.Phase))
	assert.Equal(t, 2, game.Capacity)
	require.Len(t, game.Players, 1)
	assert.Equal(t, "alice", string(game.Players[0].ID))
}

func TestCreateGameInvalidCapacity(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(http.MethodPost, "/api/v1/games", map[string]int{"capacity": 1}, "alice")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_CAPACITY", errorCode(t, rec))
}

func TestCreateGameInvalidBody(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/games", bytes.NewBufferString("{"))
	req.Header.Set("X-Player", "alice")
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_REQUEST", errorCode(t, rec))
}

func TestSecondPlayerJoinsSameGame(t *testing.T) {
	ts := newTestServer(t)

	first := ts.createGame(t, "alice", 2)
	second := ts.createGame(t, "bob", 2)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "suggesting_characters", string(second.Phase))
}

func TestCreateGameWhileEnrolled(t *testing.T) {
	ts := newTestServer(t)

	ts.createGame(t, "alice", 2)
	rec := ts.request(http.MethodPost, "/api/v1/games", map[string]int{"capacity": 2}, "alice")
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "ALREADY_IN_GAME", errorCode(t, rec))
}

func TestFindGameHiddenFromStrangers(t *testing.T) {
	ts := newTestServer(t)

	game := ts.createGame(t, "alice", 2)

	rec := ts.request(http.MethodGet, fmt.Sprintf("/api/v1/games/%s", game.ID), nil, "alice")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.request(http.MethodGet, fmt.Sprintf("/api/v1/games/%s", game.ID), nil, "stranger")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "GAME_NOT_FOUND", errorCode(t, rec))
}

func TestSuggestBeforeGameFull(t *testing.T) {
	ts := newTestServer(t)

	game := ts.createGame(t, "alice", 2)
	rec := ts.request(http.MethodPost, fmt.Sprintf("/api/v1/games/%s/characters", game.ID),
		map[string]string{"displayName": "Alice", "character": "Robin"}, "alice")
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "WRONG_PHASE", errorCode(t, rec))
}

func TestSuggestEmptyCharacter(t *testing.T) {
	ts := newTestServer(t)

	game := ts.createGame(t, "alice", 2)
	ts.createGame(t, "bob", 2)

	rec := ts.request(http.MethodPost, fmt.Sprintf("/api/v1/games/%s/characters", game.ID),
		map[string]string{"displayName": "Alice", "character": "  "}, "alice")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_REQUEST", errorCode(t, rec))
}

// startedGame brings alice and bob through enrollment and suggestion
func startedGame(t *testing.T, ts *testServer) response.GameDetails {
	t.Helper()
	game := ts.createGame(t, "alice", 2)
	ts.createGame(t, "bob", 2)

	rec := ts.request(http.MethodPost, fmt.Sprintf("/api/v1/games/%s/characters", game.ID),
		map[string]string{"displayName": "Alice", "character": "Robin"}, "alice")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = ts.request(http.MethodPost, fmt.Sprintf("/api/v1/games/%s/characters", game.ID),
		map[string]string{"displayName": "Bob", "character": "Joker"}, "bob")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	return game
}

func TestCharactersHiddenWhilePlaying(t *testing.T) {
	ts := newTestServer(t)
	game := startedGame(t, ts)

	rec := ts.request(http.MethodGet, fmt.Sprintf("/api/v1/games/%s/players", game.ID), nil, "alice")
	require.Equal(t, http.StatusOK, rec.Code)

	players := decodeBody[[]response.Player](t, rec)
	require.Len(t, players, 2)
	for _, p := range players {
		assert.Empty(t, p.AssignedCharacter)
	}
}

func TestTurnAndQuestionFlow(t *testing.T) {
	ts := newTestServer(t)
	game := startedGame(t, ts)

	rec := ts.request(http.MethodGet, fmt.Sprintf("/api/v1/games/%s/turn", game.ID), nil, "bob")
	require.Equal(t, http.StatusOK, rec.Code)
	turn := decodeBody[response.TurnInfo](t, rec)
	assert.Equal(t, "alice", string(turn.Asker.ID))

	rec = ts.request(http.MethodPost, fmt.Sprintf("/api/v1/games/%s/question", game.ID),
		map[string]string{"question": "Am I a hero?"}, "bob")
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "ILLEGAL_STATE", errorCode(t, rec))

	rec = ts.request(http.MethodPost, fmt.Sprintf("/api/v1/games/%s/question", game.ID),
		map[string]string{"question": "Am I a hero?"}, "alice")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.request(http.MethodPost, fmt.Sprintf("/api/v1/games/%s/question/answer", game.ID),
		map[string]string{"answer": "MAYBE"}, "bob")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ANSWER", errorCode(t, rec))

	rec = ts.request(http.MethodPost, fmt.Sprintf("/api/v1/games/%s/question/answer", game.ID),
		map[string]string{"answer": "YES"}, "bob")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.request(http.MethodGet, fmt.Sprintf("/api/v1/games/%s/history", game.ID), nil, "alice")
	require.Equal(t, http.StatusOK, rec.Code)
	history := decodeBody[[]response.HistoryRecord](t, rec)
	require.Len(t, history, 1)
	assert.Equal(t, "Am I a hero?", history[0].Text)
}

func TestGuessFinishesGame(t *testing.T) {
	ts := newTestServer(t)
	game := startedGame(t, ts)

	// In a two player game alice always holds bob's suggestion
	rec := ts.request(http.MethodPost, fmt.Sprintf("/api/v1/games/%s/guess", game.ID),
		map[string]string{"guess": "Joker"}, "alice")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.request(http.MethodPost, fmt.Sprintf("/api/v1/games/%s/guess/answer", game.ID),
		map[string]string{"answer": "YES"}, "bob")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.request(http.MethodGet, fmt.Sprintf("/api/v1/games/%s", game.ID), nil, "alice")
	require.Equal(t, http.StatusOK, rec.Code)
	details := decodeBody[response.GameDetails](t, rec)
	assert.Equal(t, "game_finished", string(details.Phase))

	// Characters are revealed once the game is over
	for _, p := range details.Players {
		assert.NotEmpty(t, p.AssignedCharacter)
	}

	rec = ts.request(http.MethodGet, "/api/v1/games/finished", nil, "alice")
	require.Equal(t, http.StatusOK, rec.Code)
	finished := decodeBody[[]response.GameSummary](t, rec)
	require.Len(t, finished, 1)
	assert.Equal(t, []string{"alice"}, func() []string {
		out := make([]string, len(finished[0].Winners))
		for i, w := range finished[0].Winners {
			out[i] = string(w)
		}
		return out
	}())
}

func TestLeaveGame(t *testing.T) {
	ts := newTestServer(t)
	game := ts.createGame(t, "alice", 2)

	rec := ts.request(http.MethodDelete, fmt.Sprintf("/api/v1/games/%s/leave", game.ID), nil, "alice")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.request(http.MethodGet, fmt.Sprintf("/api/v1/games/%s", game.ID), nil, "alice")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListingsAndCounts(t *testing.T) {
	ts := newTestServer(t)
	ts.createGame(t, "alice", 2)

	rec := ts.request(http.MethodGet, "/api/v1/games", nil, "alice")
	require.Equal(t, http.StatusOK, rec.Code)
	games := decodeBody[[]response.Game](t, rec)
	require.Len(t, games, 1)
	assert.Equal(t, 1, games[0].PlayerCount)

	rec = ts.request(http.MethodGet, "/api/v1/games/info", nil, "alice")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.request(http.MethodGet, "/api/v1/games/all-players-count", nil, "alice")
	require.Equal(t, http.StatusOK, rec.Code)
	count := decodeBody[response.PlayersCount](t, rec)
	assert.Equal(t, 1, count.Count)
}

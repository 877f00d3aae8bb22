package e2e_test

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MinoUni/who-am-i-team-3/internal/api"
	"github.com/MinoUni/who-am-i-team-3/internal/factory"
	"github.com/MinoUni/who-am-i-team-3/internal/testutil"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "whoami-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/whoami")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
	}
}

// runAs invokes the CLI as the given player with JSON output
func (r *cliRunner) runAs(player string, args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--player", player,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	app, err := factory.New(factory.Config{})
	require.NoError(t, err)

	router := api.NewRouter(app.GameService, testutil.NopLogger())

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/health")

	return &testServer{
		addr: serverURL,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Response types for JSON parsing
type gameDetailsResponse struct {
	ID       string `json:"id"`
	Phase    string `json:"phase"`
	Capacity int    `json:"capacity"`
	Players  []struct {
		ID                string `json:"id"`
		DisplayName       string `json:"displayName"`
		State             string `json:"state"`
		AssignedCharacter string `json:"assignedCharacter"`
	} `json:"players"`
}

type turnInfoResponse struct {
	Asker struct {
		ID string `json:"id"`
	} `json:"asker"`
}

type historyResponse []struct {
	Asker string `json:"asker"`
	Kind  string `json:"kind"`
	Text  string `json:"text"`
}

func TestCLIFullGame(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	server := startTestServer(t)
	defer server.shutdown()

	cli := newCLIRunner(t, server.addr)

	// Health check
	out, err := cli.runAs("alice", "health")
	require.NoError(t, err, out)

	// Alice opens a two player game
	out, err = cli.runAs("alice", "game", "create", "2")
	require.NoError(t, err, out)
	var created gameDetailsResponse
	require.NoError(t, json.Unmarshal([]byte(out), &created))
	assert.Equal(t, "waiting_for_players", created.Phase)
	gameID := created.ID

	// Bob asks for the same capacity and lands in alice's game
	out, err = cli.runAs("bob", "game", "create", "2")
	require.NoError(t, err, out)
	var joined gameDetailsResponse
	require.NoError(t, json.Unmarshal([]byte(out), &joined))
	assert.Equal(t, gameID, joined.ID)
	assert.Equal(t, "suggesting_characters", joined.Phase)

	// Both suggest characters
	out, err = cli.runAs("alice", "game", "suggest", gameID, "Robin", "--name", "Alice")
	require.NoError(t, err, out)
	out, err = cli.runAs("bob", "game", "suggest", gameID, "Joker", "--name", "Bob")
	require.NoError(t, err, out)

	// Alice starts asking
	out, err = cli.runAs("bob", "game", "turn", gameID)
	require.NoError(t, err, out)
	var turn turnInfoResponse
	require.NoError(t, json.Unmarshal([]byte(out), &turn))
	assert.Equal(t, "alice", turn.Asker.ID)

	// One question round
	out, err = cli.runAs("alice", "game", "ask", gameID, "Am I a villain?")
	require.NoError(t, err, out)
	out, err = cli.runAs("bob", "game", "answer", gameID, "YES")
	require.NoError(t, err, out)

	// Alice holds bob's suggestion in a two player game
	out, err = cli.runAs("alice", "game", "guess", gameID, "Joker")
	require.NoError(t, err, out)
	out, err = cli.runAs("bob", "game", "answer-guess", gameID, "YES")
	require.NoError(t, err, out)

	// The game is finished, characters revealed
	out, err = cli.runAs("alice", "game", "get", gameID)
	require.NoError(t, err, out)
	var finished gameDetailsResponse
	require.NoError(t, json.Unmarshal([]byte(out), &finished))
	assert.Equal(t, "game_finished", finished.Phase)
	for _, p := range finished.Players {
		assert.NotEmpty(t, p.AssignedCharacter)
	}

	// History kept both rounds
	out, err = cli.runAs("alice", "game", "history", gameID)
	require.NoError(t, err, out)
	var history historyResponse
	require.NoError(t, json.Unmarshal([]byte(out), &history))
	require.Len(t, history, 2)
	assert.Equal(t, "question", history[0].Kind)
	assert.Equal(t, "guess", history[1].Kind)
}

func TestCLIRejectsStranger(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	server := startTestServer(t)
	defer server.shutdown()

	cli := newCLIRunner(t, server.addr)

	out, err := cli.runAs("alice", "game", "create", "2")
	require.NoError(t, err, out)
	var created gameDetailsResponse
	require.NoError(t, json.Unmarshal([]byte(out), &created))

	out, err = cli.runAs("stranger", "game", "get", created.ID)
	require.Error(t, err, out)
	assert.Contains(t, out, "GAME_NOT_FOUND")
}

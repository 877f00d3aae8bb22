package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Game:
		o.printGame(v)
	case []Game:
		o.printGames(v)
	case GameDetails:
		o.printGameDetails(v)
	case Player:
		o.printPlayer(v)
	case []Player:
		o.printPlayers(v)
	case TurnInfo:
		o.printTurnInfo(v)
	case []HistoryRecord:
		o.printHistory(v)
	case GameSummary:
		o.printSummary(v)
	case []GameSummary:
		o.printSummaries(v)
	case PlayersCount:
		fmt.Printf("Players in games: %d\n", v.Count)
	case HealthResult:
		fmt.Printf("Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Game response type (matches API)
type Game struct {
	ID          string `json:"id"`
	Phase       string `json:"phase"`
	PlayerCount int    `json:"playerCount"`
	Capacity    int    `json:"capacity"`
}

// Player response type
type Player struct {
	ID                string `json:"id"`
	DisplayName       string `json:"displayName"`
	State             string `json:"state"`
	AssignedCharacter string `json:"assignedCharacter,omitempty"`
	LastAnswer        string `json:"lastAnswer,omitempty"`
}

// GameDetails response type
type GameDetails struct {
	ID       string   `json:"id"`
	Phase    string   `json:"phase"`
	Capacity int      `json:"capacity"`
	Players  []Player `json:"players"`
}

// TurnInfo response type
type TurnInfo struct {
	Asker   Player   `json:"asker"`
	Players []Player `json:"players"`
}

// PlayerAnswer response type
type PlayerAnswer struct {
	Player string `json:"player"`
	Answer string `json:"answer"`
}

// HistoryRecord response type
type HistoryRecord struct {
	Asker   string         `json:"asker"`
	Kind    string         `json:"kind"`
	Text    string         `json:"text"`
	Answers []PlayerAnswer `json:"answers"`
}

// GameSummary response type
type GameSummary struct {
	ID         string          `json:"id"`
	Capacity   int             `json:"capacity"`
	Players    []Player        `json:"players"`
	Winners    []string        `json:"winners"`
	Loser      string          `json:"loser,omitempty"`
	History    []HistoryRecord `json:"history"`
	FinishedAt time.Time       `json:"finishedAt"`
}

// PlayersCount response type
type PlayersCount struct {
	Count int `json:"count"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printGame(g Game) {
	fmt.Printf("Game: %s\n", g.ID)
	fmt.Printf("Phase: %s\n", g.Phase)
	fmt.Printf("Players: %d/%d\n", g.PlayerCount, g.Capacity)
}

func (o *Output) printGames(games []Game) {
	if len(games) == 0 {
		fmt.Println("No games")
		return
	}
	for _, g := range games {
		fmt.Printf("  %s  %s  %d/%d\n", g.ID, g.Phase, g.PlayerCount, g.Capacity)
	}
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s (%s)\n", p.DisplayName, p.ID)
	fmt.Printf("State: %s\n", p.State)
	if p.AssignedCharacter != "" {
		fmt.Printf("Character: %s\n", p.AssignedCharacter)
	}
}

func (o *Output) printPlayers(players []Player) {
	fmt.Printf("Players (%d):\n", len(players))
	for _, p := range players {
		extra := ""
		if p.AssignedCharacter != "" {
			extra = fmt.Sprintf(" [was %s]", p.AssignedCharacter)
		}
		if p.LastAnswer != "" {
			extra += fmt.Sprintf(" answered %s", p.LastAnswer)
		}
		fmt.Printf("  - %s (%s) - %s%s\n", p.DisplayName, p.ID, p.State, extra)
	}
}

func (o *Output) printGameDetails(g GameDetails) {
	fmt.Printf("Game: %s\n", g.ID)
	fmt.Printf("Phase: %s\n", g.Phase)
	fmt.Printf("Capacity: %d\n", g.Capacity)
	o.printPlayers(g.Players)
}

func (o *Output) printTurnInfo(t TurnInfo) {
	fmt.Printf("Asking: %s (%s)\n", t.Asker.DisplayName, t.Asker.ID)
	o.printPlayers(t.Players)
}

func (o *Output) printHistory(records []HistoryRecord) {
	if len(records) == 0 {
		fmt.Println("No questions asked yet")
		return
	}
	for i, rec := range records {
		label := "asked"
		if rec.Kind == "guess" {
			label = "guessed"
		}
		fmt.Printf("%d. %s %s: %q\n", i+1, rec.Asker, label, rec.Text)
		answers := make([]string, 0, len(rec.Answers))
		for _, a := range rec.Answers {
			answers = append(answers, fmt.Sprintf("%s=%s", a.Player, a.Answer))
		}
		if len(answers) > 0 {
			fmt.Printf("   %s\n", strings.Join(answers, ", "))
		}
	}
}

func (o *Output) printSummary(s GameSummary) {
	fmt.Printf("Game: %s (finished %s)\n", s.ID, s.FinishedAt.Format(time.RFC3339))
	if len(s.Winners) > 0 {
		fmt.Printf("Winners: %s\n", strings.Join(s.Winners, ", "))
	}
	if s.Loser != "" {
		fmt.Printf("Loser: %s\n", s.Loser)
	}
	o.printPlayers(s.Players)
	fmt.Println("History:")
	o.printHistory(s.History)
}

func (o *Output) printSummaries(summaries []GameSummary) {
	if len(summaries) == 0 {
		fmt.Println("No finished games")
		return
	}
	for _, s := range summaries {
		fmt.Printf("  %s  finished %s  winners: %s\n",
			s.ID, s.FinishedAt.Format(time.RFC3339), strings.Join(s.Winners, ", "))
	}
}

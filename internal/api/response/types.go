package response

import (
	"time"

	"github.com/MinoUni/who-am-i-team-3/internal/model"
)

// Game describes a single game as returned by list and detail endpoints.
type Game struct {
	ID          model.GameID    `json:"id"`
	Phase       model.GamePhase `json:"phase"`
	PlayerCount int             `json:"playerCount"`
	Capacity    int             `json:"capacity"`
}

// GameFromInfo converts a model.GameInfo to a response Game.
func GameFromInfo(info model.GameInfo) Game {
	return Game{
		ID:          info.ID,
		Phase:       info.Phase,
		PlayerCount: info.PlayerCount,
		Capacity:    info.Capacity,
	}
}

// GamesFromInfo converts a slice of model.GameInfo.
func GamesFromInfo(infos []model.GameInfo) []Game {
	games := make([]Game, len(infos))
	for i, info := range infos {
		games[i] = GameFromInfo(info)
	}
	return games
}

// Player is the per-player view exposed over the API. The assigned
// character is only revealed once its holder has finished or lost.
type Player struct {
	ID                model.PlayerID    `json:"id"`
	DisplayName       string            `json:"displayName"`
	State             model.PlayerState `json:"state,omitempty"`
	AssignedCharacter string            `json:"assignedCharacter,omitempty"`
	LastAnswer        model.Answer      `json:"lastAnswer,omitempty"`
}

// PlayerFromModel converts a bare player without standing information.
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:          p.ID,
		DisplayName: p.DisplayName,
	}
}

// PlayerFromStanding converts a standing, hiding the assigned character
// while the holder is still playing.
func PlayerFromStanding(st model.PlayerStanding) Player {
	p := Player{
		ID:          st.Player.ID,
		DisplayName: st.Player.DisplayName,
		State:       st.State,
		LastAnswer:  st.LastAnswer,
	}
	if !st.State.Active() {
		p.AssignedCharacter = st.Player.AssignedCharacter
	}
	return p
}

// PlayersFromStandings converts a slice of standings.
func PlayersFromStandings(standings []model.PlayerStanding) []Player {
	players := make([]Player, len(standings))
	for i, st := range standings {
		players[i] = PlayerFromStanding(st)
	}
	return players
}

// GameDetails is the detail view of a single game.
type GameDetails struct {
	ID       model.GameID    `json:"id"`
	Phase    model.GamePhase `json:"phase"`
	Capacity int             `json:"capacity"`
	Players  []Player        `json:"players"`
}

// GameDetailsFromModel converts model.GameDetails.
func GameDetailsFromModel(d model.GameDetails) GameDetails {
	return GameDetails{
		ID:       d.ID,
		Phase:    d.Phase,
		Capacity: d.Capacity,
		Players:  PlayersFromStandings(d.Players),
	}
}

// TurnInfo describes the current turn.
type TurnInfo struct {
	Asker   Player   `json:"asker"`
	Players []Player `json:"players"`
}

// TurnInfoFromSnapshot converts a model.TurnSnapshot.
func TurnInfoFromSnapshot(snap model.TurnSnapshot) TurnInfo {
	asker := Player{
		ID:          snap.Asker.ID,
		DisplayName: snap.Asker.DisplayName,
		State:       model.PlayerStateAsking,
	}
	return TurnInfo{
		Asker:   asker,
		Players: PlayersFromStandings(snap.Players),
	}
}

// HistoryRecord is one asked question or guess with its answers.
type HistoryRecord struct {
	Asker   model.PlayerID       `json:"asker"`
	Kind    model.RecordKind     `json:"kind"`
	Text    string               `json:"text"`
	Answers []model.PlayerAnswer `json:"answers"`
}

// HistoryFromRecords converts model history records.
func HistoryFromRecords(records []model.QuestionRecord) []HistoryRecord {
	out := make([]HistoryRecord, len(records))
	for i, rec := range records {
		out[i] = HistoryRecord{
			Asker:   rec.Asker,
			Kind:    rec.Kind,
			Text:    rec.Text,
			Answers: rec.Answers,
		}
	}
	return out
}

// GameSummary is the archived view of a finished game.
type GameSummary struct {
	ID         model.GameID     `json:"id"`
	Capacity   int              `json:"capacity"`
	Players    []Player         `json:"players"`
	Winners    []model.PlayerID `json:"winners"`
	Loser      model.PlayerID   `json:"loser,omitempty"`
	History    []HistoryRecord  `json:"history"`
	FinishedAt time.Time        `json:"finishedAt"`
}

// SummaryFromModel converts a model.GameSummary.
func SummaryFromModel(s model.GameSummary) GameSummary {
	return GameSummary{
		ID:         s.ID,
		Capacity:   s.Capacity,
		Players:    PlayersFromStandings(s.Standings),
		Winners:    s.Winners,
		Loser:      s.Loser,
		History:    HistoryFromRecords(s.History),
		FinishedAt: s.FinishedAt,
	}
}

// PlayersCount reports how many players are enrolled across all games.
type PlayersCount struct {
	Count int `json:"count"`
}

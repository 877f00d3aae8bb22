package model

// RecordKind distinguishes questions from guesses in the turn log
type RecordKind string

const (
	RecordQuestion RecordKind = "question"
	RecordGuess    RecordKind = "guess"
)

// PlayerAnswer is one player's reply inside a question record
type PlayerAnswer struct {
	Player PlayerID `json:"player"`
	Answer Answer   `json:"answer"`
}

// QuestionRecord is one entry in the turn log: a question or guess posed by
// the asker, plus the answers collected from the other players.
type QuestionRecord struct {
	Asker   PlayerID       `json:"asker"`
	Kind    RecordKind     `json:"kind"`
	Text    string         `json:"text"`
	Answers []PlayerAnswer `json:"answers"`
}

// GameHistory is the append-only record of questions and answers for one
// session. The most recently opened record collects answers until the round
// closes; it is never edited after a new record opens.
type GameHistory struct {
	records []QuestionRecord
	open    bool
}

// NewGameHistory creates an empty history
func NewGameHistory() *GameHistory {
	return &GameHistory{}
}

// Open appends a new record and makes it the open one
func (h *GameHistory) Open(asker PlayerID, kind RecordKind, text string) {
	h.records = append(h.records, QuestionRecord{
		Asker: asker,
		Kind:  kind,
		Text:  text,
	})
	h.open = true
}

// Close marks the open record as tallied. Answers arriving afterwards are
// rejected by the state machine, not by the history.
func (h *GameHistory) Close() {
	h.open = false
}

// Current returns the open record, or nil if no round is open
func (h *GameHistory) Current() *QuestionRecord {
	if !h.open || len(h.records) == 0 {
		return nil
	}
	return &h.records[len(h.records)-1]
}

// AddAnswer records an answer against the open record
func (h *GameHistory) AddAnswer(player PlayerID, answer Answer) {
	rec := h.Current()
	if rec == nil {
		return
	}
	rec.Answers = append(rec.Answers, PlayerAnswer{Player: player, Answer: answer})
}

// Records returns a copy of all records in append order
func (h *GameHistory) Records() []QuestionRecord {
	out := make([]QuestionRecord, len(h.records))
	copy(out, h.records)
	return out
}

// Len returns the number of records
func (h *GameHistory) Len() int {
	return len(h.records)
}

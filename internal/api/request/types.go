package request

// CreateGame is the body for POST /games.
type CreateGame struct {
	Capacity int `json:"capacity"`
}

// SuggestCharacter is the body for POST /games/{id}/characters.
type SuggestCharacter struct {
	DisplayName string `json:"displayName"`
	Character   string `json:"character"`
}

// AskQuestion is the body for POST /games/{id}/question.
type AskQuestion struct {
	Question string `json:"question"`
}

// SubmitGuess is the body for POST /games/{id}/guess.
type SubmitGuess struct {
	Guess string `json:"guess"`
}

// SubmitAnswer is the body for answering a question or a guess.
type SubmitAnswer struct {
	Answer string `json:"answer"`
}

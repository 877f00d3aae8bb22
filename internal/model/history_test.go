package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryOpenCollectsAnswers(t *testing.T) {
	h := NewGameHistory()
	h.Open("a", RecordQuestion, "Am I a hero?")

	h.AddAnswer("b", AnswerYes)
	h.AddAnswer("c", AnswerNo)

	rec := h.Current()
	require.NotNil(t, rec)
	assert.Equal(t, PlayerID("a"), rec.Asker)
	assert.Len(t, rec.Answers, 2)
}

func TestHistoryClosedRecordRejectsLookup(t *testing.T) {
	h := NewGameHistory()
	h.Open("a", RecordQuestion, "Am I a hero?")
	h.Close()

	assert.Nil(t, h.Current())

	// The closed record stays in the log untouched
	require.Equal(t, 1, h.Len())
	h.AddAnswer("b", AnswerYes)
	assert.Empty(t, h.Records()[0].Answers)
}

func TestHistoryRecordsAreACopy(t *testing.T) {
	h := NewGameHistory()
	h.Open("a", RecordGuess, "Joker")
	h.Close()

	records := h.Records()
	records[0].Text = "mutated"
	assert.Equal(t, "Joker", h.Records()[0].Text)
}

func TestAnswerValidation(t *testing.T) {
	assert.True(t, ValidQuestionAnswer(AnswerNotSure))
	assert.False(t, ValidGuessAnswer(AnswerNotSure))
	assert.False(t, ValidQuestionAnswer("MAYBE"))
}

func TestPlayerStateActive(t *testing.T) {
	assert.True(t, PlayerStateAsking.Active())
	assert.True(t, PlayerStateAnswered.Active())
	assert.False(t, PlayerStateFinished.Active())
	assert.False(t, PlayerStateLost.Active())
}

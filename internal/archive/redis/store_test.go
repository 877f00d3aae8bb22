package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/MinoUni/who-am-i-team-3/internal/model"
)

type StoreSuite struct {
	suite.Suite
	mini  *miniredis.Miniredis
	store *Store
	ctx   context.Context
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.SummaryTTL = time.Hour

	s.store = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StoreSuite) TearDownTest() {
	if s.store != nil {
		_ = s.store.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StoreSuite) summary(id model.GameID) *model.GameSummary {
	return &model.GameSummary{
		ID:       id,
		Capacity: 2,
		Standings: []model.PlayerStanding{
			{
				Player: &model.Player{ID: "a", DisplayName: "Alice", SuggestedCharacter: "Robin", AssignedCharacter: "Joker"},
				State:  model.PlayerStateFinished,
			},
			{
				Player: &model.Player{ID: "b", DisplayName: "Bob", SuggestedCharacter: "Joker", AssignedCharacter: "Robin"},
				State:  model.PlayerStateLost,
			},
		},
		Winners: []model.PlayerID{"a"},
		Loser:   "b",
		History: []model.QuestionRecord{
			{
				Asker: "a",
				Kind:  model.RecordGuess,
				Text:  "Joker",
				Answers: []model.PlayerAnswer{
					{Player: "b", Answer: model.AnswerYes},
				},
			},
		},
		FinishedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *StoreSuite) TestSaveAndGetSummary() {
	s.Require().NoError(s.store.SaveSummary(s.ctx, s.summary("game-1")))

	got, err := s.store.GetSummary(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Equal(model.GameID("game-1"), got.ID)
	s.Equal([]model.PlayerID{"a"}, got.Winners)
	s.Equal(model.PlayerID("b"), got.Loser)
	s.Require().Len(got.Standings, 2)
	s.Equal("Joker", got.Standings[0].Player.AssignedCharacter)
	s.Require().Len(got.History, 1)
	s.Equal(model.RecordGuess, got.History[0].Kind)
}

func (s *StoreSuite) TestGetMissingSummary() {
	_, err := s.store.GetSummary(s.ctx, "nope")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StoreSuite) TestListSummaries() {
	s.Require().NoError(s.store.SaveSummary(s.ctx, s.summary("game-1")))
	s.Require().NoError(s.store.SaveSummary(s.ctx, s.summary("game-2")))

	summaries, err := s.store.ListSummaries(s.ctx)
	s.Require().NoError(err)
	s.Len(summaries, 2)
}

func (s *StoreSuite) TestListSummariesEmpty() {
	summaries, err := s.store.ListSummaries(s.ctx)
	s.Require().NoError(err)
	s.Empty(summaries)
}

func (s *StoreSuite) TestDeleteSummary() {
	s.Require().NoError(s.store.SaveSummary(s.ctx, s.summary("game-1")))
	s.Require().NoError(s.store.DeleteSummary(s.ctx, "game-1"))

	_, err := s.store.GetSummary(s.ctx, "game-1")
	s.ErrorIs(err, model.ErrGameNotFound)

	summaries, err := s.store.ListSummaries(s.ctx)
	s.Require().NoError(err)
	s.Empty(summaries)
}

func (s *StoreSuite) TestSummaryExpires() {
	s.Require().NoError(s.store.SaveSummary(s.ctx, s.summary("game-1")))

	s.mini.FastForward(2 * time.Hour)

	_, err := s.store.GetSummary(s.ctx, "game-1")
	s.ErrorIs(err, model.ErrGameNotFound)

	summaries, err := s.store.ListSummaries(s.ctx)
	s.Require().NoError(err)
	s.Empty(summaries)
}

package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/MinoUni/who-am-i-team-3/internal/model"
)

type StoreSuite struct {
	suite.Suite
	store *Store
	ctx   context.Context
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.store = New()
	s.ctx = context.Background()
}

func (s *StoreSuite) summary(id model.GameID) *model.GameSummary {
	return &model.GameSummary{
		ID:         id,
		Capacity:   2,
		Winners:    []model.PlayerID{"a"},
		Loser:      "b",
		FinishedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *StoreSuite) TestSaveAndGetSummary() {
	s.Require().NoError(s.store.SaveSummary(s.ctx, s.summary("game-1")))

	got, err := s.store.GetSummary(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Equal(model.GameID("game-1"), got.ID)
	s.Equal([]model.PlayerID{"a"}, got.Winners)
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

func (s *StoreSuite) TestDeleteSummary() {
	s.Require().NoError(s.store.SaveSummary(s.ctx, s.summary("game-1")))
	s.Require().NoError(s.store.DeleteSummary(s.ctx, "game-1"))

	_, err := s.store.GetSummary(s.ctx, "game-1")
	s.ErrorIs(err, model.ErrGameNotFound)
}

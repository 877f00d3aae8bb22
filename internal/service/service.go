package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/MinoUni/who-am-i-team-3/internal/archive"
	"github.com/MinoUni/who-am-i-team-3/internal/dependencies/clock"
	"github.com/MinoUni/who-am-i-team-3/internal/dependencies/idgen"
	"github.com/MinoUni/who-am-i-team-3/internal/dependencies/random"
	"github.com/MinoUni/who-am-i-team-3/internal/game"
	"github.com/MinoUni/who-am-i-team-3/internal/model"
	"github.com/MinoUni/who-am-i-team-3/internal/registry"
)

// Service is the boundary the transport layer talks to. It resolves
// sessions through the registry, delegates gameplay to them, and archives
// terminal summaries.
type Service struct {
	registry *registry.Registry
	archive  archive.Store
	ids      idgen.Generator
	random   random.Random
	clock    clock.Clock
	logger   *slog.Logger
}

// New creates a new game service
func New(
	reg *registry.Registry,
	store archive.Store,
	ids idgen.Generator,
	rnd random.Random,
	clk clock.Clock,
	logger *slog.Logger,
) *Service {
	return &Service{
		registry: reg,
		archive:  store,
		ids:      ids,
		random:   rnd,
		clock:    clk,
		logger:   logger,
	}
}

// CreateGame enrolls the player into the first open session of the
// requested capacity, creating a new one when none is open.
func (s *Service) CreateGame(ctx context.Context, player model.PlayerID, capacity int) (*model.GameDetails, error) {
	if capacity < model.MinCapacity {
		return nil, model.ErrInvalidCapacity
	}

	if existing, ok := s.registry.FindAvailable(capacity); ok {
		if _, err := s.enroll(ctx, existing, player); err == nil {
			return s.details(existing), nil
		} else if errors.Is(err, model.ErrAlreadyInGame) {
			return nil, err
		}
		// The open session filled or closed under us; fall through and
		// create a fresh one.
	}

	session, err := game.NewSession(model.GameID(s.ids.NewID()), capacity, s.random, s.clock.Now())
	if err != nil {
		return nil, err
	}
	s.registry.Save(session)

	if _, err := s.enroll(ctx, session, player); err != nil {
		s.registry.Remove(session.ID())
		return nil, err
	}

	s.logger.Info("game created",
		slog.String("game_id", string(session.ID())),
		slog.Int("capacity", capacity),
	)

	return s.details(session), nil
}

// Enroll adds a player to an existing session
func (s *Service) Enroll(ctx context.Context, id model.GameID, player model.PlayerID) (*model.Player, error) {
	session, err := s.registry.Find(id)
	if err != nil {
		return nil, err
	}
	return s.enroll(ctx, session, player)
}

// enroll reserves the player in the index first so a player can never end
// up in two sessions, then performs the session-side enrollment.
func (s *Service) enroll(ctx context.Context, session *game.Session, player model.PlayerID) (*model.Player, error) {
	if err := s.registry.BindPlayer(player, session.ID()); err != nil {
		return nil, err
	}

	enrolled, err := session.Enroll(player)
	if err != nil {
		s.registry.ReleasePlayer(player)
		return nil, err
	}

	s.logger.Info("player enrolled",
		slog.String("game_id", string(session.ID())),
		slog.String("player", string(player)),
	)
	return enrolled, nil
}

// FindGame returns the session details, visible only to enrolled players
func (s *Service) FindGame(ctx context.Context, id model.GameID, player model.PlayerID) (*model.GameDetails, error) {
	session, err := s.registry.Find(id)
	if err != nil {
		return nil, err
	}
	if _, ok := session.FindPlayer(player); !ok {
		return nil, model.ErrGameNotFound
	}
	return s.details(session), nil
}

// SuggestCharacter submits a player's display name and character proposal
func (s *Service) SuggestCharacter(ctx context.Context, id model.GameID, player model.PlayerID, name, character string) error {
	session, err := s.registry.Find(id)
	if err != nil {
		return err
	}
	return session.Suggest(player, name, character)
}

// AskQuestion opens a question round
func (s *Service) AskQuestion(ctx context.Context, id model.GameID, player model.PlayerID, text string) error {
	session, err := s.registry.Find(id)
	if err != nil {
		return err
	}
	if err := session.AskQuestion(player, text); err != nil {
		return err
	}
	return s.archiveIfFinished(ctx, session)
}

// SubmitGuess opens a guess round
func (s *Service) SubmitGuess(ctx context.Context, id model.GameID, player model.PlayerID, text string) error {
	session, err := s.registry.Find(id)
	if err != nil {
		return err
	}
	if err := session.SubmitGuess(player, text); err != nil {
		return err
	}
	return s.archiveIfFinished(ctx, session)
}

// AnswerQuestion records an answer to the open question
func (s *Service) AnswerQuestion(ctx context.Context, id model.GameID, player model.PlayerID, answer model.Answer) error {
	session, err := s.registry.Find(id)
	if err != nil {
		return err
	}
	if err := session.AnswerQuestion(player, answer); err != nil {
		return err
	}
	return s.archiveIfFinished(ctx, session)
}

// AnswerGuess records an answer to the open guess. A correct guess can
// finish the game, in which case the summary is archived.
func (s *Service) AnswerGuess(ctx context.Context, id model.GameID, player model.PlayerID, answer model.Answer) error {
	session, err := s.registry.Find(id)
	if err != nil {
		return err
	}
	if err := session.AnswerGuess(player, answer); err != nil {
		return err
	}
	return s.archiveIfFinished(ctx, session)
}

// TurnInfo returns the current asker and full standings snapshot
func (s *Service) TurnInfo(ctx context.Context, id model.GameID, player model.PlayerID) (*model.TurnSnapshot, error) {
	session, err := s.registry.Find(id)
	if err != nil {
		return nil, err
	}
	return session.TurnInfo(player)
}

// PlayersList returns the standings of every player in the session
func (s *Service) PlayersList(ctx context.Context, id model.GameID) ([]model.PlayerStanding, error) {
	session, err := s.registry.Find(id)
	if err != nil {
		return nil, err
	}
	return session.Players(), nil
}

// History returns the turn log of a live session, falling back to the
// archive for games that already finished and were disbanded.
func (s *Service) History(ctx context.Context, id model.GameID) ([]model.QuestionRecord, error) {
	session, err := s.registry.Find(id)
	if err == nil {
		return session.History()
	}
	if !errors.Is(err, model.ErrGameNotFound) {
		return nil, err
	}

	summary, err := s.archive.GetSummary(ctx, id)
	if err != nil {
		return nil, err
	}
	return summary.History, nil
}

// Leave removes the player from the session and disbands it when empty
func (s *Service) Leave(ctx context.Context, id model.GameID, player model.PlayerID) (*model.Player, error) {
	session, err := s.registry.Find(id)
	if err != nil {
		return nil, err
	}

	removed, empty, err := session.Leave(player)
	if err != nil {
		return nil, err
	}
	s.registry.ReleasePlayer(player)

	if archErr := s.archiveIfFinished(ctx, session); archErr != nil {
		return nil, archErr
	}

	if empty {
		s.registry.Remove(id)
		s.logger.Info("game disbanded", slog.String("game_id", string(id)))
	}

	return removed, nil
}

// AvailableGames lists open sessions the player could join
func (s *Service) AvailableGames(ctx context.Context) []model.GameInfo {
	var out []model.GameInfo
	for _, info := range s.registry.List() {
		if info.Phase == model.PhaseWaitingForPlayers {
			out = append(out, info)
		}
	}
	return out
}

// AllGamesInfo lists every live session regardless of phase
func (s *Service) AllGamesInfo(ctx context.Context) []model.GameInfo {
	return s.registry.List()
}

// AllPlayersCount returns the number of players enrolled across sessions
func (s *Service) AllPlayersCount(ctx context.Context) int {
	return s.registry.PlayerCount()
}

// FinishedGames lists archived summaries
func (s *Service) FinishedGames(ctx context.Context) ([]*model.GameSummary, error) {
	return s.archive.ListSummaries(ctx)
}

func (s *Service) details(session *game.Session) *model.GameDetails {
	info := session.Info()
	return &model.GameDetails{
		ID:       info.ID,
		Phase:    info.Phase,
		Capacity: info.Capacity,
		Players:  session.Players(),
	}
}

// archiveIfFinished persists the summary once a session reaches the
// terminal phase. The summary is written exactly once: players leaving a
// finished game afterwards must not overwrite the recorded standings.
func (s *Service) archiveIfFinished(ctx context.Context, session *game.Session) error {
	if session.Phase() != model.PhaseGameFinished {
		return nil
	}
	if _, err := s.archive.GetSummary(ctx, session.ID()); err == nil {
		return nil
	} else if !errors.Is(err, model.ErrGameNotFound) {
		return err
	}

	summary, err := session.Summary(s.clock.Now())
	if err != nil {
		return err
	}
	if err := s.archive.SaveSummary(ctx, summary); err != nil {
		s.logger.Error("failed to archive game",
			slog.String("game_id", string(summary.ID)),
			slog.String("error", err.Error()),
		)
		return err
	}

	s.logger.Info("game finished",
		slog.String("game_id", string(summary.ID)),
		slog.Int("winners", len(summary.Winners)),
	)
	return nil
}

package archive

import (
	"context"

	"github.com/MinoUni/who-am-i-team-3/internal/model"
)

// Store persists terminal game summaries so standings and history remain
// queryable after the in-memory session is gone. Live sessions are never
// stored here.
type Store interface {
	SaveSummary(ctx context.Context, summary *model.GameSummary) error
	GetSummary(ctx context.Context, id model.GameID) (*model.GameSummary, error)
	ListSummaries(ctx context.Context) ([]*model.GameSummary, error)
	DeleteSummary(ctx context.Context, id model.GameID) error
}

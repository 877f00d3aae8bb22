package middleware

import (
	"context"
	"net/http"

	"github.com/MinoUni/who-am-i-team-3/internal/api/apierr"
	"github.com/MinoUni/who-am-i-team-3/internal/model"
)

type contextKey string

const playerContextKey contextKey = "player"

// PlayerHeader is the header carrying the caller's player id.
const PlayerHeader = "X-Player"

// RequirePlayer extracts the player id from the X-Player header and
// stores it on the request context. Requests without the header are
// rejected.
func RequirePlayer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(PlayerHeader)
		if id == "" {
			apierr.WriteError(w, apierr.NewUnauthorizedError())
			return
		}
		ctx := context.WithValue(r.Context(), playerContextKey, model.PlayerID(id))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// PlayerFromContext returns the player id set by RequirePlayer.
func PlayerFromContext(ctx context.Context) (model.PlayerID, bool) {
	id, ok := ctx.Value(playerContextKey).(model.PlayerID)
	return id, ok
}

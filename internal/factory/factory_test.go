package factory

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/MinoUni/who-am-i-team-3/internal/archive/memory"
	redisarchive "github.com/MinoUni/who-am-i-team-3/internal/archive/redis"
	"github.com/MinoUni/who-am-i-team-3/internal/model"
)

func TestNewWithMemoryStorage(t *testing.T) {
	app, err := New(Config{})
	require.NoError(t, err)

	require.IsType(t, &memory.Store{}, app.Archive)
	require.NotNil(t, app.GameService)
	require.NotNil(t, app.Registry)

	// The wired service is usable end to end
	details, err := app.GameService.CreateGame(context.Background(), "a", 2)
	require.NoError(t, err)
	require.Equal(t, model.PhaseWaitingForPlayers, details.Phase)
}

func TestNewWithRedisStorage(t *testing.T) {
	mini := miniredis.RunT(t)

	cfg := redisarchive.DefaultConfig()
	cfg.URL = "redis://" + mini.Addr()
	cfg.SummaryTTL = time.Hour

	app, err := New(Config{
		StorageType: StorageTypeRedis,
		RedisConfig: &cfg,
	})
	require.NoError(t, err)
	require.IsType(t, &redisarchive.Store{}, app.Archive)
}

func TestNewRedisWithoutConfigFails(t *testing.T) {
	_, err := New(Config{StorageType: StorageTypeRedis})
	require.Error(t, err)
}

func TestNewInvalidStorageTypeFails(t *testing.T) {
	_, err := New(Config{StorageType: "postgres"})
	require.Error(t, err)
}

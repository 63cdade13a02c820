package storage

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*RedisStorage, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	store, err := NewRedisStorage("redis://"+mr.Addr(), t.TempDir(), logger)
	if err != nil {
		mr.Close()
		t.Fatalf("Failed to create redis storage: %v", err)
	}

	t.Cleanup(func() {
		store.Close()
		mr.Close()
	})
	return store, mr
}

func TestNewRedisStorage_BadURL(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	_, err := NewRedisStorage("not a url", "", logger)
	assert.Error(t, err)
}

func TestRedisStorage_Ping(t *testing.T) {
	store, mr := setupTestRedis(t)
	ctx := context.Background()

	assert.NoError(t, store.Ping(ctx))
	assert.NoError(t, store.WaitForConnection(ctx))

	mr.SetError("LOADING")
	assert.Error(t, store.Ping(ctx))
}

func TestRedisStorage_Results(t *testing.T) {
	store, mr := setupTestRedis(t)
	ctx := context.Background()

	first := Result{SessionID: uuid.New(), World: "midterm.json", Win: false, Turns: 40, Location: "Quad"}
	second := Result{SessionID: uuid.New(), World: "midterm.json", Win: true, Turns: 12, Location: "Exam Hall",
		FinishedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
	other := Result{SessionID: uuid.New(), World: "lighthouse.yaml", Win: true, Turns: 7}

	require.NoError(t, store.SaveResult(ctx, first))
	require.NoError(t, store.SaveResult(ctx, second))
	require.NoError(t, store.SaveResult(ctx, other))

	results, err := store.ListResults(ctx, "midterm.json", 10)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, second.SessionID, results[0].SessionID, "newest first")
	assert.True(t, results[0].Win)
	assert.True(t, results[0].FinishedAt.Equal(second.FinishedAt))
	assert.Equal(t, first.SessionID, results[1].SessionID)
	assert.False(t, results[1].FinishedAt.IsZero(), "finish time is stamped when missing")

	limited, err := store.ListResults(ctx, "midterm.json", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	none, err := store.ListResults(ctx, "unknown.json", 5)
	require.NoError(t, err)
	assert.Empty(t, none)

	assert.True(t, mr.Exists("results:lighthouse.yaml"))
}

func TestRedisStorage_ResultsAreTrimmed(t *testing.T) {
	store, _ := setupTestRedis(t)
	store.keep = 3
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, store.SaveResult(ctx, Result{SessionID: uuid.New(), World: "w.json", Turns: i}))
	}

	results, err := store.ListResults(ctx, "w.json", 0)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, 4, results[0].Turns)
	assert.Equal(t, 2, results[2].Turns)
}

func TestRedisStorage_SkipsCorruptEntries(t *testing.T) {
	store, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, store.SaveResult(ctx, Result{SessionID: uuid.New(), World: "w.json"}))
	_, err := mr.Lpush("results:w.json", "{not json")
	require.NoError(t, err)

	results, err := store.ListResults(ctx, "w.json", 10)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

package storage

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/adventure-engine/pkg/worldfile"
)

const cabinJSON = `{
  "title": "Cabin",
  "description": "A short test world.",
  "start_location": "Porch",
  "turn_limit": 5,
  "locations": [{"name": "Porch", "accessible": true}]
}`

const caveYAML = `title: Cave
start_location: Mouth
locations:
  - name: Mouth
`

func writeWorlds(t *testing.T) string {
	t.Helper()
	dataDir := t.TempDir()
	dir := filepath.Join(dataDir, "worlds")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "extra"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cabin.json"), []byte(cabinJSON), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "extra", "cave.yaml"), []byte(caveYAML), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# worlds"), 0o644))
	return dataDir
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestWorldDir_ListWorlds(t *testing.T) {
	store := NewMemoryStorage(writeWorlds(t), testLogger())

	worlds, err := store.ListWorlds(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []WorldInfo{
		{File: "cabin.json", Title: "Cabin", Description: "A short test world.", TurnLimit: 5},
		{File: "extra/cave.yaml", Title: "Cave"},
	}, worlds)
}

func TestWorldDir_ListWorlds_MissingDir(t *testing.T) {
	store := NewMemoryStorage(t.TempDir(), testLogger())
	worlds, err := store.ListWorlds(context.Background())
	require.NoError(t, err)
	assert.Empty(t, worlds)
}

func TestWorldDir_GetWorld(t *testing.T) {
	store := NewMemoryStorage(writeWorlds(t), testLogger())
	ctx := context.Background()

	spec, err := store.GetWorld(ctx, "cabin.json")
	require.NoError(t, err)
	assert.Equal(t, "Porch", spec.StartLocation)

	spec, err = store.GetWorld(ctx, "extra/cave.yaml")
	require.NoError(t, err)
	assert.Equal(t, "Cave", spec.Title)

	tests := []struct {
		name     string
		file     string
		notFound bool
	}{
		{"missing", "nope.json", true},
		{"traversal", "../secrets.json", false},
		{"absolute", "/etc/passwd.json", false},
		{"empty", "", false},
		{"unsupported extension", "README.md", false},
		{"unparseable", "broken.json", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.GetWorld(ctx, tt.file)
			require.Error(t, err)
			assert.Equal(t, tt.notFound, errors.Is(err, ErrWorldNotFound))
		})
	}
}

func TestMemoryStorage_Results(t *testing.T) {
	store := NewMemoryStorage(t.TempDir(), testLogger())
	store.keep = 2
	ctx := context.Background()

	assert.NoError(t, store.Ping(ctx))
	for i := 1; i <= 3; i++ {
		require.NoError(t, store.SaveResult(ctx, Result{SessionID: uuid.New(), World: "w.json", Turns: i}))
	}

	results, err := store.ListResults(ctx, "w.json", 0)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, 3, results[0].Turns)
	assert.Equal(t, 2, results[1].Turns)
	assert.False(t, results[0].FinishedAt.IsZero())

	results[0].Turns = 99
	again, _ := store.ListResults(ctx, "w.json", 1)
	assert.Equal(t, 3, again[0].Turns, "returned slice must be a copy")
}

func TestMockStorage(t *testing.T) {
	m := NewMockStorage()
	ctx := context.Background()

	m.AddWorld("b.json", &worldfile.Spec{Title: "B"})
	m.AddWorld("a.json", &worldfile.Spec{Title: "A", TurnLimit: 3})

	worlds, err := m.ListWorlds(ctx)
	require.NoError(t, err)
	require.Len(t, worlds, 2)
	assert.Equal(t, "a.json", worlds[0].File)
	assert.Equal(t, 3, worlds[0].TurnLimit)

	_, err = m.GetWorld(ctx, "c.json")
	assert.ErrorIs(t, err, ErrWorldNotFound)

	m.SetPingError(errors.New("down"))
	assert.Error(t, m.Ping(ctx))

	require.NoError(t, m.SaveResult(ctx, Result{World: "a.json", Turns: 1}))
	require.NoError(t, m.SaveResult(ctx, Result{World: "a.json", Turns: 2}))
	results, _ := m.ListResults(ctx, "a.json", 0)
	require.Len(t, results, 2)
	assert.Equal(t, 2, results[0].Turns)

	m.SetSaveError(errors.New("full"))
	assert.Error(t, m.SaveResult(ctx, Result{World: "a.json"}))
}

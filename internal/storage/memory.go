package storage

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// MemoryStorage keeps results in process memory. It is used when no Redis
// URL is configured; results are lost on restart.
type MemoryStorage struct {
	worldDir
	mu      sync.RWMutex
	results map[string][]Result
	keep    int
}

var _ Storage = (*MemoryStorage)(nil)

func NewMemoryStorage(dataDir string, logger *slog.Logger) *MemoryStorage {
	return &MemoryStorage{
		worldDir: newWorldDir(dataDir, logger),
		results:  make(map[string][]Result),
		keep:     defaultResultsKept,
	}
}

func (m *MemoryStorage) Ping(ctx context.Context) error { return nil }

func (m *MemoryStorage) Close() error { return nil }

func (m *MemoryStorage) SaveResult(ctx context.Context, result Result) error {
	if result.FinishedAt.IsZero() {
		result.FinishedAt = time.Now()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	list := append([]Result{result}, m.results[result.World]...)
	if len(list) > m.keep {
		list = list[:m.keep]
	}
	m.results[result.World] = list
	return nil
}

func (m *MemoryStorage) ListResults(ctx context.Context, world string, limit int) ([]Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return headResults(m.results[world], limit), nil
}

func headResults(list []Result, limit int) []Result {
	if limit <= 0 || limit > len(list) {
		limit = len(list)
	}
	return append([]Result{}, list[:limit]...)
}

package storage

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/jwebster45206/adventure-engine/pkg/worldfile"
)

// MockStorage is a mock implementation of Storage for testing
type MockStorage struct {
	mu        sync.RWMutex
	worlds    map[string]*worldfile.Spec
	results   map[string][]Result
	pingError error
	saveError error
}

// Ensure MockStorage implements Storage interface
var _ Storage = (*MockStorage)(nil)

// NewMockStorage creates a new mock storage
func NewMockStorage() *MockStorage {
	return &MockStorage{
		worlds:  make(map[string]*worldfile.Spec),
		results: make(map[string][]Result),
	}
}

// AddWorld registers a world spec under a file name
func (m *MockStorage) AddWorld(filename string, spec *worldfile.Spec) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.worlds[filename] = spec
}

// SetPingError configures the mock to fail on ping with the given error
func (m *MockStorage) SetPingError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pingError = err
}

// SetSaveError configures the mock to fail when saving results
func (m *MockStorage) SetSaveError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveError = err
}

func (m *MockStorage) Ping(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pingError
}

func (m *MockStorage) Close() error {
	return nil
}

func (m *MockStorage) ListWorlds(ctx context.Context) ([]WorldInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	worlds := make([]WorldInfo, 0, len(m.worlds))
	for file, spec := range m.worlds {
		worlds = append(worlds, WorldInfo{
			File:        file,
			Title:       spec.Title,
			Description: spec.Description,
			TurnLimit:   spec.TurnLimit,
		})
	}
	sort.Slice(worlds, func(i, j int) bool { return worlds[i].File < worlds[j].File })
	return worlds, nil
}

// GetWorld mocks loading a world file
func (m *MockStorage) GetWorld(ctx context.Context, filename string) (*worldfile.Spec, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	spec, ok := m.worlds[filename]
	if !ok {
		return nil, ErrWorldNotFound
	}
	cp := *spec
	return &cp, nil
}

func (m *MockStorage) SaveResult(ctx context.Context, result Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveError != nil {
		return m.saveError
	}
	if result.World == "" {
		return errors.New("result world cannot be empty")
	}
	m.results[result.World] = append([]Result{result}, m.results[result.World]...)
	return nil
}

func (m *MockStorage) ListResults(ctx context.Context, world string, limit int) ([]Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return headResults(m.results[world], limit), nil
}

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jwebster45206/adventure-engine/internal/config"
	"github.com/jwebster45206/adventure-engine/internal/session"
	"github.com/jwebster45206/adventure-engine/internal/storage"
	"github.com/jwebster45206/adventure-engine/pkg/engine"
)

// Usage: console [world-file]
//
// With API_BASE_URL set the console plays against a running API server.
// Otherwise it hosts the session itself, reading worlds from DATA_DIR.
func main() {
	var worldFile string
	if len(os.Args) > 1 {
		worldFile = os.Args[1]
	}

	b, cleanup, err := newBackend()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	p := tea.NewProgram(NewConsoleUI(b, worldFile),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

func newBackend() (backend, func(), error) {
	if baseURL := os.Getenv("API_BASE_URL"); baseURL != "" {
		client := &http.Client{Timeout: 30 * time.Second}
		if !testConnection(client, baseURL) {
			return nil, nil, fmt.Errorf("could not connect to API at %s. Please ensure the API is running", baseURL)
		}
		return &apiBackend{client: client, baseURL: baseURL}, func() {}, nil
	}

	cfg := config.Load()
	log, closeLog, err := consoleLogger(cfg)
	if err != nil {
		return nil, nil, err
	}

	var store storage.Storage
	if cfg.RedisURL != "" {
		redisStore, err := storage.NewRedisStorage(cfg.RedisURL, cfg.DataDir, log)
		if err != nil {
			closeLog()
			return nil, nil, fmt.Errorf("invalid Redis configuration: %w", err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := redisStore.WaitForConnection(ctx); err != nil {
			closeLog()
			return nil, nil, fmt.Errorf("failed to connect to storage: %w", err)
		}
		store = redisStore
	} else {
		store = storage.NewMemoryStorage(cfg.DataDir, log)
	}

	var opts []engine.Option
	if cfg.EnforceRules {
		opts = append(opts, engine.WithRuleEnforcement())
	}

	cleanup := func() {
		_ = store.Close()
		closeLog()
	}
	return &localBackend{store: store, sessions: session.NewManager(store, log, opts...)}, cleanup, nil
}

// consoleLogger keeps log output off the terminal. CONSOLE_LOG names a file
// to log to; without it logs are discarded.
func consoleLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	path := os.Getenv("CONSOLE_LOG")
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open console log: %w", err)
	}
	log := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: cfg.LogLevel}))
	return log, func() { _ = f.Close() }, nil
}

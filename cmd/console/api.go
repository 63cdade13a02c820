package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/jwebster45206/adventure-engine/internal/handlers"
	"github.com/jwebster45206/adventure-engine/internal/session"
	"github.com/jwebster45206/adventure-engine/internal/storage"
)

// backend is where the console's session lives: in process, or behind
// the HTTP API.
type backend interface {
	Worlds(ctx context.Context) ([]storage.WorldInfo, error)
	Start(ctx context.Context, worldFile string) (session.Status, error)
	Input(ctx context.Context, line string) (session.Reply, error)
}

// localBackend plays against an in-process session manager.
type localBackend struct {
	store    storage.Storage
	sessions *session.Manager
}

func (b *localBackend) Worlds(ctx context.Context) ([]storage.WorldInfo, error) {
	return b.store.ListWorlds(ctx)
}

func (b *localBackend) Start(ctx context.Context, worldFile string) (session.Status, error) {
	return b.sessions.Start(ctx, worldFile)
}

func (b *localBackend) Input(ctx context.Context, line string) (session.Reply, error) {
	return b.sessions.Input(ctx, line)
}

// apiBackend plays against a running API server.
type apiBackend struct {
	client  *http.Client
	baseURL string
}

func testConnection(client *http.Client, baseURL string) bool {
	resp, err := client.Get(baseURL + "/health")
	if err != nil {
		return false
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()
	return resp.StatusCode == http.StatusOK
}

func (b *apiBackend) Worlds(ctx context.Context) ([]storage.WorldInfo, error) {
	var worlds []storage.WorldInfo
	err := b.do(ctx, http.MethodGet, "/v1/worlds", nil, http.StatusOK, &worlds)
	return worlds, err
}

func (b *apiBackend) Start(ctx context.Context, worldFile string) (session.Status, error) {
	var st session.Status
	err := b.do(ctx, http.MethodPost, "/v1/session", handlers.StartSessionRequest{World: worldFile}, http.StatusCreated, &st)
	return st, err
}

func (b *apiBackend) Input(ctx context.Context, line string) (session.Reply, error) {
	var reply session.Reply
	err := b.do(ctx, http.MethodPost, "/v1/commands", handlers.CommandRequest{Input: line}, http.StatusOK, &reply)
	return reply, err
}

func (b *apiBackend) do(ctx context.Context, method, path string, body any, want int, out any) error {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, b.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != want {
		var errorResp handlers.ErrorResponse
		if err := json.Unmarshal(data, &errorResp); err != nil || errorResp.Error == "" {
			return fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(data))
		}
		return fmt.Errorf("%s %s failed: %s", method, path, errorResp.Error)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

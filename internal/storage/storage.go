package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jwebster45206/adventure-engine/pkg/worldfile"
)

// ErrWorldNotFound is returned when a world file does not exist.
var ErrWorldNotFound = errors.New("world not found")

// WorldInfo summarizes a world file available to play.
type WorldInfo struct {
	File        string `json:"file"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	TurnLimit   int    `json:"turn_limit,omitempty"`
}

// Result records how a finished session ended.
type Result struct {
	SessionID  uuid.UUID `json:"session_id"`
	World      string    `json:"world"` // world file name
	Title      string    `json:"title,omitempty"`
	Win        bool      `json:"win"`
	Turns      int       `json:"turns"`
	Location   string    `json:"location"` // where the session ended
	FinishedAt time.Time `json:"finished_at"`
}

// Storage combines world file loading (filesystem) with finished-session
// results (Redis, or memory when no Redis is configured).
type Storage interface {
	// Health and lifecycle
	Ping(ctx context.Context) error
	Close() error

	// World operations (filesystem-backed)
	ListWorlds(ctx context.Context) ([]WorldInfo, error)
	GetWorld(ctx context.Context, filename string) (*worldfile.Spec, error)

	// Result operations, newest first
	SaveResult(ctx context.Context, result Result) error
	ListResults(ctx context.Context, world string, limit int) ([]Result, error)
}

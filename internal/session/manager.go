package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jwebster45206/adventure-engine/internal/logger"
	"github.com/jwebster45206/adventure-engine/internal/storage"
	"github.com/jwebster45206/adventure-engine/pkg/engine"
	"github.com/jwebster45206/adventure-engine/pkg/input"
)

// ErrNoSession is returned when a command arrives before a session starts.
var ErrNoSession = errors.New("no active session")

// Status describes the active session.
type Status struct {
	SessionID uuid.UUID   `json:"session_id"`
	World     string      `json:"world"`
	Title     string      `json:"title,omitempty"`
	StartedAt time.Time   `json:"started_at"`
	State     engine.View `json:"state"`
}

// Reply is the outcome of one command plus the state after it.
type Reply struct {
	SessionID uuid.UUID            `json:"session_id"`
	Result    engine.CommandResult `json:"result"`
	State     engine.View          `json:"state"`
}

type session struct {
	id        uuid.UUID
	world     string
	title     string
	startedAt time.Time
	engine    *engine.Engine
	recorded  bool
}

// Manager hosts the single active play session. Its methods are safe for
// concurrent use; commands are applied one at a time.
type Manager struct {
	mu      sync.Mutex
	store   storage.Storage
	logger  *slog.Logger
	opts    []engine.Option
	current *session
}

// NewManager creates a manager that loads worlds from store. The engine
// options apply to every session it starts.
func NewManager(store storage.Storage, log *slog.Logger, opts ...engine.Option) *Manager {
	return &Manager{
		store:  store,
		logger: log,
		opts:   opts,
	}
}

// Start begins a new session in the named world file, discarding any
// session in progress.
func (m *Manager) Start(ctx context.Context, worldFile string) (Status, error) {
	spec, err := m.store.GetWorld(ctx, worldFile)
	if err != nil {
		return Status{}, err
	}
	w, err := spec.Build()
	if err != nil {
		return Status{}, fmt.Errorf("failed to build world %s: %w", worldFile, err)
	}

	id := uuid.New()
	log := logger.WithSessionID(m.logger, id.String())
	for _, warning := range w.Audit() {
		log.Warn("World authoring problem", "world", worldFile, "problem", warning)
	}

	eng, err := engine.New(w, nil, append([]engine.Option{engine.WithLogger(log)}, m.opts...)...)
	if err != nil {
		return Status{}, fmt.Errorf("failed to start session: %w", err)
	}

	s := &session{
		id:        id,
		world:     worldFile,
		title:     w.Title,
		startedAt: time.Now(),
		engine:    eng,
	}

	m.mu.Lock()
	m.current = s
	m.mu.Unlock()

	log.Info("Session started", "world", worldFile)
	return s.status(), nil
}

// Restart starts the current world again from its file.
func (m *Manager) Restart(ctx context.Context) (Status, error) {
	m.mu.Lock()
	s := m.current
	m.mu.Unlock()
	if s == nil {
		return Status{}, ErrNoSession
	}
	return m.Start(ctx, s.world)
}

// End discards the active session.
func (m *Manager) End() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return ErrNoSession
	}
	m.logger.Info("Session ended", "session_id", m.current.id)
	m.current = nil
	return nil
}

func (m *Manager) Status() (Status, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return Status{}, ErrNoSession
	}
	return m.current.status(), nil
}

// Command applies a verb to the active session. A session that ends is
// recorded in storage once.
func (m *Manager) Command(ctx context.Context, verb string, args ...string) (Reply, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return Reply{}, ErrNoSession
	}

	res := m.current.engine.ProcessCommand(verb, args...)
	m.logger.Debug("Command processed",
		"session_id", m.current.id,
		"verb", verb,
		"args", args,
		"game_over", res.GameOver)

	if res.GameOver {
		m.record(ctx, m.current)
	}
	return m.current.reply(res), nil
}

// Input parses a raw player line and applies it. Shortcuts such as look
// and inventory never cost a turn.
func (m *Manager) Input(ctx context.Context, line string) (Reply, error) {
	cmd, err := input.Parse(line)
	if err != nil {
		return Reply{}, err
	}
	if cmd.Shortcut == input.ShortcutNone {
		return m.Command(ctx, cmd.Verb, cmd.Args...)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return Reply{}, ErrNoSession
	}
	eng := m.current.engine

	var res engine.CommandResult
	switch cmd.Shortcut {
	case input.ShortcutLook:
		res = engine.CommandResult{Message: eng.Look()}
	case input.ShortcutInventory:
		res = eng.Inventory()
	case input.ShortcutHelp:
		res = engine.CommandResult{Message: HelpText()}
	}
	return m.current.reply(res), nil
}

// HelpText lists the commands a player can type.
func HelpText() string {
	return strings.Join([]string{
		"Commands:",
		"  go <exit>",
		"  pick up <item>",
		"  drop <item>",
		"  examine <thing>",
		"  talk to <person>",
		"  give <item> to <person>",
		"  use <item> [on <thing>]",
		"  look, inventory, help",
	}, "\n")
}

// record stores the outcome of a finished session. Storage failures are
// logged and do not affect play.
func (m *Manager) record(ctx context.Context, s *session) {
	if s.recorded {
		return
	}
	s.recorded = true

	state := s.engine.State()
	result := storage.Result{
		SessionID:  s.id,
		World:      s.world,
		Title:      s.title,
		Win:        state.IsWin(),
		Turns:      state.Turns(),
		Location:   state.CurrentLocation().Name,
		FinishedAt: time.Now(),
	}
	if err := m.store.SaveResult(ctx, result); err != nil {
		logger.WithError(m.logger, err).Error("Failed to record session result", "session_id", s.id)
		return
	}
	m.logger.Info("Session finished", "session_id", s.id, "win", result.Win, "turns", result.Turns)
}

func (s *session) status() Status {
	return Status{
		SessionID: s.id,
		World:     s.world,
		Title:     s.title,
		StartedAt: s.startedAt,
		State:     s.engine.Snapshot(),
	}
}

func (s *session) reply(res engine.CommandResult) Reply {
	return Reply{
		SessionID: s.id,
		Result:    res,
		State:     s.engine.Snapshot(),
	}
}

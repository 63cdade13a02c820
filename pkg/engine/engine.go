package engine

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/jwebster45206/adventure-engine/pkg/world"
)

// Verbs understood by ProcessCommand.
const (
	VerbGo      = "go"
	VerbPick    = "pick"
	VerbPickUp  = "pickup"
	VerbDrop    = "drop"
	VerbExamine = "examine"
	VerbTalk    = "talk"
	VerbGive    = "give"
	VerbUse     = "use"
)

const (
	msgGameOver   = "The game is already over."
	msgNoCommand  = "No command provided."
	msgOutOfTime  = "You ran out of time. Game over."
	msgNotHere    = "You don't see that here."
	msgNobodyHere = "There is no one by that name here."
)

// verb binds a handler to the argument count it needs.
type verb struct {
	minArgs int
	missing string
	run     func(e *Engine, args []string) CommandResult
}

var verbs = map[string]verb{
	VerbGo: {1, "Go where?", func(e *Engine, a []string) CommandResult {
		return e.Go(a[0])
	}},
	VerbPick: {1, "Pick up what?", func(e *Engine, a []string) CommandResult {
		return e.PickUp(a[0])
	}},
	VerbPickUp: {1, "Pick up what?", func(e *Engine, a []string) CommandResult {
		return e.PickUp(a[0])
	}},
	VerbDrop: {1, "Drop what?", func(e *Engine, a []string) CommandResult {
		return e.Drop(a[0])
	}},
	VerbExamine: {1, "Examine what?", func(e *Engine, a []string) CommandResult {
		return e.Examine(a[0])
	}},
	VerbTalk: {1, "Talk to whom?", func(e *Engine, a []string) CommandResult {
		return e.Talk(a[0])
	}},
	VerbGive: {2, "Give what to whom?", func(e *Engine, a []string) CommandResult {
		return e.Give(a[0], a[1])
	}},
	VerbUse: {1, "Use what?", func(e *Engine, a []string) CommandResult {
		target := ""
		if len(a) > 1 {
			target = a[1]
		}
		return e.Use(a[0], target)
	}},
}

// Verbs lists the accepted verbs.
func Verbs() []string {
	return []string{VerbGo, VerbPick, VerbPickUp, VerbDrop, VerbExamine, VerbTalk, VerbGive, VerbUse}
}

// Engine applies player commands to a GameState.
// It is not safe for concurrent use.
type Engine struct {
	state        *GameState
	logger       *slog.Logger
	enforceRules bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for authoring diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithRuleEnforcement makes use and give consult the world's rule records.
func WithRuleEnforcement() Option {
	return func(e *Engine) {
		e.enforceRules = true
	}
}

// New starts a session in w at its start location with inv as the
// starting inventory.
func New(w *world.World, inv *world.Inventory, opts ...Option) (*Engine, error) {
	if w == nil {
		return nil, fmt.Errorf("world cannot be nil")
	}
	start, ok := w.Start()
	if !ok {
		return nil, fmt.Errorf("start location %q not found", w.StartLocation)
	}
	return NewWithState(NewGameState(w, start, inv), opts...), nil
}

// NewWithState wraps an existing state.
func NewWithState(state *GameState, opts ...Option) *Engine {
	e := &Engine{
		state:  state,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) State() *GameState {
	return e.state
}

// ProcessCommand dispatches a verb and its arguments. Expected gameplay
// outcomes, including bad input, are reported in the result message.
func (e *Engine) ProcessCommand(v string, args ...string) CommandResult {
	if e.state.gameOver {
		return e.overResult()
	}
	if strings.TrimSpace(v) == "" {
		return say(msgNoCommand)
	}

	h, ok := verbs[strings.ToLower(strings.TrimSpace(v))]
	if !ok {
		return reply("Command '%s' is not implemented yet.", v)
	}
	args = compactArgs(args)
	if len(args) < h.minArgs {
		return say(h.missing)
	}
	return h.run(e, args)
}

// compactArgs trims arguments and drops blank ones.
func compactArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for _, a := range args {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}
	return out
}

func (e *Engine) overResult() CommandResult {
	return CommandResult{Message: msgGameOver, GameOver: true, Win: e.state.win}
}

// charge spends one turn.
func (e *Engine) charge() {
	e.state.incrementTurn()
}

// postTurnCheck ends the session when the turn limit has been reached,
// replacing whatever the action produced.
func (e *Engine) postTurnCheck(res CommandResult) CommandResult {
	w := e.state.world
	if w.HasTurnLimit() && !e.state.gameOver && e.state.turns >= w.TurnLimit {
		e.state.end(false)
		e.logger.Info("turn limit reached", "turns", e.state.turns, "limit", w.TurnLimit)
		return CommandResult{Message: msgOutOfTime, GameOver: true, Win: false}
	}
	return res
}

// finish ends the session with an explicit outcome.
func (e *Engine) finish(msg string, win bool) CommandResult {
	e.state.end(win)
	return CommandResult{Message: msg, GameOver: true, Win: win}
}

package engine

import (
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

// GameState is the mutable state of one play session. Only the engine
// changes it; callers get read access through the exported getters.
type GameState struct {
	world     *world.World
	current   *world.Location
	inventory *world.Inventory
	turns     int
	gameOver  bool
	win       bool
}

// NewGameState places the player at start with the given inventory.
// A nil inventory starts empty.
func NewGameState(w *world.World, start *world.Location, inv *world.Inventory) *GameState {
	if inv == nil {
		inv = world.NewInventory()
	}
	return &GameState{
		world:     w,
		current:   start,
		inventory: inv,
	}
}

func (s *GameState) World() *world.World { return s.world }
func (s *GameState) CurrentLocation() *world.Location { return s.current }
func (s *GameState) Inventory() *world.Inventory { return s.inventory }
func (s *GameState) Turns() int { return s.turns }
func (s *GameState) IsGameOver() bool { return s.gameOver }
func (s *GameState) IsWin() bool { return s.win }

// TurnsRemaining is the number of charged actions left, or -1 when the
// world has no turn limit.
func (s *GameState) TurnsRemaining() int {
	if !s.world.HasTurnLimit() {
		return -1
	}
	if left := s.world.TurnLimit - s.turns; left > 0 {
		return left
	}
	return 0
}

func (s *GameState) incrementTurn() {
	s.turns++
}

func (s *GameState) moveTo(loc *world.Location) {
	s.current = loc
}

func (s *GameState) end(win bool) {
	s.gameOver = true
	s.win = win
}

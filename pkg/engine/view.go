package engine

import (
	"strings"
)

// View is a read-only snapshot of a session for presentation layers.
type View struct {
	Location       string   `json:"location"`
	Description    string   `json:"description"`
	Image          string   `json:"image,omitempty"`
	Exits          []string `json:"exits"`
	Objects        []string `json:"objects"`
	NPCs           []string `json:"npcs"`
	Inventory      []string `json:"inventory"`
	Turns          int      `json:"turns"`
	TurnLimit      int      `json:"turn_limit,omitempty"`
	TurnsRemaining int      `json:"turns_remaining"` // -1 when unlimited
	GameOver       bool     `json:"game_over"`
	Win            bool     `json:"win"`
}

// Snapshot captures the current state.
func (e *Engine) Snapshot() View {
	s := e.state
	loc := s.current
	return View{
		Location:       loc.Name,
		Description:    loc.Description,
		Image:          loc.Image,
		Exits:          loc.Exits(),
		Objects:        loc.ObjectNames(),
		NPCs:           loc.NPCNames(),
		Inventory:      s.inventory.Names(),
		Turns:          s.turns,
		TurnLimit:      s.world.TurnLimit,
		TurnsRemaining: s.TurnsRemaining(),
		GameOver:       s.gameOver,
		Win:            s.win,
	}
}

// Look describes the current location. It never costs a turn.
func (e *Engine) Look() string {
	loc := e.state.current

	var sb strings.Builder
	sb.WriteString(loc.Name + "\n" + loc.Description)
	if exits := loc.Exits(); len(exits) > 0 {
		sb.WriteString("\nExits: " + strings.Join(exits, ", "))
	}
	if objs := loc.ObjectNames(); len(objs) > 0 {
		sb.WriteString("\nYou see: " + strings.Join(objs, ", "))
	}
	if npcs := loc.NPCNames(); len(npcs) > 0 {
		sb.WriteString("\nPresent: " + strings.Join(npcs, ", "))
	}
	return sb.String()
}

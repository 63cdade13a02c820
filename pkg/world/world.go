package world

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// World is the registry of every location plus the session-wide rules.
// A World is owned by one session; use Clone to start another.
type World struct {
	Title          string
	Locations      []*Location
	StartLocation  string
	EndLocations   []string
	TurnLimit      int           // <= 0 means unlimited
	InventoryItems []*GameObject // free-floating pool, e.g. NPC gifts
	UseRules       []UseRule
	GiveRules      []GiveRule
}

// Location returns the location with the given name.
func (w *World) Location(name string) (*Location, bool) {
	for _, l := range w.Locations {
		if SameName(l.Name, name) {
			return l, true
		}
	}
	return nil, false
}

// Start resolves the starting location.
func (w *World) Start() (*Location, bool) {
	return w.Location(w.StartLocation)
}

func (w *World) IsEndLocation(name string) bool {
	return containsName(w.EndLocations, name)
}

func (w *World) HasTurnLimit() bool {
	return w.TurnLimit > 0
}

// TakeItem finds an object by name and removes it from wherever it is.
// The free-floating pool is searched first, then each location in order.
func (w *World) TakeItem(name string) (*GameObject, bool) {
	if obj, i := findObject(w.InventoryItems, name); obj != nil {
		w.InventoryItems = removeAt(w.InventoryItems, i)
		return obj, true
	}
	for _, l := range w.Locations {
		if obj, ok := l.RemoveObject(name); ok {
			return obj, true
		}
	}
	return nil, false
}

// itemExists reports whether TakeItem could currently find the name.
func (w *World) itemExists(name string) bool {
	if obj, _ := findObject(w.InventoryItems, name); obj != nil {
		return true
	}
	for _, l := range w.Locations {
		if _, ok := l.FindObject(name); ok {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so a new session starts from pristine state.
func (w *World) Clone() *World {
	c := *w
	c.EndLocations = append([]string(nil), w.EndLocations...)
	c.InventoryItems = cloneObjects(w.InventoryItems)
	c.UseRules = append([]UseRule(nil), w.UseRules...)
	c.GiveRules = append([]GiveRule(nil), w.GiveRules...)
	if w.Locations != nil {
		c.Locations = make([]*Location, len(w.Locations))
		for i, l := range w.Locations {
			c.Locations[i] = l.clone()
		}
	}
	return &c
}

// Validate reports structural problems that make the world unplayable.
func (w *World) Validate() error {
	el := errors.NewErrorList()

	if len(w.Locations) == 0 {
		el.Add(fmt.Errorf("world has no locations"))
	}

	seen := make(map[string]bool, len(w.Locations))
	for i, l := range w.Locations {
		if l.Name == "" {
			el.Add(fmt.Errorf("location %d: name is required", i))
			continue
		}
		key := FoldName(l.Name)
		if seen[key] {
			el.Add(fmt.Errorf("location %q: duplicate name", l.Name))
		}
		seen[key] = true
	}

	if w.StartLocation == "" {
		el.Add(fmt.Errorf("start_location is required"))
	} else if _, ok := w.Start(); !ok {
		el.Add(fmt.Errorf("start_location %q: no such location", w.StartLocation))
	}

	return el.Err()
}

// Audit reports authoring problems the engine tolerates at play time.
func (w *World) Audit() []string {
	var warnings []string
	warn := func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	if len(w.EndLocations) == 0 {
		warn("no end_locations: the game can only be lost")
	}
	for _, name := range w.EndLocations {
		if _, ok := w.Location(name); !ok {
			warn("end location %q: no such location", name)
		}
	}

	for _, l := range w.Locations {
		for _, c := range l.Connections {
			if _, ok := w.Location(c.Target); !ok {
				warn("location %q: connection %q targets unknown location %q", l.Name, c.Label, c.Target)
			}
		}
		for _, n := range l.NPCs {
			for _, g := range n.Gives {
				if !w.itemExists(g) {
					warn("npc %q: gift %q exists nowhere in the world", n.Name, g)
				}
			}
		}
	}

	for _, r := range w.GiveRules {
		if !w.npcExists(r.NPC) {
			warn("give rule: unknown npc %q", r.NPC)
		}
	}

	return warnings
}

func (w *World) npcExists(name string) bool {
	for _, l := range w.Locations {
		if _, ok := l.FindNPC(name); ok {
			return true
		}
	}
	return false
}

package engine

import "strings"

// PickUp moves an object from the current location into the inventory.
func (e *Engine) PickUp(name string) CommandResult {
	if e.state.gameOver {
		return e.overResult()
	}
	loc := e.state.current
	obj, ok := loc.FindObject(name)
	if !ok {
		return say(msgNotHere)
	}
	if !obj.Pickable {
		return say("You can't pick that up.")
	}
	loc.RemoveObject(obj.Name)
	e.state.inventory.Add(obj)
	e.charge()
	return e.postTurnCheck(reply("You pick up the %s.", obj.Name))
}

// Drop moves an object from the inventory into the current location.
func (e *Engine) Drop(name string) CommandResult {
	if e.state.gameOver {
		return e.overResult()
	}
	inv := e.state.inventory
	obj, ok := inv.Find(name)
	if !ok {
		return say("You are not carrying that.")
	}
	if !obj.Droppable {
		return say("You can't drop that.")
	}
	inv.Remove(obj.Name)
	e.state.current.AddObject(obj)
	e.charge()
	return e.postTurnCheck(reply("You drop the %s.", obj.Name))
}

// Examine describes an object held or present. Anything hidden inside it
// falls out into the current location the first time.
func (e *Engine) Examine(name string) CommandResult {
	if e.state.gameOver {
		return e.overResult()
	}
	loc := e.state.current
	obj, ok := e.state.inventory.Find(name)
	if !ok {
		obj, ok = loc.FindObject(name)
	}
	if !ok {
		return say(msgNotHere)
	}
	e.charge()

	var sb strings.Builder
	sb.WriteString(obj.Description)
	if hidden := obj.Reveal(); len(hidden) > 0 {
		for _, h := range hidden {
			loc.AddObject(h)
		}
		sb.WriteString("\nYou discover something hidden!")
	}
	return e.postTurnCheck(say(sb.String()))
}

// Inventory lists what the player carries. It never costs a turn.
func (e *Engine) Inventory() CommandResult {
	if e.state.gameOver {
		return e.overResult()
	}
	names := e.state.inventory.Names()
	if len(names) == 0 {
		return say("You have nothing in your inventory.")
	}
	var sb strings.Builder
	sb.WriteString("You are carrying:\n")
	for _, n := range names {
		sb.WriteString(" - " + n + "\n")
	}
	return say(sb.String())
}

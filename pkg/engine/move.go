package engine

// Go moves through the connection with the given label. A turn is spent
// as soon as the move is attempted, even if it fails.
func (e *Engine) Go(label string) CommandResult {
	if e.state.gameOver {
		return e.overResult()
	}
	w := e.state.world
	conn, ok := e.state.current.Connection(label)
	e.charge()
	if !ok {
		return e.postTurnCheck(say("You cannot go that way."))
	}

	dest, ok := w.Location(conn.Target)
	if !ok {
		e.logger.Warn("connection targets unknown location",
			"from", e.state.current.Name, "label", conn.Label, "target", conn.Target)
		return e.postTurnCheck(reply("You try to go %s, but something feels wrong.", label))
	}

	if !dest.Accessible {
		inv := e.state.inventory
		if !inv.ContainsAll(dest.RequiredInventory) {
			return e.postTurnCheck(reply("You need certain items before accessing %s.", label))
		}
		if !inv.ContainsAll(dest.RequiredItems) {
			return e.postTurnCheck(reply("You need to use something first to unlock %s.", label))
		}
		for _, name := range dest.RequiredItems {
			inv.Remove(name)
		}
		dest.Accessible = true
		e.logger.Debug("location unlocked", "location", dest.Name)
	}

	e.state.moveTo(dest)
	if w.IsEndLocation(dest.Name) {
		return e.finish(dest.Description+"\n\nYou have reached your destination. Game over.", true)
	}
	return e.postTurnCheck(reply("You go to %s.\n%s", dest.Name, dest.Description))
}

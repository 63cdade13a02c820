package engine

// Use applies an item, optionally on a target object in the current
// location. An empty target means the item is used on its own.
func (e *Engine) Use(itemName, targetName string) CommandResult {
	if e.state.gameOver {
		return e.overResult()
	}
	loc := e.state.current
	item, ok := e.state.inventory.Find(itemName)
	if !ok {
		item, ok = loc.FindObject(itemName)
	}
	if !ok {
		return say("You don't have that, and it's not here.")
	}

	if targetName == "" {
		e.charge()
		return e.postTurnCheck(say("Nothing happens."))
	}

	target, ok := loc.FindObject(targetName)
	if !ok {
		return say(msgNotHere)
	}
	e.charge()

	if e.enforceRules {
		if rule, ok := e.state.world.FindUseRule(item.Name, target.Name); ok {
			msg := rule.Message
			if msg == "" {
				msg = "Something happens."
			}
			if rule.EndsGame {
				return e.finish(msg, rule.Win)
			}
			return e.postTurnCheck(say(msg))
		}
	}
	return e.postTurnCheck(reply("You try to use %s on %s, but nothing special happens.", item.Name, target.Name))
}

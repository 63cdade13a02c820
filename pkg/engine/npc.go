package engine

import "strings"

// Talk advances the dialogue of an NPC in the current location.
func (e *Engine) Talk(name string) CommandResult {
	if e.state.gameOver {
		return e.overResult()
	}
	npc, ok := e.state.current.FindNPC(name)
	if !ok {
		return say(msgNobodyHere)
	}
	e.charge()
	return e.postTurnCheck(say(npc.Talk()))
}

// Give hands an inventory item to an NPC in the current location. An NPC
// that wants the item keeps it, speaks its next line and hands over its gifts.
func (e *Engine) Give(itemName, npcName string) CommandResult {
	if e.state.gameOver {
		return e.overResult()
	}
	inv := e.state.inventory
	item, ok := inv.Find(itemName)
	if !ok {
		return say("You don't have that item.")
	}
	npc, ok := e.state.current.FindNPC(npcName)
	if !ok {
		return say(msgNobodyHere)
	}
	if !npc.WantsItem(item.Name) {
		return reply("%s does not seem interested in that.", npc.Name)
	}

	inv.Remove(item.Name)
	e.charge()

	var sb strings.Builder
	sb.WriteString(npc.Name + " gladly accepts the " + item.Name + ".\n\n")
	if line := npc.Talk(); line != npc.Exhausted() {
		sb.WriteString(line)
	}

	w := e.state.world
	for _, gift := range npc.Gives {
		obj, ok := w.TakeItem(gift)
		if !ok {
			e.logger.Warn("npc gift not found in world",
				"npc", npc.Name, "item", gift)
			sb.WriteString("\n\n" + npc.Name + " tries to give you " + gift + ", but something went wrong...")
			continue
		}
		inv.Add(obj)
		sb.WriteString("\n\n" + npc.Name + " gives you " + obj.Name + ".")
	}

	if e.enforceRules {
		if rule, ok := w.FindGiveRule(npc.Name, item.Name); ok {
			if rule.Message != "" {
				sb.WriteString("\n\n" + rule.Message)
			}
			if rule.EndsGame {
				return e.finish(sb.String(), rule.Win)
			}
		}
	}
	return e.postTurnCheck(say(sb.String()))
}

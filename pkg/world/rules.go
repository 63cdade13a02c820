package world

// UseRule describes a scripted outcome for using one object on another.
type UseRule struct {
	Item     string
	Target   string
	Message  string
	EndsGame bool
	Win      bool // outcome when EndsGame is set
}

// GiveRule describes a scripted outcome for handing an item to an NPC.
type GiveRule struct {
	NPC      string
	Item     string
	Message  string
	EndsGame bool
	Win      bool
}

// FindUseRule returns the first rule matching the item and target.
func (w *World) FindUseRule(item, target string) (UseRule, bool) {
	for _, r := range w.UseRules {
		if SameName(r.Item, item) && SameName(r.Target, target) {
			return r, true
		}
	}
	return UseRule{}, false
}

// FindGiveRule returns the first rule matching the NPC and item.
func (w *World) FindGiveRule(npc, item string) (GiveRule, bool) {
	for _, r := range w.GiveRules {
		if SameName(r.NPC, npc) && SameName(r.Item, item) {
			return r, true
		}
	}
	return GiveRule{}, false
}

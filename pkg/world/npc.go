package world

import "fmt"

// NPC is a non-player character with a linear dialogue and an exchange list.
type NPC struct {
	Name        string
	Description string
	Image       string
	Phrases     []string
	Wants       []string // item names the NPC accepts
	Gives       []string // item names handed over on an accepted gift

	cursor int
}

// Talk returns the next dialogue line. Once the phrases run out the cursor
// stays at the end and every call returns the exhausted line.
func (n *NPC) Talk() string {
	if n.cursor < len(n.Phrases) {
		line := n.Phrases[n.cursor]
		n.cursor++
		return line
	}
	return n.Exhausted()
}

// Exhausted is the line spoken when the NPC has nothing left to say.
func (n *NPC) Exhausted() string {
	return fmt.Sprintf("%s has nothing more to say.", n.Name)
}

// DialogueIndex is the position of the next phrase, clamped to len(Phrases).
func (n *NPC) DialogueIndex() int {
	return n.cursor
}

// WantsItem reports whether the NPC accepts an item with the given name.
func (n *NPC) WantsItem(name string) bool {
	return containsName(n.Wants, name)
}

func (n *NPC) clone() *NPC {
	c := *n
	c.Phrases = append([]string(nil), n.Phrases...)
	c.Wants = append([]string(nil), n.Wants...)
	c.Gives = append([]string(nil), n.Gives...)
	return &c
}

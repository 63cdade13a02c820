package world

// Connection is a one-way labelled edge to another location. The target is
// resolved by name through the World when it is traversed.
type Connection struct {
	Label  string
	Target string
}

// Location is a node in the world graph.
type Location struct {
	Name        string
	Description string
	Image       string
	Accessible  bool

	RequiredInventory []string // must be held to enter, never consumed
	RequiredItems     []string // must be held to unlock, consumed on unlock

	Connections []Connection
	Objects     []*GameObject
	NPCs        []*NPC
}

// Connection returns the first connection whose label matches.
func (l *Location) Connection(label string) (Connection, bool) {
	for _, c := range l.Connections {
		if SameName(c.Label, label) {
			return c, true
		}
	}
	return Connection{}, false
}

// Exits lists the connection labels in declaration order.
func (l *Location) Exits() []string {
	exits := make([]string, len(l.Connections))
	for i, c := range l.Connections {
		exits[i] = c.Label
	}
	return exits
}

func (l *Location) FindObject(name string) (*GameObject, bool) {
	obj, _ := findObject(l.Objects, name)
	return obj, obj != nil
}

func (l *Location) AddObject(obj *GameObject) {
	if obj == nil {
		return
	}
	l.Objects = append(l.Objects, obj)
}

// RemoveObject takes the first object with the given name out of the location.
func (l *Location) RemoveObject(name string) (*GameObject, bool) {
	obj, i := findObject(l.Objects, name)
	if obj == nil {
		return nil, false
	}
	l.Objects = removeAt(l.Objects, i)
	return obj, true
}

// FindNPC returns the first character present whose name matches.
func (l *Location) FindNPC(name string) (*NPC, bool) {
	for _, n := range l.NPCs {
		if SameName(n.Name, name) {
			return n, true
		}
	}
	return nil, false
}

// ObjectNames lists the objects present in order.
func (l *Location) ObjectNames() []string {
	names := make([]string, len(l.Objects))
	for i, o := range l.Objects {
		names[i] = o.Name
	}
	return names
}

func (l *Location) NPCNames() []string {
	names := make([]string, len(l.NPCs))
	for i, n := range l.NPCs {
		names[i] = n.Name
	}
	return names
}

func (l *Location) clone() *Location {
	c := *l
	c.RequiredInventory = append([]string(nil), l.RequiredInventory...)
	c.RequiredItems = append([]string(nil), l.RequiredItems...)
	c.Connections = append([]Connection(nil), l.Connections...)
	c.Objects = cloneObjects(l.Objects)
	if l.NPCs != nil {
		c.NPCs = make([]*NPC, len(l.NPCs))
		for i, n := range l.NPCs {
			c.NPCs[i] = n.clone()
		}
	}
	return &c
}

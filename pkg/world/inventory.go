package world

// Inventory is the ordered collection of objects the player carries.
// Duplicate names are allowed; lookups and removals hit the first match.
type Inventory struct {
	items []*GameObject
}

// NewInventory creates an inventory holding the given objects in order.
func NewInventory(items ...*GameObject) *Inventory {
	inv := &Inventory{}
	for _, it := range items {
		inv.Add(it)
	}
	return inv
}

func (inv *Inventory) Add(obj *GameObject) {
	if obj == nil {
		return
	}
	inv.items = append(inv.items, obj)
}

// Find returns the first carried object with the given name.
func (inv *Inventory) Find(name string) (*GameObject, bool) {
	obj, _ := findObject(inv.items, name)
	return obj, obj != nil
}

// Remove takes the first object with the given name out of the inventory.
func (inv *Inventory) Remove(name string) (*GameObject, bool) {
	obj, i := findObject(inv.items, name)
	if obj == nil {
		return nil, false
	}
	inv.items = removeAt(inv.items, i)
	return obj, true
}

// Has reports whether an object with the given name is carried.
func (inv *Inventory) Has(name string) bool {
	_, ok := inv.Find(name)
	return ok
}

// ContainsAll reports whether every named object is carried.
func (inv *Inventory) ContainsAll(names []string) bool {
	for _, n := range names {
		if !inv.Has(n) {
			return false
		}
	}
	return true
}

func (inv *Inventory) Len() int {
	return len(inv.items)
}

// Items returns a copy of the carried objects in order.
func (inv *Inventory) Items() []*GameObject {
	return append([]*GameObject(nil), inv.items...)
}

func (inv *Inventory) Names() []string {
	names := make([]string, len(inv.items))
	for i, it := range inv.items {
		names[i] = it.Name
	}
	return names
}

// Clone returns a deep copy.
func (inv *Inventory) Clone() *Inventory {
	return &Inventory{items: cloneObjects(inv.items)}
}

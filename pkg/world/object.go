package world

// Kind distinguishes the object variants a world can declare.
type Kind string

const (
	KindObject Kind = ""      // generic scenery or prop
	KindItem   Kind = "item"  // portable by default
	KindFixed  Kind = "fixed" // never portable by default
)

// GameObject is anything that can sit in a location or an inventory.
// Variants differ only in their default capability flags.
type GameObject struct {
	Name        string
	Description string
	Image       string // opaque to the engine
	Kind        Kind
	Attributes  []string      // informational tags
	Contains    []*GameObject // revealed by examining

	Pickable   bool
	Droppable  bool
	Examinable bool
	Selectable bool
}

// NewObject creates a generic object. It cannot be picked up.
func NewObject(name, description string) *GameObject {
	return &GameObject{
		Name:        name,
		Description: description,
		Kind:        KindObject,
		Droppable:   true,
	}
}

// NewItem creates a portable item.
func NewItem(name, description string) *GameObject {
	o := NewObject(name, description)
	o.Kind = KindItem
	o.Pickable = true
	return o
}

// NewFixedObject creates scenery that stays where it is.
func NewFixedObject(name, description string) *GameObject {
	o := NewObject(name, description)
	o.Kind = KindFixed
	return o
}

// DefaultPickable returns the pickable flag a kind starts with.
func DefaultPickable(k Kind) bool {
	return k == KindItem
}

// Reveal hands back the nested objects and empties the container.
// A second call returns nil.
func (o *GameObject) Reveal() []*GameObject {
	if len(o.Contains) == 0 {
		return nil
	}
	revealed := o.Contains
	o.Contains = nil
	return revealed
}

func (o *GameObject) clone() *GameObject {
	if o == nil {
		return nil
	}
	c := *o
	c.Attributes = append([]string(nil), o.Attributes...)
	c.Contains = cloneObjects(o.Contains)
	return &c
}

func cloneObjects(objs []*GameObject) []*GameObject {
	if objs == nil {
		return nil
	}
	out := make([]*GameObject, len(objs))
	for i, o := range objs {
		out[i] = o.clone()
	}
	return out
}

// findObject returns the first object whose name matches, and its index.
func findObject(objs []*GameObject, name string) (*GameObject, int) {
	for i, o := range objs {
		if SameName(o.Name, name) {
			return o, i
		}
	}
	return nil, -1
}

func removeAt(objs []*GameObject, i int) []*GameObject {
	return append(objs[:i], objs[i+1:]...)
}

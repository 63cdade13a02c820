package worldfile

// Spec is the serializable form of a world as authored on disk.
type Spec struct {
	Title          string         `json:"title,omitempty" yaml:"title,omitempty"`
	Description    string         `json:"description,omitempty" yaml:"description,omitempty"` // Blurb shown when listing worlds
	StartLocation  string         `json:"start_location" yaml:"start_location"`
	EndLocations   []string       `json:"end_locations,omitempty" yaml:"end_locations,omitempty"`
	TurnLimit      int            `json:"turn_limit,omitempty" yaml:"turn_limit,omitempty"` // 0 = unlimited
	InventoryItems []ObjectSpec   `json:"inventory_items,omitempty" yaml:"inventory_items,omitempty"`
	Locations      []LocationSpec `json:"locations" yaml:"locations"`
	UseRules       []UseRuleSpec  `json:"use_rules,omitempty" yaml:"use_rules,omitempty"`
	GiveRules      []GiveRuleSpec `json:"give_rules,omitempty" yaml:"give_rules,omitempty"`
}

// LocationSpec describes one location.
type LocationSpec struct {
	Name              string           `json:"name" yaml:"name"`
	Description       string           `json:"description,omitempty" yaml:"description,omitempty"`
	Image             string           `json:"image,omitempty" yaml:"image,omitempty"`
	Accessible        bool             `json:"accessible,omitempty" yaml:"accessible,omitempty"` // locked locations unlock on first entry
	RequiredItems     []string         `json:"required_items,omitempty" yaml:"required_items,omitempty"`         // consumed on unlock
	RequiredInventory []string         `json:"required_inventory,omitempty" yaml:"required_inventory,omitempty"` // held, not consumed
	Connections       []ConnectionSpec `json:"connections,omitempty" yaml:"connections,omitempty"`
	Objects           []ObjectSpec     `json:"objects,omitempty" yaml:"objects,omitempty"`
	NPCs              []NPCSpec        `json:"npcs,omitempty" yaml:"npcs,omitempty"`
}

type ConnectionSpec struct {
	Label  string `json:"label" yaml:"label"`
	Target string `json:"target" yaml:"target"`
}

// ObjectSpec describes an object. Nil flags take the kind's default.
type ObjectSpec struct {
	Name        string       `json:"name" yaml:"name"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Image       string       `json:"image,omitempty" yaml:"image,omitempty"`
	Kind        string       `json:"kind,omitempty" yaml:"kind,omitempty"` // "item", "fixed" or empty
	Attributes  []string     `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Contains    []ObjectSpec `json:"contains,omitempty" yaml:"contains,omitempty"`
	Pickable    *bool        `json:"pickable,omitempty" yaml:"pickable,omitempty"`
	Droppable   *bool        `json:"droppable,omitempty" yaml:"droppable,omitempty"`
	Examinable  *bool        `json:"examinable,omitempty" yaml:"examinable,omitempty"`
	Selectable  *bool        `json:"selectable,omitempty" yaml:"selectable,omitempty"`
}

type NPCSpec struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Image       string   `json:"image,omitempty" yaml:"image,omitempty"`
	Phrases     []string `json:"phrases,omitempty" yaml:"phrases,omitempty"`
	Wants       []string `json:"wants,omitempty" yaml:"wants,omitempty"`
	Gives       []string `json:"gives,omitempty" yaml:"gives,omitempty"`
}

type UseRuleSpec struct {
	Item     string `json:"item" yaml:"item"`
	Target   string `json:"target,omitempty" yaml:"target,omitempty"`
	Message  string `json:"message,omitempty" yaml:"message,omitempty"`
	EndsGame bool   `json:"ends_game,omitempty" yaml:"ends_game,omitempty"`
	Win      bool   `json:"win,omitempty" yaml:"win,omitempty"`
}

type GiveRuleSpec struct {
	NPC      string `json:"npc" yaml:"npc"`
	Item     string `json:"item" yaml:"item"`
	Message  string `json:"message,omitempty" yaml:"message,omitempty"`
	EndsGame bool   `json:"ends_game,omitempty" yaml:"ends_game,omitempty"`
	Win      bool   `json:"win,omitempty" yaml:"win,omitempty"`
}

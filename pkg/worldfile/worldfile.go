package worldfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pixil98/go-errors"
	"gopkg.in/yaml.v3"

	"github.com/jwebster45206/adventure-engine/pkg/world"
)

// Format is the encoding of a world file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported world file extension: %q", filepath.Ext(path))
	}
}

// IsWorldFile reports whether the path has a supported extension.
func IsWorldFile(path string) bool {
	_, err := FormatFromPath(path)
	return err == nil
}

// Decode reads a Spec. In strict mode unknown fields are rejected.
func Decode(r io.Reader, format Format, strict bool) (*Spec, error) {
	var spec Spec
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		if strict {
			dec.DisallowUnknownFields()
		}
		if err := dec.Decode(&spec); err != nil {
			return nil, fmt.Errorf("failed to decode world json: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(strict)
		if err := dec.Decode(&spec); err != nil {
			return nil, fmt.Errorf("failed to decode world yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported world format: %q", format)
	}
	return &spec, nil
}

// Parse decodes a Spec from bytes.
func Parse(data []byte, format Format) (*Spec, error) {
	return Decode(bytes.NewReader(data), format, false)
}

// ReadFile decodes the Spec stored at path.
func ReadFile(path string, strict bool) (*Spec, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open world file: %w", err)
	}
	defer f.Close()
	return Decode(f, format, strict)
}

// Load reads and builds the world stored at path.
func Load(path string) (*world.World, error) {
	spec, err := ReadFile(path, false)
	if err != nil {
		return nil, err
	}
	return spec.Build()
}

// Build turns the Spec into a playable World. Structural problems are
// returned as an error; authoring problems are left to World.Audit.
func (s *Spec) Build() (*world.World, error) {
	w := &world.World{
		Title:          s.Title,
		StartLocation:  s.StartLocation,
		EndLocations:   append([]string(nil), s.EndLocations...),
		TurnLimit:      s.TurnLimit,
		InventoryItems: buildObjects(s.InventoryItems),
	}
	for _, ls := range s.Locations {
		w.Locations = append(w.Locations, buildLocation(ls))
	}
	for _, r := range s.UseRules {
		w.UseRules = append(w.UseRules, world.UseRule(r))
	}
	for _, r := range s.GiveRules {
		w.GiveRules = append(w.GiveRules, world.GiveRule(r))
	}

	el := errors.NewErrorList()
	el.Add(checkKinds("inventory_items", s.InventoryItems))
	for _, ls := range s.Locations {
		el.Add(checkKinds("location "+ls.Name, ls.Objects))
	}
	el.Add(w.Validate())
	if err := el.Err(); err != nil {
		return nil, fmt.Errorf("invalid world: %w", err)
	}
	return w, nil
}

func checkKinds(where string, specs []ObjectSpec) error {
	for _, spec := range specs {
		switch world.Kind(strings.ToLower(strings.TrimSpace(spec.Kind))) {
		case world.KindObject, world.KindItem, world.KindFixed:
		default:
			return fmt.Errorf("%s: object %q has unknown kind %q", where, spec.Name, spec.Kind)
		}
		if err := checkKinds(where, spec.Contains); err != nil {
			return err
		}
	}
	return nil
}

func buildLocation(ls LocationSpec) *world.Location {
	loc := &world.Location{
		Name:              ls.Name,
		Description:       ls.Description,
		Image:             ls.Image,
		Accessible:        ls.Accessible,
		RequiredItems:     append([]string(nil), ls.RequiredItems...),
		RequiredInventory: append([]string(nil), ls.RequiredInventory...),
		Objects:           buildObjects(ls.Objects),
	}
	for _, c := range ls.Connections {
		loc.Connections = append(loc.Connections, world.Connection{Label: c.Label, Target: c.Target})
	}
	for _, n := range ls.NPCs {
		loc.NPCs = append(loc.NPCs, &world.NPC{
			Name:        n.Name,
			Description: n.Description,
			Image:       n.Image,
			Phrases:     append([]string(nil), n.Phrases...),
			Wants:       append([]string(nil), n.Wants...),
			Gives:       append([]string(nil), n.Gives...),
		})
	}
	return loc
}

func buildObjects(specs []ObjectSpec) []*world.GameObject {
	if len(specs) == 0 {
		return nil
	}
	objs := make([]*world.GameObject, len(specs))
	for i, spec := range specs {
		objs[i] = buildObject(spec)
	}
	return objs
}

func buildObject(s ObjectSpec) *world.GameObject {
	kind := world.Kind(strings.ToLower(strings.TrimSpace(s.Kind)))
	return &world.GameObject{
		Name:        s.Name,
		Description: s.Description,
		Image:       s.Image,
		Kind:        kind,
		Attributes:  append([]string(nil), s.Attributes...),
		Contains:    buildObjects(s.Contains),
		Pickable:    flag(s.Pickable, world.DefaultPickable(kind)),
		Droppable:   flag(s.Droppable, true),
		Examinable:  flag(s.Examinable, false),
		Selectable:  flag(s.Selectable, false),
	}
}

func flag(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

package input

import (
	"fmt"
	"strings"

	"github.com/buildkite/shellwords"
)

// Shortcut is a free, non-verb command handled by the host.
type Shortcut string

const (
	ShortcutNone      Shortcut = ""
	ShortcutLook      Shortcut = "look"
	ShortcutInventory Shortcut = "inventory"
	ShortcutHelp      Shortcut = "help"
)

var shortcuts = map[string]Shortcut{
	"look":      ShortcutLook,
	"l":         ShortcutLook,
	"inventory": ShortcutInventory,
	"inv":       ShortcutInventory,
	"i":         ShortcutInventory,
	"help":      ShortcutHelp,
	"?":         ShortcutHelp,
}

var aliases = map[string]string{
	"take": "pick",
	"get":  "pick",
	"x":    "examine",
	"walk": "go",
}

// Command is a parsed player line.
type Command struct {
	Verb     string
	Args     []string
	Shortcut Shortcut
}

// Parse splits a raw line into a verb and its arguments. Quotes group
// words; otherwise multi-word names are joined back with single spaces.
//
//	pick up brass key -> pick ["brass key"]
//	give coffee to room mate -> give ["coffee", "room mate"]
//	use "bobby pin" on door -> use ["bobby pin", "door"]
func Parse(line string) (Command, error) {
	words, err := shellwords.SplitPosix(line)
	if err != nil {
		return Command{}, fmt.Errorf("failed to parse input: %w", err)
	}
	if len(words) == 0 {
		return Command{}, nil
	}

	head := strings.ToLower(words[0])
	rest := words[1:]

	if sc, ok := shortcuts[head]; ok && len(rest) == 0 {
		return Command{Shortcut: sc}, nil
	}
	if v, ok := aliases[head]; ok {
		head = v
	}

	switch head {
	case "pick":
		rest = dropLeading(rest, "up")
	case "talk":
		rest = dropLeading(rest, "to", "with")
	case "look":
		head = "examine"
		rest = dropLeading(rest, "at")
	case "give":
		return Command{Verb: head, Args: splitOn(rest, "to")}, nil
	case "use":
		return Command{Verb: head, Args: splitOn(rest, "on", "with")}, nil
	}
	return Command{Verb: head, Args: joined(rest)}, nil
}

// dropLeading removes one leading filler word.
func dropLeading(words []string, fillers ...string) []string {
	if len(words) > 0 {
		for _, f := range fillers {
			if strings.EqualFold(words[0], f) {
				return words[1:]
			}
		}
	}
	return words
}

// splitOn divides words into two arguments around the first separator.
// Without a separator, two words are taken as two arguments.
func splitOn(words []string, seps ...string) []string {
	for i := 1; i < len(words)-1; i++ {
		for _, s := range seps {
			if strings.EqualFold(words[i], s) {
				return []string{strings.Join(words[:i], " "), strings.Join(words[i+1:], " ")}
			}
		}
	}
	if len(words) == 2 {
		return words
	}
	return joined(words)
}

func joined(words []string) []string {
	if len(words) == 0 {
		return nil
	}
	return []string{strings.Join(words, " ")}
}

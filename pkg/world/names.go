package world

import (
	"strings"

	"golang.org/x/text/cases"
)

// FoldName normalizes a name for comparison. Names are matched exactly
// after folding, never by prefix or substring.
func FoldName(name string) string {
	// A Caser carries state, so one is built per call.
	return cases.Fold().String(strings.TrimSpace(name))
}

// SameName reports whether two entity names refer to the same thing.
func SameName(a, b string) bool {
	return FoldName(a) == FoldName(b)
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if SameName(n, name) {
			return true
		}
	}
	return false
}

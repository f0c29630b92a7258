package core

import "sort"

// Size describes the dimensions of a grid in cells.
type Size struct {
	W int
	H int
}

// Rule maps a cell's state and its live-neighbor count (0..8) to the cell's
// next state. Rules must be deterministic and return 0 or 1.
type Rule func(alive uint8, neighbors int) uint8

var rules = map[string]Rule{}

// Register adds a rule under the provided name.
func Register(name string, r Rule) {
	if name == "" || r == nil {
		return
	}
	rules[name] = r
}

// Lookup returns the rule registered under name.
func Lookup(name string) (Rule, bool) {
	r, ok := rules[name]
	return r, ok
}

// RuleNames lists the registered rule names in sorted order.
func RuleNames() []string {
	names := make([]string, 0, len(rules))
	for name := range rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

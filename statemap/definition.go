// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package statemap

// Condition compares a layout entry of the base bits against a value.
type Condition struct {
	Entry  int
	Value  int
	Negate bool
}

// Rule selects Value for its entry if all of its conditions hold. A rule
// without conditions always matches.
type Rule struct {
	Conditions  []Condition
	Passthrough bool
	Value       int
}

// Definition holds the rules of a state map, indexed like the entries of the
// layout it was parsed against. Definitions are compared by identity.
type Definition struct {
	Name   string
	Layout *Layout
	Rules  [][]Rule
}

func newDefinition(name string, layout *Layout) *Definition {
	return &Definition{
		Name:   name,
		Layout: layout,
		Rules:  make([][]Rule, len(layout.Entries)),
	}
}

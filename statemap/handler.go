// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package statemap

// Handler applies a state map definition.
type Handler struct {
	def *Definition
}

func NewHandler(def *Definition) *Handler {
	return &Handler{def: def}
}

// Apply computes the state bits of a technique from the material's base
// bits. Conditions always see the base bits, never the partially transformed
// output. Entries without a matching rule keep their base value.
func (h *Handler) Apply(base [2]uint32) [2]uint32 {
	out := base
	layout := h.def.Layout
	for i, rules := range h.def.Rules {
		entry := &layout.Entries[i]
		for _, rule := range rules {
			if !h.matches(base, rule.Conditions) {
				continue
			}
			if !rule.Passthrough {
				v := entry.Values[rule.Value]
				out[entry.Word] &^= entry.Mask
				out[entry.Word] |= v.Bits & entry.Mask
			}
			break
		}
	}
	return out
}

func (h *Handler) matches(base [2]uint32, conds []Condition) bool {
	layout := h.def.Layout
	for _, c := range conds {
		entry := &layout.Entries[c.Entry]
		if entry.Values[c.Value].matches(base[entry.Word]) == c.Negate {
			return false
		}
	}
	return true
}

// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package statemap

import (
	"honnef.co/go/zonetool/internal/lex"
)

// Parse parses a .sm file against a layout. Entries and values are referred
// to by their layout names:
//
//	depthWrite
//	{
//		blendFunc == Disable && alphaTest != GE128:
//			On;
//		default:
//			Off;
//	}
//
// The result of a rule is either a value of the entry or passthrough.
func Parse(layout *Layout, name string, src []byte) (*Definition, error) {
	l := lex.New(name, src)
	def := newDefinition(name, layout)
	seen := make([]bool, len(layout.Entries))

	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == lex.EOF {
			break
		}
		if tok.Kind != lex.Ident {
			return nil, l.Errorf(tok, "expected state map entry, got %s", tok)
		}
		idx, ok := layout.entry(tok.Text)
		if !ok {
			return nil, l.Errorf(tok, "unknown state map entry %q", tok.Text)
		}
		if seen[idx] {
			return nil, l.Errorf(tok, "duplicate state map entry %q", tok.Text)
		}
		seen[idx] = true

		rules, err := parseRules(l, layout, idx)
		if err != nil {
			return nil, err
		}
		def.Rules[idx] = rules
	}
	return def, nil
}

func parseRules(l *lex.Lexer, layout *Layout, idx int) ([]Rule, error) {
	if _, err := l.Expect("{"); err != nil {
		return nil, err
	}
	entry := &layout.Entries[idx]

	var rules []Rule
	for {
		if ok, err := l.Accept("}"); err != nil {
			return nil, err
		} else if ok {
			return rules, nil
		}

		var rule Rule
		tok, err := l.Peek()
		if err != nil {
			return nil, err
		}
		if tok.Is(lex.Ident, "default") {
			l.Next()
		} else {
			conds, err := parseConditions(l, layout)
			if err != nil {
				return nil, err
			}
			rule.Conditions = conds
		}
		if _, err := l.Expect(":"); err != nil {
			return nil, err
		}

		result, err := l.Next()
		if err != nil {
			return nil, err
		}
		if result.Kind != lex.Ident {
			return nil, l.Errorf(result, "expected value, got %s", result)
		}
		if result.Text == "passthrough" {
			rule.Passthrough = true
		} else {
			v, ok := entry.value(result.Text)
			if !ok {
				return nil, l.Errorf(result, "unknown value %q for %s", result.Text, entry.Name)
			}
			rule.Value = v
		}
		if _, err := l.Expect(";"); err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
}

func parseConditions(l *lex.Lexer, layout *Layout) ([]Condition, error) {
	var conds []Condition
	for {
		name, err := l.Next()
		if err != nil {
			return nil, err
		}
		if name.Kind != lex.Ident {
			return nil, l.Errorf(name, "expected state map entry, got %s", name)
		}
		idx, ok := layout.entry(name.Text)
		if !ok {
			return nil, l.Errorf(name, "unknown state map entry %q", name.Text)
		}

		op, err := l.Next()
		if err != nil {
			return nil, err
		}
		var negate bool
		switch {
		case op.Is(lex.Punct, "=="):
		case op.Is(lex.Punct, "!="):
			negate = true
		default:
			return nil, l.Errorf(op, "expected '==' or '!=', got %s", op)
		}

		value, err := l.Next()
		if err != nil {
			return nil, err
		}
		v, ok := layout.Entries[idx].value(value.Text)
		if value.Kind != lex.Ident || !ok {
			return nil, l.Errorf(value, "unknown value %s for %s", value, name.Text)
		}

		conds = append(conds, Condition{Entry: idx, Value: v, Negate: negate})
		if ok, err := l.Accept("&&"); err != nil {
			return nil, err
		} else if !ok {
			return conds, nil
		}
	}
}

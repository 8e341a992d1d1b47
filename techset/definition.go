// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package techset

import (
	"honnef.co/go/zonetool/internal/lex"
)

// Definition maps technique slots to technique names. Empty names mark
// unused slots.
type Definition struct {
	Name       string
	techniques [TechniqueCount]string
}

func (d *Definition) SetTechnique(slot int, name string) {
	d.techniques[slot] = name
}

// GetTechniqueByIndex returns the technique of a slot, if the slot is used.
func (d *Definition) GetTechniqueByIndex(slot int) (string, bool) {
	name := d.techniques[slot]
	return name, name != ""
}

// ParseDefinition parses a .techset file. Each technique is preceded by the
// quoted names of the slots it fills:
//
//	"lit":
//	"lit dfog":
//		wc_lit_sm;
func ParseDefinition(name string, src []byte) (*Definition, error) {
	l := lex.New(name, src)
	def := &Definition{Name: name}

	var pending []int
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case lex.EOF:
			if len(pending) != 0 {
				return nil, l.Errorf(tok, "slot %q has no technique", TechniqueNames[pending[0]])
			}
			return def, nil

		case lex.String:
			peek, err := l.Peek()
			if err != nil {
				return nil, err
			}
			if !peek.Is(lex.Punct, ":") {
				if len(pending) == 0 {
					return nil, l.Errorf(tok, "technique %q doesn't fill any slots", tok.Text)
				}
				if err := assign(l, def, pending, tok.Text); err != nil {
					return nil, err
				}
				pending = pending[:0]
				continue
			}
			l.Next()
			slot, ok := techniqueIndex(tok.Text)
			if !ok {
				return nil, l.Errorf(tok, "unknown technique slot %q", tok.Text)
			}
			if _, used := def.GetTechniqueByIndex(slot); used {
				return nil, l.Errorf(tok, "slot %q is assigned more than once", tok.Text)
			}
			pending = append(pending, slot)

		case lex.Ident:
			if len(pending) == 0 {
				return nil, l.Errorf(tok, "technique %q doesn't fill any slots", tok.Text)
			}
			if err := assign(l, def, pending, tok.Text); err != nil {
				return nil, err
			}
			pending = pending[:0]

		default:
			return nil, l.Errorf(tok, "unexpected %s", tok)
		}
	}
}

func assign(l *lex.Lexer, def *Definition, slots []int, technique string) error {
	if _, err := l.Expect(";"); err != nil {
		return err
	}
	for _, slot := range slots {
		def.SetTechnique(slot, technique)
	}
	return nil
}

// StateMapName extracts the name of the state map from a .tech file. It
// returns the empty string if the technique doesn't use one.
func StateMapName(name string, src []byte) (string, error) {
	l := lex.New(name, src)
	for {
		tok, err := l.Next()
		if err != nil {
			return "", err
		}
		switch {
		case tok.Kind == lex.EOF:
			return "", nil
		case tok.Is(lex.Ident, "stateMap"):
			arg, err := l.Next()
			if err != nil {
				return "", err
			}
			if arg.Kind != lex.String {
				return "", l.Errorf(arg, "expected state map name, got %s", arg)
			}
			if _, err := l.Expect(";"); err != nil {
				return "", err
			}
			return arg.Text, nil
		}
	}
}

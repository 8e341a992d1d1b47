// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package gdt

import (
	"fmt"

	"honnef.co/go/zonetool/internal/lex"
)

// Parse parses a GDT file. Parents may be declared after the entries that
// derive from them.
func Parse(name string, src []byte) (*File, error) {
	l := lex.New(name, src)
	f := &File{byName: map[string]*Entry{}}
	parents := map[*Entry]string{}

	if _, err := l.Expect("{"); err != nil {
		return nil, err
	}
	for {
		if ok, err := l.Accept("}"); err != nil {
			return nil, err
		} else if ok {
			break
		}

		nameTok, err := l.Next()
		if err != nil {
			return nil, err
		}
		if nameTok.Kind != lex.String {
			return nil, l.Errorf(nameTok, "expected entry name, got %s", nameTok)
		}
		if _, ok := f.byName[nameTok.Text]; ok {
			return nil, l.Errorf(nameTok, "duplicate entry %q", nameTok.Text)
		}
		e := &Entry{Name: nameTok.Text, Properties: map[string]string{}}

		open, err := l.Next()
		if err != nil {
			return nil, err
		}
		var closing string
		switch {
		case open.Is(lex.Punct, "("):
			closing = ")"
		case open.Is(lex.Punct, "["):
			closing = "]"
		default:
			return nil, l.Errorf(open, "expected '(' or '[' after entry name, got %s", open)
		}
		ref, err := l.Next()
		if err != nil {
			return nil, err
		}
		if ref.Kind != lex.String {
			return nil, l.Errorf(ref, "expected string, got %s", ref)
		}
		if closing == ")" {
			e.GdfName = ref.Text
		} else {
			parents[e] = ref.Text
		}
		if _, err := l.Expect(closing); err != nil {
			return nil, err
		}

		if _, err := l.Expect("{"); err != nil {
			return nil, err
		}
		for {
			if ok, err := l.Accept("}"); err != nil {
				return nil, err
			} else if ok {
				break
			}
			key, err := l.Next()
			if err != nil {
				return nil, err
			}
			value, err := l.Next()
			if err != nil {
				return nil, err
			}
			if key.Kind != lex.String || value.Kind != lex.String {
				return nil, l.Errorf(key, "expected key/value pair of strings")
			}
			e.Properties[key.Text] = value.Text
		}

		f.Entries = append(f.Entries, e)
		f.byName[e.Name] = e
	}

	for e, parentName := range parents {
		parent, ok := f.byName[parentName]
		if !ok {
			return nil, fmt.Errorf("entry %q derives from unknown entry %q", e.Name, parentName)
		}
		e.Parent = parent
	}
	// Resolve GDF names once all parents are linked, rejecting cycles.
	for _, e := range f.Entries {
		seen := map[*Entry]struct{}{}
		cur := e
		for cur.GdfName == "" && cur.Parent != nil {
			if _, ok := seen[cur]; ok {
				return nil, fmt.Errorf("entry %q has a cyclic parent chain", e.Name)
			}
			seen[cur] = struct{}{}
			cur = cur.Parent
		}
		e.GdfName = cur.GdfName
	}

	return f, nil
}

// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package techset

import (
	"errors"
	"fmt"
	"io/fs"
	"path"

	"honnef.co/go/zonetool/statemap"
)

// Cache loads technique set definitions and state maps from a search path
// and remembers them for the lifetime of the cache. The search path has the
// directories techsets, techniques and statemaps.
//
// A Cache is not safe for concurrent use.
type Cache struct {
	FS     fs.FS
	Layout *statemap.Layout

	definitions map[string]*Definition
	// state maps per technique name; nil entries record techniques without
	// a state map
	techniqueStateMaps map[string]*statemap.Definition
	stateMaps          map[string]*statemap.Definition
}

func NewCache(fsys fs.FS, layout *statemap.Layout) *Cache {
	return &Cache{
		FS:                 fsys,
		Layout:             layout,
		definitions:        map[string]*Definition{},
		techniqueStateMaps: map[string]*statemap.Definition{},
		stateMaps:          map[string]*statemap.Definition{},
	}
}

// LoadDefinition returns the definition of the named technique set. Errors
// wrap fs.ErrNotExist if there is no such technique set.
func (c *Cache) LoadDefinition(name string) (*Definition, error) {
	if def, ok := c.definitions[name]; ok {
		return def, nil
	}
	p := path.Join("techsets", name+".techset")
	src, err := fs.ReadFile(c.FS, p)
	if err != nil {
		return nil, err
	}
	def, err := ParseDefinition(p, src)
	if err != nil {
		return nil, err
	}
	def.Name = name
	c.definitions[name] = def
	return def, nil
}

// StateMapForTechnique returns the state map used by a technique, or nil if
// the technique has none. Techniques sharing a state map get the same
// *statemap.Definition.
func (c *Cache) StateMapForTechnique(technique string) (*statemap.Definition, error) {
	if sm, ok := c.techniqueStateMaps[technique]; ok {
		return sm, nil
	}

	p := path.Join("techniques", technique+".tech")
	src, err := fs.ReadFile(c.FS, p)
	if errors.Is(err, fs.ErrNotExist) {
		c.techniqueStateMaps[technique] = nil
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	name, err := StateMapName(p, src)
	if err != nil {
		return nil, err
	}
	var sm *statemap.Definition
	if name != "" {
		sm, err = c.loadStateMap(name)
		if err != nil {
			return nil, fmt.Errorf("couldn't load state map for technique %q: %w", technique, err)
		}
	}
	c.techniqueStateMaps[technique] = sm
	return sm, nil
}

func (c *Cache) loadStateMap(name string) (*statemap.Definition, error) {
	if sm, ok := c.stateMaps[name]; ok {
		return sm, nil
	}
	p := path.Join("statemaps", name+".sm")
	src, err := fs.ReadFile(c.FS, p)
	if err != nil {
		return nil, err
	}
	sm, err := statemap.Parse(c.Layout, p, src)
	if err != nil {
		return nil, err
	}
	sm.Name = name
	c.stateMaps[name] = sm
	return sm, nil
}

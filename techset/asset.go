// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package techset

import (
	"errors"
	"io/fs"

	"honnef.co/go/zonetool/mem"
	"honnef.co/go/zonetool/zone"
)

// Technique is a technique as referenced by a technique set asset.
type Technique struct {
	Name     string
	StateMap string
}

// TechniqueSet is the technique set asset. Unused slots are nil.
type TechniqueSet struct {
	Name       string
	Techniques [TechniqueCount]*Technique
}

// Loader builds technique set assets from their definitions.
type Loader struct {
	Cache *Cache
}

func (l *Loader) Load(m *zone.Manager, name string) (any, []*zone.AssetInfo, error) {
	def, err := l.Cache.LoadDefinition(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	ts := mem.Make(m.Arena, TechniqueSet{Name: mem.Dup(m.Arena, name)})
	// Slots sharing a technique share the Technique.
	byName := map[string]*Technique{}
	for i := range TechniqueCount {
		techName, ok := def.GetTechniqueByIndex(i)
		if !ok {
			continue
		}
		tech, ok := byName[techName]
		if !ok {
			sm, err := l.Cache.StateMapForTechnique(techName)
			if err != nil {
				return nil, nil, err
			}
			tech = mem.Make(m.Arena, Technique{Name: mem.Dup(m.Arena, techName)})
			if sm != nil {
				tech.StateMap = sm.Name
			}
			byName[techName] = tech
		}
		ts.Techniques[i] = tech
	}
	return ts, nil, nil
}

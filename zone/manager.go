// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Package zone keeps track of the assets that make up a zone and loads
// assets on demand when other assets depend on them.
package zone

import (
	"fmt"
	"iter"
	"log"

	"honnef.co/go/zonetool/mem"
)

type AssetType uint8

const (
	AssetImage AssetType = iota
	AssetTechniqueSet
	AssetMaterial
)

var AssetTypeNames = []string{"image", "techniqueset", "material"}

func (t AssetType) String() string {
	if int(t) < len(AssetTypeNames) {
		return AssetTypeNames[t]
	}
	return fmt.Sprintf("AssetType(%d)", t)
}

type AssetInfo struct {
	Type  AssetType
	Name  string
	Asset any
	// Dependencies are sorted by type, then name, and contain no duplicates.
	Dependencies []*AssetInfo
}

// Key returns a string that orders assets by type, then name.
func Key(t AssetType, name string) string {
	return string(rune('0'+t)) + ":" + name
}

func (info *AssetInfo) Key() string { return Key(info.Type, info.Name) }

// DependencySet collects the dependencies of an asset under construction.
type DependencySet struct {
	deps mem.BinaryTreeMap[string, *AssetInfo]
}

func (s *DependencySet) Add(a *mem.Arena, info *AssetInfo) {
	s.deps.Insert(a, info.Key(), info)
}

func (s *DependencySet) Len() int { return s.deps.Len() }

// Slice returns the dependencies in arena memory, or nil if there are none.
func (s *DependencySet) Slice(a *mem.Arena) []*AssetInfo {
	out := mem.NewSlice[[]*AssetInfo](a, 0, s.deps.Len())
	for info := range s.deps.Values() {
		out = append(out, info)
	}
	return out
}

// AssetLoader produces an asset by name. A loader signals that an asset
// doesn't exist by returning a nil asset and no error.
type AssetLoader interface {
	Load(m *Manager, name string) (asset any, deps []*AssetInfo, err error)
}

// Manager owns the assets of one zone. Loading is synchronous and may
// recurse into other loaders; cycles are not detected.
type Manager struct {
	Arena *mem.Arena
	Log   *log.Logger

	loaders map[AssetType]AssetLoader
	assets  mem.BinaryTreeMap[string, *AssetInfo]
}

func NewManager(arena *mem.Arena, logger *log.Logger) *Manager {
	return &Manager{
		Arena:   arena,
		Log:     logger,
		loaders: map[AssetType]AssetLoader{},
	}
}

func (m *Manager) SetLoader(t AssetType, l AssetLoader) {
	m.loaders[t] = l
}

// Asset returns a previously added asset.
func (m *Manager) Asset(t AssetType, name string) *AssetInfo {
	info, _ := m.assets.Get(Key(t, name))
	return info
}

// Assets yields all assets, ordered by type and name.
func (m *Manager) Assets() iter.Seq[*AssetInfo] {
	return m.assets.Values()
}

// LoadDependency returns the named asset, loading it if necessary. It
// returns nil if the asset couldn't be found or failed to load; load errors
// are logged.
func (m *Manager) LoadDependency(t AssetType, name string) *AssetInfo {
	if info := m.Asset(t, name); info != nil {
		return info
	}
	l, ok := m.loaders[t]
	if !ok {
		return nil
	}
	asset, deps, err := l.Load(m, name)
	if err != nil {
		if m.Log != nil {
			m.Log.Printf("Failed to load %s %q: %s", t, name, err)
		}
		return nil
	}
	if asset == nil {
		return nil
	}
	return m.AddAsset(t, name, asset, deps)
}

// AddAsset registers a fully built asset, replacing any previous asset of
// the same type and name.
func (m *Manager) AddAsset(t AssetType, name string, asset any, deps []*AssetInfo) *AssetInfo {
	info := mem.Make(m.Arena, AssetInfo{
		Type:         t,
		Name:         mem.Dup(m.Arena, name),
		Asset:        asset,
		Dependencies: deps,
	})
	m.assets.Insert(m.Arena, info.Key(), info)
	return info
}

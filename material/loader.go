// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package material

import (
	"honnef.co/go/zonetool/gdt"
	"honnef.co/go/zonetool/gfx"
	"honnef.co/go/zonetool/mem"
	"honnef.co/go/zonetool/statemap"
	"honnef.co/go/zonetool/zone"
)

// Load compiles a material entry and registers the material with the
// context's manager. On error, nothing is registered. Errors wrap
// ErrInvalidProperty, ErrDependencyNotFound or ErrSkip.
func Load(ctx *Context, entry *gdt.Entry) (*zone.AssetInfo, error) {
	l := newLoader(ctx, entry)
	if err := l.materialTemplate(); err != nil {
		return nil, err
	}
	l.finalize()
	deps := l.deps.Slice(l.arena)
	return ctx.Manager.AddAsset(zone.AssetMaterial, entry.Name, l.mtl, deps), nil
}

// loader holds the state of one material compilation.
type loader struct {
	ctx   *Context
	r     *gdt.Reader
	arena *mem.Arena
	mtl   *Material

	base      gfx.StateBitsBuilder
	stateBits []gfx.StateBits
	textures  []TextureDef
	constants []ConstantDef
	deps      zone.DependencySet
	// state bits per state map, valid for this material only
	stateBitsPerStateMap map[*statemap.Definition]gfx.StateBits
}

func newLoader(ctx *Context, entry *gdt.Entry) *loader {
	arena := ctx.Manager.Arena
	mtl := mem.New[Material](arena)
	mtl.Name = mem.Dup(arena, entry.Name)
	return &loader{
		ctx:                  ctx,
		r:                    gdt.NewReader(entry, ctx.Defaults),
		arena:                arena,
		mtl:                  mtl,
		stateBitsPerStateMap: map[*statemap.Definition]gfx.StateBits{},
	}
}

// finalize copies the tables into the arena.
func (l *loader) finalize() {
	l.mtl.Textures = mem.MakeSlice(l.arena, l.textures)
	l.mtl.Constants = mem.MakeSlice(l.arena, l.constants)
	l.mtl.StateBits = mem.MakeSlice(l.arena, l.stateBits)
}

func (l *loader) setSort(sort uint8) {
	l.mtl.SortKey = sort
}

func (l *loader) setTextureAtlas(rows, columns uint8) {
	l.mtl.TextureAtlasRowCount = rows
	l.mtl.TextureAtlasColumnCount = columns
}

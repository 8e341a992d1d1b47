// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package material

import (
	"github.com/go-gl/mathgl/mgl32"

	"honnef.co/go/zonetool/gdt"
	"honnef.co/go/zonetool/gfx"
	"honnef.co/go/zonetool/mem"
	"honnef.co/go/zonetool/zone"
)

func (l *loader) addMapTexture(typeName string, tile gfx.TileMode, filter gfx.Filter, semantic gfx.TextureSemantic, textureName string) error {
	info := l.ctx.Manager.LoadDependency(zone.AssetImage, textureName)
	if info == nil {
		return notFoundf(nil, "Could not load image: \"%s\"", textureName)
	}
	l.deps.Add(l.arena, info)

	l.textures = append(l.textures, TextureDef{
		NameHash:     HashString(typeName),
		NameStart:    typeName[0],
		NameEnd:      typeName[len(typeName)-1],
		SamplerState: gfx.SamplerState(tile, filter),
		Semantic:     semantic,
		Image:        info.Asset.(*zone.Image),
	})
	return nil
}

// addColorMap binds the colorMap property. kind names the material kind in
// the error for a missing color map.
func (l *loader) addColorMap(semantic gfx.TextureSemantic, kind string) error {
	name, err := l.r.ReadString("colorMap")
	if err != nil {
		return err
	}
	tile, err := gdt.ReadEnum[gfx.TileMode](l.r, "tileColor", gfx.TileModeNames)
	if err != nil {
		return err
	}
	filter, err := gdt.ReadEnum[gfx.Filter](l.r, "filterColor", gfx.FilterNames)
	if err != nil {
		return err
	}
	if name == "" {
		return invalidf("ColorMap may not be blank in %s materials", kind)
	}
	return l.addMapTexture("colorMap", tile, filter, semantic, name)
}

func (l *loader) addConstant(name string, literal mgl32.Vec4) {
	l.constants = append(l.constants, ConstantDef{
		Name:     mem.Dup(l.arena, name),
		NameHash: HashString(name),
		Literal:  literal,
	})
}

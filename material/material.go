// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Package material compiles GDT material entries into material assets.
//
// A material type selects a template. Templates read the entry's properties,
// build the material's base state bits, pick a technique set and bind
// textures and constants. Every technique of the technique set then gets its
// own state bits, derived from the base bits through the technique's state
// map. Identical state bits are stored once.
package material

import (
	"github.com/go-gl/mathgl/mgl32"

	"honnef.co/go/zonetool/gfx"
	"honnef.co/go/zonetool/techset"
	"honnef.co/go/zonetool/zone"
)

// NoStateBits marks unused techniques in Material.StateBitsEntry.
const NoStateBits = 0xFF

type CameraRegion uint8

const (
	CameraRegionLitOpaque CameraRegion = iota
	CameraRegionLitTrans
	CameraRegionEmissive
	CameraRegionDepthHack
	CameraRegionNone
)

var CameraRegionNames = []string{"lit opaque", "lit trans", "emissive", "depth hack", "none"}

func (r CameraRegion) String() string {
	if int(r) < len(CameraRegionNames) {
		return CameraRegionNames[r]
	}
	return "<unknown>"
}

type TextureDef struct {
	NameHash     uint32
	NameStart    byte
	NameEnd      byte
	SamplerState uint8
	Semantic     gfx.TextureSemantic
	Image        *zone.Image
}

type ConstantDef struct {
	Name     string
	NameHash uint32
	Literal  mgl32.Vec4
}

// Material is a compiled material. It is allocated from the zone's arena
// and must not be modified once registered.
type Material struct {
	Name                    string
	SortKey                 uint8
	TextureAtlasRowCount    uint8
	TextureAtlasColumnCount uint8
	CameraRegion            CameraRegion
	TechniqueSet            *techset.TechniqueSet

	// The tables are nil if empty.
	Textures  []TextureDef
	Constants []ConstantDef
	StateBits []gfx.StateBits
	// StateBitsEntry holds, per technique slot, an index into StateBits or
	// NoStateBits.
	StateBitsEntry [techset.TechniqueCount]uint8
}

// HashString computes the engine's case-insensitive hash of texture and
// constant names.
func HashString(s string) uint32 {
	var h uint32
	for i := 0; i < len(s); i++ {
		h = 33*h ^ uint32(s[i]|0x20)
	}
	return h
}

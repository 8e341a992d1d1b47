// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package gfx

// Sampler state bits of a material texture.
const (
	SamplerFilterShift   = 0
	SamplerFilterNearest = 0x1
	SamplerFilterLinear  = 0x2
	SamplerFilterAniso2x = 0x3
	SamplerFilterAniso4x = 0x4
	SamplerFilterMask    = 0x7

	SamplerMipmapShift    = 3
	SamplerMipmapDisabled = 0x0
	SamplerMipmapNearest  = 0x8
	SamplerMipmapLinear   = 0x10
	SamplerMipmapMask     = 0x18

	SamplerClampU    = 0x20
	SamplerClampV    = 0x40
	SamplerClampW    = 0x80
	SamplerClampMask = 0xE0
)

// TextureSemantic tells the renderer how a texture is used.
type TextureSemantic uint8

const (
	TS2D          TextureSemantic = 0
	TSFunction    TextureSemantic = 1
	TSColorMap    TextureSemantic = 2
	TSDetailMap   TextureSemantic = 3
	TSNormalMap   TextureSemantic = 5
	TSSpecularMap TextureSemantic = 8
	TSWaterMap    TextureSemantic = 11
)

type TileMode uint8

const (
	TileModeUnknown TileMode = iota
	TileBoth
	TileHorizontal
	TileVertical
	NoTile
)

var TileModeNames = []string{"", "Tile Both", "Tile Horizontal", "Tile Vertical", "No Tile"}

func (v TileMode) String() string { return enumName(TileModeNames, v) }

type Filter uint8

const (
	FilterMip2xBilinear Filter = iota
	FilterMip4xBilinear
	FilterMip2xTrilinear
	FilterMip4xTrilinear
	FilterNoMipNearest
	FilterNoMipBilinear
)

var FilterNames = []string{
	"Mip Standard (2x Bilinear)",
	"Mip Expensive (4x Bilinear)",
	"Mip More Expensive (2x Trilinear)",
	"Mip Most Expensive (4x Trilinear)",
	"No Mip - Nearest",
	"No Mip - Bilinear",
}

func (v Filter) String() string { return enumName(FilterNames, v) }

// SamplerState computes the sampler bits for a tile and filter mode.
func SamplerState(tile TileMode, filter Filter) uint8 {
	var state uint8
	switch tile {
	case TileBoth:
		state |= SamplerClampU | SamplerClampV | SamplerClampW
	case TileHorizontal:
		state |= SamplerClampV
	case TileVertical:
		state |= SamplerClampU
	case TileModeUnknown, NoTile:
	default:
		panic("unreachable")
	}

	switch filter {
	case FilterMip2xBilinear:
		state |= SamplerFilterAniso2x | SamplerMipmapNearest
	case FilterMip2xTrilinear:
		state |= SamplerFilterAniso2x | SamplerMipmapLinear
	case FilterMip4xBilinear:
		state |= SamplerFilterAniso4x | SamplerMipmapNearest
	case FilterMip4xTrilinear:
		state |= SamplerFilterAniso4x | SamplerMipmapLinear
	case FilterNoMipNearest:
		state |= SamplerFilterNearest | SamplerMipmapDisabled
	case FilterNoMipBilinear:
		state |= SamplerFilterLinear | SamplerMipmapDisabled
	default:
		panic("unreachable")
	}
	return state
}

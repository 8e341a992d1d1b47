// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Package gfx describes the fixed-function render state that compiled
// materials carry, packed into two 32-bit load words.
package gfx

import (
	"fmt"
	"structs"

	"golang.org/x/exp/constraints"
)

// StateBits is the packed render state of one technique. The layout of both
// words is fixed by the engine and must not change.
type StateBits struct {
	_ structs.HostLayout

	LoadBits [2]uint32
}

func (sb StateBits) String() string {
	return fmt.Sprintf("{%#08x %#08x}", sb.LoadBits[0], sb.LoadBits[1])
}

// Word 0
const (
	SrcBlendRGBShift = 0
	SrcBlendRGBMask  = 0x0000000F
	DstBlendRGBShift = 4
	DstBlendRGBMask  = 0x000000F0
	BlendOpRGBShift  = 8
	BlendOpRGBMask   = 0x00000700
	BlendRGBMask     = SrcBlendRGBMask | DstBlendRGBMask | BlendOpRGBMask

	AlphaTestDisable = 0x00000800
	AlphaTestGT0     = 0x00001000
	AlphaTestLT128   = 0x00002000
	AlphaTestGE128   = 0x00003000
	AlphaTestMask    = AlphaTestDisable | AlphaTestGE128

	CullShift = 14
	CullNone  = 0x00004000
	CullBack  = 0x00008000
	CullFront = 0x0000C000
	CullMask  = 0x0000C000

	SrcBlendAlphaShift = 16
	SrcBlendAlphaMask  = 0x000F0000
	DstBlendAlphaShift = 20
	DstBlendAlphaMask  = 0x00F00000
	BlendOpAlphaShift  = 24
	BlendOpAlphaMask   = 0x07000000
	BlendAlphaMask     = SrcBlendAlphaMask | DstBlendAlphaMask | BlendOpAlphaMask

	ColorWriteRGB   = 0x08000000
	ColorWriteAlpha = 0x10000000
	ColorWriteMask  = ColorWriteRGB | ColorWriteAlpha

	GammaWrite   = 0x40000000
	PolymodeLine = 0x80000000
)

// Word 1
const (
	DepthWrite = 0x00000001

	DepthTestDisable   = 0x00000002
	DepthTestShift     = 2
	DepthTestAlways    = 0x00000000
	DepthTestLess      = 0x00000004
	DepthTestEqual     = 0x00000008
	DepthTestLessEqual = 0x0000000C
	DepthTestMask      = DepthTestDisable | DepthTestLessEqual

	PolygonOffsetShift = 4
	PolygonOffsetMask  = 0x00000030

	StencilFrontEnable = 0x00000040
	StencilBackEnable  = 0x00000080

	StencilFrontPassShift  = 8
	StencilFrontFailShift  = 11
	StencilFrontZFailShift = 14
	StencilFrontFuncShift  = 17
	StencilFrontMask       = 0x000FFF00

	StencilBackPassShift  = 20
	StencilBackFailShift  = 23
	StencilBackZFailShift = 26
	StencilBackFuncShift  = 29
	StencilBackMask       = 0xFFF00000

	stencilFieldMask = 0x7
)

// field is one shifted sub-range of a load word.
type field struct {
	shift uint32
	mask  uint32
}

func (f field) get(word uint32) uint32 {
	return (word & f.mask) >> f.shift
}

// set replaces the field's bits in word with v. Bits of v that don't fit
// the field are dropped.
func setField[T constraints.Unsigned](word *uint32, f field, v T) {
	*word &^= f.mask
	*word |= (uint32(v) << f.shift) & f.mask
}

var (
	srcBlendRGB   = field{SrcBlendRGBShift, SrcBlendRGBMask}
	dstBlendRGB   = field{DstBlendRGBShift, DstBlendRGBMask}
	blendOpRGB    = field{BlendOpRGBShift, BlendOpRGBMask}
	srcBlendAlpha = field{SrcBlendAlphaShift, SrcBlendAlphaMask}
	dstBlendAlpha = field{DstBlendAlphaShift, DstBlendAlphaMask}
	blendOpAlpha  = field{BlendOpAlphaShift, BlendOpAlphaMask}
	polygonOffset = field{PolygonOffsetShift, PolygonOffsetMask}
)

// StencilSide selects the front or back face stencil state.
type StencilSide int

const (
	StencilFront StencilSide = iota
	StencilBack
)

type stencilMasks struct {
	enable uint32
	fn     field
	fail   field
	zfail  field
	pass   field
}

func (m stencilMasks) all() uint32 {
	return m.enable | m.fn.mask | m.fail.mask | m.zfail.mask | m.pass.mask
}

var stencilLayout = [...]stencilMasks{
	StencilFront: {
		enable: StencilFrontEnable,
		fn:     field{StencilFrontFuncShift, stencilFieldMask << StencilFrontFuncShift},
		fail:   field{StencilFrontFailShift, stencilFieldMask << StencilFrontFailShift},
		zfail:  field{StencilFrontZFailShift, stencilFieldMask << StencilFrontZFailShift},
		pass:   field{StencilFrontPassShift, stencilFieldMask << StencilFrontPassShift},
	},
	StencilBack: {
		enable: StencilBackEnable,
		fn:     field{StencilBackFuncShift, stencilFieldMask << StencilBackFuncShift},
		fail:   field{StencilBackFailShift, stencilFieldMask << StencilBackFailShift},
		zfail:  field{StencilBackZFailShift, stencilFieldMask << StencilBackZFailShift},
		pass:   field{StencilBackPassShift, stencilFieldMask << StencilBackPassShift},
	},
}

func stencilMasksFor(side StencilSide) stencilMasks {
	switch side {
	case StencilFront, StencilBack:
		return stencilLayout[side]
	default:
		panic(fmt.Sprintf("invalid stencil side %d", side))
	}
}

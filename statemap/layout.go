// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Package statemap derives per-technique state bits from a material's base
// state bits.
//
// A layout names regions of the two load words and the values each region
// can hold. A definition, parsed from a .sm file, holds rules per region
// that pick a value depending on the base bits.
package statemap

import (
	"honnef.co/go/zonetool/gfx"
)

// Value is one named setting of a layout entry. A value matches a word if
// the word agrees with Bits on all bits of Mask. Mask may be narrower than
// the entry's mask to match a family of settings.
type Value struct {
	Name string
	Mask uint32
	Bits uint32
}

func (v Value) matches(word uint32) bool {
	return word&v.Mask == v.Bits&v.Mask
}

type LayoutEntry struct {
	Name   string
	Word   int
	Mask   uint32
	Values []Value
}

func (e *LayoutEntry) value(name string) (int, bool) {
	for i, v := range e.Values {
		if v.Name == name {
			return i, true
		}
	}
	return 0, false
}

type Layout struct {
	Entries []LayoutEntry
}

func (l *Layout) entry(name string) (int, bool) {
	for i, e := range l.Entries {
		if e.Name == name {
			return i, true
		}
	}
	return 0, false
}

func blendValues(mask, opMask uint32, bits func(gfx.BlendFunc) uint32) []Value {
	return []Value{
		{"Disable", opMask, bits(gfx.BlendFuncDisabled)},
		{"Add", mask, bits(gfx.BlendFuncAdd)},
		{"Blend", mask, bits(gfx.BlendFuncBlend)},
		{"Multiply", mask, bits(gfx.BlendFuncMultiply)},
		{"ScreenAdd", mask, bits(gfx.BlendFuncScreenAdd)},
	}
}

func onOff(mask uint32) []Value {
	return []Value{
		{"Off", mask, 0},
		{"On", mask, mask},
	}
}

// DefaultLayout is the layout of the engine's state bits.
var DefaultLayout = &Layout{
	Entries: []LayoutEntry{
		{
			Name: "alphaTest",
			Word: 0,
			Mask: gfx.AlphaTestMask,
			Values: []Value{
				{"Always", gfx.AlphaTestMask, gfx.AlphaTestDisable},
				{"GT0", gfx.AlphaTestMask, gfx.AlphaTestGT0},
				{"LT128", gfx.AlphaTestMask, gfx.AlphaTestLT128},
				{"GE128", gfx.AlphaTestMask, gfx.AlphaTestGE128},
			},
		},
		{
			Name:   "blendFunc",
			Word:   0,
			Mask:   gfx.BlendRGBMask,
			Values: blendValues(gfx.BlendRGBMask, gfx.BlendOpRGBMask, gfx.BlendFunc.RGBBits),
		},
		{
			Name:   "separateAlphaBlendFunc",
			Word:   0,
			Mask:   gfx.BlendAlphaMask,
			Values: blendValues(gfx.BlendAlphaMask, gfx.BlendOpAlphaMask, gfx.BlendFunc.AlphaBits),
		},
		{
			Name: "cullFace",
			Word: 0,
			Mask: gfx.CullMask,
			Values: []Value{
				{"None", gfx.CullMask, gfx.CullNone},
				{"Back", gfx.CullMask, gfx.CullBack},
				{"Front", gfx.CullMask, gfx.CullFront},
			},
		},
		{
			Name: "depthTest",
			Word: 1,
			Mask: gfx.DepthTestMask,
			Values: []Value{
				{"Always", gfx.DepthTestMask, gfx.DepthTestAlways},
				{"Less", gfx.DepthTestMask, gfx.DepthTestLess},
				{"Equal", gfx.DepthTestMask, gfx.DepthTestEqual},
				{"LessEqual", gfx.DepthTestMask, gfx.DepthTestLessEqual},
				{"Disable", gfx.DepthTestMask, gfx.DepthTestDisable},
			},
		},
		{
			Name:   "depthWrite",
			Word:   1,
			Mask:   gfx.DepthWrite,
			Values: onOff(gfx.DepthWrite),
		},
		{
			Name: "colorWrite",
			Word: 0,
			Mask: gfx.ColorWriteMask,
			Values: []Value{
				{"Disable", gfx.ColorWriteMask, 0},
				{"RGB", gfx.ColorWriteMask, gfx.ColorWriteRGB},
				{"Alpha", gfx.ColorWriteMask, gfx.ColorWriteAlpha},
				{"RGBA", gfx.ColorWriteMask, gfx.ColorWriteMask},
			},
		},
		{
			Name:   "gammaWrite",
			Word:   0,
			Mask:   gfx.GammaWrite,
			Values: onOff(gfx.GammaWrite),
		},
		{
			Name: "polygonOffset",
			Word: 1,
			Mask: gfx.PolygonOffsetMask,
			Values: []Value{
				{"0", gfx.PolygonOffsetMask, 0 << gfx.PolygonOffsetShift},
				{"1", gfx.PolygonOffsetMask, 1 << gfx.PolygonOffsetShift},
				{"2", gfx.PolygonOffsetMask, 2 << gfx.PolygonOffsetShift},
				{"shadowMap", gfx.PolygonOffsetMask, 3 << gfx.PolygonOffsetShift},
			},
		},
		{
			Name: "polygonMode",
			Word: 0,
			Mask: gfx.PolymodeLine,
			Values: []Value{
				{"Fill", gfx.PolymodeLine, 0},
				{"Line", gfx.PolymodeLine, gfx.PolymodeLine},
			},
		},
		{
			Name: "stencil",
			Word: 1,
			Mask: gfx.StencilFrontEnable | gfx.StencilBackEnable | gfx.StencilFrontMask | gfx.StencilBackMask,
			Values: []Value{
				{"Disable", gfx.StencilFrontEnable | gfx.StencilBackEnable, 0},
			},
		},
	},
}

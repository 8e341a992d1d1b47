// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package gfx

// The zero value of every enum in this package means "unknown". Values
// stored in the load words are the enum value minus one.

// BlendOp is the operation combining source and destination colors.
type BlendOp uint8

const (
	BlendOpUnknown BlendOp = iota
	// Blending is off; the source color replaces the destination.
	BlendOpDisable
	BlendOpAdd
	BlendOpSubtract
	BlendOpRevSubtract
	BlendOpMin
	BlendOpMax
)

var BlendOpNames = []string{"", "Disable", "Add", "Subtract", "RevSubtract", "Min", "Max"}

func (op BlendOp) String() string { return enumName(BlendOpNames, op) }

// BlendFactor scales the source or destination color before the blend op.
type BlendFactor uint8

const (
	BlendFactorUnknown BlendFactor = iota
	BlendFactorDisable
	BlendFactorZero
	BlendFactorOne
	BlendFactorSrcColor
	BlendFactorInvSrcColor
	BlendFactorSrcAlpha
	BlendFactorInvSrcAlpha
	BlendFactorDestAlpha
	BlendFactorInvDestAlpha
	BlendFactorDestColor
	BlendFactorInvDestColor
)

var BlendFactorNames = []string{
	"",
	"Disable",
	"Zero",
	"One",
	"SrcColor",
	"InvSrcColor",
	"SrcAlpha",
	"InvSrcAlpha",
	"DestAlpha",
	"InvDestAlpha",
	"DestColor",
	"InvDestColor",
}

func (f BlendFactor) String() string { return enumName(BlendFactorNames, f) }

// BlendFunc is a complete blend equation for either the color or the alpha
// channel.
type BlendFunc struct {
	Op  BlendOp
	Src BlendFactor
	Dst BlendFactor
}

// The blend equations behind the named material blend functions.
var (
	BlendFuncDisabled  = BlendFunc{BlendOpDisable, BlendFactorOne, BlendFactorZero}
	BlendFuncAdd       = BlendFunc{BlendOpAdd, BlendFactorOne, BlendFactorOne}
	BlendFuncBlend     = BlendFunc{BlendOpAdd, BlendFactorSrcAlpha, BlendFactorInvSrcAlpha}
	BlendFuncMultiply  = BlendFunc{BlendOpAdd, BlendFactorZero, BlendFactorSrcColor}
	BlendFuncScreenAdd = BlendFunc{BlendOpAdd, BlendFactorInvDestColor, BlendFactorOne}
)

func (bf BlendFunc) valid() bool {
	validFactor := func(f BlendFactor) bool {
		return f != BlendFactorUnknown && f <= BlendFactorInvDestColor
	}
	return bf.Op != BlendOpUnknown && bf.Op <= BlendOpMax && validFactor(bf.Src) && validFactor(bf.Dst)
}

// RGBBits returns bf packed into the color blend fields of load word 0.
func (bf BlendFunc) RGBBits() uint32 {
	var w uint32
	setField(&w, blendOpRGB, uint8(bf.Op)-1)
	setField(&w, srcBlendRGB, uint8(bf.Src)-1)
	setField(&w, dstBlendRGB, uint8(bf.Dst)-1)
	return w
}

// AlphaBits returns bf packed into the alpha blend fields of load word 0.
func (bf BlendFunc) AlphaBits() uint32 {
	var w uint32
	setField(&w, blendOpAlpha, uint8(bf.Op)-1)
	setField(&w, srcBlendAlpha, uint8(bf.Src)-1)
	setField(&w, dstBlendAlpha, uint8(bf.Dst)-1)
	return w
}

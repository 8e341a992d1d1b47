// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package gfx

import (
	"errors"
	"fmt"
)

// ErrInvalidValue is returned by the StateBitsBuilder setters when a value
// can't be represented in the load words.
var ErrInvalidValue = errors.New("invalid state value")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidValue}, args...)...)
}

// StateBitsBuilder accumulates the base state of a material. Every setter
// owns a disjoint part of the load words and clears it before writing, so
// setters can be called in any order and any number of times.
type StateBitsBuilder struct {
	Bits StateBits
}

func (b *StateBitsBuilder) SetAlphaTest(mode AlphaTest) error {
	var bits uint32
	switch mode {
	case AlphaTestAlways:
		bits = AlphaTestDisable
	case AlphaTestGreaterThan0:
		bits = AlphaTestGT0
	case AlphaTestLessThan128:
		bits = AlphaTestLT128
	case AlphaTestGreaterEqual128:
		bits = AlphaTestGE128
	default:
		return invalidf("unknown alphatest value: \"%d\"", mode)
	}
	b.Bits.LoadBits[0] &^= AlphaTestMask
	b.Bits.LoadBits[0] |= bits
	return nil
}

func (b *StateBitsBuilder) SetBlendFunc(op BlendOp, src, dst BlendFactor) error {
	bf := BlendFunc{op, src, dst}
	if !bf.valid() {
		return invalidf("unknown blendfunc values: %v %v %v", op, src, dst)
	}
	b.Bits.LoadBits[0] &^= BlendRGBMask
	b.Bits.LoadBits[0] |= bf.RGBBits()
	return nil
}

func (b *StateBitsBuilder) SetSeparateAlphaBlendFunc(op BlendOp, src, dst BlendFactor) error {
	bf := BlendFunc{op, src, dst}
	if !bf.valid() {
		return invalidf("unknown separate alpha blendfunc values: %v %v %v", op, src, dst)
	}
	b.Bits.LoadBits[0] &^= BlendAlphaMask
	b.Bits.LoadBits[0] |= bf.AlphaBits()
	return nil
}

// SetColorWrite sets the color write mask. The red, green and blue channels
// share a single bit and must agree.
func (b *StateBitsBuilder) SetColorWrite(r, g, bl, a EnabledStatus) error {
	if r == StatusUnknown || g == StatusUnknown || bl == StatusUnknown || a == StatusUnknown {
		return invalidf("unknown colorwrite values: %v %v %v %v", r, g, bl, a)
	}
	if r != g || r != bl {
		return invalidf("invalid colorwrite values: values for rgb must match")
	}

	b.Bits.LoadBits[0] &^= ColorWriteMask
	if r == StatusEnabled {
		b.Bits.LoadBits[0] |= ColorWriteRGB
	}
	if a == StatusEnabled {
		b.Bits.LoadBits[0] |= ColorWriteAlpha
	}
	return nil
}

// SetCullFace sets the face culling mode. face must already have been
// validated; passing CullFaceUnknown is a programming error.
func (b *StateBitsBuilder) SetCullFace(face CullFace) {
	var bits uint32
	switch face {
	case CullFaceNone:
		bits = CullNone
	case CullFaceBack:
		bits = CullBack
	case CullFaceFront:
		bits = CullFront
	default:
		panic(fmt.Sprintf("unhandled cull face %d", face))
	}
	b.Bits.LoadBits[0] &^= CullMask
	b.Bits.LoadBits[0] |= bits
}

func (b *StateBitsBuilder) SetDepthTest(mode DepthTest) error {
	var bits uint32
	switch mode {
	case DepthTestModeLessEqual:
		bits = DepthTestLessEqual
	case DepthTestModeLess:
		bits = DepthTestLess
	case DepthTestModeEqual:
		bits = DepthTestEqual
	case DepthTestModeAlways:
		bits = DepthTestAlways
	case DepthTestModeDisable:
		bits = DepthTestDisable
	default:
		return invalidf("unknown depthtest value: \"%d\"", mode)
	}
	b.Bits.LoadBits[1] &^= DepthTestMask
	b.Bits.LoadBits[1] |= bits
	return nil
}

func (b *StateBitsBuilder) SetDepthWrite(enabled bool) {
	b.Bits.LoadBits[1] &^= DepthWrite
	if enabled {
		b.Bits.LoadBits[1] |= DepthWrite
	}
}

func (b *StateBitsBuilder) SetGammaWrite(enabled bool) {
	b.Bits.LoadBits[0] &^= GammaWrite
	if enabled {
		b.Bits.LoadBits[0] |= GammaWrite
	}
}

func (b *StateBitsBuilder) SetPolygonOffset(mode PolygonOffset) error {
	if mode == PolygonOffsetUnknown || mode > PolygonOffsetShadowMap {
		return invalidf("unknown polygonoffset value: \"%d\"", mode)
	}
	setField(&b.Bits.LoadBits[1], polygonOffset, uint8(mode)-1)
	return nil
}

func (b *StateBitsBuilder) EnableStencil(side StencilSide, fn StencilFunc, opFail, opZFail, opPass StencilOp) error {
	if fn == StencilFuncUnknown || fn > StencilFuncAlways {
		return invalidf("unknown stencil func value: \"%d\"", fn)
	}
	for _, op := range [...]StencilOp{opFail, opZFail, opPass} {
		if op == StencilOpUnknown || op > StencilOpDecr {
			return invalidf("unknown stencil op value: \"%d\"", op)
		}
	}

	m := stencilMasksFor(side)
	w := &b.Bits.LoadBits[1]
	*w |= m.enable
	setField(w, m.fn, uint8(fn)-1)
	setField(w, m.fail, uint8(opFail)-1)
	setField(w, m.zfail, uint8(opZFail)-1)
	setField(w, m.pass, uint8(opPass)-1)
	return nil
}

func (b *StateBitsBuilder) DisableStencil(side StencilSide) {
	b.Bits.LoadBits[1] &^= stencilMasksFor(side).all()
}

// The accessors below decode fields of the current bits. They exist for
// diagnostics and tests; the compiler itself only ever writes.

func (sb StateBits) CullFace() CullFace {
	switch sb.LoadBits[0] & CullMask {
	case CullNone:
		return CullFaceNone
	case CullBack:
		return CullFaceBack
	case CullFront:
		return CullFaceFront
	default:
		return CullFaceUnknown
	}
}

func (sb StateBits) BlendFunc() BlendFunc {
	return BlendFunc{
		Op:  BlendOp(blendOpRGB.get(sb.LoadBits[0]) + 1),
		Src: BlendFactor(srcBlendRGB.get(sb.LoadBits[0]) + 1),
		Dst: BlendFactor(dstBlendRGB.get(sb.LoadBits[0]) + 1),
	}
}

func (sb StateBits) SeparateAlphaBlendFunc() BlendFunc {
	return BlendFunc{
		Op:  BlendOp(blendOpAlpha.get(sb.LoadBits[0]) + 1),
		Src: BlendFactor(srcBlendAlpha.get(sb.LoadBits[0]) + 1),
		Dst: BlendFactor(dstBlendAlpha.get(sb.LoadBits[0]) + 1),
	}
}

func (sb StateBits) PolygonOffset() PolygonOffset {
	return PolygonOffset(polygonOffset.get(sb.LoadBits[1]) + 1)
}

func (sb StateBits) StencilEnabled(side StencilSide) bool {
	return sb.LoadBits[1]&stencilMasksFor(side).enable != 0
}

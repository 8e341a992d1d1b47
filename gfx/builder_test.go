// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package gfx

import (
	"errors"
	"testing"
)

func allBlendFuncs() []BlendFunc {
	var out []BlendFunc
	for op := BlendOpDisable; op <= BlendOpMax; op++ {
		for src := BlendFactorDisable; src <= BlendFactorInvDestColor; src++ {
			for dst := BlendFactorDisable; dst <= BlendFactorInvDestColor; dst++ {
				out = append(out, BlendFunc{op, src, dst})
			}
		}
	}
	return out
}

func TestBlendFuncRegionsDisjoint(t *testing.T) {
	if BlendRGBMask&BlendAlphaMask != 0 {
		t.Fatalf("rgb mask %#x overlaps alpha mask %#x", BlendRGBMask, BlendAlphaMask)
	}
	funcs := allBlendFuncs()
	for _, rgb := range funcs {
		if rgb.RGBBits()&^BlendRGBMask != 0 {
			t.Fatalf("%v: rgb bits %#x leak outside of rgb mask", rgb, rgb.RGBBits())
		}
		if rgb.AlphaBits()&^BlendAlphaMask != 0 {
			t.Fatalf("%v: alpha bits %#x leak outside of alpha mask", rgb, rgb.AlphaBits())
		}
	}

	pairs := []struct{ rgb, alpha BlendFunc }{
		{BlendFuncAdd, BlendFuncDisabled},
		{BlendFuncBlend, BlendFuncDisabled},
		{BlendFuncMultiply, BlendFuncScreenAdd},
		{BlendFunc{BlendOpMax, BlendFactorInvDestColor, BlendFactorInvDestColor}, BlendFunc{BlendOpMax, BlendFactorInvDestColor, BlendFactorInvDestColor}},
	}
	for _, p := range pairs {
		var b StateBitsBuilder
		if err := b.SetBlendFunc(p.rgb.Op, p.rgb.Src, p.rgb.Dst); err != nil {
			t.Fatal(err)
		}
		if err := b.SetSeparateAlphaBlendFunc(p.alpha.Op, p.alpha.Src, p.alpha.Dst); err != nil {
			t.Fatal(err)
		}
		if got := b.Bits.BlendFunc(); got != p.rgb {
			t.Errorf("got rgb %v, want %v", got, p.rgb)
		}
		if got := b.Bits.SeparateAlphaBlendFunc(); got != p.alpha {
			t.Errorf("got alpha %v, want %v", got, p.alpha)
		}
	}
}

func TestSetterOverwrite(t *testing.T) {
	tests := []struct {
		name   string
		first  func(*StateBitsBuilder) error
		second func(*StateBitsBuilder) error
	}{
		{
			"alphatest",
			func(b *StateBitsBuilder) error { return b.SetAlphaTest(AlphaTestGreaterEqual128) },
			func(b *StateBitsBuilder) error { return b.SetAlphaTest(AlphaTestGreaterThan0) },
		},
		{
			"blendfunc",
			func(b *StateBitsBuilder) error {
				return b.SetBlendFunc(BlendOpMax, BlendFactorInvDestColor, BlendFactorInvDestColor)
			},
			func(b *StateBitsBuilder) error { return b.SetBlendFunc(BlendOpAdd, BlendFactorOne, BlendFactorZero) },
		},
		{
			"separate alpha",
			func(b *StateBitsBuilder) error {
				return b.SetSeparateAlphaBlendFunc(BlendOpMax, BlendFactorInvDestColor, BlendFactorInvDestColor)
			},
			func(b *StateBitsBuilder) error {
				return b.SetSeparateAlphaBlendFunc(BlendOpDisable, BlendFactorOne, BlendFactorZero)
			},
		},
		{
			"colorwrite",
			func(b *StateBitsBuilder) error {
				return b.SetColorWrite(StatusEnabled, StatusEnabled, StatusEnabled, StatusEnabled)
			},
			func(b *StateBitsBuilder) error {
				return b.SetColorWrite(StatusDisabled, StatusDisabled, StatusDisabled, StatusEnabled)
			},
		},
		{
			"cullface",
			func(b *StateBitsBuilder) error { b.SetCullFace(CullFaceFront); return nil },
			func(b *StateBitsBuilder) error { b.SetCullFace(CullFaceNone); return nil },
		},
		{
			"depthtest",
			func(b *StateBitsBuilder) error { return b.SetDepthTest(DepthTestModeDisable) },
			func(b *StateBitsBuilder) error { return b.SetDepthTest(DepthTestModeLess) },
		},
		{
			"depthwrite",
			func(b *StateBitsBuilder) error { b.SetDepthWrite(true); return nil },
			func(b *StateBitsBuilder) error { b.SetDepthWrite(false); return nil },
		},
		{
			"gammawrite",
			func(b *StateBitsBuilder) error { b.SetGammaWrite(true); return nil },
			func(b *StateBitsBuilder) error { b.SetGammaWrite(false); return nil },
		},
		{
			"polygonoffset",
			func(b *StateBitsBuilder) error { return b.SetPolygonOffset(PolygonOffsetShadowMap) },
			func(b *StateBitsBuilder) error { return b.SetPolygonOffset(PolygonOffset1) },
		},
		{
			"stencil",
			func(b *StateBitsBuilder) error {
				return b.EnableStencil(StencilBack, StencilFuncAlways, StencilOpDecr, StencilOpDecr, StencilOpDecr)
			},
			func(b *StateBitsBuilder) error {
				return b.EnableStencil(StencilBack, StencilFuncNever, StencilOpKeep, StencilOpZero, StencilOpReplace)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var twice, once StateBitsBuilder
			if err := tt.first(&twice); err != nil {
				t.Fatal(err)
			}
			if err := tt.second(&twice); err != nil {
				t.Fatal(err)
			}
			if err := tt.second(&once); err != nil {
				t.Fatal(err)
			}
			if twice.Bits != once.Bits {
				t.Errorf("setting twice gave %v, setting once gave %v", twice.Bits, once.Bits)
			}
		})
	}
}

func TestCullFaceRoundTrip(t *testing.T) {
	for _, prior := range []CullFace{CullFaceNone, CullFaceBack, CullFaceFront} {
		var b StateBitsBuilder
		b.Bits.LoadBits[0] = 0xFFFFFFFF
		b.SetCullFace(prior)
		b.SetCullFace(CullFaceBack)
		if got := b.Bits.CullFace(); got != CullFaceBack {
			t.Errorf("after %v: got %v, want Back", prior, got)
		}
		if b.Bits.LoadBits[0]&^CullMask != 0xFFFFFFFF&^CullMask {
			t.Errorf("after %v: bits outside of the cull mask changed: %v", prior, b.Bits)
		}
	}
}

func TestSetCullFaceUnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	var b StateBitsBuilder
	b.SetCullFace(CullFaceUnknown)
}

func TestInvalidValues(t *testing.T) {
	var b StateBitsBuilder
	errs := map[string]error{
		"alphatest":         b.SetAlphaTest(AlphaTestUnknown),
		"blendop":           b.SetBlendFunc(BlendOpUnknown, BlendFactorOne, BlendFactorOne),
		"src factor":        b.SetBlendFunc(BlendOpAdd, BlendFactorUnknown, BlendFactorOne),
		"alpha dst factor":  b.SetSeparateAlphaBlendFunc(BlendOpAdd, BlendFactorOne, BlendFactorUnknown),
		"colorwrite":        b.SetColorWrite(StatusEnabled, StatusEnabled, StatusEnabled, StatusUnknown),
		"colorwrite rgb":    b.SetColorWrite(StatusEnabled, StatusDisabled, StatusEnabled, StatusEnabled),
		"depthtest":         b.SetDepthTest(DepthTestUnknown),
		"polygonoffset":     b.SetPolygonOffset(PolygonOffsetUnknown),
		"stencil func":      b.EnableStencil(StencilFront, StencilFuncUnknown, StencilOpKeep, StencilOpKeep, StencilOpKeep),
		"stencil pass":      b.EnableStencil(StencilFront, StencilFuncLess, StencilOpKeep, StencilOpKeep, StencilOpUnknown),
		"blendop too large": b.SetBlendFunc(BlendOpMax+1, BlendFactorOne, BlendFactorOne),
	}
	for name, err := range errs {
		if !errors.Is(err, ErrInvalidValue) {
			t.Errorf("%s: got %v, want ErrInvalidValue", name, err)
		}
	}
	if b.Bits != (StateBits{}) {
		t.Errorf("failed setters modified state: %v", b.Bits)
	}
}

func TestStencil(t *testing.T) {
	var b StateBitsBuilder
	if err := b.EnableStencil(StencilFront, StencilFuncEqual, StencilOpKeep, StencilOpIncr, StencilOpReplace); err != nil {
		t.Fatal(err)
	}
	if err := b.EnableStencil(StencilBack, StencilFuncAlways, StencilOpZero, StencilOpZero, StencilOpZero); err != nil {
		t.Fatal(err)
	}

	want := uint32(StencilFrontEnable|StencilBackEnable) |
		uint32(StencilFuncEqual-1)<<StencilFrontFuncShift |
		uint32(StencilOpKeep-1)<<StencilFrontFailShift |
		uint32(StencilOpIncr-1)<<StencilFrontZFailShift |
		uint32(StencilOpReplace-1)<<StencilFrontPassShift |
		uint32(StencilFuncAlways-1)<<StencilBackFuncShift |
		uint32(StencilOpZero-1)<<StencilBackFailShift |
		uint32(StencilOpZero-1)<<StencilBackZFailShift |
		uint32(StencilOpZero-1)<<StencilBackPassShift
	if b.Bits.LoadBits[1] != want {
		t.Fatalf("got %#08x, want %#08x", b.Bits.LoadBits[1], want)
	}

	b.DisableStencil(StencilFront)
	if b.Bits.StencilEnabled(StencilFront) {
		t.Error("front stencil still enabled")
	}
	if b.Bits.LoadBits[1]&StencilFrontMask != 0 {
		t.Errorf("front stencil bits survived disable: %#08x", b.Bits.LoadBits[1])
	}
	if !b.Bits.StencilEnabled(StencilBack) {
		t.Error("disabling the front side disabled the back side")
	}

	b.DisableStencil(StencilBack)
	if b.Bits.LoadBits[1] != 0 {
		t.Errorf("got %#08x after disabling both sides", b.Bits.LoadBits[1])
	}
}

func TestDepthTestClearsDisableBit(t *testing.T) {
	var b StateBitsBuilder
	if err := b.SetDepthTest(DepthTestModeDisable); err != nil {
		t.Fatal(err)
	}
	if err := b.SetDepthTest(DepthTestModeAlways); err != nil {
		t.Fatal(err)
	}
	if b.Bits.LoadBits[1] != DepthTestAlways {
		t.Errorf("got %#08x, want %#08x", b.Bits.LoadBits[1], DepthTestAlways)
	}
}

func TestSamplerState(t *testing.T) {
	tests := []struct {
		tile   TileMode
		filter Filter
		want   uint8
	}{
		{NoTile, FilterNoMipBilinear, SamplerFilterLinear | SamplerMipmapDisabled},
		{NoTile, FilterNoMipNearest, SamplerFilterNearest},
		{TileBoth, FilterMip2xBilinear, SamplerClampMask | SamplerFilterAniso2x | SamplerMipmapNearest},
		{TileHorizontal, FilterMip4xTrilinear, SamplerClampV | SamplerFilterAniso4x | SamplerMipmapLinear},
		{TileVertical, FilterMip2xTrilinear, SamplerClampU | SamplerFilterAniso2x | SamplerMipmapLinear},
	}
	for _, tt := range tests {
		if got := SamplerState(tt.tile, tt.filter); got != tt.want {
			t.Errorf("SamplerState(%v, %v) = %#x, want %#x", tt.tile, tt.filter, got, tt.want)
		}
	}
}

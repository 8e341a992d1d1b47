// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package material

import (
	"honnef.co/go/zonetool/gdt"
	"honnef.co/go/zonetool/gfx"
)

// Material blend functions.
const (
	BlendFuncAdd       = "Add"
	BlendFuncBlend     = "Blend"
	BlendFuncMultiply  = "Multiply"
	BlendFuncReplace   = "Replace"
	BlendFuncScreenAdd = "Screen Add"
	BlendFuncCustom    = "Custom"
)

// statebitsTemplate computes the base state bits. The order of the steps
// matters only for error reporting.
func (l *loader) statebitsTemplate() error {
	steps := [...]func() error{
		l.alphaTestTemplate,
		l.blendFuncTemplate,
		l.colorWriteTemplate,
		l.cullFaceTemplate,
		l.depthTestTemplate,
		l.depthWriteTemplate,
		l.gammaWriteTemplate,
		l.polygonOffsetTemplate,
		l.stencilTemplate,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

func (l *loader) alphaTestTemplate() error {
	v, err := gdt.ReadEnum[gfx.AlphaTest](l.r, "alphaTest", gfx.AlphaTestNames)
	if err != nil {
		return err
	}
	if v == gfx.AlphaTestUnknown {
		return invalidf("Invalid alphatest value: \"\"")
	}
	return stateErr(l.base.SetAlphaTest(v))
}

func (l *loader) blendFuncTemplate() error {
	blendFunc, err := l.r.ReadString("blendFunc")
	if err != nil {
		return err
	}

	var rgb, alpha gfx.BlendFunc
	switch blendFunc {
	case BlendFuncAdd:
		rgb = gfx.BlendFuncAdd
	case BlendFuncBlend:
		rgb = gfx.BlendFuncBlend
	case BlendFuncMultiply:
		rgb = gfx.BlendFuncMultiply
	case BlendFuncReplace:
		rgb = gfx.BlendFuncDisabled
	case BlendFuncScreenAdd:
		rgb = gfx.BlendFuncScreenAdd
	case BlendFuncCustom:
		rgb, err = l.readBlendFunc("customBlendOpRgb", "srcCustomBlendFunc", "destCustomBlendFunc")
		if err != nil {
			return err
		}
		alpha, err = l.readBlendFunc("customBlendOpAlpha", "srcCustomBlendFuncAlpha", "destCustomBlendFuncAlpha")
		if err != nil {
			return err
		}
	default:
		return invalidf("Invalid blendfunc value: \"%s\"", blendFunc)
	}
	if blendFunc != BlendFuncCustom {
		alpha = gfx.BlendFuncDisabled
	}

	if err := l.base.SetBlendFunc(rgb.Op, rgb.Src, rgb.Dst); err != nil {
		return stateErr(err)
	}
	return stateErr(l.base.SetSeparateAlphaBlendFunc(alpha.Op, alpha.Src, alpha.Dst))
}

func (l *loader) readBlendFunc(opProp, srcProp, dstProp string) (gfx.BlendFunc, error) {
	op, err := gdt.ReadEnum[gfx.BlendOp](l.r, opProp, gfx.BlendOpNames)
	if err != nil {
		return gfx.BlendFunc{}, err
	}
	src, err := gdt.ReadEnum[gfx.BlendFactor](l.r, srcProp, gfx.BlendFactorNames)
	if err != nil {
		return gfx.BlendFunc{}, err
	}
	dst, err := gdt.ReadEnum[gfx.BlendFactor](l.r, dstProp, gfx.BlendFactorNames)
	if err != nil {
		return gfx.BlendFunc{}, err
	}
	return gfx.BlendFunc{Op: op, Src: src, Dst: dst}, nil
}

func (l *loader) colorWriteTemplate() error {
	var channels [4]gfx.EnabledStatus
	for i, prop := range [...]string{"colorWriteRed", "colorWriteGreen", "colorWriteBlue", "colorWriteAlpha"} {
		v, err := gdt.ReadEnum[gfx.EnabledStatus](l.r, prop, gfx.EnabledStatusNames)
		if err != nil {
			return err
		}
		channels[i] = v
	}
	return stateErr(l.base.SetColorWrite(channels[0], channels[1], channels[2], channels[3]))
}

func (l *loader) cullFaceTemplate() error {
	v, err := gdt.ReadEnum[gfx.CullFace](l.r, "cullFace", gfx.CullFaceNames)
	if err != nil {
		return err
	}
	if v == gfx.CullFaceUnknown {
		return invalidf("Invalid cullFace value: \"\"")
	}
	l.base.SetCullFace(v)
	return nil
}

func (l *loader) depthTestTemplate() error {
	v, err := gdt.ReadEnum[gfx.DepthTest](l.r, "depthTest", gfx.DepthTestNames)
	if err != nil {
		return err
	}
	return stateErr(l.base.SetDepthTest(v))
}

// depthWriteAuto derives depth writes from the blend function.
const depthWriteAuto = "<auto>"

func (l *loader) depthWriteTemplate() error {
	var v gfx.EnabledStatus
	if s, err := l.r.ReadString("depthWrite"); err != nil {
		return err
	} else if s != depthWriteAuto {
		v, err = gdt.ReadEnum[gfx.EnabledStatus](l.r, "depthWrite", gfx.OnOffStatusNames)
		if err != nil {
			return err
		}
	}
	switch v {
	case gfx.StatusEnabled:
		l.base.SetDepthWrite(true)
		return nil
	case gfx.StatusDisabled:
		l.base.SetDepthWrite(false)
		return nil
	}

	// Not set explicitly, derive it from the blend function.
	blendFunc, err := l.r.ReadString("blendFunc")
	if err != nil {
		return err
	}
	switch blendFunc {
	case BlendFuncReplace:
		l.base.SetDepthWrite(true)
	case BlendFuncAdd, BlendFuncBlend, BlendFuncMultiply, BlendFuncScreenAdd, BlendFuncCustom:
		l.base.SetDepthWrite(false)
	default:
		return invalidf("Invalid depthWrite blendFunc value: \"%s\"", blendFunc)
	}
	return nil
}

func (l *loader) gammaWriteTemplate() error {
	v, err := gdt.ReadEnum[gfx.EnabledStatus](l.r, "gammaWrite", gfx.OnOffStatusNames)
	if err != nil {
		return err
	}
	if v == gfx.StatusUnknown {
		return invalidf("Invalid gammaWrite value: \"\"")
	}
	l.base.SetGammaWrite(v == gfx.StatusEnabled)
	return nil
}

func (l *loader) polygonOffsetTemplate() error {
	v, err := gdt.ReadEnum[gfx.PolygonOffset](l.r, "polygonOffset", gfx.PolygonOffsetNames)
	if err != nil {
		return err
	}
	return stateErr(l.base.SetPolygonOffset(v))
}

func (l *loader) stencilTemplate() error {
	mode, err := gdt.ReadEnum[gfx.StencilMode](l.r, "stencil", gfx.StencilModeNames)
	if err != nil {
		return err
	}
	switch mode {
	case gfx.StencilModeDisabled:
		l.base.DisableStencil(gfx.StencilFront)
		l.base.DisableStencil(gfx.StencilBack)
		return nil
	case gfx.StencilModeTwoSided:
		if err := l.enableStencil(gfx.StencilBack, "2"); err != nil {
			return err
		}
		fallthrough
	case gfx.StencilModeOneSided:
		return l.enableStencil(gfx.StencilFront, "1")
	default:
		return invalidf("Invalid stencil value: \"\"")
	}
}

func (l *loader) enableStencil(side gfx.StencilSide, suffix string) error {
	fn, err := gdt.ReadEnum[gfx.StencilFunc](l.r, "stencilFunc"+suffix, gfx.StencilFuncNames)
	if err != nil {
		return err
	}
	var ops [3]gfx.StencilOp
	for i, prop := range [...]string{"stencilOpFail", "stencilOpZFail", "stencilOpPass"} {
		op, err := gdt.ReadEnum[gfx.StencilOp](l.r, prop+suffix, gfx.StencilOpNames)
		if err != nil {
			return err
		}
		ops[i] = op
	}
	return stateErr(l.base.EnableStencil(side, fn, ops[0], ops[1], ops[2]))
}

// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package material

import (
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"honnef.co/go/zonetool/gfx"
)

// Material types as used by the materialType property.
const (
	TypeModelPhong    = "model phong"
	TypeWorldPhong    = "world phong"
	TypeImpactMark    = "impact mark"
	TypeModelAmbient  = "model ambient"
	Type2D            = "2d"
	TypeModelUnlit    = "model unlit"
	TypeWorldUnlit    = "world unlit"
	TypeUnlit         = "unlit"
	TypeEffect        = "effect"
	TypeDistortion    = "distortion"
	TypeParticleCloud = "particle cloud"
	TypeSparkCloud    = "spark cloud"
	TypeSparkFountain = "spark fountain"
	TypeTools         = "tools"
	TypeSky           = "sky"
	TypeWater         = "water"
	TypeObjective     = "objective"
	TypeCustom        = "custom"
)

type template func(*loader) error

// unimplemented returns a template that skips the material.
func unimplemented(name string) template {
	return func(l *loader) error {
		return skipf("Material template %s is not implemented", name)
	}
}

var materialTemplates = map[string]template{
	TypeModelPhong:    unimplemented("phong"),
	TypeWorldPhong:    unimplemented("phong"),
	TypeImpactMark:    unimplemented("phong"),
	TypeModelAmbient:  unimplemented("ambient"),
	Type2D:            (*loader).mtl2DTemplate,
	TypeModelUnlit:    unimplemented("unlit"),
	TypeWorldUnlit:    unimplemented("unlit"),
	TypeUnlit:         unimplemented("unlit_deprecated"),
	TypeEffect:        (*loader).mtlEffectTemplate,
	TypeDistortion:    (*loader).mtlDistortionTemplate,
	TypeSparkFountain: particleCloudTemplate("_sparkf"),
	TypeSparkCloud:    particleCloudTemplate("_spark"),
	TypeParticleCloud: particleCloudTemplate(""),
	TypeTools:         (*loader).mtlToolsTemplate,
	TypeSky:           unimplemented("sky"),
	TypeWater:         unimplemented("water"),
	TypeObjective:     unimplemented("objective"),
	TypeCustom:        (*loader).customTemplate,
}

var customTemplates = map[string]template{
	"mtl_custom":       unimplemented("mtl_custom"),
	"mtl_phong_flag":   unimplemented("mtl_phong_flag"),
	"grain_overlay":    unimplemented("grain_overlay"),
	"effect_eyeoffset": unimplemented("effect_eyeoffset"),
	"reflexsight":      unimplemented("reflexsight"),
	"shadowclear":      unimplemented("shadowclear"),
	"shadowoverlay":    unimplemented("shadowoverlay"),
	"splatter":         unimplemented("splatter"),
}

func (l *loader) materialTemplate() error {
	materialType, err := l.r.ReadString("materialType")
	if err != nil {
		return err
	}
	tmpl, ok := materialTemplates[materialType]
	if !ok {
		return invalidf("Unknown material type: \"%s\"", materialType)
	}
	return tmpl(l)
}

func (l *loader) customTemplate() error {
	name, err := l.r.ReadString("customTemplate")
	if err != nil {
		return err
	}
	tmpl, ok := customTemplates[name]
	if !ok {
		return invalidf("Unknown custom template: \"%s\"", name)
	}
	return tmpl(l)
}

func (l *loader) mtl2DTemplate() error {
	if err := l.commonSetupTemplate(); err != nil {
		return err
	}
	if err := l.setTechniqueSet("2d"); err != nil {
		return err
	}
	return l.addColorMap(gfx.TS2D, "2d")
}

func (l *loader) mtlEffectTemplate() error {
	if !l.ctx.Options.EffectTemplate {
		return skipf("Material template effect is not implemented")
	}
	if err := l.commonSetupTemplate(); err != nil {
		return err
	}
	return l.unlitCommonTemplate()
}

func (l *loader) mtlDistortionTemplate() error {
	if err := l.commonSetupTemplate(); err != nil {
		return err
	}

	uvAnim, err := l.r.ReadBool("uvAnim")
	if err != nil {
		return err
	}
	techset := "distortion_scale_zfeather"
	if uvAnim {
		techset = "distortion_scale_ua_zfeather"
	}
	if err := l.setTechniqueSet(techset); err != nil {
		return err
	}
	if err := l.addColorMap(gfx.TSColorMap, "distortion"); err != nil {
		return err
	}

	var scale [2]float32
	for i, prop := range [...]string{"distortionScaleX", "distortionScaleY"} {
		scale[i], err = l.r.ReadFloat(prop)
		if err != nil {
			return err
		}
	}
	l.addConstant("distortionScale", mgl32.Vec4{scale[0], scale[1], 0, 0})

	if uvAnim {
		var scroll [3]float32
		for i, prop := range [...]string{"uvScrollX", "uvScrollY", "uvScrollRotate"} {
			scroll[i], err = l.r.ReadFloat(prop)
			if err != nil {
				return err
			}
		}
		l.addConstant("uvAnimParms", mgl32.Vec4{scroll[0], scroll[1], scroll[2], 0})
	}
	return nil
}

func particleCloudTemplate(suffix string) template {
	return func(l *loader) error {
		return l.particleCloudCommonTemplate(suffix)
	}
}

func (l *loader) particleCloudCommonTemplate(suffix string) error {
	if err := l.refBlendTemplate(); err != nil {
		return err
	}
	if err := l.sortTemplate(); err != nil {
		return err
	}
	l.clampTemplate()
	l.setTextureAtlas(1, 1)
	if err := l.statebitsTemplate(); err != nil {
		return err
	}

	outdoorOnly, err := l.r.ReadBool("outdoorOnly")
	if err != nil {
		return err
	}
	blendFunc, err := l.r.ReadString("blendFunc")
	if err != nil {
		return err
	}
	useSpotLight, err := l.r.ReadBool("useSpotLight")
	if err != nil {
		return err
	}
	if outdoorOnly && useSpotLight {
		return invalidf("Outdoor and spot aren't supported on particle cloud materials")
	}

	var name strings.Builder
	name.WriteString("particle_cloud")
	name.WriteString(suffix)
	if outdoorOnly {
		name.WriteString("_outdoor")
	}
	switch blendFunc {
	case BlendFuncAdd:
		name.WriteString("_add")
	case BlendFuncScreenAdd:
		name.WriteString("_screen")
	}
	if useSpotLight {
		name.WriteString("_spot_sm")
	}
	if err := l.setTechniqueSet(name.String()); err != nil {
		return err
	}
	if err := l.addColorMap(gfx.TSColorMap, "particle cloud"); err != nil {
		return err
	}

	l.ctx.printf("Using particlecloud for \"%s\"", l.mtl.Name)
	return nil
}

func (l *loader) mtlToolsTemplate() error {
	if err := l.commonSetupTemplate(); err != nil {
		return err
	}
	if err := l.setTechniqueSet("tools"); err != nil {
		return err
	}
	if err := l.addMapTexture("normalMap", gfx.NoTile, gfx.FilterNoMipNearest, gfx.TSNormalMap, "$identitynormalmap"); err != nil {
		return err
	}
	if err := l.addColorMap(gfx.TSColorMap, "tools"); err != nil {
		return err
	}

	tint, err := l.r.ReadVec4("colorTint", mgl32.Vec4{1, 1, 1, 1})
	if err != nil {
		return err
	}
	l.addConstant("colorTint", tint)
	return nil
}

// unlitCommonTemplate picks the technique set of effect and unlit materials
// and binds their textures and constants.
func (l *loader) unlitCommonTemplate() error {
	var (
		outdoorOnly, distFalloff, falloff, noFog, useSpotLight, zFeather bool
	)
	for _, b := range []struct {
		prop string
		dst  *bool
	}{
		{"outdoorOnly", &outdoorOnly},
		{"distFalloff", &distFalloff},
		{"falloff", &falloff},
		{"noFog", &noFog},
		{"useSpotLight", &useSpotLight},
		{"zFeather", &zFeather},
	} {
		v, err := l.r.ReadBool(b.prop)
		if err != nil {
			return err
		}
		*b.dst = v
	}
	blendFunc, err := l.r.ReadString("blendFunc")
	if err != nil {
		return err
	}
	materialType, err := l.r.ReadString("materialType")
	if err != nil {
		return err
	}
	eyeOffsetDepth, err := l.r.ReadFloat("eyeOffsetDepth")
	if err != nil {
		return err
	}

	var distFalloffSuffix, falloffSuffix, noFogSuffix, spotSuffix, eyeOffsetSuffix, addSuffix string
	if distFalloff {
		hdrPortal, err := l.r.ReadBool("hdrPortal")
		if err != nil {
			return err
		}
		switch {
		case !hdrPortal:
			return invalidf("Cannot have distance falloff active without hdrPortal.")
		case blendFunc == BlendFuncMultiply:
			return invalidf("Distance falloff does not currently support Multiply.")
		case outdoorOnly:
			return invalidf("Distance falloff does not currently support outdoor-only types.")
		}
		distFalloffSuffix = "_falloff"
	}
	if falloff {
		switch {
		case blendFunc == BlendFuncMultiply:
			return invalidf("Falloff does not currently support Multiply.")
		case outdoorOnly:
			return invalidf("Falloff does not currently support outdoor-only types.")
		}
		falloffSuffix = "_falloff"
	}
	if noFog {
		noFogSuffix = "_nofog"
	}
	if useSpotLight {
		spotSuffix = "_spot"
	}
	if eyeOffsetDepth != 0 {
		eyeOffsetSuffix = "_eyeoffset"
	}
	if blendFunc == BlendFuncAdd || blendFunc == BlendFuncScreenAdd {
		addSuffix = "_add"
	}

	var techset string
	switch {
	case materialType == TypeEffect && zFeather:
		if blendFunc == BlendFuncMultiply {
			return invalidf("zFeather does not support multiply.")
		}
		if outdoorOnly {
			techset = "effect_zfeather_outdoor" + addSuffix + noFogSuffix + spotSuffix + eyeOffsetSuffix
		} else {
			techset = "effect_zfeather" + distFalloffSuffix + falloffSuffix + addSuffix + noFogSuffix + spotSuffix + eyeOffsetSuffix
		}
	default:
		base := "unlit"
		if materialType == TypeEffect {
			base = "effect"
		}
		if blendFunc == BlendFuncMultiply {
			techset = base + "_multiply" + noFogSuffix + spotSuffix + eyeOffsetSuffix
		} else {
			techset = base + distFalloffSuffix + falloffSuffix + addSuffix + noFogSuffix + spotSuffix + eyeOffsetSuffix
		}
	}
	if err := l.setTechniqueSet(techset); err != nil {
		return err
	}
	if err := l.addColorMap(gfx.TSColorMap, "effect/unlit"); err != nil {
		return err
	}

	if zFeather {
		depth, err := l.r.ReadFloat("zFeatherDepth")
		if err != nil {
			return err
		}
		if depth == 0 {
			return invalidf("zFeatherDepth may not be zero")
		}
		l.addConstant("featherParms", mgl32.Vec4{1 / depth, depth, 0, 0})
	}
	if eyeOffsetDepth != 0 {
		l.addConstant("eyeOffsetParms", mgl32.Vec4{eyeOffsetDepth, 0, 0, 0})
	}

	tint, err := l.r.ReadVec4("colorTint", mgl32.Vec4{1, 1, 1, 1})
	if err != nil {
		return err
	}
	l.addConstant("colorTint", tint)
	return nil
}

func (l *loader) commonSetupTemplate() error {
	if err := l.refBlendTemplate(); err != nil {
		return err
	}
	if err := l.sortTemplate(); err != nil {
		return err
	}
	l.clampTemplate()
	if err := l.textureAtlasTemplate(); err != nil {
		return err
	}
	return l.statebitsTemplate()
}

// refBlendTemplate only checks that the blend function exists.
func (l *loader) refBlendTemplate() error {
	_, err := l.r.ReadString("blendFunc")
	return err
}

func (l *loader) sortTemplate() error {
	sort, err := l.r.ReadString("sort")
	if err != nil {
		return err
	}
	materialType, err := l.r.ReadString("materialType")
	if err != nil {
		return err
	}
	polygonOffset, err := l.r.ReadString("polygonOffset")
	if err != nil {
		return err
	}
	blendFunc, err := l.r.ReadString("blendFunc")
	if err != nil {
		return err
	}

	sortKey := sort
	if sort == "" || sort == SortKeyDefault {
		switch {
		case materialType == TypeDistortion:
			sortKey = SortKeyDistortion
		case polygonOffset == "Static Decal":
			sortKey = SortKeyDecalStatic
		case polygonOffset == "Weapon Impact":
			sortKey = SortKeyDecalWeaponImpact
		case materialType == TypeEffect:
			sortKey = SortKeyEffectAutoSort
		case materialType == TypeObjective,
			blendFunc == BlendFuncBlend, blendFunc == BlendFuncAdd, blendFunc == BlendFuncScreenAdd:
			sortKey = SortKeyBlendAdditive
		case materialType == TypeSky:
			sortKey = SortKeySky
		case materialType == TypeModelAmbient:
			sortKey = SortKeyOpaqueAmbient
		default:
			sortKey = SortKeyOpaque
		}
	}

	for i, name := range SortKeyNames {
		if name != "" && name == sortKey {
			l.setSort(uint8(i))
			return nil
		}
	}
	n, err := strconv.ParseUint(sortKey, 10, 8)
	if err != nil {
		return invalidf("Invalid sort value: \"%s\"", sortKey)
	}
	l.setSort(uint8(n))
	return nil
}

func (l *loader) clampTemplate() {}

func (l *loader) textureAtlasTemplate() error {
	rows, err := l.r.ReadInt("textureAtlasRowCount", 1)
	if err != nil {
		return err
	}
	columns, err := l.r.ReadInt("textureAtlasColumnCount", 1)
	if err != nil {
		return err
	}
	if rows < 0 || rows > 255 || columns < 0 || columns > 255 {
		return invalidf("Invalid texture atlas size: %dx%d", rows, columns)
	}
	l.setTextureAtlas(uint8(rows), uint8(columns))
	return nil
}

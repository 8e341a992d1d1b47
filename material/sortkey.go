// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package material

// SortKeyTransStart is the first sort key of transparent materials.
const SortKeyTransStart = 6

const (
	SortKeyDefault           = "<default>"
	SortKeyDistortion        = "distortion"
	SortKeyOpaqueAmbient     = "opaque ambient"
	SortKeyOpaque            = "opaque"
	SortKeySky               = "sky"
	SortKeyDecalStatic       = "decal - static decal"
	SortKeyDecalWeaponImpact = "decal - weapon impact"
	SortKeyBlendAdditive     = "blend / additive"
	SortKeyEffectAutoSort    = "effect - auto sort"
)

// SortKeyNames maps sort keys to their names. Unnamed keys can only be
// given numerically.
var SortKeyNames = [64]string{
	0:  SortKeyDistortion,
	1:  "opaque water",
	2:  "boat hull",
	3:  SortKeyOpaqueAmbient,
	4:  SortKeyOpaque,
	5:  SortKeySky,
	6:  "skybox - sun / moon",
	7:  "skybox - clouds",
	8:  "skybox - horizon",
	9:  "decal - bottom 1",
	10: "decal - bottom 2",
	11: "decal - bottom 3",
	12: SortKeyDecalStatic,
	13: "decal - middle 1",
	14: "decal - middle 2",
	15: "decal - middle 3",
	24: SortKeyDecalWeaponImpact,
	29: "decal - top 1",
	30: "decal - top 2",
	31: "decal - top 3",
	32: "multiplicative",
	33: "banner / curtain",
	34: "hair",
	35: "underwater",
	36: "transparent water",
	37: "corona",
	38: "window inside",
	39: "window outside",
	40: "before effects - 1",
	41: "before effects - 2",
	42: "before effects - 3",
	43: SortKeyBlendAdditive,
	48: SortKeyEffectAutoSort,
	56: "after effects - bottom",
	57: "after effects - middle",
	58: "after effects - top",
	59: "viewmodel effect",
}

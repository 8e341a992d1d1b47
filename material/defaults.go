// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package material

// DefaultProperties are the defaults of material.gdf. Only materialType has
// no default.
var DefaultProperties = map[string]string{
	"sort":           "<default>",
	"customTemplate": "",

	"blendFunc":                "Replace",
	"customBlendOpRgb":         "Add",
	"srcCustomBlendFunc":       "One",
	"destCustomBlendFunc":      "Zero",
	"customBlendOpAlpha":       "Add",
	"srcCustomBlendFuncAlpha":  "One",
	"destCustomBlendFuncAlpha": "Zero",

	"alphaTest":       "Always",
	"colorWriteRed":   "Enable",
	"colorWriteGreen": "Enable",
	"colorWriteBlue":  "Enable",
	"colorWriteAlpha": "Enable",
	"cullFace":        "Back",
	"depthTest":       "LessEqual",
	"depthWrite":      "<auto>",
	"gammaWrite":      "Off",
	"polygonOffset":   "None",

	"stencil":         "Disable",
	"stencilFunc1":    "Always",
	"stencilOpFail1":  "Keep",
	"stencilOpZFail1": "Keep",
	"stencilOpPass1":  "Keep",
	"stencilFunc2":    "Always",
	"stencilOpFail2":  "Keep",
	"stencilOpZFail2": "Keep",
	"stencilOpPass2":  "Keep",

	"textureAtlasRowCount":    "1",
	"textureAtlasColumnCount": "1",

	"colorMap":    "",
	"tileColor":   "Tile Both",
	"filterColor": "Mip Standard (2x Bilinear)",
	"colorTint":   "1 1 1 1",

	"outdoorOnly":  "0",
	"useSpotLight": "0",
	"distFalloff":  "0",
	"hdrPortal":    "0",
	"falloff":      "0",
	"noFog":        "0",
	"zFeather":     "0",
	"uvAnim":       "0",

	"eyeOffsetDepth":   "0",
	"zFeatherDepth":    "0",
	"uvScrollX":        "0",
	"uvScrollY":        "0",
	"uvScrollRotate":   "0",
	"distortionScaleX": "0",
	"distortionScaleY": "0",
}

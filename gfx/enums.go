// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package gfx

import (
	"strconv"

	"golang.org/x/exp/constraints"
)

func enumName[T constraints.Unsigned](names []string, v T) string {
	if int(v) < len(names) && names[v] != "" {
		return names[v]
	}
	return "<unknown " + strconv.Itoa(int(v)) + ">"
}

type AlphaTest uint8

const (
	AlphaTestUnknown AlphaTest = iota
	AlphaTestAlways
	AlphaTestGreaterThan0
	AlphaTestLessThan128
	AlphaTestGreaterEqual128
)

var AlphaTestNames = []string{"", "Always", "GT0", "LT128", "GE128"}

func (v AlphaTest) String() string { return enumName(AlphaTestNames, v) }

type CullFace uint8

const (
	CullFaceUnknown CullFace = iota
	CullFaceNone
	CullFaceBack
	CullFaceFront
)

var CullFaceNames = []string{"", "None", "Back", "Front"}

func (v CullFace) String() string { return enumName(CullFaceNames, v) }

type DepthTest uint8

const (
	DepthTestUnknown DepthTest = iota
	DepthTestModeLessEqual
	DepthTestModeLess
	DepthTestModeEqual
	DepthTestModeAlways
	DepthTestModeDisable
)

var DepthTestNames = []string{"", "LessEqual", "Less", "Equal", "Always", "Disable"}

func (v DepthTest) String() string { return enumName(DepthTestNames, v) }

type PolygonOffset uint8

const (
	PolygonOffsetUnknown PolygonOffset = iota
	PolygonOffset0
	PolygonOffset1
	PolygonOffset2
	PolygonOffsetShadowMap
)

var PolygonOffsetNames = []string{"", "None", "Static Decal", "Weapon Impact", "Shadow Map"}

func (v PolygonOffset) String() string { return enumName(PolygonOffsetNames, v) }

type StencilMode uint8

const (
	StencilModeUnknown StencilMode = iota
	StencilModeDisabled
	StencilModeOneSided
	StencilModeTwoSided
)

var StencilModeNames = []string{"", "Disable", "One-sided", "Two-sided"}

func (v StencilMode) String() string { return enumName(StencilModeNames, v) }

type StencilFunc uint8

const (
	StencilFuncUnknown StencilFunc = iota
	StencilFuncNever
	StencilFuncLess
	StencilFuncEqual
	StencilFuncLessEqual
	StencilFuncGreater
	StencilFuncNotEqual
	StencilFuncGreaterEqual
	StencilFuncAlways
)

var StencilFuncNames = []string{"", "Never", "Less", "Equal", "LessEqual", "Greater", "NotEqual", "GreaterEqual", "Always"}

func (v StencilFunc) String() string { return enumName(StencilFuncNames, v) }

type StencilOp uint8

const (
	StencilOpUnknown StencilOp = iota
	StencilOpKeep
	StencilOpZero
	StencilOpReplace
	StencilOpIncrSat
	StencilOpDecrSat
	StencilOpInvert
	StencilOpIncr
	StencilOpDecr
)

var StencilOpNames = []string{"", "Keep", "Zero", "Replace", "IncrSat", "DecrSat", "Invert", "Incr", "Decr"}

func (v StencilOp) String() string { return enumName(StencilOpNames, v) }

// EnabledStatus is a tri-state switch. Unknown means the value wasn't given
// and has to be derived from other state.
type EnabledStatus uint8

const (
	StatusUnknown EnabledStatus = iota
	StatusEnabled
	StatusDisabled
)

var (
	EnabledStatusNames = []string{"", "Enable", "Disable"}
	OnOffStatusNames   = []string{"", "On", "Off"}
)

func (v EnabledStatus) String() string { return enumName(EnabledStatusNames, v) }

// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Package techset loads technique set definitions and the state maps their
// techniques refer to.
package techset

// TechniqueCount is the number of technique slots of a technique set.
const TechniqueCount = 48

// Slots that materials are classified by.
const (
	TechniqueEmissive = 5
	TechniqueLit      = 9
)

// TechniqueNames are the names of the technique slots as they appear in
// .techset files.
var TechniqueNames = [TechniqueCount]string{
	"depth prepass",
	"build floatz",
	"build shadowmap depth",
	"build shadowmap color",
	"unlit",
	"emissive",
	"emissive dfog",
	"emissive shadow",
	"emissive shadow dfog",
	"lit",
	"lit dfog",
	"lit sun",
	"lit sun dfog",
	"lit sun shadow",
	"lit sun shadow dfog",
	"lit spot",
	"lit spot dfog",
	"lit spot shadow",
	"lit spot shadow dfog",
	"lit omni",
	"lit omni dfog",
	"lit omni shadow",
	"lit omni shadow dfog",
	"lit instanced",
	"lit instanced dfog",
	"lit instanced sun",
	"lit instanced sun dfog",
	"lit instanced sun shadow",
	"lit instanced sun shadow dfog",
	"lit instanced spot",
	"lit instanced spot dfog",
	"lit instanced spot shadow",
	"lit instanced spot shadow dfog",
	"lit instanced omni",
	"lit instanced omni dfog",
	"lit instanced omni shadow",
	"lit instanced omni shadow dfog",
	"light spot",
	"light omni",
	"light spot shadow",
	"fakelight normal",
	"fakelight view",
	"sunlight preview",
	"case texture",
	"solid wireframe",
	"shaded wireframe",
	"debug bumpmap",
	"debug bumpmap instanced",
}

func techniqueIndex(name string) (int, bool) {
	for i, n := range TechniqueNames {
		if n == name {
			return i, true
		}
	}
	return 0, false
}

// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package material

import (
	"honnef.co/go/zonetool/gfx"
	"honnef.co/go/zonetool/statemap"
	"honnef.co/go/zonetool/techset"
	"honnef.co/go/zonetool/zone"
)

// setTechniqueSet binds the material to a technique set and computes the
// state bits of all of its techniques. It must run after the base state
// bits and the sort key have been set.
func (l *loader) setTechniqueSet(name string) error {
	info := l.ctx.Manager.LoadDependency(zone.AssetTechniqueSet, name)
	if info == nil {
		return notFoundf(nil, "Could not load techset: \"%s\"", name)
	}
	l.deps.Add(l.arena, info)
	l.mtl.TechniqueSet = info.Asset.(*techset.TechniqueSet)

	def, err := l.ctx.Cache.LoadDefinition(name)
	if err != nil {
		return notFoundf(err, "Could not find techset definition for: \"%s\"", name)
	}

	if err := l.setTechniqueSetStateBits(def); err != nil {
		return err
	}
	l.setTechniqueSetCameraRegion(def)
	return nil
}

func (l *loader) setTechniqueSetStateBits(def *techset.Definition) error {
	for i := range techset.TechniqueCount {
		techName, ok := def.GetTechniqueByIndex(i)
		if !ok {
			l.mtl.StateBitsEntry[i] = NoStateBits
			continue
		}
		bits, err := l.stateBitsForTechnique(techName)
		if err != nil {
			return err
		}
		l.mtl.StateBitsEntry[i] = l.internStateBits(bits)
	}
	return nil
}

// internStateBits returns the index of bits in the state bits table, adding
// them if necessary.
func (l *loader) internStateBits(bits gfx.StateBits) uint8 {
	for i, sb := range l.stateBits {
		if sb.LoadBits == bits.LoadBits {
			return uint8(i)
		}
	}
	l.stateBits = append(l.stateBits, bits)
	return uint8(len(l.stateBits) - 1)
}

// stateBitsForTechnique returns the state bits of a technique. Techniques
// without a state map use the base state bits.
func (l *loader) stateBitsForTechnique(technique string) (gfx.StateBits, error) {
	sm, err := l.ctx.Cache.StateMapForTechnique(technique)
	if err != nil {
		return gfx.StateBits{}, notFoundf(err, "Could not load state map for technique: \"%s\"", technique)
	}
	if sm == nil {
		return l.base.Bits, nil
	}
	if bits, ok := l.stateBitsPerStateMap[sm]; ok {
		return bits, nil
	}

	l.ctx.debugf("%s: applying state map %q for technique %q", l.mtl.Name, sm.Name, technique)
	var bits gfx.StateBits
	bits.LoadBits = statemap.NewHandler(sm).Apply(l.base.Bits.LoadBits)
	l.stateBitsPerStateMap[sm] = bits
	return bits, nil
}

func (l *loader) setTechniqueSetCameraRegion(def *techset.Definition) {
	if _, ok := def.GetTechniqueByIndex(techset.TechniqueLit); ok {
		if l.mtl.SortKey >= SortKeyTransStart {
			l.mtl.CameraRegion = CameraRegionLitTrans
		} else {
			l.mtl.CameraRegion = CameraRegionLitOpaque
		}
	} else if _, ok := def.GetTechniqueByIndex(techset.TechniqueEmissive); ok {
		l.mtl.CameraRegion = CameraRegionEmissive
	} else {
		l.mtl.CameraRegion = CameraRegionNone
	}
}

// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Package gdt reads GDT files, the flat key/value records that describe
// assets in editable form.
//
// A GDT file is a list of entries:
//
//	{
//		"wc_sky" ( "material.gdf" )
//		{
//			"materialType" "sky"
//		}
//		"wc_sky_fog" [ "wc_sky" ]
//		{
//			"noFog" "1"
//		}
//	}
//
// An entry either names the GDF that describes its kind, or a parent entry
// whose kind and properties it inherits.
package gdt

import (
	"iter"
	"maps"
	"slices"
)

type Entry struct {
	Name string
	// GdfName is the GDF of the entry. It is inherited from the parent for
	// derived entries.
	GdfName    string
	Parent     *Entry
	Properties map[string]string
}

// Property looks up a property, consulting the chain of parents.
func (e *Entry) Property(name string) (string, bool) {
	for cur := e; cur != nil; cur = cur.Parent {
		if v, ok := cur.Properties[name]; ok {
			return v, true
		}
	}
	return "", false
}

// Keys returns the names of all properties visible on the entry, sorted.
func (e *Entry) Keys() []string {
	seen := map[string]struct{}{}
	for cur := e; cur != nil; cur = cur.Parent {
		for k := range cur.Properties {
			seen[k] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(seen))
}

type File struct {
	Entries []*Entry

	byName map[string]*Entry
}

// Entry returns the entry called name if it is of the given GDF.
func (f *File) Entry(gdf, name string) *Entry {
	e := f.byName[name]
	if e == nil || e.GdfName != gdf {
		return nil
	}
	return e
}

// EntriesOf yields all entries of the given GDF, in file order.
func (f *File) EntriesOf(gdf string) iter.Seq[*Entry] {
	return func(yield func(*Entry) bool) {
		for _, e := range f.Entries {
			if e.GdfName == gdf {
				if !yield(e) {
					return
				}
			}
		}
	}
}

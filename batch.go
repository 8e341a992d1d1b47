// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Package zonetool compiles the materials of GDT files into zones.
package zonetool

import (
	"errors"
	"fmt"
	"io/fs"
	"log"

	"honnef.co/go/zonetool/gdt"
	"honnef.co/go/zonetool/material"
	"honnef.co/go/zonetool/mem"
	"honnef.co/go/zonetool/profiler"
	"honnef.co/go/zonetool/zone"
)

// MaterialGDF is the GDF of material entries.
const MaterialGDF = "material.gdf"

type Stats struct {
	Compiled int
	Skipped  int
	Failed   int
}

func (s Stats) String() string {
	return fmt.Sprintf("%d compiled, %d skipped, %d failed", s.Compiled, s.Skipped, s.Failed)
}

// Compiler compiles materials into a single zone. It is not safe for
// concurrent use.
type Compiler struct {
	Manager *zone.Manager
	Context *material.Context
	// Store receives compiled assets. It may be nil.
	Store *zone.Store
	Log   *log.Logger
}

func NewCompiler(searchPath fs.FS, store *zone.Store, logger *log.Logger, opts material.Options) *Compiler {
	m := zone.NewManager(mem.NewArena(), logger)
	return &Compiler{
		Manager: m,
		Context: material.NewContext(m, searchPath, opts),
		Store:   store,
		Log:     logger,
	}
}

// CompileGDT compiles every material entry of f. Entries that fail to
// compile are logged and skipped. The returned error is only non-nil if
// compiled assets couldn't be stored. pg may be nil.
func (c *Compiler) CompileGDT(f *gdt.File, pg profiler.ProfilerGroup) (Stats, error) {
	if pg == nil {
		pg = (*profiler.Group)(nil)
	}
	var stats Stats
	g := pg.Start("materials")
	for entry := range f.EntriesOf(MaterialGDF) {
		_, err := material.Load(c.Context, entry)
		switch {
		case err == nil:
			stats.Compiled++
		case errors.Is(err, material.ErrSkip):
			stats.Skipped++
			if c.Context.Options.Verbose {
				c.printf("Skipping %q: %s", entry.Name, err)
			}
		default:
			stats.Failed++
			c.printf("Error while trying to load material from gdt: %s @ GdtEntry \"%s\"", err, entry.Name)
		}
	}
	g.End()

	if c.Store == nil {
		return stats, nil
	}
	g = pg.Start("store")
	defer g.End()
	if err := c.save(); err != nil {
		return stats, err
	}
	return stats, nil
}

// save writes all assets of the zone to the store.
func (c *Compiler) save() error {
	for info := range c.Manager.Assets() {
		var data []byte
		switch asset := info.Asset.(type) {
		case *material.Material:
			data = material.Marshal(asset)
		case *zone.Image:
			data = []byte(asset.Path)
		}
		if err := c.Store.Save(info, data); err != nil {
			return fmt.Errorf("couldn't store %s %q: %w", info.Type, info.Name, err)
		}
	}
	return nil
}

func (c *Compiler) printf(f string, v ...any) {
	if c.Log != nil {
		c.Log.Printf(f, v...)
	}
}

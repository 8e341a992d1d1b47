// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package material

import (
	"io/fs"
	"log"

	"honnef.co/go/zonetool/statemap"
	"honnef.co/go/zonetool/techset"
	"honnef.co/go/zonetool/zone"
)

type Options struct {
	// EffectTemplate enables compilation of effect materials, which are
	// skipped otherwise.
	EffectTemplate bool
	Verbose        bool
}

// Context holds the state shared by all materials of a zone. It is not safe
// for concurrent use.
type Context struct {
	Manager *zone.Manager
	Cache   *techset.Cache
	// Defaults supplies properties missing from entries.
	Defaults map[string]string
	Options  Options
	Log      *log.Logger
}

// NewContext creates a context that finds technique sets, techniques, state
// maps and images in fsys. It installs technique set and image loaders in m.
func NewContext(m *zone.Manager, fsys fs.FS, opts Options) *Context {
	ctx := &Context{
		Manager:  m,
		Cache:    techset.NewCache(fsys, statemap.DefaultLayout),
		Defaults: DefaultProperties,
		Options:  opts,
		Log:      m.Log,
	}
	m.SetLoader(zone.AssetTechniqueSet, &techset.Loader{Cache: ctx.Cache})
	m.SetLoader(zone.AssetImage, &zone.ImageLoader{FS: fsys})
	return ctx
}

func (ctx *Context) printf(f string, v ...any) {
	if ctx.Log != nil {
		ctx.Log.Printf(f, v...)
	}
}

func (ctx *Context) debugf(f string, v ...any) {
	if !ctx.Options.Verbose {
		return
	}
	ctx.printf(f, v...)
}

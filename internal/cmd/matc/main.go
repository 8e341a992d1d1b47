// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Command matc compiles the materials of all GDT files in a directory into
// a zone database.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"honnef.co/go/zonetool"
	"honnef.co/go/zonetool/config"
	"honnef.co/go/zonetool/gdt"
	"honnef.co/go/zonetool/material"
	"honnef.co/go/zonetool/profiler"
	"honnef.co/go/zonetool/zone"
)

func main() {
	var (
		in         string
		search     string
		out        string
		configPath string
		effect     bool
		verbose    bool
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-v] [-config <file>] [-search <dir>] [-out <file>] -in <dir>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.StringVar(&in, "in", "", "Path to `directory` containing GDT files")
	flag.StringVar(&search, "search", "", "Path to search `directory` for techsets, techniques, state maps and images")
	flag.StringVar(&out, "out", "", "Path to output zone database `file`")
	flag.StringVar(&configPath, "config", "", "Path to configuration `file` (default: search for zonetool.json)")
	flag.BoolVar(&effect, "effect", false, "Compile effect materials")
	flag.BoolVar(&verbose, "v", false, "Be verbose")
	flag.Parse()

	if len(flag.Args()) != 0 || in == "" {
		flag.Usage()
		os.Exit(2)
	}

	dief := func(f string, v ...any) {
		fmt.Fprintf(os.Stderr, f, v...)
		fmt.Fprintln(os.Stderr)
		os.Exit(1)
	}

	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, configPath, err = config.Load(in)
	}
	if err != nil {
		dief("Couldn't load configuration: %s", err)
	}
	settings := cfg.Apply(config.DefaultSettings())
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "search":
			settings.SearchPath = search
		case "out":
			settings.Database = out
		case "effect":
			settings.EffectTemplate = effect
		case "v":
			settings.Verbose = verbose
		}
	})

	debugf := func(f string, v ...any) {
		if !settings.Verbose {
			return
		}
		fmt.Fprintf(os.Stderr, f, v...)
		fmt.Fprintln(os.Stderr)
	}
	if configPath != "" {
		debugf("using configuration %s", configPath)
	}

	pg := profiler.New("matc")

	matches, err := filepath.Glob(filepath.Join(in, "*.gdt"))
	if err != nil {
		panic(err)
	}
	if len(matches) == 0 {
		dief("No GDT files in %s", in)
	}

	store, err := zone.OpenStore(settings.Database)
	if err != nil {
		dief("Couldn't open zone database: %s", err)
	}
	defer store.Close()

	c := zonetool.NewCompiler(os.DirFS(settings.SearchPath), store, log.New(os.Stderr, "", 0), material.Options{
		EffectTemplate: settings.EffectTemplate,
		Verbose:        settings.Verbose,
	})

	var total zonetool.Stats
	for _, m := range matches {
		debugf("compiling %s", filepath.Base(m))
		fg := pg.Nest(filepath.Base(m))

		src, err := os.ReadFile(m)
		if err != nil {
			dief("Couldn't read %q: %s", m, err)
		}
		g := fg.Start("parse")
		f, err := gdt.Parse(m, src)
		g.End()
		if err != nil {
			dief("Couldn't parse GDT: %s", err)
		}
		stats, err := c.CompileGDT(f, fg)
		fg.End()
		if err != nil {
			dief("Couldn't write zone: %s", err)
		}
		debugf("%s: %s", filepath.Base(m), stats)
		total.Compiled += stats.Compiled
		total.Skipped += stats.Skipped
		total.Failed += stats.Failed
	}
	pg.End()

	if err := store.SetMetadata("Source", in); err != nil {
		dief("Couldn't write zone metadata: %s", err)
	}
	fmt.Fprintf(os.Stderr, "%s\n", total)
	if settings.Verbose {
		pg.Print(os.Stderr)
	}
	if total.Failed != 0 {
		store.Close()
		os.Exit(1)
	}
}

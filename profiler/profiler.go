// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Package profiler measures the wall-clock time of nested phases.
package profiler

import (
	"fmt"
	"io"
	"strings"
	"time"
)

type ProfilerGroup interface {
	Start(label string) ProfilerGroup
	End()
}

// Group is a ProfilerGroup that records wall-clock time. A nil *Group is a
// valid no-op profiler.
type Group struct {
	Label    string
	start    time.Time
	end      time.Time
	children []*Group
	parent   *Group

	now func() time.Time
}

// New starts a top-level group.
func New(label string) *Group {
	return newGroup(label, time.Now)
}

func newGroup(label string, now func() time.Time) *Group {
	return &Group{Label: label, start: now(), now: now}
}

func (g *Group) Start(label string) ProfilerGroup {
	if g == nil {
		return (*Group)(nil)
	}
	return g.Nest(label)
}

func (g *Group) Nest(label string) *Group {
	if g == nil {
		return nil
	}
	cg := newGroup(label, g.now)
	cg.parent = g
	g.children = append(g.children, cg)
	return cg
}

func (g *Group) End() {
	if g == nil {
		return
	}
	if !g.end.IsZero() {
		panic("trying to end same group twice")
	}
	g.end = g.now()
}

// Duration returns the time between starting and ending the group. Groups
// that haven't ended have no duration.
func (g *Group) Duration() time.Duration {
	if g == nil || g.end.IsZero() {
		return 0
	}
	return g.end.Sub(g.start)
}

func (g *Group) Children() []*Group {
	if g == nil {
		return nil
	}
	return g.children
}

// Print writes the durations of g and its children as an indented tree.
func (g *Group) Print(w io.Writer) error {
	if g == nil {
		return nil
	}
	return g.print(w, 0)
}

func (g *Group) print(w io.Writer, depth int) error {
	if _, err := fmt.Fprintf(w, "%s%s: %s\n", strings.Repeat("  ", depth), g.Label, g.Duration()); err != nil {
		return err
	}
	for _, cg := range g.children {
		if err := cg.print(w, depth+1); err != nil {
			return err
		}
	}
	return nil
}

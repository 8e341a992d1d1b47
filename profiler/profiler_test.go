// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package profiler

import (
	"bytes"
	"testing"
	"time"
)

func fakeClock() func() time.Time {
	t := time.Unix(0, 0)
	return func() time.Time {
		t = t.Add(time.Millisecond)
		return t
	}
}

func TestGroup(t *testing.T) {
	root := newGroup("compile", fakeClock())
	parse := root.Start("parse")
	parse.End()
	load := root.Nest("load")
	load.Start("material").End()
	load.End()
	root.End()

	if got := parse.(*Group).Duration(); got != time.Millisecond {
		t.Errorf("got %s for parse, want 1ms", got)
	}
	if got := root.Duration(); got != 7*time.Millisecond {
		t.Errorf("got %s for root, want 7ms", got)
	}

	var buf bytes.Buffer
	if err := root.Print(&buf); err != nil {
		t.Fatal(err)
	}
	want := "compile: 7ms\n  parse: 1ms\n  load: 3ms\n    material: 1ms\n"
	if buf.String() != want {
		t.Errorf("got\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestNilGroup(t *testing.T) {
	var g *Group
	child := g.Start("x")
	child.End()
	g.End()
	if g.Duration() != 0 || g.Children() != nil {
		t.Error("nil group recorded something")
	}
	if err := g.Print(&bytes.Buffer{}); err != nil {
		t.Error(err)
	}
}

func TestEndTwicePanics(t *testing.T) {
	g := New("x")
	g.End()
	defer func() {
		if recover() == nil {
			t.Error("ending a group twice didn't panic")
		}
	}()
	g.End()
}

// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package gdt

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const testFile = `{
	"mc_child" [ "mc_base" ]
	{
		"colorMap" "child_col"
		"noFog" "1"
	}
	"mc_base" ( "material.gdf" )
	{
		"materialType" "2d"
		"colorMap" "base_col" // trailing comment
		"colorTint" "1 0.5 0.25 1"
		"textureAtlasRowCount" "4"
	}
	"fx_thing" ( "fx.gdf" )
	{
	}
}`

func TestParse(t *testing.T) {
	f, err := Parse("test.gdt", []byte(testFile))
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(f.Entries))
	}

	child := f.Entry("material.gdf", "mc_child")
	if child == nil {
		t.Fatal("couldn't find mc_child")
	}
	if child.Parent == nil || child.Parent.Name != "mc_base" {
		t.Fatalf("mc_child has parent %v", child.Parent)
	}
	if v, _ := child.Property("colorMap"); v != "child_col" {
		t.Errorf("got colorMap %q, want child_col", v)
	}
	if v, _ := child.Property("materialType"); v != "2d" {
		t.Errorf("got inherited materialType %q, want 2d", v)
	}
	want := []string{"colorMap", "colorTint", "materialType", "noFog", "textureAtlasRowCount"}
	if got := child.Keys(); !slices.Equal(got, want) {
		t.Errorf("got keys %v, want %v", got, want)
	}

	if f.Entry("material.gdf", "fx_thing") != nil {
		t.Error("found fx_thing as a material")
	}
	var names []string
	for e := range f.EntriesOf("material.gdf") {
		names = append(names, e.Name)
	}
	if !slices.Equal(names, []string{"mc_child", "mc_base"}) {
		t.Errorf("got material entries %v", names)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"unknown parent", `{ "a" [ "b" ] { } }`, `derives from unknown entry "b"`},
		{"duplicate", `{ "a" ( "x.gdf" ) { } "a" ( "x.gdf" ) { } }`, `duplicate entry "a"`},
		{"cycle", `{ "a" [ "b" ] { } "b" [ "a" ] { } }`, "cyclic parent chain"},
		{"odd properties", `{ "a" ( "x.gdf" ) { "k" } }`, "expected key/value pair"},
		{"missing brace", `"a" ( "x.gdf" ) { }`, "expected '{'"},
		{"bad reference", `{ "a" < "x.gdf" > { } }`, "expected '(' or '['"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("test.gdt", []byte(tt.src))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("got %v, want error containing %q", err, tt.want)
			}
		})
	}
}

func TestReader(t *testing.T) {
	f, err := Parse("test.gdt", []byte(testFile))
	if err != nil {
		t.Fatal(err)
	}
	r := NewReader(f.Entry("material.gdf", "mc_child"), map[string]string{
		"blendFunc": "Replace",
		"uvAnim":    "0",
		"noFog":     "0",
		"badBool":   "yes",
		"badFloat":  "one",
		"scale":     "0.5",
	})

	if v, err := r.ReadString("blendFunc"); err != nil || v != "Replace" {
		t.Errorf("ReadString(blendFunc) = %q, %v", v, err)
	}
	if v, err := r.ReadBool("noFog"); err != nil || !v {
		t.Errorf("ReadBool(noFog) = %t, %v; entry value must win over default", v, err)
	}
	if v, err := r.ReadBool("uvAnim"); err != nil || v {
		t.Errorf("ReadBool(uvAnim) = %t, %v", v, err)
	}
	if v, err := r.ReadFloat("scale"); err != nil || v != 0.5 {
		t.Errorf("ReadFloat(scale) = %v, %v", v, err)
	}
	if v, err := r.ReadInt("textureAtlasRowCount", 1); err != nil || v != 4 {
		t.Errorf("ReadInt(textureAtlasRowCount) = %d, %v", v, err)
	}
	if v, err := r.ReadInt("textureAtlasColumnCount", 1); err != nil || v != 1 {
		t.Errorf("ReadInt(textureAtlasColumnCount) = %d, %v", v, err)
	}
	if v, err := r.ReadVec4("colorTint", mgl32.Vec4{}); err != nil || v != (mgl32.Vec4{1, 0.5, 0.25, 1}) {
		t.Errorf("ReadVec4(colorTint) = %v, %v", v, err)
	}
	def := mgl32.Vec4{1, 1, 1, 1}
	if v, err := r.ReadVec4("missing", def); err != nil || v != def {
		t.Errorf("ReadVec4(missing) = %v, %v", v, err)
	}

	for _, read := range []func() error{
		func() error { _, err := r.ReadString("missing"); return err },
		func() error { _, err := r.ReadBool("missing"); return err },
		func() error { _, err := r.ReadFloat("missing"); return err },
		func() error { _, err := r.ReadBool("badBool"); return err },
		func() error { _, err := r.ReadFloat("badFloat"); return err },
		func() error { _, err := r.ReadInt("colorMap", 0); return err },
		func() error { _, err := r.ReadVec4("scale", def); return err },
	} {
		if err := read(); !errors.Is(err, ErrInvalidProperty) {
			t.Errorf("got %v, want ErrInvalidProperty", err)
		}
	}
}

func TestReadEnum(t *testing.T) {
	r := NewReader(&Entry{Properties: map[string]string{
		"cullFace":  "Front",
		"depthTest": "Sometimes",
	}}, nil)
	names := []string{"", "None", "Back", "Front"}

	v, err := ReadEnum[uint8](r, "cullFace", names)
	if err != nil || v != 3 {
		t.Errorf("got %d, %v, want 3", v, err)
	}

	_, err = ReadEnum[uint8](r, "depthTest", names)
	if !errors.Is(err, ErrInvalidProperty) {
		t.Fatalf("got %v, want ErrInvalidProperty", err)
	}
	if want := `Unknown depthTest value: "Sometimes"`; err.Error() != want {
		t.Errorf("got message %q, want %q", err, want)
	}
	var perr *PropertyError
	if !errors.As(err, &perr) || perr.Property != "depthTest" {
		t.Errorf("got %#v, want PropertyError for depthTest", err)
	}
}

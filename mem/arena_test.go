// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package mem

import (
	"runtime"
	"slices"
	"testing"
	"unsafe"
)

type withPointer struct {
	name string
	n    int
}

type aligned struct {
	a byte
	b uint64
}

func TestArenaAlignment(t *testing.T) {
	a := NewArena()
	for range 100 {
		New[byte](a)
		p := New[aligned](a)
		if uintptr(unsafe.Pointer(p))%unsafe.Alignof(*p) != 0 {
			t.Fatalf("misaligned allocation at %p", p)
		}
	}
}

func TestArenaZeroes(t *testing.T) {
	a := NewArena()
	s := NewSlice[[]uint32](a, 16, 16)
	for i := range s {
		s[i] = 0xFFFFFFFF
	}
	a.Reset()
	s2 := NewSlice[[]uint32](a, 16, 16)
	for i, v := range s2 {
		if v != 0 {
			t.Fatalf("element %d is %#x after reset", i, v)
		}
	}

	p := Make(a, withPointer{"foo", 1})
	a.Reset()
	p2 := New[withPointer](a)
	if *p2 != (withPointer{}) {
		t.Fatalf("got %v after reset", *p2)
	}
	_ = p
}

func TestArenaPointersSurviveGC(t *testing.T) {
	a := NewArena()
	var ptrs []*withPointer
	for i := range 1000 {
		ptrs = append(ptrs, Make(a, withPointer{name: string(rune('a' + i%26)), n: i}))
	}
	runtime.GC()
	for i, p := range ptrs {
		if p.n != i || p.name != string(rune('a'+i%26)) {
			t.Fatalf("entry %d corrupted: %v", i, *p)
		}
	}
}

func TestArenaLargeAllocation(t *testing.T) {
	a := NewArena()
	n := 2 * slabSize / int(unsafe.Sizeof(withPointer{}))
	s := NewSlice[[]withPointer](a, n, n)
	if cap(s) != n {
		t.Fatalf("got cap %d, want %d", cap(s), n)
	}
	s[n-1].n = 1
	b := NewSlice[[]byte](a, 2*slabSize, 2*slabSize)
	if len(b) != 2*slabSize {
		t.Fatalf("got len %d", len(b))
	}
}

func TestMakeSliceEmpty(t *testing.T) {
	a := NewArena()
	if s := MakeSlice[[]int](a, nil); s != nil {
		t.Errorf("got %v, want nil", s)
	}
	if s := MakeSlice(a, []int{1, 2, 3}); !slices.Equal(s, []int{1, 2, 3}) {
		t.Errorf("got %v", s)
	}
}

func TestDup(t *testing.T) {
	a := NewArena()
	buf := []byte("material")
	s := Dup(a, string(buf))
	buf[0] = 'x'
	if s != "material" {
		t.Errorf("got %q", s)
	}
	if Dup(a, "") != "" {
		t.Error("empty string not preserved")
	}
}

func TestBinaryTreeMap(t *testing.T) {
	a := NewArena()
	var m BinaryTreeMap[string, int]
	keys := []string{"mc/foo", "images/bar", "techsets/baz", "images/bar", "a"}
	for i, k := range keys {
		m.Insert(a, k, i)
	}
	if m.Len() != 4 {
		t.Fatalf("got %d entries, want 4", m.Len())
	}
	if v, ok := m.Get("images/bar"); !ok || v != 3 {
		t.Errorf("got %d, %t for replaced key", v, ok)
	}
	if _, ok := m.Get("missing"); ok {
		t.Error("found missing key")
	}

	var got []string
	for k := range m.All() {
		got = append(got, k)
	}
	want := []string{"a", "images/bar", "mc/foo", "techsets/baz"}
	if !slices.Equal(got, want) {
		t.Errorf("got order %v, want %v", got, want)
	}
	if vals := slices.Collect(m.Values()); !slices.Equal(vals, []int{4, 3, 0, 2}) {
		t.Errorf("got values %v", vals)
	}
}

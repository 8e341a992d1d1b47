// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Package mem provides the arena that compiled assets are allocated from.
//
// An arena is owned by whoever drives a compilation, usually a zone. Memory
// is never freed individually; the whole arena is reset or dropped at once.
package mem

import (
	"reflect"
	"unsafe"
)

const slabSize = 1024 * 1024

type Arena struct {
	byteSlabs  []slab
	typedSlabs map[reflect.Type][]slab
}

type slab struct {
	data   unsafe.Pointer
	size   int
	offset int
}

func NewArena() *Arena {
	return &Arena{
		typedSlabs: make(map[reflect.Type][]slab),
	}
}

func (a *Arena) alloc(typ reflect.Type, num int) unsafe.Pointer {
	type iface struct {
		_    unsafe.Pointer
		rtyp *struct {
			size      int
			ptrPrefix int
			_         uint32
			_         uint8
			align     uint8
		}
	}

	rtyp := (*iface)(unsafe.Pointer(&typ)).rtyp
	// rtyp.size already includes padding
	totalSize := num * rtyp.size
	if rtyp.ptrPrefix == 0 {
		// Pointer-free memory can share untyped byte slabs.
		for i := range a.byteSlabs {
			sl := &a.byteSlabs[i]
			off := align(sl.offset, rtyp.align)
			if sl.size-off >= totalSize {
				sl.offset = off + totalSize
				ptr := unsafe.Add(sl.data, off)
				clear(unsafe.Slice((*byte)(ptr), totalSize))
				return ptr
			}
		}
		size := max(slabSize, totalSize)
		a.byteSlabs = append(a.byteSlabs, slab{
			data:   unsafe.Pointer(unsafe.SliceData(make([]byte, size))),
			size:   size,
			offset: totalSize,
		})
		return a.byteSlabs[len(a.byteSlabs)-1].data
	}

	// Memory containing pointers has to be visible to the GC with its real
	// type, so it comes from slabs that were allocated as typed slices.
	slabs := a.typedSlabs[typ]
	for i := range slabs {
		sl := &slabs[i]
		if sl.size-sl.offset >= num {
			ptr := unsafe.Add(sl.data, sl.offset*rtyp.size)
			sl.offset += num
			// Typed slabs are zeroed when the arena is reset.
			return ptr
		}
	}
	n := max(slabSize/rtyp.size, num)
	ptr := reflect.MakeSlice(reflect.SliceOf(typ), n, n).UnsafePointer()
	a.typedSlabs[typ] = append(slabs, slab{
		data:   ptr,
		size:   n,
		offset: num,
	})
	return ptr
}

// to has to be a power of two.
func align(v int, to uint8) int {
	return v + (-v & (int(to) - 1))
}

// Reset makes all of the arena's memory available again. Values previously
// allocated from the arena must no longer be used.
func (a *Arena) Reset() {
	if a.typedSlabs == nil {
		a.typedSlabs = make(map[reflect.Type][]slab)
	}
	for i := range a.byteSlabs {
		a.byteSlabs[i].offset = 0
	}
	for typ, slabs := range a.typedSlabs {
		size := int(typ.Size())
		for i := range slabs {
			sl := &slabs[i]
			// Clear memory so it doesn't keep Go pointers alive
			clear(unsafe.Slice((*byte)(sl.data), sl.offset*size))
			sl.offset = 0
		}
	}
}

// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package gdt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/exp/constraints"
)

// ErrInvalidProperty is the error wrapped by all failures to read a
// property, be it missing or malformed.
var ErrInvalidProperty = errors.New("invalid property")

type PropertyError struct {
	Property string
	Msg      string
}

func (err *PropertyError) Error() string { return err.Msg }
func (err *PropertyError) Unwrap() error { return ErrInvalidProperty }

func propertyErrorf(prop string, f string, v ...any) error {
	return &PropertyError{Property: prop, Msg: fmt.Sprintf(f, v...)}
}

// Reader reads typed properties of an entry. Properties the entry doesn't
// have are looked up in Defaults.
type Reader struct {
	Entry    *Entry
	Defaults map[string]string
}

func NewReader(e *Entry, defaults map[string]string) *Reader {
	return &Reader{Entry: e, Defaults: defaults}
}

func (r *Reader) Lookup(name string) (string, bool) {
	if v, ok := r.Entry.Property(name); ok {
		return v, true
	}
	v, ok := r.Defaults[name]
	return v, ok
}

func (r *Reader) ReadString(name string) (string, error) {
	v, ok := r.Lookup(name)
	if !ok {
		return "", propertyErrorf(name, "Could not find property: \"%s\"", name)
	}
	return v, nil
}

func (r *Reader) ReadBool(name string) (bool, error) {
	v, err := r.ReadString(name)
	if err != nil {
		return false, err
	}
	switch v {
	case "1":
		return true, nil
	case "0":
		return false, nil
	default:
		return false, propertyErrorf(name, "Invalid bool value for property \"%s\": \"%s\"", name, v)
	}
}

func (r *Reader) ReadFloat(name string) (float32, error) {
	v, err := r.ReadString(name)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(v, 32)
	if err != nil {
		return 0, propertyErrorf(name, "Invalid float value for property \"%s\": \"%s\"", name, v)
	}
	return float32(f), nil
}

// ReadInt returns def if the property doesn't exist.
func (r *Reader) ReadInt(name string, def int) (int, error) {
	v, ok := r.Lookup(name)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, propertyErrorf(name, "Invalid int value for property \"%s\": \"%s\"", name, v)
	}
	return n, nil
}

// ReadVec4 reads four space-separated floats. It returns def if the property
// doesn't exist.
func (r *Reader) ReadVec4(name string, def mgl32.Vec4) (mgl32.Vec4, error) {
	v, ok := r.Lookup(name)
	if !ok {
		return def, nil
	}
	fields := strings.Fields(v)
	if len(fields) != 4 {
		return mgl32.Vec4{}, propertyErrorf(name, "Invalid vec4 value for property \"%s\": \"%s\"", name, v)
	}
	var out mgl32.Vec4
	for i, field := range fields {
		f, err := strconv.ParseFloat(field, 32)
		if err != nil {
			return mgl32.Vec4{}, propertyErrorf(name, "Invalid vec4 value for property \"%s\": \"%s\"", name, v)
		}
		out[i] = float32(f)
	}
	return out, nil
}

// ReadEnum maps the property's value to its index in names.
func ReadEnum[T constraints.Integer](r *Reader, name string, names []string) (T, error) {
	v, err := r.ReadString(name)
	if err != nil {
		return 0, err
	}
	for i, n := range names {
		if n == v {
			return T(i), nil
		}
	}
	return 0, propertyErrorf(name, "Unknown %s value: \"%s\"", name, v)
}

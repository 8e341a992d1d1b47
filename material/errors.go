// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package material

import (
	"errors"
	"fmt"

	"honnef.co/go/zonetool/gdt"
	"honnef.co/go/zonetool/gfx"
)

var (
	// ErrInvalidProperty is wrapped by errors caused by missing or
	// malformed properties. It is the same error as gdt.ErrInvalidProperty.
	ErrInvalidProperty = gdt.ErrInvalidProperty
	// ErrDependencyNotFound is wrapped by errors caused by technique sets,
	// technique set definitions or images that couldn't be loaded.
	ErrDependencyNotFound = errors.New("dependency not found")
	// ErrSkip is wrapped by errors of material templates that aren't
	// implemented. Such materials should be skipped quietly.
	ErrSkip = errors.New("material template not implemented")
)

// Error is an error that aborted the compilation of a material. Its message
// is suitable for showing to users.
type Error struct {
	Kind error
	Msg  string
	Err  error
}

func (err *Error) Error() string { return err.Msg }

func (err *Error) Unwrap() []error {
	if err.Err != nil {
		return []error{err.Kind, err.Err}
	}
	return []error{err.Kind}
}

func invalidf(f string, v ...any) error {
	return &Error{Kind: ErrInvalidProperty, Msg: fmt.Sprintf(f, v...)}
}

func notFoundf(cause error, f string, v ...any) error {
	return &Error{Kind: ErrDependencyNotFound, Msg: fmt.Sprintf(f, v...), Err: cause}
}

func skipf(f string, v ...any) error {
	return &Error{Kind: ErrSkip, Msg: fmt.Sprintf(f, v...)}
}

// stateErr turns a rejected state bits value into a property error.
func stateErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gfx.ErrInvalidValue) {
		return &Error{Kind: ErrInvalidProperty, Msg: err.Error(), Err: err}
	}
	return err
}

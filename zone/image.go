// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package zone

import (
	"errors"
	"io/fs"
	"path"
	"strings"
)

// Image is an image asset. Builtin images, whose names start with '$', are
// provided by the engine and have no file.
type Image struct {
	Name    string
	Builtin bool
	Path    string
	Size    int64
}

// ImageLoader finds images in the images directory of a search path.
type ImageLoader struct {
	FS fs.FS
}

func (l *ImageLoader) Load(m *Manager, name string) (any, []*AssetInfo, error) {
	if strings.HasPrefix(name, "$") {
		return &Image{Name: name, Builtin: true}, nil, nil
	}
	if l.FS == nil {
		return nil, nil, nil
	}
	p := path.Join("images", name+".iwi")
	st, err := fs.Stat(l.FS, p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	return &Image{Name: name, Path: p, Size: st.Size()}, nil, nil
}

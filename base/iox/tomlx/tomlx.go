// Copyright (c) 2026, The Styleworks Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tomlx reads TOML files into structs using the standard
// [iox] open functions.
package tomlx

import (
	"io"
	"io/fs"

	"github.com/pelletier/go-toml/v2"
	"github.com/styleworks/mixins/base/iox"
)

// Open reads the given object from the given TOML file.
func Open(v any, filename string) error {
	return iox.Open(v, filename, decoderFunc)
}

// OpenFS reads the given object from the given TOML file in the
// given filesystem.
func OpenFS(v any, fsys fs.FS, filename string) error {
	return iox.OpenFS(v, fsys, filename, decoderFunc)
}

// Read reads the given object from the given reader of TOML data.
func Read(v any, reader io.Reader) error {
	return iox.Read(v, reader, decoderFunc)
}

func decoderFunc(r io.Reader) iox.Decoder {
	return toml.NewDecoder(r)
}

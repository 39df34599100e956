// Copyright (c) 2026, The Styleworks Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package yamlx reads YAML files into structs using the standard
// [iox] open functions.
package yamlx

import (
	"io"
	"io/fs"

	"github.com/styleworks/mixins/base/iox"
	"gopkg.in/yaml.v3"
)

// Open reads the given object from the given YAML file.
func Open(v any, filename string) error {
	return iox.Open(v, filename, decoderFunc)
}

// OpenFS reads the given object from the given YAML file in the
// given filesystem.
func OpenFS(v any, fsys fs.FS, filename string) error {
	return iox.OpenFS(v, fsys, filename, decoderFunc)
}

// Read reads the given object from the given reader of YAML data.
func Read(v any, reader io.Reader) error {
	return iox.Read(v, reader, decoderFunc)
}

func decoderFunc(r io.Reader) iox.Decoder {
	return yaml.NewDecoder(r)
}

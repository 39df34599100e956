// Copyright (c) 2026, The Styleworks Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package iox provides boilerplate methods for opening structured
// data files through a generic Decoder interface, so that the same
// open logic serves TOML, YAML, and any other encoding. See the
// tomlx and yamlx sub-packages for the concrete bindings.
package iox

import (
	"bufio"
	"io"
	"io/fs"
	"os"
)

// Decoder is an interface for standard decoder types that decode
// from a stream into the given object.
type Decoder interface {
	Decode(v any) error
}

// DecoderFunc returns a new Decoder for the given reader.
type DecoderFunc func(r io.Reader) Decoder

// Open reads the given object from the given filename using the
// given [DecoderFunc].
func Open(v any, filename string, f DecoderFunc) error {
	fp, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	return Read(v, bufio.NewReader(fp), f)
}

// OpenFS reads the given object from the given filename in the given
// filesystem, using the given [DecoderFunc].
func OpenFS(v any, fsys fs.FS, filename string, f DecoderFunc) error {
	fp, err := fsys.Open(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	return Read(v, bufio.NewReader(fp), f)
}

// Read reads the given object from the given reader using the given
// [DecoderFunc].
func Read(v any, reader io.Reader, f DecoderFunc) error {
	d := f(reader)
	return d.Decode(v)
}
